// Package translate converts one lexer grammar into GNU source-highlight rule
// lines: a recursive walk over the grammar's states, a regex-dialect rewriter,
// a token resolver for single, compound, and dynamically-determined tokens,
// and a compiler turning push/pop transitions into nested-delimiter rules.
package translate

import (
	"strconv"
	"strings"

	"github.com/alecthomas/chroma"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	srchilite "github.com/seanpm2001/go-source-highlight"
	"github.com/seanpm2001/go-source-highlight/grammar"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// DefaultMaxDepth caps state-reference recursion. The walker performs no
// cycle detection; exceeding the cap is a fatal error instead of a stack
// overflow.
const DefaultMaxDepth = 64

// Invoker runs the named sub-lexer over text and returns the produced tokens.
// It is the external capability used for dynamic token resolution only.
type Invoker func(ref, text string) ([]chroma.Token, error)

// Options configures one translation pass.
type Options struct {
	// Invoker resolves dynamic token specs. Grammars without DynamicSpec
	// tokens never use it.
	Invoker Invoker

	// MaxDepth caps state recursion; DefaultMaxDepth if zero.
	MaxDepth int

	// MaxCandidates and ExpansionLimit bound sample generation; package
	// defaults if zero.
	MaxCandidates  int
	ExpansionLimit int
}

// context is the translation state for a single language, threaded explicitly
// through the call chain and discarded afterwards.
type context struct {
	graph          *grammar.Graph
	lang           string
	invoke         Invoker
	maxDepth       int
	maxCandidates  int
	expansionLimit int

	nesting int

	// current rule, for error reporting
	state   string
	pattern string
}

func (c *context) LangName() string    { return c.lang }
func (c *context) StateName() string   { return c.state }
func (c *context) RulePattern() string { return c.pattern }

func (c *context) at(state, pattern string) {
	c.state = state
	c.pattern = pattern
}

// locate fills missing rule context into an error produced below the walker.
func (c *context) locate(err error) error {
	if e, ok := err.(*srchilite.Error); ok {
		if e.Lang == "" {
			e.Lang = c.lang
		}
		if e.State == "" {
			e.State = c.state
		}
		if e.Pattern == "" {
			e.Pattern = c.pattern
		}
	}
	return err
}

// Translate converts the grammar into destination rule lines in source order.
// The destination engine applies rules first-match-wins in file order, so the
// emitted order is exactly the source rule-list order. On error no lines are
// returned; the error reports the offending language, state, and pattern.
func Translate(g *grammar.Graph, opts Options) ([]string, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	c := &context{
		graph:          g,
		lang:           g.Config.Name,
		invoke:         opts.Invoker,
		maxDepth:       opts.MaxDepth,
		maxCandidates:  opts.MaxCandidates,
		expansionLimit: opts.ExpansionLimit,
	}
	if c.maxDepth <= 0 {
		c.maxDepth = DefaultMaxDepth
	}
	tracer().Debugf("translating %s", c.lang)
	return c.walkState(grammar.RootState, 0)
}

func (c *context) walkState(name string, depth int) ([]string, error) {
	rules, ok := c.graph.States[name]
	if !ok {
		return nil, unknownStateError(c, name)
	}
	return c.walk(name, rules, depth)
}

// walk translates one ordered rule list. depth controls output indentation
// and block nesting; total recursion (including same-depth includes) is
// guarded separately so reference cycles terminate.
func (c *context) walk(stateName string, rules []grammar.Rule, depth int) ([]string, error) {
	c.nesting++
	defer func() { c.nesting-- }()
	if c.nesting > c.maxDepth {
		c.at(stateName, "")
		return nil, recursionLimitError(c, c.maxDepth)
	}

	hasPush := false
	for _, r := range rules {
		if _, ok := r.(grammar.PushRule); ok {
			hasPush = true
			break
		}
	}

	ind := strings.Repeat("  ", depth)
	var lines []string
	regionDone := false
	for _, r := range rules {
		switch rule := r.(type) {
		case grammar.IncludeRule:
			c.at(stateName, "")
			sub, err := c.walkState(rule.State, depth)
			if err != nil {
				return nil, err
			}
			lines = append(lines, sub...)
		case grammar.LiteralRule:
			c.at(stateName, rule.Pattern)
			line, err := c.resolve(rule.Pattern, rule.Token, false)
			if err != nil {
				return nil, err
			}
			if line != "" {
				lines = append(lines, ind+line)
			}
		case grammar.NestedRule:
			c.at(stateName, rule.Pattern)
			line, err := c.resolve(rule.Pattern, rule.Token, false)
			if err != nil {
				return nil, err
			}
			lines = append(lines, ind+"# "+rule.State+" state")
			lines = append(lines, ind+"state "+line+" begin")
			sub, err := c.walkState(rule.State, depth+1)
			if err != nil {
				return nil, err
			}
			lines = append(lines, sub...)
			lines = append(lines, ind+"end")
		case grammar.PushRule:
			if regionDone {
				continue
			}
			c.at(stateName, rule.Pattern)
			region, err := c.compileRegion(stateName, rules, depth)
			if err != nil {
				return nil, err
			}
			lines = append(lines, region...)
			regionDone = true
		case grammar.PopRule:
			if hasPush && rule.Depth <= 1 {
				// consumed by the region compiler as an exit delimiter
				if regionDone {
					continue
				}
				c.at(stateName, rule.Pattern)
				region, err := c.compileRegion(stateName, rules, depth)
				if err != nil {
					return nil, err
				}
				lines = append(lines, region...)
				regionDone = true
				continue
			}
			c.at(stateName, rule.Pattern)
			line, err := c.resolve(rule.Pattern, rule.Token, rule.Depth <= 1)
			if err != nil {
				return nil, err
			}
			if line == "" {
				continue
			}
			line += " exit"
			if rule.Depth > 1 {
				line += " " + strconv.Itoa(rule.Depth)
			}
			lines = append(lines, ind+line)
		default:
			c.at(stateName, "")
			return nil, unrecognizedRuleShapeError(c, r)
		}
	}
	return lines, nil
}
