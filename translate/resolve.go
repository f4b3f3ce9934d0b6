package translate

import (
	"regexp"
	"strings"

	"github.com/alecthomas/chroma"

	"github.com/seanpm2001/go-source-highlight/grammar"
)

// quoteSafe makes a pattern safe for single-quoted destination strings.
func quoteSafe(s string) string {
	return strings.ReplaceAll(s, "'", `\x27`)
}

// topLevelGroups splits a pattern into maximal parenthesized spans whose
// nesting depth returns to zero. Text between groups travels as a prefix of
// the following span. Escaped parens and parens inside character classes do
// not affect the nesting depth.
func topLevelGroups(s string) []string {
	var groups []string
	level := 0
	cur := ""
	escaped := false
	inClass := false
	for _, c := range s {
		cur += string(c)
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case inClass:
			inClass = c != ']'
		case c == '[':
			inClass = true
		case c == '(':
			level++
		case c == ')':
			level--
			if level == 0 {
				groups = append(groups, cur)
				cur = ""
			}
		}
	}
	return groups
}

// resolve turns one pattern and token spec into a destination rule line
// without indentation or exit decoration. An empty result with a nil error
// means the rule is a pure continuation marker and is intentionally elided.
func (c *context) resolve(pattern string, spec grammar.TokenSpec, popping bool) (string, error) {
	switch ts := spec.(type) {
	case grammar.CompoundSpec:
		return c.resolveCompound(pattern, ts)
	case grammar.LiteralSpec:
		name := grammar.TokenName(ts.Type)
		switch {
		case popping && pattern == `\n`:
			// the destination anchors line-end exits with a verbatim $,
			// which never passes through the dialect rewriter
			return name + " = '$'", nil
		case strings.HasSuffix(pattern, `\n`) || strings.HasSuffix(pattern, `.*`):
			trimmed := strings.TrimSuffix(pattern[:len(pattern)-2], `.*`)
			if trimmed == "" {
				return "", nil
			}
			translated, err := TranslatePattern(trimmed)
			if err != nil {
				return "", c.locate(err)
			}
			return name + " start '" + quoteSafe(translated) + "'", nil
		default:
			translated, err := TranslatePattern(pattern)
			if err != nil {
				return "", c.locate(err)
			}
			return name + " = '" + quoteSafe(translated) + "'", nil
		}
	default:
		return "", unsupportedTokenSpecError(c, spec)
	}
}

// resolveCompound binds each top-level capturing group of the translated
// pattern to its own token name and emits a single backtick-quoted line.
func (c *context) resolveCompound(pattern string, spec grammar.CompoundSpec) (string, error) {
	translated, err := TranslatePattern(pattern)
	if err != nil {
		return "", c.locate(err)
	}
	groups := topLevelGroups(translated)
	if len(groups) != len(spec.Parts) {
		return "", compoundArityError(c, len(spec.Parts), len(groups))
	}
	names := make([]string, len(groups))
	for i, part := range spec.Parts {
		switch ps := part.(type) {
		case grammar.LiteralSpec:
			names[i] = grammar.TokenName(ps.Type)
		case grammar.DynamicSpec:
			t, err := c.dynamicToken(ps.Lexer, groups[i])
			if err != nil {
				return "", err
			}
			names[i] = grammar.TokenName(t)
		default:
			return "", unsupportedTokenSpecError(c, part)
		}
	}
	return "(" + strings.Join(names, ",") + ") = `" + translated + "`", nil
}

// dynamicToken deduces the token type a sub-lexer assigns to strings matching
// group, by lexing one representative sample and taking the first produced
// token. This is a best-effort approximation: classification that depends on
// context beyond the sampled substring may resolve differently.
func (c *context) dynamicToken(ref, group string) (chroma.TokenType, error) {
	sample, err := LongestSample(group, c.maxCandidates, c.expansionLimit)
	if err != nil {
		return 0, c.locate(err)
	}
	re, err := regexp.Compile(group)
	if err != nil {
		return 0, c.locate(malformedSampleError(group, err.Error()))
	}
	if loc := re.FindStringIndex(sample); loc == nil || loc[0] != 0 {
		return 0, c.locate(malformedSampleError(group, "sample "+sample+" does not match"))
	}
	if ref == "" {
		ref = c.lang
	}
	if c.invoke == nil {
		return 0, noInvokerError(c, ref)
	}
	tokens, err := c.invoke(ref, sample)
	if err != nil {
		return 0, subLexerError(c, ref, err)
	}
	if len(tokens) == 0 {
		return 0, c.locate(malformedSampleError(group, "sub-lexer "+ref+" produced no tokens"))
	}
	return tokens[0].Type, nil
}
