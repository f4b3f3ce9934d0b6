package translate

import (
	"regexp/syntax"
	"strings"
)

const (
	// DefaultMaxCandidates bounds how many candidate strings are enumerated
	// for one pattern.
	DefaultMaxCandidates = 100

	// DefaultExpansionLimit bounds the expansion width of unbounded
	// repetition, so generation terminates on pathological patterns.
	DefaultExpansionLimit = 100
)

// LongestSample produces a bounded set of candidate strings matching pattern
// and returns the longest one with embedded line breaks stripped. It is used
// only to deduce concrete values for dynamically-resolved groups and never
// appears in final output.
func LongestSample(pattern string, maxCandidates, expansionLimit int) (string, error) {
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}
	if expansionLimit <= 0 {
		expansionLimit = DefaultExpansionLimit
	}
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return "", malformedSampleError(pattern, err.Error())
	}
	g := &sampleGen{max: maxCandidates, limit: expansionLimit}
	best := ""
	for _, c := range g.gen(re) {
		c = strings.ReplaceAll(c, "\n", "")
		c = strings.ReplaceAll(c, "\r", "")
		if len(c) > len(best) {
			best = c
		}
	}
	return best, nil
}

type sampleGen struct {
	max   int
	limit int
}

func (g *sampleGen) gen(re *syntax.Regexp) []string {
	switch re.Op {
	case syntax.OpLiteral:
		return []string{string(re.Rune)}
	case syntax.OpCharClass:
		out := make([]string, 0, 3)
		for i := 0; i+1 < len(re.Rune) && len(out) < 3; i += 2 {
			out = append(out, string(pickRune(re.Rune[i], re.Rune[i+1])))
		}
		if len(out) == 0 {
			return []string{""}
		}
		return out
	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		return []string{"a"}
	case syntax.OpCapture:
		return g.gen(re.Sub[0])
	case syntax.OpConcat:
		out := []string{""}
		for _, sub := range re.Sub {
			out = g.cross(out, g.gen(sub))
		}
		return out
	case syntax.OpAlternate:
		var out []string
		for _, sub := range re.Sub {
			out = append(out, g.gen(sub)...)
			if len(out) >= g.max {
				return out[:g.max]
			}
		}
		return out
	case syntax.OpQuest:
		return g.clip(append([]string{""}, g.gen(re.Sub[0])...))
	case syntax.OpStar:
		return g.repeat(re.Sub[0], 0, g.limit)
	case syntax.OpPlus:
		return g.repeat(re.Sub[0], 1, g.limit)
	case syntax.OpRepeat:
		max := re.Max
		if max < 0 || max > g.limit {
			max = g.limit
		}
		if max < re.Min {
			max = re.Min
		}
		return g.repeat(re.Sub[0], re.Min, max)
	}
	// anchors, word boundaries, and empty matches contribute nothing
	return []string{""}
}

// pickRune prefers a printable representative of a character-class range.
func pickRune(lo, hi rune) rune {
	for _, r := range []rune{'a', 'A', '0', ' '} {
		if lo <= r && r <= hi {
			return r
		}
	}
	return lo
}

func (g *sampleGen) repeat(sub *syntax.Regexp, min, max int) []string {
	unit := ""
	for _, c := range g.gen(sub) {
		if len(c) > len(unit) {
			unit = c
		}
	}
	out := []string{strings.Repeat(unit, min)}
	if max > min {
		out = append(out, strings.Repeat(unit, max))
	}
	return out
}

func (g *sampleGen) cross(prefixes, parts []string) []string {
	out := make([]string, 0, len(prefixes)*len(parts))
	for _, p := range prefixes {
		for _, s := range parts {
			out = append(out, p+s)
			if len(out) >= g.max {
				return out
			}
		}
	}
	return out
}

func (g *sampleGen) clip(cands []string) []string {
	if len(cands) > g.max {
		return cands[:g.max]
	}
	return cands
}
