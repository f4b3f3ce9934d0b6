package translate

import (
	"strings"

	"github.com/seanpm2001/go-source-highlight/grammar"
)

// compileRegion turns a rule list containing push/pop rules into the
// destination engine's single nested-delimiter rule. Rules that are neither
// enter nor exit delimiters keep highlighting inside the region and are
// wrapped in a named block. Invoked once per rule list.
func (c *context) compileRegion(stateName string, rules []grammar.Rule, depth int) ([]string, error) {
	var pushPatterns, popPatterns []string
	var pushToken grammar.TokenSpec
	var others []grammar.Rule
	for _, r := range rules {
		switch rule := r.(type) {
		case grammar.PushRule:
			pushPatterns = append(pushPatterns, rule.Pattern)
			if pushToken == nil {
				pushToken = rule.Token
			}
		case grammar.PopRule:
			if rule.Depth > 1 {
				// multi-level pops stay individual exit rules inside the region
				others = append(others, r)
			} else {
				popPatterns = append(popPatterns, rule.Pattern)
			}
		default:
			others = append(others, r)
		}
	}

	lit, ok := pushToken.(grammar.LiteralSpec)
	if !ok {
		return nil, unsupportedTokenSpecError(c, pushToken)
	}
	enter := groupPatterns(pushPatterns)
	exit := groupPatterns(popPatterns)

	rule := grammar.TokenName(lit.Type) + " delim '" + quoteSafe(enter) + "' '" + quoteSafe(exit) + "' "
	if strings.Contains(enter, "\n") || strings.Contains(exit, "\n") {
		rule += "multiline "
	}
	rule += "nested"

	ind := strings.Repeat("  ", depth)
	if len(others) == 0 {
		// no internal highlighting rules, just nested
		return []string{ind + rule}, nil
	}
	lines := []string{
		ind + "# nested " + stateName + " state",
		ind + "state " + rule + " begin",
	}
	inner, err := c.walk(stateName, others, depth+1)
	if err != nil {
		return nil, err
	}
	lines = append(lines, inner...)
	lines = append(lines, ind+"end")
	return lines, nil
}

// groupPatterns joins delimiter patterns into a single alternation; a lone
// pattern passes through verbatim.
func groupPatterns(patterns []string) string {
	if len(patterns) == 1 {
		return patterns[0]
	}
	stripped := make([]string, len(patterns))
	for i, p := range patterns {
		stripped[i] = strings.TrimLeft(p, "^")
	}
	return "(" + strings.Join(stripped, ")|(") + ")"
}
