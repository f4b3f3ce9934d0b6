package translate

import (
	"strings"
)

// patternRewrites converts source regex idioms with no positional-capture
// equivalent into fully-capturing alternatives. Order matters.
type patternRewrite struct {
	from, to string
}

var patternRewrites = []patternRewrite{
	// literal-exclusion lookahead
	{`(?!:)`, `[^:]`},
	// optional-group shorthand
	{`(\.\.\.)?`, `(|\.\.\.)`},
	// identifier-with-dots group
	{`((?:[$a-zA-Z_]\w*|\.)+)`, `([$a-zA-Z_0-9.]+)`},
	// generic-suffix identifier group
	{`([$a-zA-Z_]\w*(?:\.<\w+>)?)`, `([$a-zA-Z_]\w*|[$a-zA-Z_]\w*\.<\w+>)`},
	// wildcard-inclusive identifier group
	{`([$a-zA-Z_]\w*(?:\.<\w+>)?|\*)`, `([$a-zA-Z_]\w*|[$a-zA-Z_]\w*\.<\w+>|\*)`},
}

// unsupportedPrefixes have no representable equivalent downstream: destination
// rules bind token names positionally to capturing groups only.
var unsupportedPrefixes = []string{
	"(?:",
	"(?=",
	"(?!",
	"(?<=",
	"(?<!",
}

// TranslatePattern rewrites one pattern string for destination-engine
// legality. A leading start anchor is dropped (the destination engine always
// anchors at the current scan position), the fixed rewrite list is applied,
// and any remaining unsupported construct is a fatal error, never dropped.
func TranslatePattern(pattern string) (string, error) {
	pattern = strings.TrimPrefix(pattern, "^")
	for _, r := range patternRewrites {
		pattern = strings.ReplaceAll(pattern, r.from, r.to)
	}
	for _, prefix := range unsupportedPrefixes {
		if strings.Contains(pattern, prefix) {
			return "", unsupportedConstructError(pattern, prefix)
		}
	}
	return pattern, nil
}
