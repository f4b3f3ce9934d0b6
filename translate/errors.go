package translate

import (
	srchilite "github.com/seanpm2001/go-source-highlight"
	"github.com/seanpm2001/go-source-highlight/grammar"
)

// Error codes used by translate:
const (
	// UnsupportedConstructError indicates that a pattern still contains a
	// construct with no destination equivalent after all rewrites.
	UnsupportedConstructError = srchilite.TranslateErrors + iota

	// UnsupportedTokenSpecError indicates a token spec shape that cannot be
	// bound to destination rule names.
	UnsupportedTokenSpecError

	// MalformedGroupSampleError indicates that no candidate string matching a
	// group's own sub-pattern could be produced.
	MalformedGroupSampleError

	// UnrecognizedRuleShapeError indicates a rule outside the known variant set.
	UnrecognizedRuleShapeError

	// RecursionLimitError indicates state-reference nesting beyond the cap.
	RecursionLimitError
)

func unsupportedConstructError(pattern, prefix string) *srchilite.Error {
	return srchilite.FormatError(UnsupportedConstructError,
		"unsupported construct %q in pattern %q", prefix, pattern)
}

func unsupportedTokenSpecError(c *context, spec grammar.TokenSpec) *srchilite.Error {
	return srchilite.FormatErrorCtx(c, UnsupportedTokenSpecError, "unsupported token spec %T", spec)
}

func compoundArityError(c *context, want, got int) *srchilite.Error {
	return srchilite.FormatErrorCtx(c, UnsupportedTokenSpecError,
		"compound spec with %d parts bound to %d top-level groups", want, got)
}

func noInvokerError(c *context, ref string) *srchilite.Error {
	return srchilite.FormatErrorCtx(c, UnsupportedTokenSpecError,
		"no sub-lexer invoker configured, cannot resolve %q", ref)
}

func subLexerError(c *context, ref string, err error) *srchilite.Error {
	return srchilite.FormatErrorCtx(c, UnsupportedTokenSpecError,
		"sub-lexer %q failed: %s", ref, err.Error())
}

func malformedSampleError(group, reason string) *srchilite.Error {
	return srchilite.FormatError(MalformedGroupSampleError,
		"cannot produce a sample matching group %q: %s", group, reason)
}

func unrecognizedRuleShapeError(c *context, r grammar.Rule) *srchilite.Error {
	return srchilite.FormatErrorCtx(c, UnrecognizedRuleShapeError, "unrecognized rule shape %T", r)
}

func recursionLimitError(c *context, max int) *srchilite.Error {
	return srchilite.FormatErrorCtx(c, RecursionLimitError, "state recursion deeper than %d", max)
}

func unknownStateError(c *context, target string) *srchilite.Error {
	return srchilite.FormatErrorCtx(c, grammar.UnknownStateError,
		"reference to undefined state %q", target)
}
