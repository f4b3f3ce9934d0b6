package gen

import (
	srchilite "github.com/seanpm2001/go-source-highlight"
)

// Error codes used by gen:
const (
	// UnknownSubLexerError indicates a dynamic token spec referencing a
	// lexer chroma does not provide.
	UnknownSubLexerError = srchilite.GenErrors + iota

	// UnknownStyleError indicates a style name chroma does not provide.
	UnknownStyleError
)

func unknownSubLexerError(ref string) *srchilite.Error {
	return srchilite.FormatError(UnknownSubLexerError, "no chroma lexer for %q", ref)
}

func unknownStyleError(name string) *srchilite.Error {
	return srchilite.FormatError(UnknownStyleError, "no chroma style named %q", name)
}
