package langs

import (
	srchilite "github.com/seanpm2001/go-source-highlight"
)

// Error codes used by langs:
const (
	// UnknownLanguageError indicates a display name with no registered grammar.
	UnknownLanguageError = srchilite.LangsErrors + iota
)

func unknownLanguageError(name string) *srchilite.Error {
	return srchilite.FormatError(UnknownLanguageError, "no grammar registered for %q", name)
}
