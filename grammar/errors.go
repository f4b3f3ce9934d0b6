package grammar

import (
	srchilite "github.com/seanpm2001/go-source-highlight"
)

// Error codes used by grammar:
const (
	// NoRootStateError indicates that a graph has no "root" state.
	NoRootStateError = srchilite.GrammarErrors + iota

	// UnknownStateError indicates that a rule references a state missing from the graph.
	UnknownStateError

	// NoConfigError indicates that a graph carries no Config or an empty display name.
	NoConfigError
)

func noRootStateError(lang string) *srchilite.Error {
	return srchilite.FormatError(NoRootStateError, "grammar for %s has no %q state", lang, RootState)
}

func unknownStateError(lang, state, target string) *srchilite.Error {
	return srchilite.NewError(UnknownStateError,
		"reference to undefined state \""+target+"\"", lang, state, "")
}

func noConfigError() *srchilite.Error {
	return srchilite.FormatError(NoConfigError, "grammar has no config or display name")
}
