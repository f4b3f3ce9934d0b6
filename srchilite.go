/*
Package srchilite translates lexer grammars into GNU source-highlight language
definitions.

Consists of subpackages:
  - cmd/shgen: console utility generating .lang, .style, and .outlang files plus lookup maps;
  - grammar: defines the lexer-grammar data model (states, rules, token specs);
  - langs: database of built-in lexer grammars, keyed by display name;
  - translate: converts one grammar to source-highlight rule lines;
  - style: converts chroma styles to .style and escape-sequence .outlang files;
  - gen: drives batch generation and writes output files and lookup maps.

Typical usage is:

1. Describe a tokenizer as a grammar.Graph: named states, each holding an ordered
list of pattern-to-token rules with optional state transitions.

2. Register the graph in the langs database (or supply your own langs.Database).

3. Run gen.Languages and gen.Styles (or the shgen utility) to produce one .lang
file per language, one .style and .outlang file per style, and the lang.map and
outlang.map lookup tables consumed by source-highlight.
*/
package srchilite

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	GrammarErrors   = 1   // used by grammar
	TranslateErrors = 101 // used by translate
	LangsErrors     = 201 // used by langs
	GenErrors       = 301 // used by gen
)

// Error is the error type used by srchilite subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including language, state,
	// and pattern information if provided.
	Message string

	// Lang contains the display name of the language being translated or empty string.
	Lang string

	// State contains the name of the grammar state that caused this error or empty string.
	State string

	// Pattern contains the offending rule pattern or empty string.
	Pattern string
}

// RuleContext is used to retrieve language, state, and pattern information when
// constructing an error; translate's walker context implements this interface.
type RuleContext interface {
	// LangName returns the display name of the language being translated or empty string.
	LangName() string
	// StateName returns the name of the grammar state being translated or empty string.
	StateName() string
	// RulePattern returns the pattern of the rule being translated or empty string.
	RulePattern() string
}

// NewError creates new Error structure.
// lang, state, and pattern will be added to error message if provided (non-empty).
func NewError(code int, msg, lang, state, pattern string) *Error {
	if lang != "" && state != "" {
		msg += fmt.Sprintf(" in %s state %q", lang, state)
	}
	if pattern != "" {
		msg += fmt.Sprintf(" for pattern %q", pattern)
	}
	return &Error{code, msg, lang, state, pattern}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no rule context information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...interface{}) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", "", "")
}

// FormatErrorCtx creates Error structure with rule context information.
// ctx must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorCtx(ctx RuleContext, code int, msg string, params ...interface{}) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, ctx.LangName(), ctx.StateName(), ctx.RulePattern())
}
