// Package grammar defines the lexer-grammar data model: a graph of named
// tokenizer states, each holding an ordered list of pattern-to-token rules
// with optional state transitions.
package grammar

import (
	"github.com/alecthomas/chroma"
)

// RootState is the state translation starts from.
const RootState = "root"

// Config holds per-language metadata used for file naming and lookup tables.
type Config struct {
	// Name is the display name of the language, e.g. "Pkg-config".
	Name string

	// Aliases contains alternative names the language is known by.
	Aliases []string

	// Filenames contains file name globs, e.g. "*.ini".
	Filenames []string

	// AliasFilenames contains globs of files that may be in this language.
	AliasFilenames []string
}

// Rule is one entry of a state's ordered rule list. It is a closed variant
// set: LiteralRule, NestedRule, IncludeRule, PushRule, and PopRule. Consumers
// must switch over all variants and treat anything else as an error.
type Rule interface {
	rule()
}

// LiteralRule consumes Pattern, emits Token, and stays in the current state.
type LiteralRule struct {
	Pattern string
	Token   TokenSpec
}

// NestedRule consumes Pattern, emits Token, and recurses into State as a
// named sub-block.
type NestedRule struct {
	Pattern string
	Token   TokenSpec
	State   string
}

// IncludeRule inlines the rules of State at the same nesting level.
type IncludeRule struct {
	State string
}

// PushRule marks the enter delimiter of a nested push/pop region.
type PushRule struct {
	Pattern string
	Token   TokenSpec
}

// PopRule marks the exit delimiter of a nested push/pop region.
// Depth values above one pop that many levels at once.
type PopRule struct {
	Pattern string
	Token   TokenSpec
	Depth   int
}

func (LiteralRule) rule() {}
func (NestedRule) rule()  {}
func (IncludeRule) rule() {}
func (PushRule) rule()    {}
func (PopRule) rule()     {}

// TokenSpec describes how a rule's match maps to token types. It is a closed
// variant set: LiteralSpec, CompoundSpec, and DynamicSpec.
type TokenSpec interface {
	tokenSpec()
}

// LiteralSpec binds the whole match to a single token type.
type LiteralSpec struct {
	Type chroma.TokenType
}

// CompoundSpec binds each top-level capturing group of the pattern to its own
// spec. Its length must equal the number of top-level capturing groups.
type CompoundSpec struct {
	Parts []TokenSpec
}

// DynamicSpec binds a group to whatever token type the referenced sub-lexer
// assigns to a representative sample of the group. An empty Lexer refers to
// the language currently being translated.
type DynamicSpec struct {
	Lexer string
}

func (LiteralSpec) tokenSpec()  {}
func (CompoundSpec) tokenSpec() {}
func (DynamicSpec) tokenSpec()  {}

// Graph is one language's lexer grammar: a read-only map of state name to
// ordered rule list, plus language metadata. Every state referenced by a
// NestedRule or IncludeRule must be present in States.
type Graph struct {
	Config *Config
	States map[string][]Rule
}

// Tok creates a LiteralSpec.
func Tok(t chroma.TokenType) TokenSpec {
	return LiteralSpec{Type: t}
}

// ByGroups creates a CompoundSpec from per-group specs.
func ByGroups(parts ...TokenSpec) TokenSpec {
	return CompoundSpec{Parts: parts}
}

// Using creates a DynamicSpec referring to the named sub-lexer.
func Using(lexer string) TokenSpec {
	return DynamicSpec{Lexer: lexer}
}

// UsingSelf creates a DynamicSpec referring to the language currently being
// translated.
func UsingSelf() TokenSpec {
	return DynamicSpec{}
}

// Default creates a zero-width transition into state, normalized to a
// NestedRule with an empty pattern and a text token so that downstream
// consumers never see a separate rule shape.
func Default(state string) Rule {
	return NestedRule{Pattern: "", Token: Tok(chroma.Text), State: state}
}

// TokenName returns the destination rule name for a token type.
func TokenName(t chroma.TokenType) string {
	return t.String()
}
