package langs

import (
	"github.com/alecthomas/chroma"

	"github.com/seanpm2001/go-source-highlight/grammar"
)

// C is a grammar for the C language, reduced to the constructs the
// destination rule set can express.
var C = register(&grammar.Graph{
	Config: &grammar.Config{
		Name:           "C",
		Aliases:        []string{"c"},
		Filenames:      []string{"*.c", "*.h"},
		AliasFilenames: []string{"*.cpp", "*.hpp"},
	},
	States: map[string][]grammar.Rule{
		"root": {
			grammar.LiteralRule{Pattern: `\s+`, Token: grammar.Tok(chroma.Text)},
			grammar.LiteralRule{Pattern: `//.*\n`, Token: grammar.Tok(chroma.CommentSingle)},
			grammar.NestedRule{Pattern: `/\*`, Token: grammar.Tok(chroma.CommentMultiline), State: "comment"},
			grammar.LiteralRule{Pattern: `#\s*\w+`, Token: grammar.Tok(chroma.CommentPreproc)},
			grammar.IncludeRule{State: "keywords"},
			grammar.LiteralRule{Pattern: `"(\\\\|\\"|[^"\n])*"`, Token: grammar.Tok(chroma.LiteralString)},
			grammar.LiteralRule{Pattern: `'(\\\\|\\'|[^'\n])'`, Token: grammar.Tok(chroma.LiteralStringChar)},
			grammar.LiteralRule{Pattern: `0[xX][0-9a-fA-F]+[uUlL]*`, Token: grammar.Tok(chroma.LiteralNumberHex)},
			grammar.LiteralRule{Pattern: `\d+\.\d+([eE][-+]?\d+)?`, Token: grammar.Tok(chroma.LiteralNumberFloat)},
			grammar.LiteralRule{Pattern: `\d+[uUlL]*`, Token: grammar.Tok(chroma.LiteralNumberInteger)},
			grammar.LiteralRule{
				Pattern: `([a-zA-Z_]\w*)([ \t]*)(\()`,
				Token: grammar.ByGroups(
					grammar.Tok(chroma.NameFunction),
					grammar.Tok(chroma.Text),
					grammar.Tok(chroma.Punctuation),
				),
			},
			grammar.LiteralRule{Pattern: `[a-zA-Z_]\w*`, Token: grammar.Tok(chroma.Name)},
			grammar.LiteralRule{Pattern: `[{}()\[\];,.&|<>=!+\-*/%^~?:]`, Token: grammar.Tok(chroma.Punctuation)},
		},
		"keywords": {
			grammar.LiteralRule{
				Pattern: `(if|else|for|while|do|return|switch|case|default|break|continue|goto|sizeof|struct|union|enum|typedef|static|extern|register|volatile|const|inline)\b`,
				Token:   grammar.Tok(chroma.Keyword),
			},
			grammar.LiteralRule{
				Pattern: `(int|char|long|short|float|double|void|unsigned|signed|size_t)\b`,
				Token:   grammar.Tok(chroma.KeywordType),
			},
		},
		"comment": {
			grammar.LiteralRule{Pattern: `[^*/]+`, Token: grammar.Tok(chroma.CommentMultiline)},
			grammar.PushRule{Pattern: `/\*`, Token: grammar.Tok(chroma.CommentMultiline)},
			grammar.PopRule{Pattern: `\*/`, Token: grammar.Tok(chroma.CommentMultiline), Depth: 1},
			grammar.LiteralRule{Pattern: `[*/]`, Token: grammar.Tok(chroma.CommentMultiline)},
		},
	},
})
