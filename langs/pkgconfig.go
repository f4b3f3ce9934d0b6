package langs

import (
	"github.com/alecthomas/chroma"

	"github.com/seanpm2001/go-source-highlight/grammar"
)

// PkgConfig is the grammar for pkg-config .pc files.
var PkgConfig = register(&grammar.Graph{
	Config: &grammar.Config{
		Name:      "PkgConfig",
		Aliases:   []string{"pkgconfig"},
		Filenames: []string{"*.pc"},
	},
	States: map[string][]grammar.Rule{
		"root": {
			grammar.LiteralRule{Pattern: `#.*$`, Token: grammar.Tok(chroma.CommentSingle)},
			grammar.LiteralRule{
				Pattern: `^(\w+)(=)`,
				Token:   grammar.ByGroups(grammar.Tok(chroma.NameAttribute), grammar.Tok(chroma.Operator)),
			},
			grammar.NestedRule{
				Pattern: `^([\w.]+)(:)`,
				Token:   grammar.ByGroups(grammar.Tok(chroma.NameTag), grammar.Tok(chroma.Punctuation)),
				State:   "spvalue",
			},
			grammar.NestedRule{Pattern: `\$\{`, Token: grammar.Tok(chroma.KeywordPseudo), State: "curly"},
			grammar.LiteralRule{Pattern: `[^${}#=:\n.]+`, Token: grammar.Tok(chroma.Text)},
			grammar.LiteralRule{Pattern: `.`, Token: grammar.Tok(chroma.Text)},
		},
		"curly": {
			grammar.PopRule{Pattern: `\}`, Token: grammar.Tok(chroma.KeywordPseudo), Depth: 1},
			grammar.LiteralRule{Pattern: `\w+`, Token: grammar.Tok(chroma.NameAttribute)},
		},
		"spvalue": {
			grammar.LiteralRule{Pattern: `#.*$`, Token: grammar.Tok(chroma.CommentSingle)},
			grammar.NestedRule{Pattern: `\$\{`, Token: grammar.Tok(chroma.KeywordPseudo), State: "curly"},
			grammar.LiteralRule{Pattern: `[^${}#\n]+`, Token: grammar.Tok(chroma.Text)},
			grammar.PopRule{Pattern: `$`, Token: grammar.Tok(chroma.Text), Depth: 1},
		},
	},
})
