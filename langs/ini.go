package langs

import (
	"github.com/alecthomas/chroma"

	"github.com/seanpm2001/go-source-highlight/grammar"
)

// Ini is the grammar for INI configuration files.
var Ini = register(&grammar.Graph{
	Config: &grammar.Config{
		Name:      "INI",
		Aliases:   []string{"ini", "cfg", "dosini"},
		Filenames: []string{"*.ini", "*.cfg", "*.inf"},
	},
	States: map[string][]grammar.Rule{
		"root": {
			grammar.LiteralRule{Pattern: `\s+`, Token: grammar.Tok(chroma.Text)},
			grammar.LiteralRule{Pattern: `[;#].*`, Token: grammar.Tok(chroma.CommentSingle)},
			grammar.LiteralRule{Pattern: `\[[^\]]+\]`, Token: grammar.Tok(chroma.Keyword)},
			grammar.LiteralRule{
				Pattern: `(\w[\w.-]*)([ \t]*)(=)([ \t]*)([^\n]*)`,
				Token: grammar.ByGroups(
					grammar.Tok(chroma.NameAttribute),
					grammar.Tok(chroma.Text),
					grammar.Tok(chroma.Operator),
					grammar.Tok(chroma.Text),
					grammar.Tok(chroma.LiteralString),
				),
			},
			grammar.LiteralRule{Pattern: `[^\s\[]+`, Token: grammar.Tok(chroma.NameAttribute)},
		},
	},
})
