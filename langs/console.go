package langs

import (
	"github.com/alecthomas/chroma"

	"github.com/seanpm2001/go-source-highlight/grammar"
)

// Console is the grammar for interactive shell session transcripts. Command
// text after a prompt is classified by the bash sub-lexer.
var Console = register(&grammar.Graph{
	Config: &grammar.Config{
		Name:           "Console",
		Aliases:        []string{"console", "shell-session"},
		Filenames:      []string{"*.sh-session"},
		AliasFilenames: []string{"*.txt"},
	},
	States: map[string][]grammar.Rule{
		"root": {
			grammar.LiteralRule{
				Pattern: `([$#%] )([-\w .:/=]+)`,
				Token:   grammar.ByGroups(grammar.Tok(chroma.GenericPrompt), grammar.Using("bash")),
			},
			grammar.LiteralRule{Pattern: `\s+`, Token: grammar.Tok(chroma.Text)},
			grammar.LiteralRule{Pattern: `[^$#%\s].*`, Token: grammar.Tok(chroma.GenericOutput)},
		},
	},
})
