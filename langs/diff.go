package langs

import (
	"github.com/alecthomas/chroma"

	"github.com/seanpm2001/go-source-highlight/grammar"
)

// Diff is the grammar for unified and context diffs.
var Diff = register(&grammar.Graph{
	Config: &grammar.Config{
		Name:      "Diff",
		Aliases:   []string{"diff", "udiff"},
		Filenames: []string{"*.diff", "*.patch"},
	},
	States: map[string][]grammar.Rule{
		"root": {
			grammar.LiteralRule{Pattern: ` .*\n`, Token: grammar.Tok(chroma.Text)},
			grammar.LiteralRule{Pattern: `\+.*\n`, Token: grammar.Tok(chroma.GenericInserted)},
			grammar.LiteralRule{Pattern: `-.*\n`, Token: grammar.Tok(chroma.GenericDeleted)},
			grammar.LiteralRule{Pattern: `!.*\n`, Token: grammar.Tok(chroma.GenericStrong)},
			grammar.LiteralRule{Pattern: `@.*\n`, Token: grammar.Tok(chroma.GenericSubheading)},
			grammar.LiteralRule{Pattern: `([Ii]ndex|diff).*\n`, Token: grammar.Tok(chroma.GenericHeading)},
			grammar.LiteralRule{Pattern: `=.*\n`, Token: grammar.Tok(chroma.GenericHeading)},
			grammar.LiteralRule{Pattern: `.*\n`, Token: grammar.Tok(chroma.Text)},
		},
	},
})
