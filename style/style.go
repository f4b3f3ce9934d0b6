package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma"

	"github.com/seanpm2001/go-source-highlight/grammar"
)

// Render produces the .style file contents for sty: one "<rule> <colour>;"
// line per styled token type, sorted by rule name. Token types without an
// explicit foreground colour fall back to the palette's default.
func Render(sty *chroma.Style, p *Palette) string {
	types := sty.Types()
	sort.Slice(types, func(i, j int) bool {
		return grammar.TokenName(types[i]) < grammar.TokenName(types[j])
	})
	var lines []string
	for _, tt := range types {
		lines = append(lines, grammar.TokenName(tt)+" "+entryColour(sty.Get(tt), p)+";")
	}
	return strings.Join(lines, "\n") + "\n"
}

// entryColour translates one style entry into the destination colour syntax:
// foreground name, optional bg: name, and b/i/u modifiers.
func entryColour(e chroma.StyleEntry, p *Palette) string {
	var parts []string
	if e.Colour.IsSet() {
		parts = append(parts, p.Name(e.Colour))
	} else {
		parts = append(parts, p.DefaultName())
	}
	if e.Background.IsSet() {
		parts = append(parts, "bg:"+p.Name(e.Background))
	}
	var mods []string
	if e.Bold == chroma.Yes {
		mods = append(mods, "b")
	}
	if e.Italic == chroma.Yes {
		mods = append(mods, "i")
	}
	if e.Underline == chroma.Yes {
		mods = append(mods, "u")
	}
	if len(mods) > 0 {
		parts = append(parts, strings.Join(mods, ", "))
	}
	return strings.Join(parts, " ")
}

// esc256Template is the output-definition skeleton for 256-colour terminals.
// The $style and $text placeholders are expanded by the destination engine.
const esc256Template = `# style map for %s
extension "txt"

styletemplate "\x1b[$stylem$text\x1b[m"
color "00;38;05;$style"

colormap
%s
default "255"
end
`

// RenderEsc256 produces the escape-sequence .outlang contents mapping the
// palette's logical colour names to xterm-256 codes.
func RenderEsc256(styleName string, p *Palette) string {
	names := make([]string, 0, len(p.NamesToShort))
	for name := range p.NamesToShort {
		names = append(names, name)
	}
	sort.Strings(names)
	entries := make([]string, len(names))
	for i, name := range names {
		entries[i] = fmt.Sprintf("%q %q", name, p.NamesToShort[name])
	}
	return fmt.Sprintf(esc256Template, styleName, strings.Join(entries, "\n"))
}
