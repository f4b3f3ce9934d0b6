// Package style converts chroma styles into GNU source-highlight .style files
// and escape-sequence .outlang output definitions.
package style

import (
	"sort"
	"strconv"

	"github.com/alecthomas/chroma"
)

// logicalColors are the colour names the destination engine understands, with
// their reference RGB values.
var logicalColors = map[string][3]uint8{
	"black":        {0, 0, 0},
	"red":          {255, 0, 0},
	"darkred":      {170, 0, 0},
	"brown":        {170, 85, 0},
	"yellow":       {255, 255, 0},
	"cyan":         {0, 255, 255},
	"blue":         {0, 0, 255},
	"pink":         {255, 0, 255},
	"purple":       {170, 0, 170},
	"orange":       {252, 127, 0},
	"brightorange": {252, 170, 0},
	"green":        {0, 255, 0},
	"brightgreen":  {85, 255, 85},
	"darkgreen":    {0, 128, 0},
	"teal":         {0, 128, 128},
	"gray":         {170, 170, 170},
	"darkblue":     {0, 0, 170},
	"white":        {255, 255, 255},
}

// Palette maps the destination's logical colour names onto the colours a
// style actually uses, plus their xterm-256 approximations.
type Palette struct {
	NamesToHex   map[string]chroma.Colour
	HexToNames   map[chroma.Colour]string
	NamesToShort map[string]string
	ShortToNames map[string]string
}

// NewPalette approximates each logical colour with the nearest colour used by
// the style.
func NewPalette(sty *chroma.Style) *Palette {
	colours := styleColours(sty)
	p := &Palette{
		NamesToHex:   map[string]chroma.Colour{},
		HexToNames:   map[chroma.Colour]string{},
		NamesToShort: map[string]string{},
		ShortToNames: map[string]string{},
	}
	for _, name := range logicalColorNames() {
		rgb := logicalColors[name]
		c := nearestColour(chroma.NewColour(rgb[0], rgb[1], rgb[2]), colours)
		short := xterm256(c)
		p.NamesToHex[name] = c
		p.HexToNames[c] = name
		p.NamesToShort[name] = short
		p.ShortToNames[short] = name
	}
	return p
}

// Name returns the logical name for a style colour, falling back to the
// nearest logical colour for colours the palette did not claim.
func (p *Palette) Name(c chroma.Colour) string {
	if name, ok := p.HexToNames[c]; ok {
		return name
	}
	best, bestDist := "black", -1.0
	for _, name := range logicalColorNames() {
		rgb := logicalColors[name]
		d := c.Distance(chroma.NewColour(rgb[0], rgb[1], rgb[2]))
		if bestDist < 0 || d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// DefaultName returns the logical name used for token types without an
// explicit foreground colour: the brightest colour the palette claimed.
func (p *Palette) DefaultName() string {
	best := chroma.Colour(0)
	for c := range p.HexToNames {
		if c > best {
			best = c
		}
	}
	return p.HexToNames[best]
}

func logicalColorNames() []string {
	names := make([]string, 0, len(logicalColors))
	for name := range logicalColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// styleColours collects every colour the style sets, in stable order.
func styleColours(sty *chroma.Style) []chroma.Colour {
	seen := map[chroma.Colour]bool{}
	var out []chroma.Colour
	for _, tt := range sty.Types() {
		e := sty.Get(tt)
		for _, c := range []chroma.Colour{e.Colour, e.Background, e.Border} {
			if c.IsSet() && !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func nearestColour(ref chroma.Colour, palette []chroma.Colour) chroma.Colour {
	if len(palette) == 0 {
		return ref
	}
	best := palette[0]
	bestDist := ref.Distance(best)
	for _, c := range palette[1:] {
		if d := ref.Distance(c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// xterm256 returns the xterm-256 colour code approximating c: the grayscale
// ramp for gray tones, the 6x6x6 cube otherwise.
func xterm256(c chroma.Colour) string {
	r, g, b := int(c.Red()), int(c.Green()), int(c.Blue())
	if r == g && g == b {
		switch {
		case r < 8:
			return "16"
		case r > 248:
			return "231"
		}
		return strconv.Itoa(232 + (r-8)*24/247)
	}
	cube := func(v int) int { return (v*5 + 127) / 255 }
	return strconv.Itoa(16 + 36*cube(r) + 6*cube(g) + cube(b))
}
