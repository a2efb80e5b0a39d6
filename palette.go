package rotplot

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var ErrUnknownColour = errors.New("rotplot: unknown colour")

// tableauColours is the ten colour Tableau palette, in matplotlib order.
var tableauColours = []string{
	"tab:blue",
	"tab:orange",
	"tab:green",
	"tab:red",
	"tab:purple",
	"tab:brown",
	"tab:pink",
	"tab:gray",
	"tab:olive",
	"tab:cyan",
}

var namedColours = map[string]string{
	"tab:blue":   "#1f77b4",
	"tab:orange": "#ff7f0e",
	"tab:green":  "#2ca02c",
	"tab:red":    "#d62728",
	"tab:purple": "#9467bd",
	"tab:brown":  "#8c564b",
	"tab:pink":   "#e377c2",
	"tab:gray":   "#7f7f7f",
	"tab:olive":  "#bcbd22",
	"tab:cyan":   "#17becf",

	"r": "#ff0000",
	"g": "#008000",
	"b": "#0000ff",
	"c": "#00bfbf",
	"m": "#bf00bf",
	"y": "#bfbf00",
	"k": "#000000",
	"w": "#ffffff",
}

func TableauColours() []string {
	return append([]string(nil), tableauColours...)
}

// ParseColour resolves a short name ("r"), a Tableau name ("tab:blue")
// or a hex string ("#1f77b4").
func ParseColour(name string) (color.Color, error) {
	hex, ok := namedColours[name]
	if !ok {
		if !strings.HasPrefix(name, "#") {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColour, name)
		}
		hex = name
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColour, name)
	}
	return c.Clamped(), nil
}

// Palette is a queue of colour names. Select pops the front and refills
// the queue from the full palette once it runs dry, so every cycle
// restarts at the first colour.
type Palette struct {
	full      []string
	remaining []string
}

func NewPalette(names ...string) *Palette {
	if len(names) == 0 {
		names = tableauColours
	}
	full := append([]string(nil), names...)
	return &Palette{full: full, remaining: append([]string(nil), full...)}
}

// Select pops the next colour. A zero Palette behaves like the Tableau
// palette.
func (p *Palette) Select() string {
	if len(p.full) == 0 {
		p.full = append([]string(nil), tableauColours...)
	}
	if len(p.remaining) == 0 {
		p.Reset()
	}
	colour := p.remaining[0]
	p.remaining = p.remaining[1:]
	if len(p.remaining) < 1 {
		p.Reset()
	}
	return colour
}

func (p *Palette) Reset() {
	p.remaining = append(p.remaining[:0:0], p.full...)
}

func (p *Palette) Len() int {
	return len(p.full)
}

// Remaining returns the colours left before the palette refills.
func (p *Palette) Remaining() []string {
	return append([]string(nil), p.remaining...)
}
