// Package term shows figures in a terminal using half-block cells.
package term

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/flywave/go-rotplot"
)

const (
	defaultDPI = 96
	halfBlock  = '▀'
)

// Display is a rotplot.Displayer that paints the figure on a terminal and
// blocks until Enter, Esc, q or Ctrl-C is pressed.
type Display struct {
	screen tcell.Screen
	dpi    int
}

type Option func(*Display)

// WithScreen shows on an already initialised screen. The screen is left
// open after Show returns.
func WithScreen(s tcell.Screen) Option {
	return func(d *Display) {
		d.screen = s
	}
}

// WithDPI sets the resolution the figure is rasterised at before it is
// scaled down to the terminal grid.
func WithDPI(dpi int) Option {
	return func(d *Display) {
		d.dpi = dpi
	}
}

func New(opts ...Option) *Display {
	d := &Display{dpi: defaultDPI}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Display) Show(f *rotplot.Figure) error {
	s := d.screen
	if s == nil {
		var err error
		s, err = tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("term: %w", err)
		}
		if err := s.Init(); err != nil {
			return fmt.Errorf("term: init screen: %w", err)
		}
		defer s.Fini()
	}

	source := Rasterize(f, d.dpi)
	for {
		w, h := s.Size()
		paint(s, source, w, h)
		s.Show()

		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter, tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					return nil
				}
			}
		}
	}
}

// Rasterize draws the figure at its own size and the given resolution.
func Rasterize(f *rotplot.Figure, dpi int) image.Image {
	w := vg.Length(f.Width) * vg.Inch
	h := vg.Length(f.Height) * vg.Inch
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	f.Draw(draw.New(c))
	return c.Image()
}

// paint scales source to w×2h pixels; each cell shows two vertically
// stacked pixels as the fore- and background of a half block.
func paint(s tcell.Screen, source image.Image, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	img := image.NewRGBA(image.Rect(0, 0, w, 2*h))
	xdraw.BiLinear.Scale(img, img.Bounds(), source, source.Bounds(), xdraw.Src, nil)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			top := img.RGBAAt(x, 2*y)
			bottom := img.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			s.SetContent(x, y, halfBlock, nil, style)
		}
	}
}
