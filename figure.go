package rotplot

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const tilePadding = 4

// SubplotSpec places an axes in a Rows×Cols grid. Index counts from 1,
// left to right then top to bottom.
type SubplotSpec struct {
	Rows  int
	Cols  int
	Index int
}

func (s SubplotSpec) cell() (col, row int) {
	i := s.Index - 1
	return i % s.Cols, i / s.Cols
}

func (s SubplotSpec) tiles() draw.Tiles {
	pad := vg.Points(tilePadding)
	return draw.Tiles{
		Rows:      s.Rows,
		Cols:      s.Cols,
		PadX:      pad,
		PadY:      pad,
		PadTop:    pad,
		PadBottom: pad,
		PadLeft:   pad,
		PadRight:  pad,
	}
}

// Figure is the drawing surface: a size in inches and the axes laid out
// on it.
type Figure struct {
	Width  float64
	Height float64

	axes []*Axes3D
}

func NewFigure(width, height float64) *Figure {
	return &Figure{Width: width, Height: height}
}

// Clear removes every axes from the figure.
func (f *Figure) Clear() {
	f.axes = nil
}

// AddAxes adds an axes spanning the whole figure.
func (f *Figure) AddAxes() *Axes3D {
	ax, _ := f.AddSubplot(1, 1, 1)
	return ax
}

func (f *Figure) AddSubplot(rows, cols, index int) (*Axes3D, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("rotplot: invalid subplot grid %d×%d", rows, cols)
	}
	if index < 1 || index > rows*cols {
		return nil, fmt.Errorf("rotplot: subplot index %d outside 1..%d", index, rows*cols)
	}
	ax := newAxes3D(SubplotSpec{Rows: rows, Cols: cols, Index: index})
	f.axes = append(f.axes, ax)
	return ax, nil
}

func (f *Figure) Axes() []*Axes3D {
	return f.axes
}

func (f *Figure) size() (w, h vg.Length) {
	return vg.Length(f.Width) * vg.Inch, vg.Length(f.Height) * vg.Inch
}

// Draw renders every axes of the figure onto dc.
func (f *Figure) Draw(dc draw.Canvas) {
	dc.SetColor(color.White)
	dc.Fill(dc.Rectangle.Path())

	for _, ax := range f.axes {
		col, row := ax.Spec.cell()
		ax.newPlot().Draw(ax.Spec.tiles().At(dc, col, row))
	}
}

// Render draws the figure into a canvas of the given format (png, svg,
// pdf, jpg, tif, eps).
func (f *Figure) Render(format string) (io.WriterTo, error) {
	w, h := f.size()
	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return nil, fmt.Errorf("rotplot: render: %w", err)
	}
	f.Draw(draw.New(c))
	return c, nil
}
