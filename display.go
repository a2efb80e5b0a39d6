package rotplot

import (
	"fmt"
	"io"
)

// Displayer surfaces a rendered figure. Show blocks until the figure has
// been shown.
type Displayer interface {
	Show(f *Figure) error
}

type discard struct{}

func (discard) Show(*Figure) error { return nil }

// Discard is the batch displayer: showing is a no-op flush.
var Discard Displayer = discard{}

// WriterDisplay renders the whole figure to w on every Show.
type WriterDisplay struct {
	w      io.Writer
	format string
}

func NewWriterDisplay(w io.Writer, format string) *WriterDisplay {
	return &WriterDisplay{w: w, format: format}
}

func (d *WriterDisplay) Show(f *Figure) error {
	c, err := f.Render(d.format)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(d.w); err != nil {
		return fmt.Errorf("rotplot: show: %w", err)
	}
	return nil
}

// DisplayFunc adapts a function to a Displayer.
type DisplayFunc func(f *Figure) error

func (fn DisplayFunc) Show(f *Figure) error { return fn(f) }
