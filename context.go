package rotplot

// PlotContext is the drawing surface and display settings shared by the
// draw calls of a RotationPlotter.
type PlotContext struct {
	Figure     *Figure
	Axes       *Axes3D
	Size       [2]float64
	ShowLabels bool
	Title      string
}

type ContextOption func(*PlotContext)

// WithSize sets the figure size in inches.
func WithSize(width, height float64) ContextOption {
	return func(c *PlotContext) {
		c.Size = [2]float64{width, height}
	}
}

func WithShowLabels(show bool) ContextOption {
	return func(c *PlotContext) {
		c.ShowLabels = show
	}
}

func WithTitle(title string) ContextOption {
	return func(c *PlotContext) {
		c.Title = title
	}
}

// NewPlotContext allocates a 9×4 inch figure with one 3D axes spanning
// it, labels hidden and a blank title, unless overridden by opts.
func NewPlotContext(opts ...ContextOption) *PlotContext {
	c := &PlotContext{
		Size:  [2]float64{9, 4},
		Title: " ",
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Figure = NewFigure(c.Size[0], c.Size[1])
	c.Axes = c.Figure.AddAxes()
	return c
}
