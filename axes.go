package rotplot

import (
	"image/color"
	"math"

	vec2d "github.com/flywave/go3d/float64/vec2"
	vec3d "github.com/flywave/go3d/float64/vec3"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	paneColour = color.RGBA{R: 242, G: 242, B: 242, A: 255}
	edgeColour = color.RGBA{R: 176, G: 176, B: 176, A: 255}
)

const (
	lineWidth   = 1.5
	labelOffset = 1.35
	fitMargin   = 0.2
)

type Line3D struct {
	Points []vec3d.T
	Colour string
	Dashed bool

	color color.Color
}

func (l *Line3D) style() draw.LineStyle {
	sty := draw.LineStyle{Color: l.color, Width: vg.Points(lineWidth)}
	if l.Dashed {
		sty.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	}
	return sty
}

// Quiver is an arrow drawn from Start to Start+Direction.
type Quiver struct {
	Start     vec3d.T
	Direction vec3d.T
	Colour    string
	Label     string

	color color.Color
}

func (q *Quiver) Tip() vec3d.T {
	return vec3d.T{q.Start[0] + q.Direction[0], q.Start[1] + q.Direction[1], q.Start[2] + q.Direction[2]}
}

func (q *Quiver) style() draw.LineStyle {
	return draw.LineStyle{Color: q.color, Width: vg.Points(lineWidth)}
}

// Thumbnail implements plot.Thumbnailer so quivers can appear in a legend.
func (q *Quiver) Thumbnail(c *draw.Canvas) {
	y := c.Center().Y
	c.StrokeLine2(q.style(), c.Min.X, y, c.Max.X, y)
}

// Axes3D is one 3D drawing region of a Figure. It records what is drawn
// into it and renders through an orthographic View when the figure is
// rendered.
type Axes3D struct {
	Spec SubplotSpec
	View View

	title  string
	labels [3]string
	limits *Limits
	legend bool

	lines   []Line3D
	quivers []Quiver
}

func newAxes3D(spec SubplotSpec) *Axes3D {
	return &Axes3D{Spec: spec, View: DefaultView()}
}

func (ax *Axes3D) SetTitle(title string) { ax.title = title }

func (ax *Axes3D) Title() string { return ax.title }

func (ax *Axes3D) SetXLabel(label string) { ax.labels[0] = label }

func (ax *Axes3D) SetYLabel(label string) { ax.labels[1] = label }

func (ax *Axes3D) SetZLabel(label string) { ax.labels[2] = label }

// Labels returns the X, Y and Z axis labels.
func (ax *Axes3D) Labels() [3]string { return ax.labels }

func (ax *Axes3D) SetXLim(min, max float64) { ax.setLim(0, min, max) }

func (ax *Axes3D) SetYLim(min, max float64) { ax.setLim(1, min, max) }

func (ax *Axes3D) SetZLim(min, max float64) { ax.setLim(2, min, max) }

func (ax *Axes3D) setLim(i int, min, max float64) {
	if ax.limits == nil {
		l := ax.dataLimits()
		ax.limits = &l
	}
	ax.limits[i] = [2]float64{min, max}
}

// Limits returns the explicit limits, or limits fitted to the data when
// none were set.
func (ax *Axes3D) Limits() Limits {
	if ax.limits != nil {
		return *ax.limits
	}
	return ax.dataLimits()
}

func (ax *Axes3D) dataLimits() Limits {
	var points []vec3d.T
	for i := range ax.lines {
		points = append(points, ax.lines[i].Points...)
	}
	for i := range ax.quivers {
		points = append(points, ax.quivers[i].Start, ax.quivers[i].Tip())
	}
	return limitsOf(points)
}

// Line draws a polyline through points.
func (ax *Axes3D) Line(points []vec3d.T, colour string, dashed bool) error {
	c, err := ParseColour(colour)
	if err != nil {
		return err
	}
	ax.lines = append(ax.lines, Line3D{
		Points: append([]vec3d.T(nil), points...),
		Colour: colour,
		Dashed: dashed,
		color:  c,
	})
	return nil
}

// Quiver draws an arrow from start along direction.
func (ax *Axes3D) Quiver(start, direction vec3d.T, colour, label string) error {
	c, err := ParseColour(colour)
	if err != nil {
		return err
	}
	ax.quivers = append(ax.quivers, Quiver{
		Start:     start,
		Direction: direction,
		Colour:    colour,
		Label:     label,
		color:     c,
	})
	return nil
}

func (ax *Axes3D) Lines() []Line3D { return ax.lines }

func (ax *Axes3D) Quivers() []Quiver { return ax.quivers }

// ShowLegend makes the labelled quivers appear in a legend.
func (ax *Axes3D) ShowLegend() { ax.legend = true }

func (ax *Axes3D) LegendVisible() bool { return ax.legend }

// LegendEntries returns the labels the legend would list.
func (ax *Axes3D) LegendEntries() []string {
	if !ax.legend {
		return nil
	}
	var entries []string
	for i := range ax.quivers {
		if ax.quivers[i].Label != "" {
			entries = append(entries, ax.quivers[i].Label)
		}
	}
	return entries
}

func (ax *Axes3D) newPlot() *plot.Plot {
	p := plot.New()
	p.Title.Text = ax.title
	p.HideAxes()
	p.Add(axesPlotter{ax})

	if ax.legend {
		p.Legend.Top = true
		for i := range ax.quivers {
			q := &ax.quivers[i]
			if q.Label != "" {
				p.Legend.Add(q.Label, q)
			}
		}
	}
	return p
}

func (l Limits) normalise(p vec3d.T) r3.Vec {
	var n [3]float64
	for i := range n {
		span := l[i][1] - l[i][0]
		if span == 0 {
			continue
		}
		n[i] = (p[i]-l[i][0])/span - 0.5
	}
	return r3.Vec{X: n[0], Y: n[1], Z: n[2]}
}

func boxCorners() []r3.Vec {
	corners := make([]r3.Vec, 0, 8)
	for _, x := range []float64{-0.5, 0.5} {
		for _, y := range []float64{-0.5, 0.5} {
			for _, z := range []float64{-0.5, 0.5} {
				corners = append(corners, r3.Vec{X: x, Y: y, Z: z})
			}
		}
	}
	return corners
}

// boxEdges index boxCorners; corners differing in exactly one bit.
var boxEdges = [12][2]int{
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
}

// axesPlotter renders an Axes3D into the data area of a gonum plot.
type axesPlotter struct {
	ax *Axes3D
}

func (a axesPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	ax := a.ax
	limits := ax.Limits()

	corners := boxCorners()
	projected := make([]vec2d.T, len(corners))
	for i := range corners {
		projected[i] = ax.View.Project(corners[i])
	}
	pane := NewConvex(projected)
	toCanvas := fit(c, pane.Rect())

	hull := pane.Hull()
	outline := make([]vg.Point, len(hull))
	for i := range hull {
		outline[i] = toCanvas(hull[i])
	}
	c.FillPolygon(paneColour, outline)

	edgeStyle := draw.LineStyle{Color: edgeColour, Width: vg.Points(0.5)}
	for _, e := range boxEdges {
		c.StrokeLines(edgeStyle, []vg.Point{toCanvas(projected[e[0]]), toCanvas(projected[e[1]])})
	}

	sty := plt.X.Label.TextStyle
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YCenter
	for i, pos := range ax.labelPositions() {
		if ax.labels[i] == "" {
			continue
		}
		c.FillText(sty, toCanvas(ax.View.Project(pos)), ax.labels[i])
	}

	project := func(p vec3d.T) vg.Point {
		return toCanvas(ax.View.Project(limits.normalise(p)))
	}

	for i := range ax.lines {
		l := &ax.lines[i]
		pts := make([]vg.Point, len(l.Points))
		for j, p := range l.Points {
			pts[j] = project(p)
		}
		c.StrokeLines(l.style(), pts)
	}

	for i := range ax.quivers {
		q := &ax.quivers[i]
		tail, tip := project(q.Start), project(q.Tip())
		sty := q.style()
		c.StrokeLines(sty, []vg.Point{tail, tip})
		if tail == tip {
			continue
		}
		for _, barb := range arrowHead(vec2d.T{float64(tail.X), float64(tail.Y)}, vec2d.T{float64(tip.X), float64(tip.Y)}) {
			c.StrokeLines(sty, []vg.Point{
				{X: vg.Length(barb[0][0]), Y: vg.Length(barb[0][1])},
				{X: vg.Length(barb[1][0]), Y: vg.Length(barb[1][1])},
			})
		}
	}
}

// labelPositions places each axis label beyond the box edge nearest the
// camera, in normalised box coordinates.
func (ax *Axes3D) labelPositions() [3]r3.Vec {
	eye := ax.View.Eye()
	sx := math.Copysign(0.5, eye.X)
	sy := math.Copysign(0.5, eye.Y)
	return [3]r3.Vec{
		{X: 0, Y: sy * labelOffset, Z: -0.5},
		{X: sx * labelOffset, Y: 0, Z: -0.5},
		{X: -sx * labelOffset, Y: sy * labelOffset, Z: 0},
	}
}

// fit returns a transform from the projected plane onto c that keeps the
// aspect ratio and centres rect.
func fit(c draw.Canvas, rect vec2d.Rect) func(vec2d.T) vg.Point {
	dx := rect.Max[0] - rect.Min[0] + 2*fitMargin
	dy := rect.Max[1] - rect.Min[1] + 2*fitMargin
	w := float64(c.Max.X - c.Min.X)
	h := float64(c.Max.Y - c.Min.Y)
	scale := math.Min(w/dx, h/dy)

	center := c.Center()
	mx := (rect.Max[0] + rect.Min[0]) / 2
	my := (rect.Max[1] + rect.Min[1]) / 2
	return func(v vec2d.T) vg.Point {
		return vg.Point{
			X: center.X + vg.Length((v[0]-mx)*scale),
			Y: center.Y + vg.Length((v[1]-my)*scale),
		}
	}
}
