package rotplot

import (
	"errors"
	"fmt"
	"io"
	"log"
	"reflect"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"gonum.org/v1/gonum/mat"
)

var ErrNilRotation = errors.New("rotplot: nil rotation")

const worldAxisSamples = 100

var (
	axisColours       = [3]string{"r", "g", "b"}
	worldAxisLabels   = [3]string{"X world", "Y world", "Z world"}
	rotatedAxisLabels = [3]string{"x-rot", "y-rot", "z-rot"}
)

// RotationPlotter draws rotation matrices, and optionally vectors, against
// a dashed world frame in a PlotContext.
type RotationPlotter struct {
	ctx *PlotContext

	Origin            vec3d.T
	WorldAxesSize     float64
	RotatedAxesScale  mat.Matrix
	PlottingAxesRange float64

	palette        *Palette
	display        Displayer
	subplotDisplay bool
	logger         *log.Logger
}

type Option func(*RotationPlotter)

func WithOrigin(origin vec3d.T) Option {
	return func(p *RotationPlotter) {
		p.Origin = origin
	}
}

func WithWorldAxesSize(size float64) Option {
	return func(p *RotationPlotter) {
		p.WorldAxesSize = size
	}
}

// WithRotatedAxesScale sets the uniform length of the drawn rotated axes.
func WithRotatedAxesScale(scale float64) Option {
	return func(p *RotationPlotter) {
		p.RotatedAxesScale = ScaleMatrix(scale)
	}
}

// WithPlottingAxesRange sets the full extent of the visible region; the
// limits are origin ± range/2.
func WithPlottingAxesRange(r float64) Option {
	return func(p *RotationPlotter) {
		p.PlottingAxesRange = r
	}
}

// WithPalette replaces the default Tableau palette. A nil palette is
// ignored.
func WithPalette(palette *Palette) Option {
	return func(p *RotationPlotter) {
		if palette != nil {
			p.palette = palette
		}
	}
}

func WithDisplay(d Displayer) Option {
	return func(p *RotationPlotter) {
		p.display = d
	}
}

// WithSubplotDisplay makes PlotMultipleRotationMatrices show the figure
// after each subplot instead of once at the end.
func WithSubplotDisplay(each bool) Option {
	return func(p *RotationPlotter) {
		p.subplotDisplay = each
	}
}

func WithLogger(l *log.Logger) Option {
	return func(p *RotationPlotter) {
		p.logger = l
	}
}

func NewRotationPlotter(ctx *PlotContext, opts ...Option) *RotationPlotter {
	p := &RotationPlotter{
		ctx:               ctx,
		WorldAxesSize:     4,
		RotatedAxesScale:  ScaleMatrix(3),
		PlottingAxesRange: 6,
		palette:           NewPalette(),
		display:           Discard,
		logger:            log.New(io.Discard, "rotplot: ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *RotationPlotter) Context() *PlotContext {
	return p.ctx
}

func (p *RotationPlotter) Palette() *Palette {
	return p.palette
}

// PlotMultipleRotationMatrices clears the figure and draws each rotation
// in its own subplot of a 1×len(rotations) row, titled by its name.
func (p *RotationPlotter) PlotMultipleRotationMatrices(rotations NamedRotations) error {
	fig := p.ctx.Figure
	fig.Clear()
	if len(rotations) == 0 {
		return nil
	}
	p.logger.Printf("drawing %d rotations side by side", len(rotations))

	for i, r := range rotations {
		ax, err := fig.AddSubplot(1, len(rotations), i+1)
		if err != nil {
			return err
		}
		p.ctx.Axes = ax
		p.ctx.Title = r.Name

		if err := p.drawRotation(ax, r.Rotation); err != nil {
			return err
		}
		if p.subplotDisplay {
			if err := p.show(); err != nil {
				return err
			}
		}
	}

	if p.subplotDisplay {
		return nil
	}
	return p.show()
}

// PlotRotationMatrixAndVectorsInWorldFrame draws rotation like
// PlotRotationMatrixInWorldFrame and overlays each vector from the origin
// in the next palette colour before showing.
func (p *RotationPlotter) PlotRotationMatrixAndVectorsInWorldFrame(rotation mat.Matrix, vectors NamedVectors) error {
	ax := p.ctx.Axes
	if err := p.drawRotation(ax, rotation); err != nil {
		return err
	}
	for _, v := range vectors {
		if err := p.PlotVector(ax, p.Origin, v.Vector, p.SelectColour(), v.Name); err != nil {
			return err
		}
	}
	return p.show()
}

// PlotRotationMatrixInWorldFrame draws the world frame and the scaled
// rotated axes into the current axes, then shows the figure.
func (p *RotationPlotter) PlotRotationMatrixInWorldFrame(rotation mat.Matrix) error {
	if err := p.drawRotation(p.ctx.Axes, rotation); err != nil {
		return err
	}
	return p.show()
}

func (p *RotationPlotter) drawRotation(ax *Axes3D, rotation mat.Matrix) error {
	if err := checkRotation(rotation); err != nil {
		return err
	}
	if err := p.PlotWorldFrame(ax); err != nil {
		return err
	}
	return p.plotScaledAxes(ax, rotation)
}

// PlotScaledRotationMatrix draws the columns of rotation·scale as red,
// green and blue arrows from the origin.
func (p *RotationPlotter) PlotScaledRotationMatrix(ax *Axes3D, rotation mat.Matrix) error {
	if err := checkRotation(rotation); err != nil {
		return err
	}
	return p.plotScaledAxes(ax, rotation)
}

func (p *RotationPlotter) plotScaledAxes(ax *Axes3D, rotation mat.Matrix) error {
	axes := ScaledAxes(rotation, p.RotatedAxesScale)
	for i := range axes {
		if err := p.PlotVector(ax, p.Origin, axes[i], axisColours[i], rotatedAxisLabels[i]); err != nil {
			return err
		}
	}
	return nil
}

// PlotWorldFrame bounds ax around the origin and draws the dashed world
// axes with their labels and the context title.
func (p *RotationPlotter) PlotWorldFrame(ax *Axes3D) error {
	p.SetWorldFrameLimits(ax)

	for i := range axisColours {
		samples := linspace(p.Origin[i], p.WorldAxesSize, worldAxisSamples)
		points := make([]vec3d.T, len(samples))
		for j, s := range samples {
			points[j][i] = s
		}
		if err := ax.Line(points, axisColours[i], true); err != nil {
			return err
		}
	}

	ax.SetXLabel(worldAxisLabels[0])
	ax.SetYLabel(worldAxisLabels[1])
	ax.SetZLabel(worldAxisLabels[2])
	ax.SetTitle(p.ctx.Title)
	return nil
}

func (p *RotationPlotter) SetWorldFrameLimits(ax *Axes3D) {
	limits := HalfRangeLimits(p.Origin, p.PlottingAxesRange/2)
	ax.SetXLim(limits[0][0], limits[0][1])
	ax.SetYLim(limits[1][0], limits[1][1])
	ax.SetZLim(limits[2][0], limits[2][1])
}

// PlotVector draws an arrow from start along end. The legend is turned on
// when the context shows labels.
func (p *RotationPlotter) PlotVector(ax *Axes3D, start, end vec3d.T, colour, name string) error {
	if err := ax.Quiver(start, end, colour, name); err != nil {
		return err
	}
	if p.ctx.ShowLabels {
		ax.ShowLegend()
	}
	return nil
}

func (p *RotationPlotter) SelectColour() string {
	return p.palette.Select()
}

func (p *RotationPlotter) show() error {
	p.logger.Printf("showing figure with %d axes", len(p.ctx.Figure.Axes()))
	return p.display.Show(p.ctx.Figure)
}

// checkRotation rejects nil matrices, typed or not, and anything that is
// not 3×3.
func checkRotation(rotation mat.Matrix) error {
	if rotation == nil {
		return ErrNilRotation
	}
	if v := reflect.ValueOf(rotation); v.Kind() == reflect.Pointer && v.IsNil() {
		return ErrNilRotation
	}
	r, c, err := dims(rotation)
	if err != nil {
		return err
	}
	if r != 3 || c != 3 {
		return fmt.Errorf("rotplot: rotation is %d×%d: %w", r, c, mat.ErrShape)
	}
	return nil
}

// dims recovers from matrices whose Dims panics on a zero value.
func dims(m mat.Matrix) (r, c int, err error) {
	defer func() {
		if e := recover(); e != nil {
			err = fmt.Errorf("rotplot: rotation: %v: %w", e, ErrNilRotation)
		}
	}()
	r, c = m.Dims()
	return r, c, nil
}
