package rotplot

import (
	"bytes"
	"testing"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlotContext(t *testing.T) {
	a := assert.New(t)

	ctx := NewPlotContext()
	a.Equal([2]float64{9, 4}, ctx.Size)
	a.False(ctx.ShowLabels)
	a.Equal(" ", ctx.Title)
	a.Equal(9.0, ctx.Figure.Width)
	a.Equal(4.0, ctx.Figure.Height)

	require.Len(t, ctx.Figure.Axes(), 1)
	a.Same(ctx.Figure.Axes()[0], ctx.Axes)
	a.Equal(SubplotSpec{Rows: 1, Cols: 1, Index: 1}, ctx.Axes.Spec)
}

func TestAddSubplot(t *testing.T) {
	a := assert.New(t)

	f := NewFigure(6, 3)
	_, err := f.AddSubplot(1, 2, 3)
	a.Error(err)
	_, err = f.AddSubplot(0, 2, 1)
	a.Error(err)

	ax, err := f.AddSubplot(2, 3, 5)
	require.NoError(t, err)
	col, row := ax.Spec.cell()
	a.Equal(1, col)
	a.Equal(1, row)

	f.Clear()
	a.Empty(f.Axes())
}

func TestAxesAutoscale(t *testing.T) {
	a := assert.New(t)

	ax := NewFigure(4, 4).AddAxes()
	a.Equal(Limits{{0, 1}, {0, 1}, {0, 1}}, ax.Limits())

	require.NoError(t, ax.Quiver(vec3d.T{1, 1, 1}, vec3d.T{1, -2, 0}, "m", "v"))
	a.Equal(Limits{{1, 2}, {-1, 1}, {0.5, 1.5}}, ax.Limits())

	ax.SetZLim(-10, 10)
	a.Equal(Limits{{1, 2}, {-1, 1}, {-10, 10}}, ax.Limits())
}

func TestRenderFigure(t *testing.T) {
	a := assert.New(t)

	ctx := NewPlotContext(WithShowLabels(true), WithTitle("Rz(30°)"))
	p := NewRotationPlotter(ctx)
	require.NoError(t, p.PlotRotationMatrixAndVectorsInWorldFrame(Rz(30, true), NamedVectors{
		{Name: "v", Vector: vec3d.T{1, 2, 3}},
	}))

	png, err := ctx.Figure.Render("png")
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = png.WriteTo(&buf)
	require.NoError(t, err)
	a.True(bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	var svg bytes.Buffer
	require.NoError(t, NewWriterDisplay(&svg, "svg").Show(ctx.Figure))
	a.Contains(svg.String(), "X world")
	a.Contains(svg.String(), "x-rot")

	_, err = ctx.Figure.Render("bmp-ish")
	a.Error(err)
}

func TestRenderSubplots(t *testing.T) {
	ctx := NewPlotContext()
	var buf bytes.Buffer
	p := NewRotationPlotter(ctx, WithDisplay(NewWriterDisplay(&buf, "png")))

	require.NoError(t, p.PlotMultipleRotationMatrices(NamedRotations{
		{"Rx", Rx(45, true)},
		{"Ry", Ry(45, true)},
		{"Rz", Rz(45, true)},
	}))
	assert.NotZero(t, buf.Len())
}
