package rotplot

import (
	"math"
	"testing"

	vec2d "github.com/flywave/go3d/float64/vec2"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewConvex(t *testing.T) {
	a := assert.New(t)

	vertices := []vec2d.T{{0, 0}, {100, 0}, {100, -10}, {150, 100}, {100, 200}, {0, 210}, {-50, 100}, {30, 30}, {75, 30}}
	hull := []vec2d.T{{-50, 100}, {0, 0}, {100, -10}, {150, 100}, {100, 200}, {0, 210}}

	c := NewConvex(vertices)

	a.Equal(hull, c.Hull())
}

func TestConvexRect(t *testing.T) {
	a := assert.New(t)

	c := NewConvex([]vec2d.T{{-1, 2}, {3, -4}, {0, 0}, {2, 5}})
	r := c.Rect()

	a.Equal(vec2d.T{-1, -4}, r.Min)
	a.Equal(vec2d.T{3, 5}, r.Max)
}

func TestProjectedBoxIsHexagon(t *testing.T) {
	a := assert.New(t)

	view := DefaultView()
	var projected []vec2d.T
	for _, corner := range boxCorners() {
		projected = append(projected, view.Project(corner))
	}

	c := NewConvex(projected)
	a.Len(c.Hull(), 6)
	r := c.Rect()
	a.InDelta(0, r.Min[0]+r.Max[0], 1e-9)
	a.InDelta(0, r.Min[1]+r.Max[1], 1e-9)
	a.Equal(vec2d.T{0, 0}, view.Project(r3.Vec{}))
}

func TestArrowHead(t *testing.T) {
	a := assert.New(t)

	barbs := arrowHead(vec2d.T{0, 0}, vec2d.T{10, 0})
	for _, barb := range barbs {
		a.Equal(vec2d.T{10, 0}, barb[1])
		a.InDelta(10-3*0.9396926207859084, barb[0][0], 1e-9)
	}
	a.InDelta(-barbs[0][0][1], barbs[1][0][1], 1e-9)
	a.InDelta(3*0.3420201433256687, math.Abs(barbs[0][0][1]), 1e-9)
}
