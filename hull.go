package rotplot

import (
	"math"

	vec2d "github.com/flywave/go3d/float64/vec2"
)

// Convex is the convex hull of a projected point set. Axes3D uses it for
// the silhouette of the bounding box.
type Convex struct {
	vertices []vec2d.T
	hull     []vec2d.T
}

func NewConvex(vertices []vec2d.T) *Convex {
	c := Convex{vertices, nil}
	return &c
}

func (c *Convex) Rect() vec2d.Rect {
	r := vec2d.Rect{Min: vec2d.MaxVal, Max: vec2d.MinVal}
	hull := c.Hull()
	for i := range hull {
		r.Extend(&hull[i])
	}
	return r
}

func (c *Convex) Hull() []vec2d.T {
	if c.hull == nil && len(c.vertices) > 0 {
		minX, maxX := c.getExtremePoints()
		c.hull = append(c.quickHull(c.vertices, maxX, minX), c.quickHull(c.vertices, minX, maxX)...)
	}

	return c.hull
}

func (c *Convex) quickHull(points []vec2d.T, start, end vec2d.T) []vec2d.T {
	lhs, distances := c.getLhsPoints(points, start, end)
	if len(lhs) == 0 {
		return []vec2d.T{end}
	}

	farthestPoint := lhs[0]
	maxDistanceIndicator := -math.MaxFloat64
	for i, distanceIndicator := range distances {
		if maxDistanceIndicator < distanceIndicator {
			maxDistanceIndicator = distanceIndicator
			farthestPoint = lhs[i]
		}
	}

	return append(
		c.quickHull(lhs, farthestPoint, end),
		c.quickHull(lhs, start, farthestPoint)...)
}

func Subtract2(lhs vec2d.T, rhs vec2d.T) vec2d.T {
	return vec2d.T{lhs[0] - rhs[0], lhs[1] - rhs[1]}
}

func Cross(lhs, rhs vec2d.T) float64 {
	return (lhs[0] * rhs[1]) - (lhs[1] * rhs[0])
}

func (c *Convex) getExtremePoints() (minX, maxX vec2d.T) {
	minX = vec2d.T{math.MaxFloat64, 0}
	maxX = vec2d.T{-math.MaxFloat64, 0}

	for _, p := range c.vertices {
		if p[0] < minX[0] {
			minX = p
		}

		if maxX[0] < p[0] {
			maxX = p
		}
	}

	return minX, maxX
}

func (c *Convex) getLhsPoints(points []vec2d.T, start, end vec2d.T) ([]vec2d.T, []float64) {
	var lhs []vec2d.T
	var distances []float64

	for _, point := range points {
		distanceIndicator := Cross(Subtract2(end, start), Subtract2(point, start))
		if distanceIndicator > 0 {
			lhs = append(lhs, point)
			distances = append(distances, distanceIndicator)
		}
	}

	return lhs, distances
}
