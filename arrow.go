package rotplot

import (
	"math"

	mat2d "github.com/flywave/go3d/float64/mat2"
	vec2d "github.com/flywave/go3d/float64/vec2"
)

const (
	arrowLengthRatio = 0.3
	arrowHeadDegrees = 20
)

type Rotator struct {
	Degrees float64
}

func (r Rotator) RotateVector(v vec2d.T) vec2d.T {
	v2 := v
	mat := r.RotationMatrix()
	mat.TransformVec2(&v2)
	return v2
}

func (r Rotator) RotationMatrix() (m mat2d.T) {
	rad := DegToRad(r.Degrees)

	c := math.Cos(rad)
	s := math.Sin(rad)

	m[0][0] = c
	m[0][1] = -s
	m[1][0] = s
	m[1][1] = c

	return m
}

// arrowHead returns the two barbs of an arrow from tail to tip, each as
// a segment ending at the tip.
func arrowHead(tail, tip vec2d.T) [2][2]vec2d.T {
	back := Subtract2(tail, tip)
	back = vec2d.T{back[0] * arrowLengthRatio, back[1] * arrowLengthRatio}

	left := Rotator{arrowHeadDegrees}.RotateVector(back)
	right := Rotator{-arrowHeadDegrees}.RotateVector(back)

	return [2][2]vec2d.T{
		{{tip[0] + left[0], tip[1] + left[1]}, tip},
		{{tip[0] + right[0], tip[1] + right[1]}, tip},
	}
}
