package rotplot

import (
	"math"

	vec2d "github.com/flywave/go3d/float64/vec2"
	"gonum.org/v1/gonum/spatial/r3"
)

// View is the camera orientation of an Axes3D, in degrees.
type View struct {
	Elevation float64
	Azimuth   float64
}

func DefaultView() View {
	return View{Elevation: 30, Azimuth: -60}
}

// basis returns the screen right and up directions in world space. The
// camera looks at the origin from (cos e cos a, cos e sin a, sin e).
func (v View) basis() (right, up r3.Vec) {
	a := DegToRad(v.Azimuth)
	e := DegToRad(v.Elevation)
	sa, ca := math.Sincos(a)
	se, ce := math.Sincos(e)

	right = r3.Vec{X: -sa, Y: ca}
	up = r3.Vec{X: -se * ca, Y: -se * sa, Z: ce}
	return right, up
}

// Eye is the unit vector pointing from the scene toward the camera.
func (v View) Eye() r3.Vec {
	a := DegToRad(v.Azimuth)
	e := DegToRad(v.Elevation)
	sa, ca := math.Sincos(a)
	se, ce := math.Sincos(e)
	return r3.Vec{X: ce * ca, Y: ce * sa, Z: se}
}

// Project maps a point in normalised box coordinates to the screen plane.
func (v View) Project(p r3.Vec) vec2d.T {
	right, up := v.basis()
	return vec2d.T{r3.Dot(p, right), r3.Dot(p, up)}
}
