package rotplot

import (
	"math"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

func DegToRad(angle float64) float64 {
	return angle * math.Pi / 180
}

func RadToDeg(angle float64) float64 {
	return angle * 180 / math.Pi
}

// Rx returns the right-handed rotation by angle about the X axis. It
// turns Y toward Z.
func Rx(angle float64, degrees bool) *r3.Mat {
	c, s := sinCos(angle, degrees)
	return r3.NewMat([]float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

// Ry returns the right-handed rotation by angle about the Y axis. It
// turns Z toward X.
func Ry(angle float64, degrees bool) *r3.Mat {
	c, s := sinCos(angle, degrees)
	return r3.NewMat([]float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

// Rz returns the right-handed rotation by angle about the Z axis. It
// turns X toward Y.
func Rz(angle float64, degrees bool) *r3.Mat {
	c, s := sinCos(angle, degrees)
	return r3.NewMat([]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

func sinCos(angle float64, degrees bool) (c, s float64) {
	if degrees {
		angle = DegToRad(angle)
	}
	s, c = math.Sincos(angle)
	return c, s
}

func ScaleMatrix(scale float64) *mat.DiagDense {
	return mat.NewDiagDense(3, []float64{scale, scale, scale})
}

// ScaledAxes returns the columns of rotation·scale, i.e. the rotated
// basis vectors after scaling.
func ScaledAxes(rotation, scale mat.Matrix) [3]vec3d.T {
	var m r3.Mat
	m.Mul(rotation, scale)

	var axes [3]vec3d.T
	for j := range axes {
		axes[j] = fromR3(m.VecCol(j))
	}
	return axes
}
