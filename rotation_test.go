package rotplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

const tolerance = 1e-12

var builders = map[string]func(float64, bool) *r3.Mat{
	"Rx": Rx,
	"Ry": Ry,
	"Rz": Rz,
}

var angles = []float64{0, 0.1, -0.7, math.Pi / 6, math.Pi / 2, math.Pi, 2.5, -3 * math.Pi, 1e3}

func TestRotationIsOrthonormal(t *testing.T) {
	a := assert.New(t)

	for name, build := range builders {
		for _, angle := range angles {
			m := build(angle, false)

			var mmt mat.Dense
			mmt.Mul(m, m.T())
			a.Truef(mat.EqualApprox(&mmt, r3.Eye(), 1e-9), "%s(%v)·%s(%v)ᵀ is not I", name, angle, name, angle)
			a.InDeltaf(1, m.Det(), 1e-9, "det %s(%v)", name, angle)
		}
	}
}

func TestRotationDegrees(t *testing.T) {
	a := assert.New(t)

	for name, build := range builders {
		for _, deg := range []float64{0, 30, 45, 90, -120, 180, 725} {
			a.Truef(mat.EqualApprox(build(deg, true), build(DegToRad(deg), false), tolerance), "%s(%v°)", name, deg)
		}
	}
}

func TestRzIdentityAndHalfTurn(t *testing.T) {
	a := assert.New(t)

	a.True(mat.Equal(Rz(0, false), r3.Eye()))

	v := Rz(math.Pi, false).MulVec(r3.Vec{X: 1})
	a.InDelta(-1, v.X, tolerance)
	a.InDelta(0, v.Y, tolerance)
	a.InDelta(0, v.Z, tolerance)
}

func TestRotationDirection(t *testing.T) {
	a := assert.New(t)

	y := Rx(math.Pi/2, false).MulVec(r3.Vec{Y: 1})
	a.InDelta(1, y.Z, tolerance)

	z := Ry(math.Pi/2, false).MulVec(r3.Vec{Z: 1})
	a.InDelta(1, z.X, tolerance)

	x := Rz(math.Pi/2, false).MulVec(r3.Vec{X: 1})
	a.InDelta(1, x.Y, tolerance)
}

func TestRotationCompositionIsNotCommutative(t *testing.T) {
	var xy, yx r3.Mat
	xy.Mul(Rx(math.Pi/2, false), Ry(math.Pi/2, false))
	yx.Mul(Ry(math.Pi/2, false), Rx(math.Pi/2, false))

	assert.False(t, mat.EqualApprox(&xy, &yx, 1e-6))
}

func TestScaledAxes(t *testing.T) {
	a := assert.New(t)

	axes := ScaledAxes(Rz(90, true), ScaleMatrix(3))

	a.InDelta(0, axes[0][0], tolerance)
	a.InDelta(3, axes[0][1], tolerance)
	a.InDelta(-3, axes[1][0], tolerance)
	a.InDelta(0, axes[1][1], tolerance)
	a.InDelta(3, axes[2][2], tolerance)
}

func TestDegRad(t *testing.T) {
	a := assert.New(t)

	a.InDelta(math.Pi, DegToRad(180), tolerance)
	a.InDelta(90, RadToDeg(math.Pi/2), tolerance)
}
