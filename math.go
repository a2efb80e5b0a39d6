package rotplot

import (
	vec3d "github.com/flywave/go3d/float64/vec3"
	"gonum.org/v1/gonum/spatial/r3"
)

func lerp(value1, value2, amount float64) float64 { return value1 + (value2-value1)*amount }

// linspace returns n evenly spaced samples over [start, stop].
func linspace(start, stop float64, n int) []float64 {
	ret := make([]float64, n)
	if n == 1 {
		ret[0] = start
		return ret
	}
	for i := range ret {
		ret[i] = lerp(start, stop, float64(i)/float64(n-1))
	}
	return ret
}

func fromR3(v r3.Vec) vec3d.T {
	return vec3d.T{v.X, v.Y, v.Z}
}
