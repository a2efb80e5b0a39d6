package rotplot

import (
	"errors"

	vec3d "github.com/flywave/go3d/float64/vec3"
)

var errNoPoint = errors.New("no point")

func minMaxVec3(ra []vec3d.T) (vec3d.T, vec3d.T, error) {
	if len(ra) == 0 {
		return vec3d.T{}, vec3d.T{}, errNoPoint
	}
	min, max := ra[0], ra[0]
	for i := 1; i < len(ra); i++ {
		v := ra[i]
		for i := range v {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	return min, max, nil
}

// Limits are the [min, max] data bounds along X, Y and Z.
type Limits [3][2]float64

// HalfRangeLimits returns center ± halfRange on every dimension.
func HalfRangeLimits(center vec3d.T, halfRange float64) Limits {
	var l Limits
	for i := range l {
		l[i] = [2]float64{center[i] - halfRange, center[i] + halfRange}
	}
	return l
}

func limitsOf(points []vec3d.T) Limits {
	min, max, err := minMaxVec3(points)
	if err != nil {
		return Limits{{0, 1}, {0, 1}, {0, 1}}
	}
	var l Limits
	for i := range l {
		l[i] = [2]float64{min[i], max[i]}
		if min[i] == max[i] {
			l[i] = [2]float64{min[i] - 0.5, max[i] + 0.5}
		}
	}
	return l
}
