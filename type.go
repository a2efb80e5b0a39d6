package rotplot

import (
	vec3d "github.com/flywave/go3d/float64/vec3"
	"gonum.org/v1/gonum/mat"
)

type NamedRotation struct {
	Name     string
	Rotation mat.Matrix
}

// NamedRotations keeps insertion order, which decides subplot position.
type NamedRotations []NamedRotation

func (t NamedRotations) Len() int {
	return len(t)
}

func (t NamedRotations) Names() []string {
	names := make([]string, len(t))
	for i := range t {
		names[i] = t[i].Name
	}
	return names
}

type NamedVector struct {
	Name   string
	Vector vec3d.T
}

// NamedVectors keeps insertion order, which decides colour assignment.
type NamedVectors []NamedVector

func (t NamedVectors) Len() int {
	return len(t)
}
