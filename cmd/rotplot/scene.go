package main

import (
	"fmt"
	"io"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/flywave/go-rotplot"
)

// Scene describes what to draw, as read from a YAML file.
type Scene struct {
	Size       []float64       `yaml:"size"`
	ShowLabels bool            `yaml:"show_labels"`
	Title      string          `yaml:"title"`
	Rotations  []SceneRotation `yaml:"rotations"`
	Vectors    []SceneVector   `yaml:"vectors"`
}

// SceneRotation is the product of its steps, taken left to right.
type SceneRotation struct {
	Name  string         `yaml:"name"`
	Steps []RotationStep `yaml:"steps"`
}

type RotationStep struct {
	Axis    string  `yaml:"axis"`
	Angle   float64 `yaml:"angle"`
	Degrees bool    `yaml:"degrees"`
}

type SceneVector struct {
	Name  string     `yaml:"name"`
	Value [3]float64 `yaml:"value"`
}

func LoadScene(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(s.Size) != 0 && len(s.Size) != 2 {
		return nil, fmt.Errorf("size: want [width, height], got %v", s.Size)
	}
	if len(s.Rotations) == 0 {
		return nil, fmt.Errorf("scene has no rotations")
	}
	return &s, nil
}

func (s *Scene) ContextOptions() []rotplot.ContextOption {
	opts := []rotplot.ContextOption{rotplot.WithShowLabels(s.ShowLabels)}
	if len(s.Size) == 2 {
		opts = append(opts, rotplot.WithSize(s.Size[0], s.Size[1]))
	}
	if s.Title != "" {
		opts = append(opts, rotplot.WithTitle(s.Title))
	}
	return opts
}

func (s *Scene) NamedRotations() (rotplot.NamedRotations, error) {
	rotations := make(rotplot.NamedRotations, 0, len(s.Rotations))
	for _, sr := range s.Rotations {
		m, err := sr.Matrix()
		if err != nil {
			return nil, fmt.Errorf("rotation %q: %w", sr.Name, err)
		}
		rotations = append(rotations, rotplot.NamedRotation{Name: sr.Name, Rotation: m})
	}
	return rotations, nil
}

func (s *Scene) NamedVectors() rotplot.NamedVectors {
	vectors := make(rotplot.NamedVectors, 0, len(s.Vectors))
	for _, v := range s.Vectors {
		vectors = append(vectors, rotplot.NamedVector{Name: v.Name, Vector: vec3d.T(v.Value)})
	}
	return vectors
}

func (sr SceneRotation) Matrix() (*r3.Mat, error) {
	m := r3.Eye()
	for _, step := range sr.Steps {
		var r *r3.Mat
		switch step.Axis {
		case "x", "X":
			r = rotplot.Rx(step.Angle, step.Degrees)
		case "y", "Y":
			r = rotplot.Ry(step.Angle, step.Degrees)
		case "z", "Z":
			r = rotplot.Rz(step.Angle, step.Degrees)
		default:
			return nil, fmt.Errorf("unknown axis %q", step.Axis)
		}
		var next r3.Mat
		next.Mul(m, r)
		m = &next
	}
	return m, nil
}
