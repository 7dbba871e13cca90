package scene

import (
	"fmt"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/df07/whitted-raytracer/pkg/lights"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering. It is read-only
// once built and shared by every render worker.
type Scene struct {
	Root     geometry.Shape // BVH over all shapes; nil for an empty scene
	Shapes   []geometry.Shape
	Lights   []lights.Light
	Cameras  []*Camera
	Settings Settings
}

// New validates the inputs and builds the BVH. Emissive lights that are
// also shapes must appear in both lists.
func New(shapes []geometry.Shape, sceneLights []lights.Light, cameras []*Camera, settings Settings) (*Scene, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	for i, s := range shapes {
		if s == nil {
			return nil, fmt.Errorf("shape %d is nil", i)
		}
	}
	for i, l := range sceneLights {
		if l == nil {
			return nil, fmt.Errorf("light %d is nil", i)
		}
	}
	for i, c := range cameras {
		if c == nil {
			return nil, fmt.Errorf("camera %d is nil", i)
		}
	}

	builder := geometry.BVHBuilder{Policy: settings.SplitPolicy}
	return &Scene{
		Root:     builder.Build(shapes),
		Shapes:   shapes,
		Lights:   sceneLights,
		Cameras:  cameras,
		Settings: settings,
	}, nil
}

// WithSettings returns a copy of the scene using settings, with the BVH
// rebuilt for its split policy
func (s *Scene) WithSettings(settings Settings) (*Scene, error) {
	return New(s.Shapes, s.Lights, s.Cameras, settings)
}

// Hit traces a ray against the BVH
func (s *Scene) Hit(ray core.Ray, backfaceCulling, opaqueOnly bool) (material.HitRecord, bool) {
	if s.Root == nil {
		return material.HitRecord{}, false
	}
	return s.Root.Hit(ray, backfaceCulling, opaqueOnly)
}

// ShadowRayEpsilon returns the offset applied to secondary ray origins
func (s *Scene) ShadowRayEpsilon() float64 {
	return s.Settings.ShadowRayEpsilon
}

// PrimitiveCount returns the number of top-level shapes in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.Shapes)
}

// BVHStats returns the node count and depth of the scene BVH
func (s *Scene) BVHStats() (nodes, depth int) {
	return geometry.Stats(s.Root)
}
