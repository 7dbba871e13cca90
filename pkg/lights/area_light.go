package lights

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// AreaLight is a parallelogram light spanned by two edges from a corner. It
// emits from both sides.
type AreaLight struct {
	Position  core.Vec3
	Edges     [2]core.Vec3
	Intensity core.Vec3

	normal core.Vec3
}

// NewAreaLight creates a new parallelogram light
func NewAreaLight(position, edge0, edge1, intensity core.Vec3) *AreaLight {
	return &AreaLight{
		Position:  position,
		Edges:     [2]core.Vec3{edge0, edge1},
		Intensity: intensity,
		normal:    edge0.Cross(edge1).Normalize(),
	}
}

// Normal returns the unit normal of the light's plane
func (al *AreaLight) Normal() core.Vec3 {
	return al.normal
}

// SamplePoint returns a uniform point inside the parallelogram
func (al *AreaLight) SamplePoint(sample core.Vec2) core.Vec3 {
	return al.Position.
		Add(al.Edges[0].Multiply(sample.X)).
		Add(al.Edges[1].Multiply(sample.Y))
}

// IncidentLight draws one point on the light, attenuates by the angle to the
// plane's normal and treats the point as a point light
func (al *AreaLight) IncidentLight(scene Scene, hit material.HitRecord, sampler core.Sampler) material.IncidentLight {
	p := al.SamplePoint(sampler.Get2D())
	cos := math.Abs(hit.Point.Subtract(p).Normalize().Dot(al.normal))
	return incidentFromPoint(scene, hit, p, al.Intensity.Multiply(cos))
}
