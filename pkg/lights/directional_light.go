package lights

import (
	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// DirectionalLight is a light at infinity with constant radiance
type DirectionalLight struct {
	Direction core.Vec3 // Unit direction the light travels in
	Radiance  core.Vec3
}

// NewDirectionalLight creates a directional light travelling along direction
func NewDirectionalLight(direction, radiance core.Vec3) *DirectionalLight {
	return &DirectionalLight{Direction: direction.Normalize(), Radiance: radiance}
}

// IncidentLight casts a shadow ray against the light direction; any opaque
// hit shadows the point
func (dl *DirectionalLight) IncidentLight(scene Scene, hit material.HitRecord, sampler core.Sampler) material.IncidentLight {
	toLight := dl.Direction.Negate()
	shadowRay := core.NewRayAt(hit.Point, toLight, hit.Time).Offset(scene.ShadowRayEpsilon())
	if _, ok := scene.Hit(shadowRay, true, true); ok {
		return material.IncidentLight{InShadow: true}
	}

	return material.IncidentLight{
		Intensity: dl.Radiance,
		Direction: toLight,
	}
}
