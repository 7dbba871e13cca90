package lights

import (
	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// PointLight emits equally in every direction from a single position
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// IncidentLight returns the inverse-square intensity unless an opaque
// occluder sits between the hit and the light
func (pl *PointLight) IncidentLight(scene Scene, hit material.HitRecord, sampler core.Sampler) material.IncidentLight {
	return incidentFromPoint(scene, hit, pl.Position, pl.Intensity)
}

// occluded reports whether an opaque surface lies between the hit point and
// target along a shadow ray created at the hit's time
func occluded(scene Scene, hit material.HitRecord, target core.Vec3) bool {
	shadowRay := core.NewRayAt(hit.Point, target.Subtract(hit.Point), hit.Time).Offset(scene.ShadowRayEpsilon())
	occluder, ok := scene.Hit(shadowRay, true, true)
	if !ok {
		return false
	}
	return shadowRay.TValue(target) > occluder.T
}

// incidentFromPoint is the shared point-light logic. Area and emissive
// lights reuse it with a proxy position and intensity.
func incidentFromPoint(scene Scene, hit material.HitRecord, position, intensity core.Vec3) material.IncidentLight {
	if occluded(scene, hit, position) {
		return material.IncidentLight{InShadow: true}
	}

	toLight := position.Subtract(hit.Point)
	return material.IncidentLight{
		Intensity: intensity.Divide(toLight.LengthSquared()),
		Direction: toLight.Normalize(),
	}
}
