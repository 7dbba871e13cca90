package lights

import (
	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// Scene is the occlusion query lights cast shadow rays against
type Scene interface {
	// Hit returns the nearest hit. With opaqueOnly, emissive surfaces are
	// skipped so they never shadow their own light.
	Hit(ray core.Ray, backfaceCulling, opaqueOnly bool) (material.HitRecord, bool)

	// ShadowRayEpsilon is the distance shadow rays are pushed off the surface
	ShadowRayEpsilon() float64
}

// Light answers how much light arrives at a shading point and from where.
// Implementations are read-only during rendering; any randomness comes from
// the caller's sampler.
type Light interface {
	IncidentLight(scene Scene, hit material.HitRecord, sampler core.Sampler) material.IncidentLight
}
