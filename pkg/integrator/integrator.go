package integrator

import (
	"github.com/df07/whitted-raytracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the radiance carried back along ray. depth bounds the
	// number of further recursive bounces; backfaceCulling is forwarded to
	// the scene query.
	RayColor(ray core.Ray, depth int, backfaceCulling bool, sampler core.Sampler) core.Vec3
}
