package geometry

import (
	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// Shape is anything that can be bounded, intersected and sampled
type Shape interface {
	// Hit returns the nearest intersection with t > 0. With opaqueOnly set,
	// emissive surfaces refuse to report hits.
	Hit(ray core.Ray, backfaceCulling, opaqueOnly bool) (material.HitRecord, bool)
	BoundingBox() core.AABB
	// Area is the sampling weight used to pick among subtrees
	Area() float64
	// SamplePoint returns a point uniformly distributed over the surface
	SamplePoint(sampler core.Sampler) core.Vec3
}
