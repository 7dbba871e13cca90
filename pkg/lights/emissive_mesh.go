package lights

import (
	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// EmissiveMesh makes an instanced mesh glow. The mesh subtree stays owned by
// its arena; the light only holds the instance.
type EmissiveMesh struct {
	Instance *geometry.Instance
	Radiance core.Vec3
}

// NewEmissiveMesh creates an emissive mesh around an arena instance
func NewEmissiveMesh(instance *geometry.Instance, radiance core.Vec3) *EmissiveMesh {
	return &EmissiveMesh{Instance: instance, Radiance: radiance}
}

// Hit reports the mesh as a light, from both sides. Opaque-only queries
// never see it.
func (em *EmissiveMesh) Hit(ray core.Ray, backfaceCulling, opaqueOnly bool) (material.HitRecord, bool) {
	if opaqueOnly || em.Instance == nil {
		return material.HitRecord{}, false
	}
	hit, ok := em.Instance.Hit(ray, false, false)
	if !ok {
		return material.HitRecord{}, false
	}
	hit.IsLight = true
	hit.LightColor = em.Radiance
	return hit, true
}

// BoundingBox returns the placed mesh's box
func (em *EmissiveMesh) BoundingBox() core.AABB {
	return em.Instance.BoundingBox()
}

// Area returns the mesh's surface area
func (em *EmissiveMesh) Area() float64 {
	return em.Instance.Area()
}

// SamplePoint returns an area-weighted point on the mesh
func (em *EmissiveMesh) SamplePoint(sampler core.Sampler) core.Vec3 {
	return em.Instance.SamplePoint(sampler)
}

// IncidentLight treats an area-weighted surface point, placed at the shading
// ray's time, as a point light
func (em *EmissiveMesh) IncidentLight(scene Scene, hit material.HitRecord, sampler core.Sampler) material.IncidentLight {
	return incidentFromPoint(scene, hit, em.Instance.SamplePointAt(sampler, hit.Time), em.Radiance)
}
