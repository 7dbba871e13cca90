package lights

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// EmissiveSphere is a glowing sphere. It is both a shape the camera can see
// and a light that illuminates other surfaces.
type EmissiveSphere struct {
	Sphere   *geometry.Sphere
	Radiance core.Vec3
}

// NewEmissiveSphere creates an emissive sphere
func NewEmissiveSphere(center core.Vec3, radius float64, radiance core.Vec3) *EmissiveSphere {
	return &EmissiveSphere{
		Sphere:   geometry.NewSphere(center, radius, material.Material{}),
		Radiance: radiance,
	}
}

// Hit reports the sphere as a light. Opaque-only queries never see it.
func (es *EmissiveSphere) Hit(ray core.Ray, backfaceCulling, opaqueOnly bool) (material.HitRecord, bool) {
	if opaqueOnly {
		return material.HitRecord{}, false
	}
	hit, ok := es.Sphere.Hit(ray, backfaceCulling, false)
	if !ok {
		return material.HitRecord{}, false
	}
	hit.IsLight = true
	hit.LightColor = es.Radiance
	return hit, true
}

// BoundingBox returns the sphere's box
func (es *EmissiveSphere) BoundingBox() core.AABB {
	return es.Sphere.BoundingBox()
}

// Area returns the sphere's surface area
func (es *EmissiveSphere) Area() float64 {
	return es.Sphere.Area()
}

// SamplePoint returns a uniform point on the sphere
func (es *EmissiveSphere) SamplePoint(sampler core.Sampler) core.Vec3 {
	return es.Sphere.SamplePoint(sampler)
}

// IncidentLight samples a direction inside the cone the sphere subtends,
// finds the surface point along it and treats that point as a point light.
// The intensity is divided by the cone's uniform pdf, 1/(2π(1-cosθmax)).
// Points inside the sphere are reported as shadowed. The sphere is placed
// where it sits at the shading ray's time; under a non-uniform scale the cone
// uses the radius along local X.
func (es *EmissiveSphere) IncidentLight(scene Scene, hit material.HitRecord, sampler core.Sampler) material.IncidentLight {
	center := es.Sphere.WorldPoint(es.Sphere.Center, hit.Time)
	radius := es.Sphere.WorldPoint(es.Sphere.Center.Add(core.NewVec3(es.Sphere.Radius, 0, 0)), hit.Time).Subtract(center).Length()

	toCenter := center.Subtract(hit.Point)
	distance := toCenter.Length()
	if distance <= radius {
		return material.IncidentLight{InShadow: true}
	}

	sinThetaMax := radius / distance
	cosThetaMax := math.Sqrt(math.Max(0, 1-sinThetaMax*sinThetaMax))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	if solidAngle <= 0 {
		return material.IncidentLight{InShadow: true}
	}

	direction := core.SampleCone(toCenter.Normalize(), cosThetaMax, sampler.Get2D())
	surface, ok := es.Sphere.Hit(core.NewRayAt(hit.Point, direction, hit.Time), false, false)
	if !ok {
		// Grazing sample lost to rounding
		return material.IncidentLight{InShadow: true}
	}

	incident := incidentFromPoint(scene, hit, surface.Point, es.Radiance)
	incident.Intensity = incident.Intensity.Multiply(solidAngle)
	return incident
}
