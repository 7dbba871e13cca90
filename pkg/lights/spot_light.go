package lights

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// SpotLight is a point light restricted to a cone with a soft edge
type SpotLight struct {
	Position  core.Vec3
	Direction core.Vec3
	Intensity core.Vec3

	cosCoverage float64 // cos of half the coverage angle
	cosFalloff  float64 // cos of half the falloff angle
}

// NewSpotLight creates a spot light. coverageDegrees is the full angle of the
// lit cone and falloffDegrees the full angle of the fully lit inner cone.
func NewSpotLight(position, direction, intensity core.Vec3, coverageDegrees, falloffDegrees float64) *SpotLight {
	return &SpotLight{
		Position:    position,
		Direction:   direction.Normalize(),
		Intensity:   intensity,
		cosCoverage: math.Cos(coverageDegrees / 2 * math.Pi / 180),
		cosFalloff:  math.Cos(falloffDegrees / 2 * math.Pi / 180),
	}
}

// IntensityAt returns the attenuated intensity reaching point q
func (sl *SpotLight) IntensityAt(q core.Vec3) core.Vec3 {
	fromLight := q.Subtract(sl.Position)
	distanceSq := fromLight.LengthSquared()
	cosTheta := fromLight.Normalize().Dot(sl.Direction)

	switch {
	case cosTheta > sl.cosFalloff:
		return sl.Intensity.Divide(distanceSq)
	case cosTheta < sl.cosCoverage:
		return core.Vec3{}
	}

	width := sl.cosFalloff - sl.cosCoverage
	if width <= 0 {
		return sl.Intensity.Divide(distanceSq)
	}
	// Quartic instead of linear to avoid a visible ring at the edge
	falloff := math.Pow((cosTheta-sl.cosCoverage)/width, 4)
	return sl.Intensity.Multiply(falloff).Divide(distanceSq)
}

// IncidentLight applies point-light shadowing and the cone falloff
func (sl *SpotLight) IncidentLight(scene Scene, hit material.HitRecord, sampler core.Sampler) material.IncidentLight {
	if occluded(scene, hit, sl.Position) {
		return material.IncidentLight{InShadow: true}
	}

	return material.IncidentLight{
		Intensity: sl.IntensityAt(hit.Point),
		Direction: sl.Position.Subtract(hit.Point).Normalize(),
	}
}
