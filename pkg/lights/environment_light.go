package lights

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// HemisphereSampling selects how environment directions are drawn
type HemisphereSampling int

const (
	SampleUniform HemisphereSampling = iota
	SampleCosine
)

// EnvironmentLight lights the scene from a latitude-longitude image wrapped
// around it at infinity
type EnvironmentLight struct {
	Texture     *material.ImageTexture
	Sampling    HemisphereSampling
	ShadowCheck bool // Cast a shadow ray along each sampled direction
}

// NewEnvironmentLight creates an environment light over a lat-long image
func NewEnvironmentLight(texture *material.ImageTexture, sampling HemisphereSampling, shadowCheck bool) *EnvironmentLight {
	return &EnvironmentLight{Texture: texture, Sampling: sampling, ShadowCheck: shadowCheck}
}

// Radiance returns the environment color seen along direction
func (el *EnvironmentLight) Radiance(direction core.Vec3) core.Vec3 {
	return el.Texture.LatLong(direction)
}

// IncidentLight samples one direction above the surface and returns the
// environment radiance along it divided by the sampling pdf
func (el *EnvironmentLight) IncidentLight(scene Scene, hit material.HitRecord, sampler core.Sampler) material.IncidentLight {
	var direction core.Vec3
	var pdf float64
	if el.Sampling == SampleCosine {
		direction = core.SampleCosineHemisphere(hit.Normal, sampler.Get2D())
		pdf = math.Max(0, direction.Dot(hit.Normal)) / math.Pi
	} else {
		direction = core.SampleUniformHemisphere(hit.Normal, sampler.Get2D())
		pdf = 1 / (2 * math.Pi)
	}
	if pdf <= 0 {
		return material.IncidentLight{InShadow: true}
	}

	if el.ShadowCheck {
		shadowRay := core.NewRayAt(hit.Point, direction, hit.Time).Offset(scene.ShadowRayEpsilon())
		if _, ok := scene.Hit(shadowRay, true, true); ok {
			return material.IncidentLight{InShadow: true}
		}
	}

	return material.IncidentLight{
		Intensity: el.Radiance(direction).Divide(pdf),
		Direction: direction,
	}
}
