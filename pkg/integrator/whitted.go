package integrator

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
	"github.com/df07/whitted-raytracer/pkg/scene"
)

// airRefractionIndex is the index of the medium surrounding every dielectric
const airRefractionIndex = 1.0

// Whitted implements recursive ray tracing: direct lighting from every light
// plus perfect (or glossy) mirror reflection and dielectric refraction
type Whitted struct {
	scene *scene.Scene
}

// NewWhitted creates a Whitted integrator over a built scene
func NewWhitted(s *scene.Scene) *Whitted {
	return &Whitted{scene: s}
}

// RayColor computes the color seen along ray
func (w *Whitted) RayColor(ray core.Ray, depth int, backfaceCulling bool, sampler core.Sampler) core.Vec3 {
	hit, ok := w.scene.Hit(ray, backfaceCulling, false)
	if !ok {
		return w.scene.Settings.BackgroundColor
	}
	if hit.IsLight {
		return hit.LightColor
	}

	// Back faces under culling skip the decal and direct light
	facing := hit.Normal.Dot(ray.Direction) < 0
	shaded := facing || !backfaceCulling
	if shaded && hit.Texture.HasTexture && hit.Texture.Decal == material.DecalReplaceAll {
		return hit.Texture.Color
	}

	m := hit.Material
	color := w.scene.Settings.AmbientLight.MultiplyVec(m.Ambient)
	if shaded {
		color = color.Add(w.directLight(ray, hit, facing, sampler))
	}

	if m.IsMirror() && depth > 0 {
		color = color.Add(w.reflectionColor(ray, hit, depth, sampler).MultiplyVec(m.Mirror))
	}

	if m.IsTransparent() && depth > 0 {
		color = color.Add(w.refractionColor(ray, hit, depth, sampler))
	}

	return color
}

// directLight sums every light's contribution. Surfaces seen from behind
// only receive the diffuse term.
func (w *Whitted) directLight(ray core.Ray, hit material.HitRecord, facing bool, sampler core.Sampler) core.Vec3 {
	var total core.Vec3
	brdf := hit.Material.BRDF
	for _, light := range w.scene.Lights {
		incident := light.IncidentLight(w.scene, hit, sampler)
		if incident.InShadow {
			continue
		}
		if facing {
			total = total.Add(brdf.Evaluate(ray, hit, incident))
		} else {
			total = total.Add(brdf.Diffuse(hit, incident))
		}
	}
	return total
}

// reflect mirrors d about n: d - 2(d.n)n
func reflect(d, n core.Vec3) core.Vec3 {
	return d.Subtract(n.Multiply(2 * d.Dot(n)))
}

// reflectionRay builds the mirror ray leaving hit about normal. A rough
// material tilts the direction by a random offset in the plane perpendicular
// to it, scaled by the roughness.
func (w *Whitted) reflectionRay(ray core.Ray, hit material.HitRecord, normal core.Vec3, sampler core.Sampler) core.Ray {
	dir := reflect(ray.Direction, normal)

	if roughness := hit.Material.Roughness; roughness != 0 {
		r := dir.Normalize()
		u, v := core.OrthonormalBasis(r)
		jitter := sampler.Get2D()
		dir = r.Add(u.Multiply(jitter.X - 0.5).Add(v.Multiply(jitter.Y - 0.5)).Multiply(roughness))
	}

	return core.NewRayAt(hit.Point, dir, ray.Time).Offset(w.scene.ShadowRayEpsilon())
}

func (w *Whitted) reflectionColor(ray core.Ray, hit material.HitRecord, depth int, sampler core.Sampler) core.Vec3 {
	reflected := w.reflectionRay(ray, hit, hit.Normal, sampler)
	return w.RayColor(reflected, depth-1, true, sampler)
}

// refractionColor blends the reflected and transmitted rays of a dielectric
// with Schlick's approximation. Both recursions run with culling off so the
// inside of the medium is visible.
func (w *Whitted) refractionColor(ray core.Ray, hit material.HitRecord, depth int, sampler core.Sampler) core.Vec3 {
	m := hit.Material
	d := ray.Direction.Normalize()

	cosTheta := d.Negate().Dot(hit.Normal)
	entering := cosTheta >= 0

	ratio := airRefractionIndex / m.RefractionIndex
	normal := hit.Normal
	if !entering {
		ratio = m.RefractionIndex / airRefractionIndex
		normal = hit.Normal.Negate()
		cosTheta = -cosTheta
	}

	reflected := w.reflectionRay(ray, hit, normal, sampler)
	reflection := w.RayColor(reflected, depth-1, false, sampler)

	// A NaN discriminant (zero index) fails the test like total internal
	// reflection does
	var refraction core.Vec3
	discriminant := 1 - ratio*ratio*(1-cosTheta*cosTheta)
	if discriminant > 0 {
		cosPhi := math.Sqrt(discriminant)

		reflectance := material.Schlick(math.Min(cosTheta, cosPhi), material.FresnelR0(m.RefractionIndex))

		dir := d.Add(normal.Multiply(cosTheta)).Multiply(ratio).Subtract(normal.Multiply(cosPhi))
		transmitted := core.NewRayAt(hit.Point, dir, ray.Time).Offset(w.scene.ShadowRayEpsilon())
		refraction = w.RayColor(transmitted, depth-1, false, sampler).Multiply(1 - reflectance)
		reflection = reflection.Multiply(reflectance)
	}

	color := reflection.Add(refraction)
	if !entering {
		color = color.MultiplyVec(m.Transparency.Pow(hit.T))
	}
	return color
}
