package geometry

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Placement
	Center core.Vec3
	Radius float64

	// At most one texture applies; the image texture wins if both are set
	ImageTexture  *material.ImageTexture
	PerlinTexture *material.PerlinTexture
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	s := &Sphere{
		Center: center,
		Radius: radius,
	}
	s.SetMaterial(mat)
	return s
}

// Intersect solves the ray-sphere quadratic in local space and returns the
// smallest positive root
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return 0, false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	switch {
	case discriminant < 0:
		return 0, false
	case discriminant == 0:
		// Grazing ray
		t := -halfB / a
		return t, t > 0
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-halfB - sqrtD) / a
	t2 := (-halfB + sqrtD) / a
	if t1 > 0 {
		return t1, true
	}
	if t2 > 0 {
		return t2, true
	}
	return 0, false
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, backfaceCulling, opaqueOnly bool) (material.HitRecord, bool) {
	local := s.toLocal(ray)
	t, ok := s.Intersect(local)
	if !ok {
		return material.HitRecord{}, false
	}

	hit := material.HitRecord{
		T:        t,
		Point:    local.At(t),
		Material: s.material,
		Time:     ray.Time,
	}
	hit.Normal = hit.Point.Subtract(s.Center).Normalize()
	s.applyTexture(&hit)

	return s.toWorld(ray, hit), true
}

// UV returns the spherical texture coordinates of a local surface point
func (s *Sphere) UV(point core.Vec3) (u, v float64) {
	d := point.Subtract(s.Center)
	theta := math.Acos(math.Max(-1, math.Min(1, d.Y/s.Radius)))
	phi := math.Atan2(d.Z, d.X)
	return (math.Pi - phi) / (2 * math.Pi), theta / math.Pi
}

func (s *Sphere) applyTexture(hit *material.HitRecord) {
	switch {
	case s.ImageTexture != nil:
		tex := s.ImageTexture
		u, v := s.UV(hit.Point)
		color := tex.ColorAt(u, v)
		hit.Texture = material.TextureInfo{HasTexture: true, Color: color, Decal: tex.Decal}
		hit.Material = material.ApplyDecal(hit.Material, color, tex.Decal)

		if tex.Bump {
			d := hit.Point.Subtract(s.Center)
			theta := math.Pi * v
			phi := math.Pi - 2*math.Pi*u
			dpdu := core.NewVec3(2*math.Pi*d.Z, 0, -2*math.Pi*d.X)
			dpdv := core.NewVec3(
				math.Pi*d.Y*math.Cos(phi),
				-math.Pi*s.Radius*math.Sin(theta),
				math.Pi*d.Y*math.Sin(phi),
			)
			hit.Normal = tex.BumpNormal(hit.Normal, dpdu, dpdv, u, v)
		}
	case s.PerlinTexture != nil:
		tex := s.PerlinTexture
		color := tex.ColorAt(hit.Point)
		hit.Texture = material.TextureInfo{HasTexture: true, Color: color, Decal: tex.Decal}
		hit.Material = material.ApplyDecal(hit.Material, color, tex.Decal)

		if tex.Bump {
			hit.Normal = tex.BumpNormal(hit.Normal, hit.Point)
		}
	}
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.Splat(s.Radius)
	return s.bounds(core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius)))
}

// Area returns the untransformed surface area
func (s *Sphere) Area() float64 {
	return 4 * math.Pi * s.Radius * s.Radius
}

// SamplePoint returns a uniformly distributed point on the surface
func (s *Sphere) SamplePoint(sampler core.Sampler) core.Vec3 {
	p := s.Center.Add(core.SampleOnUnitSphere(sampler.Get2D()).Multiply(s.Radius))
	return s.staticPoint(p)
}
