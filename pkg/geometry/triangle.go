package geometry

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// Vertex is a triangle corner with an optional accumulated shading normal
type Vertex struct {
	Position core.Vec3
	Normal   core.Vec3
}

// ShadingMode selects face or interpolated vertex normals
type ShadingMode int

const (
	ShadingFlat ShadingMode = iota
	ShadingSmooth
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	Placement
	Vertices [3]Vertex
	Shading  ShadingMode

	TexCoords     [3]core.Vec2
	ImageTexture  *material.ImageTexture
	PerlinTexture *material.PerlinTexture

	normal core.Vec3 // Cached face normal
	ab, ac core.Vec3 // a-b and a-c, the Cramer's rule coefficients
	area   float64
}

// NewTriangle creates a flat-shaded triangle from three positions
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	return NewTriangleFromVertices(Vertex{Position: v0}, Vertex{Position: v1}, Vertex{Position: v2}, ShadingFlat, mat)
}

// NewTriangleFromVertices creates a triangle that may use vertex normals
func NewTriangleFromVertices(v0, v1, v2 Vertex, shading ShadingMode, mat material.Material) *Triangle {
	t := &Triangle{
		Vertices: [3]Vertex{v0, v1, v2},
		Shading:  shading,
	}
	t.SetMaterial(mat)

	a, b, c := v0.Position, v1.Position, v2.Position
	edge := b.Subtract(a).Cross(c.Subtract(a))
	t.normal = edge.Normalize()
	t.area = edge.Length() / 2
	t.ab = a.Subtract(b)
	t.ac = a.Subtract(c)

	return t
}

// Normal returns the face normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Intersect solves the barycentric system in local space.
// It returns the ray parameter and the barycentrics of vertices 1 and 2.
func (t *Triangle) Intersect(ray core.Ray, backfaceCulling bool) (tHit, beta, gamma float64, ok bool) {
	if backfaceCulling && t.normal.Dot(ray.Direction) > 0 {
		return 0, 0, 0, false
	}

	ao := t.Vertices[0].Position.Subtract(ray.Origin)
	a, b, c := t.ab.X, t.ab.Y, t.ab.Z
	d, e, f := t.ac.X, t.ac.Y, t.ac.Z
	g, h, i := ray.Direction.X, ray.Direction.Y, ray.Direction.Z
	j, k, l := ao.X, ao.Y, ao.Z

	eiHF := e*i - h*f
	gfDI := g*f - d*i
	dhEG := d*h - e*g
	akJB := a*k - j*b
	jcAL := j*c - a*l
	blKC := b*l - k*c

	det := a*eiHF + b*gfDI + c*dhEG
	if det == 0 {
		return 0, 0, 0, false
	}

	gamma = (i*akJB + h*jcAL + g*blKC) / det
	if gamma < 0 || gamma > 1 {
		return 0, 0, 0, false
	}

	beta = (j*eiHF + k*gfDI + l*dhEG) / det
	if beta < 0 || beta+gamma > 1 {
		return 0, 0, 0, false
	}

	tHit = -(f*akJB + e*jcAL + d*blKC) / det
	if tHit <= 0 {
		return 0, 0, 0, false
	}

	return tHit, beta, gamma, true
}

// Hit tests if a ray intersects with the triangle
func (t *Triangle) Hit(ray core.Ray, backfaceCulling, opaqueOnly bool) (material.HitRecord, bool) {
	local := t.toLocal(ray)
	tHit, beta, gamma, ok := t.Intersect(local, backfaceCulling)
	if !ok {
		return material.HitRecord{}, false
	}

	hit := material.HitRecord{
		T:        tHit,
		Point:    local.At(tHit),
		Material: t.material,
		Time:     ray.Time,
		Normal:   t.normal,
	}
	if t.Shading == ShadingSmooth {
		n := t.Vertices[0].Normal.Multiply(1 - beta - gamma).
			Add(t.Vertices[1].Normal.Multiply(beta)).
			Add(t.Vertices[2].Normal.Multiply(gamma)).
			Normalize()
		if !n.IsZero() {
			hit.Normal = n
		}
	}
	t.applyTexture(&hit, beta, gamma)

	return t.toWorld(ray, hit), true
}

// Barycentric returns the coordinates (alpha, beta, gamma) of a local point
// in the triangle's plane
func (t *Triangle) Barycentric(p core.Vec3) (alpha, beta, gamma float64) {
	a := t.Vertices[0].Position
	v0 := t.Vertices[1].Position.Subtract(a)
	v1 := t.Vertices[2].Position.Subtract(a)
	v2 := p.Subtract(a)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)
	denom := d00*d11 - d01*d01
	if denom == 0 {
		return -1, -1, -1
	}

	beta = (d11*d20 - d01*d21) / denom
	gamma = (d00*d21 - d01*d20) / denom
	return 1 - beta - gamma, beta, gamma
}

func (t *Triangle) applyTexture(hit *material.HitRecord, beta, gamma float64) {
	switch {
	case t.ImageTexture != nil:
		tex := t.ImageTexture
		uv0, uv1, uv2 := t.TexCoords[0], t.TexCoords[1], t.TexCoords[2]
		u := uv0.X + beta*(uv1.X-uv0.X) + gamma*(uv2.X-uv0.X)
		v := uv0.Y + beta*(uv1.Y-uv0.Y) + gamma*(uv2.Y-uv0.Y)
		u, v = tex.Wrap(u, v)

		color := tex.ColorAt(u, v)
		hit.Texture = material.TextureInfo{HasTexture: true, Color: color, Decal: tex.Decal}
		hit.Material = material.ApplyDecal(hit.Material, color, tex.Decal)

		if tex.Bump {
			if dpdu, dpdv, ok := t.partials(); ok {
				hit.Normal = tex.BumpNormal(hit.Normal, dpdu, dpdv, u, v)
			}
		}
	case t.PerlinTexture != nil:
		tex := t.PerlinTexture
		color := tex.ColorAt(hit.Point)
		hit.Texture = material.TextureInfo{HasTexture: true, Color: color, Decal: tex.Decal}
		hit.Material = material.ApplyDecal(hit.Material, color, tex.Decal)

		if tex.Bump {
			hit.Normal = tex.BumpNormal(hit.Normal, hit.Point)
		}
	}
}

// partials returns dp/du and dp/dv from the texture coordinate layout
func (t *Triangle) partials() (dpdu, dpdv core.Vec3, ok bool) {
	uv0, uv1, uv2 := t.TexCoords[0], t.TexCoords[1], t.TexCoords[2]
	a := uv1.X - uv0.X
	b := uv1.Y - uv0.Y
	c := uv2.X - uv0.X
	d := uv2.Y - uv0.Y

	det := a*d - b*c
	if det == 0 {
		return core.Vec3{}, core.Vec3{}, false
	}

	e1 := t.Vertices[1].Position.Subtract(t.Vertices[0].Position)
	e2 := t.Vertices[2].Position.Subtract(t.Vertices[0].Position)
	dpdu = e1.Multiply(d / det).Add(e2.Multiply(-b / det))
	dpdv = e1.Multiply(-c / det).Add(e2.Multiply(a / det))
	return dpdu, dpdv, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bounds(core.NewAABBFromPoints(
		t.Vertices[0].Position,
		t.Vertices[1].Position,
		t.Vertices[2].Position,
	))
}

// Area returns the untransformed surface area
func (t *Triangle) Area() float64 {
	return t.area
}

// SamplePoint returns a uniformly distributed point on the triangle
func (t *Triangle) SamplePoint(sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	s := math.Sqrt(sample.X)

	a := t.Vertices[0].Position
	b := t.Vertices[1].Position
	c := t.Vertices[2].Position
	p := a.Multiply(1 - s).Add(b.Multiply(s * (1 - sample.Y))).Add(c.Multiply(s * sample.Y))
	return t.staticPoint(p)
}
