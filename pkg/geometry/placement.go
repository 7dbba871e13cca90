package geometry

import (
	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// Placement positions a shape in its parent's space: an optional static
// transform, an optional motion-blur translation scaled by ray time, and an
// optional material that overrides whatever the children report.
// Configure it before the shape is handed to a BVH builder.
type Placement struct {
	transform    core.Transform
	hasTransform bool
	motionBlur   core.Vec3
	material     material.Material
	hasMaterial  bool
}

// SetTransform sets the static transform. The identity clears it.
func (p *Placement) SetTransform(t core.Transform) {
	p.transform = t
	p.hasTransform = !t.IsIdentity()
}

// SetMotionBlur sets the translation reached at time 1
func (p *Placement) SetMotionBlur(v core.Vec3) {
	p.motionBlur = v
}

// SetMaterial sets the material reported by hits on this shape
func (p *Placement) SetMaterial(m material.Material) {
	p.material = m
	p.hasMaterial = true
}

// Transform returns the static transform and whether one is set
func (p *Placement) Transform() (core.Transform, bool) {
	return p.transform, p.hasTransform
}

// Material returns the material and whether one is set
func (p *Placement) Material() (material.Material, bool) {
	return p.material, p.hasMaterial
}

func (p *Placement) isPassThrough() bool {
	return !p.hasTransform && p.motionBlur.IsZero()
}

// worldTransform is the static transform followed by the motion-blur offset
// at the given time
func (p *Placement) worldTransform(time float64) core.Transform {
	t := core.IdentityTransform()
	if p.hasTransform {
		t = p.transform
	}
	if !p.motionBlur.IsZero() {
		t = t.Then(core.Translation(p.motionBlur.Multiply(time)))
	}
	return t
}

// toLocal maps a parent-space ray into the shape's local space
func (p *Placement) toLocal(ray core.Ray) core.Ray {
	if p.isPassThrough() {
		return ray
	}
	return p.worldTransform(ray.Time).InverseRay(ray)
}

// toWorld maps a local hit back into parent space. The point uses the
// forward matrix, the normal its inverse transpose, and t is recovered from
// the parent-space ray.
func (p *Placement) toWorld(ray core.Ray, hit material.HitRecord) material.HitRecord {
	if p.isPassThrough() {
		return hit
	}
	t := p.worldTransform(ray.Time)
	hit.Point = t.ApplyPoint(hit.Point)
	hit.Normal = t.ApplyNormal(hit.Normal)
	hit.T = ray.TValue(hit.Point)
	return hit
}

// overrideMaterial replaces the material reported by a child
func (p *Placement) overrideMaterial(hit *material.HitRecord) {
	if p.hasMaterial {
		hit.Material = p.material
	}
}

// bounds returns the parent-space box of a local box: the transformed
// corners, widened to cover the whole motion-blur sweep
func (p *Placement) bounds(local core.AABB) core.AABB {
	box := local
	if p.hasTransform {
		box = p.transform.ApplyBox(local)
	}
	if !p.motionBlur.IsZero() {
		box = box.Union(box.Translate(p.motionBlur))
	}
	return box
}

// WorldPoint maps a local point into parent space at the given ray time,
// motion blur included
func (p *Placement) WorldPoint(point core.Vec3, time float64) core.Vec3 {
	if p.isPassThrough() {
		return point
	}
	return p.worldTransform(time).ApplyPoint(point)
}

// staticPoint maps a local sample point through the static transform only
func (p *Placement) staticPoint(point core.Vec3) core.Vec3 {
	if p.hasTransform {
		return p.transform.ApplyPoint(point)
	}
	return point
}
