package geometry

import (
	"fmt"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// Handle identifies a subtree owned by an Arena
type Handle int

// Arena owns every shared subtree. Instances refer to subtrees by handle
// and never own them; only the arena can release one.
type Arena struct {
	builder BVHBuilder
	roots   []Shape
}

// NewArena creates an arena whose subtrees are built with builder
func NewArena(builder BVHBuilder) *Arena {
	return &Arena{builder: builder}
}

// Build builds shapes into a subtree and returns its handle
func (a *Arena) Build(shapes []Shape) (Handle, error) {
	root := a.builder.Build(shapes)
	if root == nil {
		return 0, fmt.Errorf("cannot build an empty subtree")
	}
	a.roots = append(a.roots, root)
	return Handle(len(a.roots) - 1), nil
}

// Get returns the subtree for a handle, or false once it has been released
func (a *Arena) Get(h Handle) (Shape, bool) {
	if int(h) < 0 || int(h) >= len(a.roots) || a.roots[h] == nil {
		return nil, false
	}
	return a.roots[h], true
}

// Release drops a subtree. Instances that still refer to it stop reporting
// hits. Releasing twice is a no-op.
func (a *Arena) Release(h Handle) {
	if int(h) >= 0 && int(h) < len(a.roots) {
		a.roots[h] = nil
	}
}

// Len returns the number of live subtrees
func (a *Arena) Len() int {
	live := 0
	for _, r := range a.roots {
		if r != nil {
			live++
		}
	}
	return live
}

// Instance places a shared subtree with its own transform, motion blur and
// material override
type Instance struct {
	Placement
	arena  *Arena
	handle Handle
}

// NewInstance creates an instance of the subtree behind h
func (a *Arena) NewInstance(h Handle) *Instance {
	return &Instance{arena: a, handle: h}
}

// Handle returns the referenced subtree's handle
func (i *Instance) Handle() Handle {
	return i.handle
}

// Hit transforms the ray into the subtree's space, tests the subtree and
// maps the hit back
func (i *Instance) Hit(ray core.Ray, backfaceCulling, opaqueOnly bool) (material.HitRecord, bool) {
	root, ok := i.arena.Get(i.handle)
	if !ok {
		return material.HitRecord{}, false
	}

	hit, ok := root.Hit(i.toLocal(ray), backfaceCulling, opaqueOnly)
	if !ok {
		return material.HitRecord{}, false
	}
	hit.Time = ray.Time
	i.overrideMaterial(&hit)
	return i.toWorld(ray, hit), true
}

// BoundingBox returns the placed subtree's box
func (i *Instance) BoundingBox() core.AABB {
	root, ok := i.arena.Get(i.handle)
	if !ok {
		return core.AABB{}
	}
	return i.bounds(root.BoundingBox())
}

// Area returns the subtree's untransformed area
func (i *Instance) Area() float64 {
	root, ok := i.arena.Get(i.handle)
	if !ok {
		return 0
	}
	return root.Area()
}

// SamplePointAt samples the subtree and places the point where the instance
// sits at the given time
func (i *Instance) SamplePointAt(sampler core.Sampler, time float64) core.Vec3 {
	root, ok := i.arena.Get(i.handle)
	if !ok {
		return core.Vec3{}
	}
	return i.WorldPoint(root.SamplePoint(sampler), time)
}

// SamplePoint samples the subtree and applies the static transform
func (i *Instance) SamplePoint(sampler core.Sampler) core.Vec3 {
	root, ok := i.arena.Get(i.handle)
	if !ok {
		return core.Vec3{}
	}
	return i.staticPoint(root.SamplePoint(sampler))
}
