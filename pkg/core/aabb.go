package core

import "math"

// AABB is an axis-aligned box given by its two extreme corners
type AABB struct {
	Min, Max Vec3
}

func NewAABB(lo, hi Vec3) AABB {
	return AABB{Min: lo, Max: hi}
}

// NewAABBFromPoints returns the smallest box holding every point, or the
// empty box at the origin when there are none
func NewAABBFromPoints(points ...Vec3) AABB {
	var box AABB
	for i, p := range points {
		if i == 0 {
			box = AABB{Min: p, Max: p}
			continue
		}
		box.Min, box.Max = box.Min.Min(p), box.Max.Max(p)
	}
	return box
}

// Hit clips [tMin, tMax] against the three slabs (Liang-Barsky) and reports
// whether anything is left. A ray parallel to a slab hits only from inside it.
func (b AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		lo, hi := b.Min.Axis(axis), b.Max.Axis(axis)
		o, d := ray.Origin.Axis(axis), ray.Direction.Axis(axis)

		if d == 0 {
			if o < lo || o > hi {
				return false
			}
			continue
		}

		near, far := (lo-o)/d, (hi-o)/d
		if near > far {
			near, far = far, near
		}
		tMin, tMax = math.Max(tMin, near), math.Min(tMax, far)
		if tMin > tMax {
			return false
		}
	}
	return true
}

func (b AABB) Union(o AABB) AABB {
	return AABB{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Size is the extent along each axis
func (b AABB) Size() Vec3 {
	return b.Max.Subtract(b.Min)
}

// Corners lists the eight corners; bit 0 of the index selects Max.X, bit 1
// Max.Y and bit 2 Max.Z
func (b AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := range corners {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		corners[i] = c
	}
	return corners
}

func (b AABB) Translate(offset Vec3) AABB {
	return AABB{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}
