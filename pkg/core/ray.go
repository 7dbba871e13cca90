package core

// Ray is a half-line with a unit direction, a reconstruction weight and the
// time (in [0,1)) at which it was created. Shadow and secondary rays inherit
// the time of the ray that spawned them so motion blur stays consistent.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Weight    float64
	Time      float64
}

// NewRay creates a ray with a normalized direction and unit weight
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize(), Weight: 1}
}

// NewRayAt creates a ray like NewRay with the given creation time
func NewRayAt(origin, direction Vec3, time float64) Ray {
	r := NewRay(origin, direction)
	r.Time = time
	return r
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// SetDirection replaces the direction, keeping it normalized
func (r *Ray) SetDirection(direction Vec3) {
	r.Direction = direction.Normalize()
}

// Offset returns the ray with its origin moved eps along its direction
func (r Ray) Offset(eps float64) Ray {
	r.Origin = r.Origin.Add(r.Direction.Multiply(eps))
	return r
}

// TValue returns the ray parameter that reaches point p, read off the first
// non-zero direction component. A zero direction yields -1.
func (r Ray) TValue(p Vec3) float64 {
	d := p.Subtract(r.Origin)
	switch {
	case r.Direction.X != 0:
		return d.X / r.Direction.X
	case r.Direction.Y != 0:
		return d.Y / r.Direction.Y
	case r.Direction.Z != 0:
		return d.Z / r.Direction.Z
	default:
		return -1
	}
}
