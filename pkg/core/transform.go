package core

import "github.com/go-gl/mathgl/mgl64"

// Transform pairs an affine matrix with its inverse so rays, points and
// normals can be mapped both ways without re-inverting.
type Transform struct {
	Matrix  mgl64.Mat4
	Inverse mgl64.Mat4
}

// IdentityTransform returns the transform that changes nothing
func IdentityTransform() Transform {
	return Transform{Matrix: mgl64.Ident4(), Inverse: mgl64.Ident4()}
}

// Translation returns a translation by offset
func Translation(offset Vec3) Transform {
	return Transform{
		Matrix:  mgl64.Translate3D(offset.X, offset.Y, offset.Z),
		Inverse: mgl64.Translate3D(-offset.X, -offset.Y, -offset.Z),
	}
}

// Scaling returns a non-uniform scale. Zero factors are not invertible and
// leave that axis unscaled.
func Scaling(factors Vec3) Transform {
	fx, fy, fz := nonZero(factors.X), nonZero(factors.Y), nonZero(factors.Z)
	return Transform{
		Matrix:  mgl64.Scale3D(fx, fy, fz),
		Inverse: mgl64.Scale3D(1/fx, 1/fy, 1/fz),
	}
}

func nonZero(f float64) float64 {
	if f == 0 {
		return 1
	}
	return f
}

// Rotation returns a rotation of angleDegrees around axis. A zero axis
// yields the identity.
func Rotation(angleDegrees float64, axis Vec3) Transform {
	a := axis.Normalize()
	if a.IsZero() {
		return IdentityTransform()
	}
	m := mgl64.HomogRotate3D(mgl64.DegToRad(angleDegrees), mgl64.Vec3{a.X, a.Y, a.Z})
	// Pure rotations are orthonormal
	return Transform{Matrix: m, Inverse: m.Transpose()}
}

// Then returns the transform that applies t first and next afterwards
func (t Transform) Then(next Transform) Transform {
	return Transform{
		Matrix:  next.Matrix.Mul4(t.Matrix),
		Inverse: t.Inverse.Mul4(next.Inverse),
	}
}

// Invert swaps the forward and inverse matrices
func (t Transform) Invert() Transform {
	return Transform{Matrix: t.Inverse, Inverse: t.Matrix}
}

// IsIdentity reports whether the forward matrix is exactly the identity
func (t Transform) IsIdentity() bool {
	return t.Matrix == mgl64.Ident4()
}

// ApplyPoint maps a point (w = 1) through the forward matrix
func (t Transform) ApplyPoint(p Vec3) Vec3 {
	return applyPoint(t.Matrix, p)
}

// ApplyVector maps a direction (w = 0) through the forward matrix
func (t Transform) ApplyVector(v Vec3) Vec3 {
	return applyVector(t.Matrix, v)
}

// ApplyNormal maps a surface normal with the inverse transpose and
// renormalizes it
func (t Transform) ApplyNormal(n Vec3) Vec3 {
	return applyVector(t.Inverse.Transpose(), n).Normalize()
}

// InverseRay maps a world-space ray into the local space of t. The direction
// is renormalized; weight and time are preserved.
func (t Transform) InverseRay(ray Ray) Ray {
	local := ray
	local.Origin = applyPoint(t.Inverse, ray.Origin)
	local.SetDirection(applyVector(t.Inverse, ray.Direction))
	return local
}

// ApplyBox returns the world box enclosing the eight transformed corners
func (t Transform) ApplyBox(box AABB) AABB {
	corners := box.Corners()
	for i := range corners {
		corners[i] = t.ApplyPoint(corners[i])
	}
	return NewAABBFromPoints(corners[:]...)
}

func applyPoint(m mgl64.Mat4, p Vec3) Vec3 {
	h := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	if w := h[3]; w != 1 && w != 0 {
		return NewVec3(h[0]/w, h[1]/w, h[2]/w)
	}
	return NewVec3(h[0], h[1], h[2])
}

func applyVector(m mgl64.Mat4, v Vec3) Vec3 {
	h := m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return NewVec3(h[0], h[1], h[2])
}
