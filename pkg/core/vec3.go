package core

import "math"

// Vec3 is a point, a direction or an RGB color
type Vec3 struct {
	X, Y, Z float64
}

// Vec2 holds sample pairs and texture coordinates
type Vec2 struct {
	X, Y float64
}

func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Splat returns (v, v, v)
func Splat(v float64) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Subtract(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Negate() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Multiply scales every component by s
func (v Vec3) Multiply(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// MultiplyVec is the component-wise product, used to filter colors
func (v Vec3) MultiplyVec(o Vec3) Vec3 {
	return Vec3{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// Divide scales by 1/s. Dividing by zero gives the zero vector.
func (v Vec3) Divide(s float64) Vec3 {
	if s == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross follows the right-hand rule: x × y = z
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LengthSquared() float64 {
	return v.Dot(v)
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector along v, or zero for the zero vector
func (v Vec3) Normalize() Vec3 {
	return v.Divide(v.Length())
}

// Pow raises each component to e
func (v Vec3) Pow(e float64) Vec3 {
	return Vec3{X: math.Pow(v.X, e), Y: math.Pow(v.Y, e), Z: math.Pow(v.Z, e)}
}

// GammaCorrect encodes a linear color for display: c^(1/gamma)
func (v Vec3) GammaCorrect(gamma float64) Vec3 {
	return v.Pow(1 / gamma)
}

// Clamp limits each component to [lo, hi]
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	return v.Max(Splat(lo)).Min(Splat(hi))
}

func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{X: math.Min(v.X, o.X), Y: math.Min(v.Y, o.Y), Z: math.Min(v.Z, o.Z)}
}

func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{X: math.Max(v.X, o.X), Y: math.Max(v.Y, o.Y), Z: math.Max(v.Z, o.Z)}
}

// Luminance weights RGB with the Rec. 601 coefficients
func (v Vec3) Luminance() float64 {
	return 0.299*v.X + 0.587*v.Y + 0.114*v.Z
}

func (v Vec3) IsZero() bool {
	return v == Vec3{}
}

func (v Vec3) Equals(o Vec3) bool {
	return v == o
}

// Axis indexes the components: 0 is X, 1 is Y, anything else Z
func (v Vec3) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}
