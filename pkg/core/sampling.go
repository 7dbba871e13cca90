package core

import (
	"math"
	"math/rand"
)

// Sampler hands out uniform numbers in [0, 1). Samplers are owned by a
// single worker and are not safe for concurrent use.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler draws from a private math/rand source
type RandomSampler struct {
	rng *rand.Rand
}

// NewSeededSampler returns a deterministic sampler for seed
func NewSeededSampler(seed int64) *RandomSampler {
	return &RandomSampler{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomSampler) Get1D() float64 {
	return r.rng.Float64()
}

func (r *RandomSampler) Get2D() Vec2 {
	x := r.rng.Float64()
	return Vec2{X: x, Y: r.rng.Float64()}
}

func (r *RandomSampler) Get3D() Vec3 {
	x := r.rng.Float64()
	y := r.rng.Float64()
	return Vec3{X: x, Y: y, Z: r.rng.Float64()}
}

// OrthonormalBasis returns unit tangents u and v with u × v = w
func OrthonormalBasis(w Vec3) (u, v Vec3) {
	helper := NewVec3(1, 0, 0)
	if math.Abs(w.X) > 0.1 {
		helper = NewVec3(0, 1, 0)
	}
	u = helper.Cross(w).Normalize()
	return u, w.Cross(u)
}

// aroundAxis expresses local frame coordinates (x, y along the tangents, z
// along axis) in world space
func aroundAxis(axis Vec3, x, y, z float64) Vec3 {
	u, v := OrthonormalBasis(axis)
	return u.Multiply(x).Add(v.Multiply(y)).Add(axis.Multiply(z))
}

// ringPoint returns the point at radius r and angle 2π·t
func ringPoint(r, t float64) (x, y float64) {
	sin, cos := math.Sincos(2 * math.Pi * t)
	return r * cos, r * sin
}

// SampleCosineHemisphere picks a direction around normal with density
// proportional to cos θ
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	x, y := ringPoint(math.Sqrt(sample.Y), sample.X)
	return aroundAxis(normal, x, y, math.Sqrt(math.Max(0, 1-sample.Y)))
}

// SampleUniformHemisphere picks a direction around normal with constant density
func SampleUniformHemisphere(normal Vec3, sample Vec2) Vec3 {
	cosTheta := sample.X
	x, y := ringPoint(math.Sqrt(math.Max(0, 1-cosTheta*cosTheta)), sample.Y)
	return aroundAxis(normal, x, y, cosTheta)
}

// SampleCone picks a direction uniformly inside the cone around direction
// whose half-angle has cosine cosMax
func SampleCone(direction Vec3, cosMax float64, sample Vec2) Vec3 {
	cosTheta := 1 - sample.X*(1-cosMax)
	x, y := ringPoint(math.Sqrt(math.Max(0, 1-cosTheta*cosTheta)), sample.Y)
	return aroundAxis(direction, x, y, cosTheta)
}

// SamplePointInUnitDisk maps the square onto the unit disk (z = 0) with
// Shirley's concentric mapping
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	a, b := 2*sample.X-1, 2*sample.Y-1
	if a == 0 && b == 0 {
		return Vec3{}
	}

	r, phi := b, math.Pi/2-math.Pi/4*(a/b)
	if math.Abs(a) > math.Abs(b) {
		r, phi = a, math.Pi/4*(b/a)
	}
	sin, cos := math.Sincos(phi)
	return NewVec3(r*cos, r*sin, 0)
}

// SampleOnUnitSphere picks a uniform direction
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1 - 2*sample.X
	x, y := ringPoint(math.Sqrt(math.Max(0, 1-z*z)), sample.Y)
	return NewVec3(x, y, z)
}
