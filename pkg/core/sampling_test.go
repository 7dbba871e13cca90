package core

import (
	"math"
	"testing"
)

func TestSampleHemispheres_StayAboveNormal(t *testing.T) {
	sampler := NewSeededSampler(42)
	normal := NewVec3(0.3, 0.8, -0.2).Normalize()

	for i := 0; i < 500; i++ {
		cosine := SampleCosineHemisphere(normal, sampler.Get2D())
		if cosine.Dot(normal) < -1e-9 {
			t.Fatalf("Cosine sample below horizon: %v", cosine)
		}
		if math.Abs(cosine.Length()-1) > 1e-9 {
			t.Fatalf("Cosine sample not unit length: %v", cosine)
		}

		uniform := SampleUniformHemisphere(normal, sampler.Get2D())
		if uniform.Dot(normal) < -1e-9 {
			t.Fatalf("Uniform sample below horizon: %v", uniform)
		}
		if math.Abs(uniform.Length()-1) > 1e-9 {
			t.Fatalf("Uniform sample not unit length: %v", uniform)
		}
	}
}

func TestSampleCone_WithinAngle(t *testing.T) {
	sampler := NewSeededSampler(7)
	axis := NewVec3(0, 0, 1)
	cosMax := math.Cos(0.2)

	for i := 0; i < 500; i++ {
		d := SampleCone(axis, cosMax, sampler.Get2D())
		if d.Dot(axis) < cosMax-1e-9 {
			t.Fatalf("Sample outside cone: %v", d)
		}
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 500; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Length() > 1+1e-9 || p.Z != 0 {
			t.Fatalf("Point outside unit disk: %v", p)
		}
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(11)
	b := NewSeededSampler(11)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}

func TestOrthonormalBasis(t *testing.T) {
	for _, w := range []Vec3{NewVec3(0, 0, 1), NewVec3(1, 0, 0), NewVec3(1, 2, 3).Normalize()} {
		u, v := OrthonormalBasis(w)
		if math.Abs(u.Dot(v)) > 1e-9 || math.Abs(u.Dot(w)) > 1e-9 || math.Abs(v.Dot(w)) > 1e-9 {
			t.Errorf("Basis for %v is not orthogonal: u=%v v=%v", w, u, v)
		}
	}
}
