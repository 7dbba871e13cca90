package geometry

import (
	"math"
	"testing"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

func TestTriangle_Hit(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		material.Material{},
	)

	tests := []struct {
		name      string
		ray       core.Ray
		culling   bool
		shouldHit bool
	}{
		{"Front face", core.NewRay(core.NewVec3(0.2, 0.2, 1), core.NewVec3(0, 0, -1)), true, true},
		{"Back face without culling", core.NewRay(core.NewVec3(0.2, 0.2, -1), core.NewVec3(0, 0, 1)), false, true},
		{"Back face culled", core.NewRay(core.NewVec3(0.2, 0.2, -1), core.NewVec3(0, 0, 1)), true, false},
		{"Outside edge", core.NewRay(core.NewVec3(0.8, 0.8, 1), core.NewVec3(0, 0, -1)), false, false},
		{"Parallel", core.NewRay(core.NewVec3(0.2, 0.2, 0), core.NewVec3(1, 0, 0)), false, false},
		{"Behind origin", core.NewRay(core.NewVec3(0.2, 0.2, 1), core.NewVec3(0, 0, 1)), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tri.Hit(tt.ray, tt.culling, false)
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, ok)
			}
			if ok && math.Abs(hit.T-1) > 1e-9 {
				t.Errorf("Expected t=1, got %f", hit.T)
			}
		})
	}
}

func TestTriangle_DegenerateMisses(t *testing.T) {
	tri := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 0), core.NewVec3(2, 2, 0), material.Material{})
	if _, ok := tri.Hit(core.NewRay(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, -1)), false, false); ok {
		t.Error("Expected zero-area triangle to miss")
	}
	if tri.Area() != 0 {
		t.Errorf("Expected zero area, got %f", tri.Area())
	}
}

func TestTriangle_BarycentricReconstruction(t *testing.T) {
	sampler := core.NewSeededSampler(17)

	for i := 0; i < 200; i++ {
		a := sampler.Get3D().Multiply(4)
		b := sampler.Get3D().Multiply(4)
		c := sampler.Get3D().Multiply(4)
		tri := NewTriangle(a, b, c, material.Material{})
		if tri.Area() < 1e-3 {
			continue
		}

		target := tri.SamplePoint(sampler)
		origin := target.Add(core.SampleOnUnitSphere(sampler.Get2D()).Multiply(5))
		hit, ok := tri.Hit(core.NewRay(origin, target.Subtract(origin)), false, false)
		if !ok {
			continue
		}

		alpha, beta, gamma := tri.Barycentric(hit.Point)
		const eps = 1e-6
		if beta < -eps || gamma < -eps || beta+gamma > 1+eps {
			t.Fatalf("Barycentrics out of range: %f %f %f", alpha, beta, gamma)
		}

		rebuilt := a.Multiply(alpha).Add(b.Multiply(beta)).Add(c.Multiply(gamma))
		if rebuilt.Subtract(hit.Point).Length() > eps {
			t.Fatalf("Reconstructed %v differs from hit %v", rebuilt, hit.Point)
		}
	}
}

func TestTriangle_SmoothShading(t *testing.T) {
	up := core.NewVec3(0, 0, 1)
	tilted := core.NewVec3(1, 0, 1).Normalize()
	tri := NewTriangleFromVertices(
		Vertex{Position: core.NewVec3(0, 0, 0), Normal: up},
		Vertex{Position: core.NewVec3(1, 0, 0), Normal: tilted},
		Vertex{Position: core.NewVec3(0, 1, 0), Normal: up},
		ShadingSmooth,
		material.Material{},
	)

	hit, ok := tri.Hit(core.NewRay(core.NewVec3(0.5, 0.1, 1), core.NewVec3(0, 0, -1)), false, false)
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Normal.X <= 0 || math.Abs(hit.Normal.Length()-1) > 1e-9 {
		t.Errorf("Expected interpolated normal leaning toward +X, got %v", hit.Normal)
	}
}

func TestTriangle_TextureRepeat(t *testing.T) {
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	tex := material.NewCheckerboardTexture(2, 2, 1, white, black)
	tex.Decal = material.DecalReplaceAll

	tri := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), material.Material{})
	tri.TexCoords = [3]core.Vec2{core.NewVec2(0, 0), core.NewVec2(2, 0), core.NewVec2(0, 2)}
	tri.ImageTexture = tex

	// u = 1.2 wraps to 0.2 (first column), v = 0.2 (first row)
	hit, ok := tri.Hit(core.NewRay(core.NewVec3(0.6, 0.1, 1), core.NewVec3(0, 0, -1)), false, false)
	if !ok {
		t.Fatal("Expected hit")
	}
	if !hit.Texture.HasTexture || hit.Texture.Decal != material.DecalReplaceAll {
		t.Fatalf("Expected replace-all texture info, got %+v", hit.Texture)
	}
	if !hit.Texture.Color.Equals(white) {
		t.Errorf("Expected white texel, got %v", hit.Texture.Color)
	}
}
