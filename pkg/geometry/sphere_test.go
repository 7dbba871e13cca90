package geometry

import (
	"math"
	"testing"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, material.NewDiffuseMaterial(core.NewVec3(1, 1, 1)))

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
		expectedT float64
	}{
		{"Head on", core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), true, 4},
		{"Tangent", core.NewRay(core.NewVec3(-5, 1, 0), core.NewVec3(1, 0, 0)), true, 5},
		{"Miss", core.NewRay(core.NewVec3(0, 2, -5), core.NewVec3(0, 0, 1)), false, 0},
		{"Pointing away", core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, -1)), false, 0},
		{"From inside", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := sphere.Hit(tt.ray, false, false)
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if math.Abs(hit.Normal.Length()-1) > 1e-9 {
				t.Errorf("Expected unit normal, got %v", hit.Normal)
			}
		})
	}
}

func TestSphere_RadialHitDistance(t *testing.T) {
	sampler := core.NewSeededSampler(99)

	for i := 0; i < 200; i++ {
		center := sampler.Get3D().Multiply(10).Subtract(core.Splat(5))
		radius := 0.1 + sampler.Get1D()*3
		sphere := NewSphere(center, radius, material.Material{})

		dir := core.SampleOnUnitSphere(sampler.Get2D())
		distance := radius + 0.01 + sampler.Get1D()*20
		origin := center.Add(dir.Multiply(distance))

		hit, ok := sphere.Hit(core.NewRay(origin, center.Subtract(origin)), false, false)
		if !ok {
			t.Fatalf("Ray toward center of %v r=%f missed", center, radius)
		}
		if math.Abs(hit.T-(distance-radius)) > 1e-6 {
			t.Fatalf("Expected t=%f, got %f", distance-radius, hit.T)
		}
	}
}

func TestSphere_MaterialAndTime(t *testing.T) {
	m := material.NewPlasticMaterial(core.NewVec3(1, 0, 0), core.NewVec3(1, 1, 1), 20)
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, m)

	ray := core.NewRayAt(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 0.7)
	hit, ok := sphere.Hit(ray, true, true)
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Material != m {
		t.Errorf("Expected material copy %v, got %v", m, hit.Material)
	}
	if hit.Time != 0.7 {
		t.Errorf("Expected time 0.7, got %f", hit.Time)
	}
}

func TestSphere_ImageTextureDecal(t *testing.T) {
	red := core.NewVec3(1, 0, 0)
	tex := material.NewImageTexture(1, 1, []core.Vec3{red})
	tex.Decal = material.DecalReplaceKd

	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, material.NewDiffuseMaterial(core.NewVec3(0, 0, 1)))
	sphere.ImageTexture = tex

	hit, ok := sphere.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), false, false)
	if !ok {
		t.Fatal("Expected hit")
	}
	if !hit.Texture.HasTexture || !hit.Texture.Color.Equals(red) {
		t.Errorf("Expected red texture info, got %+v", hit.Texture)
	}
	if !hit.Material.Diffuse.Equals(red) {
		t.Errorf("Expected diffuse replaced by texture, got %v", hit.Material.Diffuse)
	}
}

func TestSphere_SamplePointOnSurface(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2, material.Material{})
	sampler := core.NewSeededSampler(4)
	for i := 0; i < 100; i++ {
		p := sphere.SamplePoint(sampler)
		if math.Abs(p.Subtract(sphere.Center).Length()-2) > 1e-9 {
			t.Fatalf("Sample %v not on surface", p)
		}
	}
}
