package geometry

import (
	"math"
	"testing"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestPlacement_RoundTrip(t *testing.T) {
	transforms := map[string]core.Transform{
		"translation": core.Translation(core.NewVec3(1, -2, 3)),
		"scaling":     core.Scaling(core.NewVec3(2, 0.5, 3)),
		"rotation":    core.Rotation(37, core.NewVec3(1, 2, 0.5)),
		"composite":   core.Rotation(90, core.NewVec3(0, 1, 0)).Then(core.Scaling(core.NewVec3(2, 2, 2))).Then(core.Translation(core.NewVec3(0, 4, 0))),
	}

	shapes := map[string]func() Shape{
		"sphere": func() Shape {
			return NewSphere(core.NewVec3(0.5, 0, 0), 1, material.Material{})
		},
		"triangle": func() Shape {
			return NewTriangle(core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0.2), material.Material{})
		},
	}

	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)),
		core.NewRay(core.NewVec3(0.3, 0.2, 5), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewVec3(-4, 0.1, -4), core.NewVec3(1, 0, 1)),
	}

	for tName, tr := range transforms {
		for sName, build := range shapes {
			t.Run(tName+"/"+sName, func(t *testing.T) {
				plain := build()
				placed := build()
				placed.(interface{ SetTransform(core.Transform) }).SetTransform(tr.Then(tr.Invert()))

				if diff := cmp.Diff(plain.BoundingBox(), placed.BoundingBox(), approx); diff != "" {
					t.Errorf("Bounds not restored (-want +got):\n%s", diff)
				}

				for i, ray := range rays {
					want, wantOK := plain.Hit(ray, false, false)
					got, gotOK := placed.Hit(ray, false, false)
					if wantOK != gotOK {
						t.Fatalf("Ray %d: hit=%v, after round trip hit=%v", i, wantOK, gotOK)
					}
					if !wantOK {
						continue
					}
					if diff := cmp.Diff(want.Point, got.Point, approx); diff != "" {
						t.Errorf("Ray %d: hit point not restored (-want +got):\n%s", i, diff)
					}
					if math.Abs(want.T-got.T) > 1e-9 {
						t.Errorf("Ray %d: expected t=%f, got %f", i, want.T, got.T)
					}
				}
			})
		}
	}
}

func TestPlacement_NestedInstancesRoundTrip(t *testing.T) {
	tr := core.Scaling(core.NewVec3(2, 3, 0.5)).Then(core.Translation(core.NewVec3(4, 0, -1)))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, material.Material{})

	inner := NewArena(BVHBuilder{})
	h, _ := inner.Build([]Shape{sphere})
	forward := inner.NewInstance(h)
	forward.SetTransform(tr)

	outer := NewArena(BVHBuilder{})
	h2, _ := outer.Build([]Shape{forward})
	back := outer.NewInstance(h2)
	back.SetTransform(tr.Invert())

	if diff := cmp.Diff(sphere.BoundingBox(), back.BoundingBox(), approx); diff != "" {
		t.Errorf("Bounds not restored (-want +got):\n%s", diff)
	}

	ray := core.NewRay(core.NewVec3(0.2, 0.3, -5), core.NewVec3(0, 0, 1))
	want, _ := sphere.Hit(ray, false, false)
	got, ok := back.Hit(ray, false, false)
	if !ok {
		t.Fatal("Expected hit through nested instances")
	}
	if diff := cmp.Diff(want.Point, got.Point, approx); diff != "" {
		t.Errorf("Hit point not restored (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want.Normal, got.Normal, approx); diff != "" {
		t.Errorf("Normal not restored (-want +got):\n%s", diff)
	}
}

func TestPlacement_ScaledSphereNormalAndT(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, material.Material{})
	sphere.SetTransform(core.Scaling(core.NewVec3(2, 2, 2)))

	hit, ok := sphere.Hit(core.NewRay(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1)), false, false)
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-8) > 1e-9 {
		t.Errorf("Expected world t=8, got %f", hit.T)
	}
	if diff := cmp.Diff(core.NewVec3(0, 0, -1), hit.Normal, approx); diff != "" {
		t.Errorf("Normal mismatch (-want +got):\n%s", diff)
	}
}

func TestPlacement_MotionBlur(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 0.5, material.Material{})
	sphere.SetMotionBlur(core.NewVec3(2, 0, 0))

	box := sphere.BoundingBox()
	if diff := cmp.Diff(core.NewAABB(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(2.5, 0.5, 0.5)), box, approx); diff != "" {
		t.Errorf("Bounds must cover the motion sweep (-want +got):\n%s", diff)
	}

	atHalf := core.NewRayAt(core.NewVec3(1, 0, -5), core.NewVec3(0, 0, 1), 0.5)
	hit, ok := sphere.Hit(atHalf, false, false)
	if !ok || math.Abs(hit.T-4.5) > 1e-9 {
		t.Errorf("Expected hit at t=4.5 at time 0.5, got %v %f", ok, hit.T)
	}

	atStart := core.NewRayAt(core.NewVec3(1, 0, -5), core.NewVec3(0, 0, 1), 0)
	if _, ok := sphere.Hit(atStart, false, false); ok {
		t.Error("Expected miss at time 0 before the sphere moves")
	}
}

func TestPlacement_IdentityClearsTransform(t *testing.T) {
	tests := []struct {
		name string
		set  core.Transform
		want bool
	}{
		{"identity", core.IdentityTransform(), false},
		{"unit scale", core.Scaling(core.Splat(1)), false},
		{"translation", core.Translation(core.NewVec3(0, 1, 0)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSphere(core.Vec3{}, 1, material.Material{})
			s.SetTransform(tt.set)
			if _, ok := s.Transform(); ok != tt.want {
				t.Errorf("Transform() set = %v, want %v", ok, tt.want)
			}
		})
	}
}
