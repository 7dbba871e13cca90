package scene

import (
	"testing"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/df07/whitted-raytracer/pkg/lights"
	"github.com/df07/whitted-raytracer/pkg/material"
)

func TestNew_RejectsNilEntries(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.Material{})
	light := lights.NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(1, 1, 1))

	tests := []struct {
		name    string
		shapes  []geometry.Shape
		lights  []lights.Light
		cameras []*Camera
	}{
		{"nil shape", []geometry.Shape{sphere, nil}, nil, nil},
		{"nil light", []geometry.Shape{sphere}, []lights.Light{nil}, nil},
		{"nil camera", nil, []lights.Light{light}, []*Camera{nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.shapes, tt.lights, tt.cameras, DefaultSettings()); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestNew_RejectsInvalidSettings(t *testing.T) {
	settings := DefaultSettings()
	settings.MaxDepth = -1
	if _, err := New(nil, nil, nil, settings); err == nil {
		t.Error("Expected error for negative max depth")
	}
}

func TestScene_EmptyMisses(t *testing.T) {
	s, err := New(nil, nil, nil, DefaultSettings())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := s.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), false, false); ok {
		t.Error("Expected empty scene to miss")
	}
}

func TestScene_HitUsesBVH(t *testing.T) {
	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, 0, 5), 1, material.Material{}),
		geometry.NewSphere(core.NewVec3(0, 0, 10), 1, material.Material{}),
		geometry.NewSphere(core.NewVec3(5, 0, 0), 1, material.Material{}),
	}
	s, err := New(shapes, nil, nil, DefaultSettings())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	hit, ok := s.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), false, false)
	if !ok || hit.T != 4 {
		t.Errorf("Expected nearest hit at t=4, got %v %f", ok, hit.T)
	}
	if nodes, depth := s.BVHStats(); nodes != 2 || depth != 2 {
		t.Errorf("Expected 2 nodes of depth 2, got %d nodes depth %d", nodes, depth)
	}
}

func TestBuiltInScenes(t *testing.T) {
	for _, info := range ListScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := NewBuiltInScene(info.ID, nil, CameraConfig{Width: 32, Height: 24})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.Root == nil || len(s.Lights) == 0 || len(s.Cameras) != 1 {
				t.Fatalf("Incomplete scene: root=%v lights=%d cameras=%d", s.Root, len(s.Lights), len(s.Cameras))
			}
			if s.Cameras[0].Width() != 32 || s.Cameras[0].Height() != 24 {
				t.Errorf("Camera override not applied: %dx%d", s.Cameras[0].Width(), s.Cameras[0].Height())
			}
		})
	}

	if _, err := NewBuiltInScene("missing", nil); err == nil {
		t.Error("Expected error for unknown scene")
	}
}

func TestShowcaseScene_EnvironmentLight(t *testing.T) {
	env := material.NewImageTexture(1, 1, []core.Vec3{core.NewVec3(0.5, 0.6, 0.8)})
	without, err := NewShowcaseScene(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	with, err := NewShowcaseScene(env)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(with.Lights) != len(without.Lights)+1 {
		t.Errorf("Expected one extra light, got %d vs %d", len(with.Lights), len(without.Lights))
	}
	if _, ok := with.Lights[len(with.Lights)-1].(*lights.EnvironmentLight); !ok {
		t.Errorf("Expected environment light last, got %T", with.Lights[len(with.Lights)-1])
	}
}

func TestMeshHelpers_OutwardNormals(t *testing.T) {
	box, err := createBoxMesh(core.NewVec3(1, 2, 3), material.Material{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	pyramid, err := createPyramidMesh(1, 1, material.Material{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	ico, err := createIcosahedronMesh(1, material.Material{}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	meshes := map[string]*geometry.TriangleMesh{"box": box, "pyramid": pyramid, "icosahedron": ico}
	counts := map[string]int{"box": 12, "pyramid": 6, "icosahedron": 20}

	for name, mesh := range meshes {
		t.Run(name, func(t *testing.T) {
			if mesh.TriangleCount() != counts[name] {
				t.Errorf("Expected %d triangles, got %d", counts[name], mesh.TriangleCount())
			}
			for i, shape := range mesh.Triangles() {
				tri := shape.(*geometry.Triangle)
				centroid := tri.Vertices[0].Position.Add(tri.Vertices[1].Position).Add(tri.Vertices[2].Position).Multiply(1.0 / 3)
				if tri.Normal().Dot(centroid) <= 0 {
					t.Errorf("Triangle %d normal %v points inward", i, tri.Normal())
				}
			}
		})
	}

	for _, v := range ico.Vertices() {
		if l := v.Position.Length(); l < 1-1e-9 || l > 1+1e-9 {
			t.Errorf("Icosahedron vertex %v not on the unit sphere", v.Position)
		}
	}
}

func TestMeshScene_FitsMeshOnGround(t *testing.T) {
	box, err := createBoxMesh(core.Splat(4), material.NewDiffuseMaterial(core.NewVec3(1, 1, 1)))
	if err != nil {
		t.Fatalf("createBoxMesh: %v", err)
	}
	s, err := NewMeshScene(box, CameraConfig{Width: 16, Height: 16})
	if err != nil {
		t.Fatalf("NewMeshScene: %v", err)
	}

	// The 4-wide box is scaled to 2 and stands on y=0
	down := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
	hit, ok := s.Hit(down, true, false)
	if !ok {
		t.Fatal("Expected to hit the box top")
	}
	if hit.T < 3-1e-9 || hit.T > 3+1e-9 {
		t.Errorf("Box top at t=%v, want 3", hit.T)
	}

	beside := core.NewRay(core.NewVec3(1.5, 5, 0), core.NewVec3(0, -1, 0))
	hit, ok = s.Hit(beside, true, false)
	if !ok || hit.T < 5-1e-9 || hit.T > 5+1e-9 {
		t.Errorf("Expected the ground at t=5 beside the box, got %v, %v", hit.T, ok)
	}

	if _, err := NewMeshScene(nil); err == nil {
		t.Error("Expected error for nil mesh")
	}
}
