package scene

import (
	"fmt"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/df07/whitted-raytracer/pkg/lights"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// meshSceneSize is the largest extent a loaded mesh is scaled to
const meshSceneSize = 2.0

// NewMeshScene frames a loaded mesh: it is instanced, scaled so its largest
// extent is 2 and placed standing on a ground quad at the origin, then lit
// by a key point light, an area fill light and a directional rim light.
func NewMeshScene(mesh *geometry.TriangleMesh, cameraOverrides ...CameraConfig) (*Scene, error) {
	if mesh == nil || mesh.TriangleCount() == 0 {
		return nil, fmt.Errorf("mesh scene needs a non-empty mesh")
	}

	defaultCameraConfig := CameraConfig{
		Name:         "mesh.png",
		Width:        400,
		Height:       400,
		Samples:      4,
		Position:     core.NewVec3(2.5, 2, -4),
		Up:           core.NewVec3(0, 1, 0),
		NearDistance: 1,
		UseGazePoint: true,
		GazePoint:    core.NewVec3(0, 0.8, 0),
		FovY:         40,
		Gamma:        2.2,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	camera, err := NewCamera(cameraConfig)
	if err != nil {
		return nil, err
	}

	settings := DefaultSettings()
	settings.AmbientLight = core.NewVec3(0.15, 0.15, 0.15)
	settings.BackgroundColor = core.NewVec3(0.05, 0.05, 0.08)

	arena := geometry.NewArena(geometry.BVHBuilder{Policy: settings.SplitPolicy})
	handle, err := arena.Build(mesh.Triangles())
	if err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}
	root, _ := arena.Get(handle)
	box := root.BoundingBox()
	extent := box.Size()
	largest := max(extent.X, extent.Y, extent.Z)
	if largest <= 0 {
		return nil, fmt.Errorf("mesh has no extent")
	}

	// Bottom center to the origin, then fit
	base := core.NewVec3((box.Min.X+box.Max.X)/2, box.Min.Y, (box.Min.Z+box.Max.Z)/2)
	instance := arena.NewInstance(handle)
	instance.SetTransform(core.Translation(base.Negate()).Then(core.Scaling(core.Splat(meshSceneSize / largest))))

	fade := material.NewGradientTexture(2, 64, core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.4, 0.4, 0.45))
	fade.Decal = material.DecalBlendKd
	ground, err := createGroundQuad(core.Vec3{}, 20, material.NewDiffuseMaterial(core.NewVec3(0.6, 0.6, 0.6)), fade)
	if err != nil {
		return nil, err
	}

	shapes := append([]geometry.Shape{instance}, ground.Triangles()...)
	sceneLights := []lights.Light{
		lights.NewPointLight(core.NewVec3(3, 5, -3), core.NewVec3(30, 30, 28)),
		lights.NewAreaLight(core.NewVec3(-4, 3, -2), core.NewVec3(0, 0, 1.5), core.NewVec3(0, 1.5, 0), core.NewVec3(8, 9, 12)),
		lights.NewDirectionalLight(core.NewVec3(0.3, -0.6, -1), core.NewVec3(0.3, 0.3, 0.35)),
	}

	return New(shapes, sceneLights, []*Camera{camera}, settings)
}
