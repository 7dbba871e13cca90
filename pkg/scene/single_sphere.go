package scene

import (
	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/df07/whitted-raytracer/pkg/lights"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// NewSingleSphereScene creates a unit white sphere at the origin, a point
// light behind it at (0,0,5) and a camera at (0,0,-5) looking down +Z. The
// visible hemisphere faces away from the light, so it shows the ambient term.
func NewSingleSphereScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	defaultCameraConfig := CameraConfig{
		Name:         "single_sphere.png",
		Width:        64,
		Height:       64,
		Samples:      1,
		Position:     core.NewVec3(0, 0, -5),
		Up:           core.NewVec3(0, 1, 0),
		NearDistance: 1,
		UseGazePoint: true,
		GazePoint:    core.NewVec3(0, 0, 0),
		FovY:         30,
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
	settings.AmbientLight = core.NewVec3(0.5, 0.5, 0.5)
	settings.BackgroundColor = core.NewVec3(0.1, 0.2, 0.3)

	white := material.NewDiffuseMaterial(core.NewVec3(1, 1, 1))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, white)
	light := lights.NewPointLight(core.NewVec3(0, 0, 5), core.NewVec3(10, 10, 10))

	return New(
		[]geometry.Shape{sphere},
		[]lights.Light{light},
		[]*Camera{camera},
		settings,
	)
}
