package scene

import (
	"fmt"

	"github.com/df07/whitted-raytracer/pkg/material"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
}

var builtInScenes = []SceneInfo{
	{
		ID:          "single-sphere",
		Name:        "Single Sphere",
		Description: "Unit diffuse sphere lit from behind by a point light",
	},
	{
		ID:          "showcase",
		Name:        "Showcase",
		Description: "Mirror, glass and textured spheres, instanced meshes with motion blur, every light kind",
	},
}

// ListScenes returns the built-in scenes
func ListScenes() []SceneInfo {
	return append([]SceneInfo(nil), builtInScenes...)
}

// NewBuiltInScene creates a built-in scene by id. environment is only used
// by scenes that support an environment light and may be nil.
func NewBuiltInScene(id string, environment *material.ImageTexture, cameraOverrides ...CameraConfig) (*Scene, error) {
	switch id {
	case "single-sphere":
		return NewSingleSphereScene(cameraOverrides...)
	case "showcase":
		return NewShowcaseScene(environment, cameraOverrides...)
	}
	return nil, fmt.Errorf("unknown scene %q", id)
}
