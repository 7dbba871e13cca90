package scene

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/df07/whitted-raytracer/pkg/lights"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, then cube
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewShowcaseScene creates a scene exercising every shape, material and
// light kind: mirror, glass, textured and microfacet spheres, instanced
// icosahedra (one motion blurred), an emissive sphere and an emissive
// pyramid, plus area, spot and point lights. A non-nil environment map adds
// an environment light.
func NewShowcaseScene(environment *material.ImageTexture, cameraOverrides ...CameraConfig) (*Scene, error) {
	defaultCameraConfig := CameraConfig{
		Name:          "showcase.png",
		Width:         640,
		Height:        360,
		Samples:       16,
		Position:      core.NewVec3(0, 2.5, -9),
		Up:            core.NewVec3(0, 1, 0),
		NearDistance:  1,
		UseGazePoint:  true,
		GazePoint:     core.NewVec3(0, 1, 0),
		FovY:          40,
		FocusDistance: 9.5,
		Aperture:      0.05,
		Gamma:         2.2,
		Clamp:         1,
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
	settings.AmbientLight = core.NewVec3(0.2, 0.2, 0.25)
	settings.BackgroundColor = core.NewVec3(0.02, 0.02, 0.05)
	settings.MaxDepth = 8

	var shapes []geometry.Shape
	var sceneLights []lights.Light

	// Checkered ground
	checker := material.NewCheckerboardTexture(256, 256, 32, core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.2, 0.2, 0.3))
	checker.Decal = material.DecalBlendKd
	checker.Interpolation = material.InterpolationBilinear
	ground, err := createGroundQuad(core.NewVec3(0, 0, 0), 40, material.NewDiffuseMaterial(core.NewVec3(0.7, 0.7, 0.7)), checker)
	if err != nil {
		return nil, err
	}
	shapes = append(shapes, ground.Triangles()...)

	// Center spheres
	mirror := material.NewMirrorMaterial(core.NewVec3(0.9, 0.9, 0.9), 0)
	mirror.Ambient = core.NewVec3(0.02, 0.02, 0.02)
	shapes = append(shapes, geometry.NewSphere(core.NewVec3(-1.5, 1, 0), 1, mirror))

	glass := material.NewGlassMaterial(core.NewVec3(0.95, 0.98, 0.95), 1.5)
	shapes = append(shapes, geometry.NewSphere(core.NewVec3(0.6, 0.7, -1.5), 0.7, glass))

	marble := geometry.NewSphere(core.NewVec3(2, 0.8, 0.5), 0.8, material.NewPlasticMaterial(core.NewVec3(0.8, 0.8, 0.8), core.NewVec3(0.5, 0.5, 0.5), 40))
	marble.PerlinTexture = material.NewPerlinTexture(material.PerlinVein, 3, core.NewSeededSampler(1))
	marble.PerlinTexture.Decal = material.DecalReplaceKd
	marble.PerlinTexture.Bump = true
	marble.PerlinTexture.BumpMultiplier = 0.3
	shapes = append(shapes, marble)

	copper := material.NewPlasticMaterial(core.NewVec3(0.6, 0.3, 0.15), core.NewVec3(0.9, 0.6, 0.4), 60)
	copper.BRDF = material.BRDF{Mode: material.BRDFTorranceSparrow, Exponent: 60, RefractiveIndex: 2.5}
	shapes = append(shapes, geometry.NewSphere(core.NewVec3(0, 0.5, 2), 0.5, copper))

	// A row of small spheres cycling through the BRDF models
	modes := []material.BRDFMode{
		material.BRDFDefault, material.BRDFPhong, material.BRDFPhongModified,
		material.BRDFBlinnPhong, material.BRDFBlinnPhongModified, material.BRDFTorranceSparrow,
	}
	for i, mode := range modes {
		color := oklchToRGB(0.7, 0.15, float64(i)*360/float64(len(modes)))
		m := material.NewPlasticMaterial(color, core.NewVec3(0.6, 0.6, 0.6), 30)
		m.BRDF = material.BRDF{Mode: mode, Exponent: 30, RefractiveIndex: 1.5, Normalized: i%2 == 0}
		x := -3 + float64(i)*1.2
		shapes = append(shapes, geometry.NewSphere(core.NewVec3(x, 0.3, -3.5), 0.3, m))
	}

	// Instanced icosahedra sharing one subtree
	arena := geometry.NewArena(geometry.BVHBuilder{Policy: settings.SplitPolicy})
	ico, err := createIcosahedronMesh(0.6, material.NewPlasticMaterial(core.NewVec3(0.2, 0.4, 0.8), core.NewVec3(0.4, 0.4, 0.4), 50),
		&geometry.TriangleMeshOptions{Shading: geometry.ShadingSmooth})
	if err != nil {
		return nil, err
	}
	icoHandle, err := arena.Build(ico.Triangles())
	if err != nil {
		return nil, err
	}

	still := arena.NewInstance(icoHandle)
	still.SetTransform(core.Rotation(30, core.NewVec3(0, 1, 0)).Then(core.Translation(core.NewVec3(-3.2, 0.6, 1.5))))
	shapes = append(shapes, still)

	moving := arena.NewInstance(icoHandle)
	moving.SetTransform(core.Scaling(core.NewVec3(0.8, 0.8, 0.8)).Then(core.Translation(core.NewVec3(3.2, 0.5, -1.5))))
	moving.SetMotionBlur(core.NewVec3(0.6, 0, 0))
	moving.SetMaterial(material.NewPlasticMaterial(core.NewVec3(0.8, 0.2, 0.3), core.NewVec3(0.4, 0.4, 0.4), 50))
	shapes = append(shapes, moving)

	box, err := createBoxMesh(core.NewVec3(0.8, 0.8, 0.8), material.NewDiffuseMaterial(core.NewVec3(0.8, 0.7, 0.3)))
	if err != nil {
		return nil, err
	}
	boxHandle, err := arena.Build(box.Triangles())
	if err != nil {
		return nil, err
	}
	crate := arena.NewInstance(boxHandle)
	crate.SetTransform(core.Rotation(20, core.NewVec3(0, 1, 0)).Then(core.Translation(core.NewVec3(1.5, 0.4, 2.5))))
	shapes = append(shapes, crate)

	// Emissive shapes are lights and shapes at once
	glow := lights.NewEmissiveSphere(core.NewVec3(-4, 3, 3), 0.4, core.NewVec3(8, 6, 3))
	shapes = append(shapes, glow)
	sceneLights = append(sceneLights, glow)

	pyramid, err := createPyramidMesh(0.6, 0.8, material.Material{})
	if err != nil {
		return nil, err
	}
	pyramidHandle, err := arena.Build(pyramid.Triangles())
	if err != nil {
		return nil, err
	}
	beacon := arena.NewInstance(pyramidHandle)
	beacon.SetTransform(core.Translation(core.NewVec3(4, 0.4, 3)))
	beaconLight := lights.NewEmissiveMesh(beacon, core.NewVec3(2, 4, 6))
	shapes = append(shapes, beaconLight)
	sceneLights = append(sceneLights, beaconLight)

	// Analytic lights
	sceneLights = append(sceneLights,
		lights.NewAreaLight(core.NewVec3(-1, 6, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), core.NewVec3(60, 60, 55)),
		lights.NewSpotLight(core.NewVec3(0, 5, -4), core.NewVec3(0, -1, 0.6), core.NewVec3(40, 38, 30), 50, 30),
		lights.NewPointLight(core.NewVec3(5, 4, -5), core.NewVec3(20, 20, 24)),
	)

	if environment != nil {
		sceneLights = append(sceneLights, lights.NewEnvironmentLight(environment, lights.SampleCosine, true))
	}

	return New(shapes, sceneLights, []*Camera{camera}, settings)
}
