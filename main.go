package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/integrator"
	"github.com/df07/whitted-raytracer/pkg/loaders"
	"github.com/df07/whitted-raytracer/pkg/material"
	"github.com/df07/whitted-raytracer/pkg/renderer"
	"github.com/df07/whitted-raytracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	Scene        string
	MeshPath     string
	MeshBRDF     string // reflectance model of the mesh material
	EnvMapPath   string
	SettingsPath string
	OptionsPath  string
	OutputDir    string
	Workers      int // -1 uses one worker per logical core
	Samples      int
	Width        int
	Height       int
	NoCulling    bool
}

func parseFlags() (Config, bool) {
	var cfg Config
	flag.StringVar(&cfg.Scene, "scene", "single-sphere", "Built-in scene id, or 'mesh' with -mesh")
	flag.StringVar(&cfg.MeshPath, "mesh", "", "PLY file rendered by the 'mesh' scene")
	flag.StringVar(&cfg.MeshBRDF, "brdf", "default", "Mesh BRDF: default, phong, phong_modified, blinnphong, blinnphong_modified, torrance_sparrow")
	flag.StringVar(&cfg.EnvMapPath, "envmap", "", "Lat-long PNG or JPEG environment map")
	flag.StringVar(&cfg.SettingsPath, "settings", "", "JSON file overriding scene settings")
	flag.StringVar(&cfg.OptionsPath, "options", "", "JSON file with render options")
	flag.StringVar(&cfg.OutputDir, "output", "output", "Directory for rendered images")
	flag.IntVar(&cfg.Workers, "workers", -1, "Worker goroutines (0 renders inline, -1 uses every core)")
	flag.IntVar(&cfg.Samples, "samples", 0, "Samples per pixel (0 keeps the scene's)")
	flag.IntVar(&cfg.Width, "width", 0, "Image width (0 keeps the scene's)")
	flag.IntVar(&cfg.Height, "height", 0, "Image height (0 keeps the scene's)")
	flag.BoolVar(&cfg.NoCulling, "no-culling", false, "Disable backface culling of primary rays")
	list := flag.Bool("list", false, "List built-in scenes and exit")
	flag.Parse()
	return cfg, *list
}

func main() {
	cfg, list := parseFlags()
	if list {
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-14s %s\n", info.ID, info.Description)
		}
		fmt.Printf("  %-14s %s\n", "mesh", "A PLY mesh given with -mesh, framed on a ground plane")
		return
	}

	if err := run(cfg, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run builds the scene, renders every camera and writes one PNG per camera
func run(cfg Config, logger core.Logger) error {
	s, err := createScene(cfg)
	if err != nil {
		return err
	}

	if cfg.SettingsPath != "" {
		data, err := os.ReadFile(cfg.SettingsPath)
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		settings, err := scene.MergeSettings(s.Settings, data)
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.SettingsPath, err)
		}
		if s, err = s.WithSettings(settings); err != nil {
			return err
		}
	}

	options, err := loadOptions(cfg)
	if err != nil {
		return err
	}

	nodes, depth := s.BVHStats()
	logger.Printf("Scene %s: %d primitives, %d lights, BVH %d nodes deep %d\n",
		cfg.Scene, s.PrimitiveCount(), len(s.Lights), nodes, depth)

	r, err := renderer.NewRenderer(s, integrator.NewWhitted(s), options, logger)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	images := make(map[*scene.Camera]*renderer.LinearImage)
	stats := r.GenerateImages(func(camera *scene.Camera) renderer.ImageSink {
		img := renderer.NewLinearImage(camera.Width(), camera.Height())
		images[camera] = img
		return img
	})

	for _, camera := range s.Cameras {
		filename := filepath.Join(cfg.OutputDir, camera.Config().Name)
		if err := writePNG(filename, images[camera], camera.Config()); err != nil {
			return err
		}
		logger.Printf("Render saved as %s (average luminance %.3f)\n", filename, renderer.AverageLuminance(images[camera]))
	}

	data, err := renderer.StatsJSON(stats)
	if err != nil {
		return err
	}
	statsFile := filepath.Join(cfg.OutputDir, "render_stats.json")
	if err := os.WriteFile(statsFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write render stats: %w", err)
	}
	return nil
}

// createScene builds the selected scene with the size and sample overrides
func createScene(cfg Config) (*scene.Scene, error) {
	overrides := scene.CameraConfig{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Samples: cfg.Samples,
	}

	if cfg.Scene == "mesh" {
		if cfg.MeshPath == "" {
			return nil, fmt.Errorf("the mesh scene needs -mesh")
		}
		mat, err := meshMaterial(cfg.MeshBRDF)
		if err != nil {
			return nil, err
		}
		mesh, err := loaders.LoadPLYMesh(cfg.MeshPath, mat, nil)
		if err != nil {
			return nil, err
		}
		return scene.NewMeshScene(mesh, overrides)
	}

	var environment *material.ImageTexture
	if cfg.EnvMapPath != "" {
		var err error
		if environment, err = loaders.LoadEnvironmentMap(cfg.EnvMapPath); err != nil {
			return nil, err
		}
	}
	return scene.NewBuiltInScene(cfg.Scene, environment, overrides)
}

// meshMaterial is an orange plastic lit through the named BRDF
func meshMaterial(brdf string) (material.Material, error) {
	mat := material.NewPlasticMaterial(core.NewVec3(0.8, 0.6, 0.3), core.NewVec3(0.5, 0.5, 0.5), 40)
	if brdf == "" {
		return mat, nil
	}
	mode, ok := material.ParseBRDFMode(brdf)
	if !ok {
		return material.Material{}, fmt.Errorf("unknown BRDF %q", brdf)
	}
	mat.BRDF = material.BRDF{Mode: mode, Exponent: mat.PhongExponent, RefractiveIndex: 1.5}
	return mat, nil
}

// loadOptions reads the options file, then applies the flags
func loadOptions(cfg Config) (renderer.Options, error) {
	options := renderer.DefaultOptions()
	if cfg.OptionsPath != "" {
		data, err := os.ReadFile(cfg.OptionsPath)
		if err != nil {
			return options, fmt.Errorf("failed to read options: %w", err)
		}
		if options, err = renderer.ParseOptions(data); err != nil {
			return options, fmt.Errorf("%s: %w", cfg.OptionsPath, err)
		}
	}

	switch {
	case cfg.Workers == -1:
		if cfg.OptionsPath == "" {
			options.Workers = renderer.AutoWorkerCount()
		}
	case cfg.Workers >= 0:
		options.Workers = cfg.Workers
	default:
		return options, fmt.Errorf("workers must be -1 or more, got %d", cfg.Workers)
	}
	if cfg.NoCulling {
		options.BackfaceCulling = false
	}
	return options, nil
}

// writePNG applies the camera's clamp and gamma and encodes the image
func writePNG(filename string, img *renderer.LinearImage, camera scene.CameraConfig) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img.ToRGBA(camera.Gamma, camera.Clamp)); err != nil {
		return fmt.Errorf("failed to save PNG: %w", err)
	}
	return nil
}
