package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/whitted-raytracer/pkg/renderer"
	"github.com/tidwall/gjson"
)

type silentLogger struct{}

func (silentLogger) Printf(format string, args ...interface{}) {}

const squarePLY = `ply
format ascii 1.0
element vertex 4
property float x
property float y
property float z
element face 1
property list uchar int vertex_indices
end_header
-1 0 -1
1 0 -1
1 2 -1
-1 2 -1
4 0 1 2 3
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestCreateScene(t *testing.T) {
	dir := t.TempDir()
	meshPath := writeFile(t, dir, "square.ply", squarePLY)

	tests := []struct {
		name        string
		cfg         Config
		expectError bool
	}{
		{"single sphere", Config{Scene: "single-sphere"}, false},
		{"showcase", Config{Scene: "showcase", Width: 32, Height: 18}, false},
		{"mesh", Config{Scene: "mesh", MeshPath: meshPath}, false},
		{"mesh with torrance-sparrow", Config{Scene: "mesh", MeshPath: meshPath, MeshBRDF: "torrance_sparrow"}, false},

		{"mesh with unknown brdf", Config{Scene: "mesh", MeshPath: meshPath, MeshBRDF: "lambert"}, true},
		{"mesh without file", Config{Scene: "mesh"}, true},
		{"missing mesh file", Config{Scene: "mesh", MeshPath: filepath.Join(dir, "none.ply")}, true},
		{"missing envmap", Config{Scene: "showcase", EnvMapPath: filepath.Join(dir, "none.png")}, true},
		{"unknown scene", Config{Scene: "nonexistent"}, true},
		{"empty scene name", Config{Scene: ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.cfg)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %+v, but got none", tt.cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(s.Cameras) == 0 {
				t.Fatal("Scene has no camera")
			}
			if tt.cfg.Width != 0 && s.Cameras[0].Width() != tt.cfg.Width {
				t.Errorf("Width override not applied: got %d", s.Cameras[0].Width())
			}
		})
	}
}

func TestLoadOptions(t *testing.T) {
	dir := t.TempDir()
	optionsPath := writeFile(t, dir, "options.json", `{"workers": 3, "distribution": "tasklist"}`)

	tests := []struct {
		name        string
		cfg         Config
		wantWorkers int
		expectError bool
	}{
		{"auto workers", Config{Workers: -1}, renderer.AutoWorkerCount(), false},
		{"inline", Config{Workers: 0}, 0, false},
		{"file keeps its workers", Config{Workers: -1, OptionsPath: optionsPath}, 3, false},
		{"flag beats file", Config{Workers: 5, OptionsPath: optionsPath}, 5, false},
		{"invalid flag", Config{Workers: -2}, 0, true},
		{"missing file", Config{Workers: -1, OptionsPath: filepath.Join(dir, "none.json")}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options, err := loadOptions(tt.cfg)
			if tt.expectError {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if options.Workers != tt.wantWorkers {
				t.Errorf("Workers = %d, want %d", options.Workers, tt.wantWorkers)
			}
		})
	}
}

func TestRun_WritesImage(t *testing.T) {
	dir := t.TempDir()
	settingsPath := writeFile(t, dir, "settings.json", `{"backgroundColor": [0, 0, 1], "splitPolicy": "center"}`)

	cfg := Config{
		Scene:        "single-sphere",
		SettingsPath: settingsPath,
		OutputDir:    filepath.Join(dir, "out"),
		Workers:      2,
		Width:        16,
		Height:       16,
	}
	if err := run(cfg, silentLogger{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	file, err := os.Open(filepath.Join(cfg.OutputDir, "single_sphere.png"))
	if err != nil {
		t.Fatalf("Output not written: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("Image is %dx%d, want 16x16", b.Dx(), b.Dy())
	}

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "render_stats.json"))
	if err != nil {
		t.Fatalf("Stats not written: %v", err)
	}
	if got := gjson.GetBytes(data, "0.pixels").Int(); got != 256 {
		t.Errorf("Stats pixels = %d, want 256", got)
	}

	// The corner sees the overridden blue background
	r, g, b, _ := img.At(0, 0).RGBA()
	if r != 0 || g != 0 || b != 0xffff {
		t.Errorf("Corner = %v, want pure blue", fmt.Sprint(r, g, b))
	}
}

func TestRun_BadSettings(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Scene:        "single-sphere",
		SettingsPath: writeFile(t, dir, "settings.json", `{"maxDepth": -1}`),
		OutputDir:    dir,
	}
	if err := run(cfg, silentLogger{}); err == nil {
		t.Error("Expected error for invalid settings")
	}
}
