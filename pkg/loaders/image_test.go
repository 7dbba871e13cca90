package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// writeTestPNG encodes img into a temp file and returns its name
func writeTestPNG(t *testing.T, img image.Image) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(name)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return name
}

func TestLoadImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, A: 255})
	img.Set(0, 1, color.RGBA{G: 255, A: 255})
	img.Set(1, 1, color.RGBA{B: 255, A: 255})

	tex, err := LoadImage(writeTestPNG(t, img))
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if tex.Width != 2 || tex.Height != 2 {
		t.Fatalf("size = %dx%d, want 2x2", tex.Width, tex.Height)
	}

	// Row-major from the top
	want := []core.Vec3{
		core.NewVec3(1, 1, 1), core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1),
	}
	if diff := cmp.Diff(want, tex.Pixels, cmpopts.EquateApprox(0, 0.01)); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvironmentMap(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.White)
		img.Set(x, 1, color.Black)
	}

	tex, err := LoadEnvironmentMap(writeTestPNG(t, img))
	if err != nil {
		t.Fatalf("LoadEnvironmentMap: %v", err)
	}
	if tex.Interpolation != material.InterpolationBilinear || tex.Appearance != material.AppearanceRepeat {
		t.Errorf("filtering = %v/%v, want bilinear/repeat", tex.Interpolation, tex.Appearance)
	}
	if got := tex.LatLong(core.NewVec3(0, 1, 0)); got.X < 0.99 {
		t.Errorf("zenith = %v, want white", got)
	}
}

func TestImageErrors(t *testing.T) {
	tests := []struct {
		name string
		load func() error
	}{
		{"missing file", func() error {
			_, err := LoadImage("nonexistent.png")
			return err
		}},
		{"missing environment map", func() error {
			_, err := LoadEnvironmentMap("nonexistent.png")
			return err
		}},
		{"not an image", func() error {
			_, err := DecodeImage(strings.NewReader("not an image"))
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.load(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
