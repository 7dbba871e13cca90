package renderer

import (
	"image/color"
	"testing"
	"time"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/tidwall/gjson"
)

func TestLinearImage_ToRGBA(t *testing.T) {
	img := NewLinearImage(3, 1)
	img.SetColor(0, 0, core.NewVec3(0.25, 0.5, 2))
	img.SetColor(1, 0, core.NewVec3(-1, 0, 1))
	img.SetColor(2, 0, core.NewVec3(0.25, 0.25, 0.25))

	tests := []struct {
		name     string
		gamma    float64
		maxValue float64
		x        int
		want     color.RGBA
	}{
		{"linear clamps to one", 0, 0, 0, color.RGBA{64, 128, 255, 255}},
		{"negative clamps to zero", 0, 0, 1, color.RGBA{0, 0, 255, 255}},
		{"max value rescales", 0, 2, 0, color.RGBA{32, 64, 255, 255}},
		{"gamma 2 takes the square root", 2, 0, 2, color.RGBA{128, 128, 128, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := img.ToRGBA(tt.gamma, tt.maxValue).RGBAAt(tt.x, 0)
			if got != tt.want {
				t.Errorf("Pixel %d = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestAverageLuminance(t *testing.T) {
	img := NewLinearImage(2, 2)
	img.SetColor(0, 0, core.NewVec3(1, 0, 0))
	img.SetColor(1, 0, core.NewVec3(0, 1, 0))
	img.SetColor(0, 1, core.NewVec3(0, 0, 1))

	expected := (0.299 + 0.587 + 0.114) / 4
	tolerance := 0.0001
	if got := AverageLuminance(img); got < expected-tolerance || got > expected+tolerance {
		t.Errorf("Expected average luminance %f, got %f", expected, got)
	}

	if got := AverageLuminance(NewLinearImage(0, 0)); got != 0 {
		t.Errorf("Empty image luminance = %f, want 0", got)
	}
}

func TestRenderStats_AverageSamples(t *testing.T) {
	stats := RenderStats{TotalPixels: 4, TotalSamples: 36}
	if got := stats.AverageSamples(); got != 9 {
		t.Errorf("AverageSamples() = %v, want 9", got)
	}
	if got := (RenderStats{}).AverageSamples(); got != 0 {
		t.Errorf("Empty AverageSamples() = %v, want 0", got)
	}
}

func TestStatsJSON(t *testing.T) {
	stats := []RenderStats{
		{Camera: "a.png", TotalPixels: 4, TotalSamples: 36, Workers: 2, Duration: 1500 * time.Millisecond},
		{Camera: "b.png", TotalPixels: 1, TotalSamples: 1},
	}
	data, err := StatsJSON(stats)
	if err != nil {
		t.Fatalf("StatsJSON: %v", err)
	}
	if !gjson.ValidBytes(data) {
		t.Fatalf("invalid JSON:\n%s", data)
	}

	tests := []struct {
		path string
		want string
	}{
		{"#", "2"},
		{"0.camera", "a.png"},
		{"0.samplesPerPixel", "9"},
		{"0.workers", "2"},
		{"0.durationMs", "1500"},
		{"1.camera", "b.png"},
		{"1.pixels", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := gjson.GetBytes(data, tt.path).String(); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestStatsJSON_Empty(t *testing.T) {
	data, err := StatsJSON(nil)
	if err != nil {
		t.Fatalf("StatsJSON: %v", err)
	}
	if got := gjson.GetBytes(data, "#").Int(); got != 0 {
		t.Errorf("entries = %d, want 0", got)
	}
}
