package renderer

import (
	"fmt"
	"time"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// RenderStats contains statistics about one camera's render
type RenderStats struct {
	Camera       string        // Output name of the camera
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of primary rays traced
	Workers      int           // Worker goroutines used; 0 means inline
	Duration     time.Duration // Wall-clock render time
}

// AverageSamples returns the primary rays traced per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// String formats the stats for logging
func (s RenderStats) String() string {
	return fmt.Sprintf("%s: %d pixels, %.1f samples/pixel, %d workers, %v",
		s.Camera, s.TotalPixels, s.AverageSamples(), s.Workers, s.Duration.Round(time.Millisecond))
}

// workerStats is the per-worker tally merged after the join
type workerStats struct {
	pixels  int
	samples int
}

func (s *RenderStats) merge(w workerStats) {
	s.TotalPixels += w.pixels
	s.TotalSamples += w.samples
}

// AverageLuminance returns the mean luminance of a linear image
func AverageLuminance(img *LinearImage) float64 {
	total := img.width * img.height
	if total == 0 {
		return 0
	}
	var sum float64
	for _, c := range img.pixels {
		sum += c.Luminance()
	}
	return sum / float64(total)
}

// StatsJSON encodes a batch of render stats as an indented JSON array
func StatsJSON(stats []RenderStats) ([]byte, error) {
	doc := []byte("[]")
	for _, s := range stats {
		fields := []struct {
			key   string
			value any
		}{
			{"camera", s.Camera},
			{"pixels", s.TotalPixels},
			{"samples", s.TotalSamples},
			{"samplesPerPixel", s.AverageSamples()},
			{"workers", s.Workers},
			{"durationMs", s.Duration.Milliseconds()},
		}
		entry := []byte("{}")
		for _, f := range fields {
			var err error
			if entry, err = sjson.SetBytes(entry, f.key, f.value); err != nil {
				return nil, fmt.Errorf("failed to encode stats for %s: %w", s.Camera, err)
			}
		}

		var err error
		if doc, err = sjson.SetRawBytes(doc, "-1", entry); err != nil {
			return nil, fmt.Errorf("failed to encode stats for %s: %w", s.Camera, err)
		}
	}
	return pretty.Pretty(doc), nil
}
