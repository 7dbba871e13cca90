package renderer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/tidwall/gjson"
)

// Options controls how a render is distributed and traced
type Options struct {
	Workers          int           // Worker goroutines; 0 renders inline on the caller
	BackfaceCulling  bool          // Passed to primary ray queries
	Distribution     Distribution  // Cursor or pre-built task list
	Seed             int64         // Worker i samples with Seed+i
	ProgressInterval time.Duration // 0 disables progress logging
}

// DefaultOptions returns one worker per logical core with culling enabled
func DefaultOptions() Options {
	return Options{
		Workers:          AutoWorkerCount(),
		BackfaceCulling:  true,
		Distribution:     DistributeCursor,
		Seed:             42,
		ProgressInterval: 2 * time.Second,
	}
}

// Validate checks the option ranges
func (o Options) Validate() error {
	if o.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", o.Workers)
	}
	if o.ProgressInterval < 0 {
		return fmt.Errorf("progress interval must be non-negative, got %v", o.ProgressInterval)
	}
	return nil
}

// ParseOptions reads options from JSON, starting from DefaultOptions.
// Recognized keys: workers, backfaceCulling, distribution ("cursor" or
// "tasklist"), seed and progressInterval (a duration string such as "500ms").
func ParseOptions(data []byte) (Options, error) {
	options := DefaultOptions()
	if !gjson.ValidBytes(data) {
		return options, fmt.Errorf("invalid options JSON")
	}

	if v := gjson.GetBytes(data, "workers"); v.Exists() {
		if v.Type != gjson.Number {
			return options, fmt.Errorf("workers: expected a number, got %s", v.Raw)
		}
		options.Workers = int(v.Int())
	}
	if v := gjson.GetBytes(data, "backfaceCulling"); v.Exists() {
		if !v.IsBool() {
			return options, fmt.Errorf("backfaceCulling: expected a boolean, got %s", v.Raw)
		}
		options.BackfaceCulling = v.Bool()
	}
	if v := gjson.GetBytes(data, "distribution"); v.Exists() {
		d, ok := ParseDistribution(v.String())
		if !ok {
			return options, fmt.Errorf("distribution: unknown distribution %q", v.String())
		}
		options.Distribution = d
	}
	if v := gjson.GetBytes(data, "seed"); v.Exists() {
		if v.Type != gjson.Number {
			return options, fmt.Errorf("seed: expected a number, got %s", v.Raw)
		}
		options.Seed = v.Int()
	}
	if v := gjson.GetBytes(data, "progressInterval"); v.Exists() {
		interval, err := time.ParseDuration(v.String())
		if err != nil {
			return options, fmt.Errorf("progressInterval: %w", err)
		}
		options.ProgressInterval = interval
	}

	return options, options.Validate()
}

// AutoWorkerCount returns the number of logical cores
func AutoWorkerCount() int {
	counts, err := cpu.Counts(true)
	if err != nil || counts < 1 {
		return runtime.NumCPU()
	}
	return counts
}
