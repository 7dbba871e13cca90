package scene

import (
	"fmt"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/tidwall/gjson"
)

// Settings holds the scene-wide rendering parameters
type Settings struct {
	AmbientLight     core.Vec3
	BackgroundColor  core.Vec3 // Returned for rays that miss everything
	ShadowRayEpsilon float64   // Offset for shadow and secondary ray origins
	MaxDepth         int       // Mirror and refraction recursion limit
	SplitPolicy      geometry.SplitPolicy
}

// DefaultSettings returns settings for a black background with no ambient light
func DefaultSettings() Settings {
	return Settings{
		ShadowRayEpsilon: 1e-3,
		MaxDepth:         6,
		SplitPolicy:      geometry.SplitMedian,
	}
}

// Validate checks the settings ranges
func (s Settings) Validate() error {
	if s.MaxDepth < 0 {
		return fmt.Errorf("max depth must be non-negative, got %d", s.MaxDepth)
	}
	if s.ShadowRayEpsilon <= 0 {
		return fmt.Errorf("shadow ray epsilon must be positive, got %g", s.ShadowRayEpsilon)
	}
	return nil
}

// ParseSettings reads settings from JSON, starting from DefaultSettings
func ParseSettings(data []byte) (Settings, error) {
	return MergeSettings(DefaultSettings(), data)
}

// MergeSettings applies the keys present in JSON on top of base.
// Recognized keys: ambientLight, backgroundColor (three-element arrays),
// shadowRayEpsilon, maxDepth and splitPolicy ("median" or "center").
func MergeSettings(base Settings, data []byte) (Settings, error) {
	settings := base
	if !gjson.ValidBytes(data) {
		return settings, fmt.Errorf("invalid settings JSON")
	}

	var err error
	if v := gjson.GetBytes(data, "ambientLight"); v.Exists() {
		if settings.AmbientLight, err = ParseVec3(v); err != nil {
			return settings, fmt.Errorf("ambientLight: %w", err)
		}
	}
	if v := gjson.GetBytes(data, "backgroundColor"); v.Exists() {
		if settings.BackgroundColor, err = ParseVec3(v); err != nil {
			return settings, fmt.Errorf("backgroundColor: %w", err)
		}
	}
	if v := gjson.GetBytes(data, "shadowRayEpsilon"); v.Exists() {
		if v.Type != gjson.Number {
			return settings, fmt.Errorf("shadowRayEpsilon: expected a number, got %s", v.Raw)
		}
		settings.ShadowRayEpsilon = v.Float()
	}
	if v := gjson.GetBytes(data, "maxDepth"); v.Exists() {
		if v.Type != gjson.Number {
			return settings, fmt.Errorf("maxDepth: expected a number, got %s", v.Raw)
		}
		settings.MaxDepth = int(v.Int())
	}
	if v := gjson.GetBytes(data, "splitPolicy"); v.Exists() {
		policy, ok := geometry.ParseSplitPolicy(v.String())
		if !ok {
			return settings, fmt.Errorf("splitPolicy: unknown policy %q", v.String())
		}
		settings.SplitPolicy = policy
	}

	return settings, settings.Validate()
}

// ParseVec3 reads a three-element numeric JSON array
func ParseVec3(v gjson.Result) (core.Vec3, error) {
	values := v.Array()
	if !v.IsArray() || len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("expected [x, y, z], got %s", v.Raw)
	}
	for _, value := range values {
		if value.Type != gjson.Number {
			return core.Vec3{}, fmt.Errorf("expected numbers, got %s", v.Raw)
		}
	}
	return core.NewVec3(values[0].Float(), values[1].Float(), values[2].Float()), nil
}
