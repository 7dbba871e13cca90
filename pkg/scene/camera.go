package scene

import (
	"fmt"
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
)

// Handedness selects the orientation of the camera frame
type Handedness int

const (
	RightHanded Handedness = iota
	LeftHanded
)

// NearPlane is the image rectangle in camera coordinates
type NearPlane struct {
	Left, Right, Bottom, Top float64
}

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Name    string // Output image name
	Width   int    // Image width in pixels
	Height  int    // Image height in pixels
	Samples int    // Rays per pixel, arranged in a round(√N)×round(√N) grid

	Position     core.Vec3
	Up           core.Vec3
	Gaze         core.Vec3 // Viewing direction, unless UseGazePoint is set
	NearPlane    NearPlane // Ignored when UseGazePoint is set
	NearDistance float64

	UseGazePoint bool      // Derive gaze and near plane from GazePoint and FovY
	GazePoint    core.Vec3 // Point the camera looks at
	FovY         float64   // Vertical field of view in degrees

	FocusDistance float64 // 0 disables depth of field
	Aperture      float64 // Lens diameter; 0 is a pinhole
	Handedness    Handedness

	// Carried for the image writer, never applied to the linear image
	Gamma float64 // 0 leaves the image linear
	Clamp float64 // 0 disables clamping
}

// DefaultCameraConfig looks down +Z from the origin with a 60° field of view
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Name:         "output.png",
		Width:        400,
		Height:       300,
		Samples:      1,
		Up:           core.NewVec3(0, 1, 0),
		NearDistance: 1,
		UseGazePoint: true,
		GazePoint:    core.NewVec3(0, 0, 1),
		FovY:         60,
	}
}

// MergeCameraConfig applies the non-zero fields of override on top of base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Name != "" {
		result.Name = override.Name
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.Samples != 0 {
		result.Samples = override.Samples
	}
	if !override.Position.IsZero() {
		result.Position = override.Position
	}
	if !override.Up.IsZero() {
		result.Up = override.Up
	}
	if !override.Gaze.IsZero() {
		result.Gaze = override.Gaze
		result.UseGazePoint = false
	}
	if override.NearPlane != (NearPlane{}) {
		result.NearPlane = override.NearPlane
		result.UseGazePoint = false
	}
	if override.NearDistance != 0 {
		result.NearDistance = override.NearDistance
	}
	if override.UseGazePoint {
		result.UseGazePoint = true
		result.GazePoint = override.GazePoint
	}
	if override.FovY != 0 {
		result.FovY = override.FovY
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	if override.Aperture != 0 {
		result.Aperture = override.Aperture
	}
	if override.Handedness != RightHanded {
		result.Handedness = override.Handedness
	}
	if override.Gamma != 0 {
		result.Gamma = override.Gamma
	}
	if override.Clamp != 0 {
		result.Clamp = override.Clamp
	}
	return result
}

// Gaussian reconstruction kernel over pixel-space offsets from the center
const gaussianSigma = 1.16

var gaussianK = math.Exp(-1/(2*gaussianSigma*gaussianSigma)) / (2 * math.Pi * gaussianSigma * gaussianSigma)

func gaussianWeight(dx, dy float64) float64 {
	return gaussianK * math.Exp(-(dx*dx+dy*dy)/(2*gaussianSigma*gaussianSigma))
}

// Camera generates primary rays. It is immutable after NewCamera.
type Camera struct {
	config   CameraConfig
	position core.Vec3
	u, v, w  core.Vec3
	gaze     core.Vec3

	uStep, vStep float64
	topLeft      core.Vec3 // World position of the near plane's top-left corner
	gridDim      int
	cellX, cellY core.Vec3 // One sub-pixel grid cell along u and down v
}

// NewCamera computes the camera frame and near plane
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("camera %q: image size must be positive, got %dx%d", config.Name, config.Width, config.Height)
	}
	if config.Samples <= 0 {
		return nil, fmt.Errorf("camera %q: sample count must be positive, got %d", config.Name, config.Samples)
	}
	if config.NearDistance <= 0 {
		return nil, fmt.Errorf("camera %q: near distance must be positive, got %f", config.Name, config.NearDistance)
	}

	c := &Camera{config: config, position: config.Position}

	gaze := config.Gaze
	plane := config.NearPlane
	if config.UseGazePoint {
		gaze = config.GazePoint.Subtract(config.Position)
		vertical := math.Tan(config.FovY/2*math.Pi/180) * config.NearDistance
		horizontal := vertical * float64(config.Width) / float64(config.Height)
		plane = NearPlane{Left: -horizontal, Right: horizontal, Bottom: -vertical, Top: vertical}
	}
	if gaze.IsZero() {
		return nil, fmt.Errorf("camera %q: gaze direction is zero", config.Name)
	}

	// Gram-Schmidt from up and -gaze
	c.gaze = gaze.Normalize()
	c.w = c.gaze.Negate()
	c.u = config.Up.Normalize().Cross(c.w).Normalize()
	if c.u.IsZero() {
		return nil, fmt.Errorf("camera %q: up vector is parallel to the gaze", config.Name)
	}
	c.v = c.w.Cross(c.u)
	if config.Handedness == LeftHanded {
		c.u = c.u.Negate()
	}

	distance := config.NearDistance
	if config.FocusDistance != 0 {
		// Grow the plane so it sits at the focus distance with the same view
		ratio := config.FocusDistance / distance
		widthDiff := (plane.Right - plane.Left) * (1 - ratio) / 2
		heightDiff := (plane.Top - plane.Bottom) * (1 - ratio) / 2
		plane.Left += widthDiff
		plane.Right -= widthDiff
		plane.Bottom += heightDiff
		plane.Top -= heightDiff
		distance = config.FocusDistance
	}

	c.uStep = (plane.Right - plane.Left) / float64(config.Width)
	c.vStep = (plane.Top - plane.Bottom) / float64(config.Height)
	c.topLeft = c.position.
		Add(c.gaze.Multiply(distance)).
		Add(c.u.Multiply(plane.Left)).
		Add(c.v.Multiply(plane.Top))

	c.gridDim = max(1, int(math.Round(math.Sqrt(float64(config.Samples)))))
	c.cellX = c.u.Multiply(c.uStep / float64(c.gridDim))
	c.cellY = c.v.Multiply(-c.vStep / float64(c.gridDim))

	return c, nil
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.config.Height
}

// GridDim returns the side of the sub-pixel sampling grid
func (c *Camera) GridDim() int {
	return c.gridDim
}

// Frame returns the orthonormal camera basis
func (c *Camera) Frame() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}

// Rays returns the primary rays for pixel (x, y), with (0, 0) at the top
// left. A single sample is one unweighted ray through the pixel center at
// time 0.5. Otherwise every cell of the sub-pixel grid contributes one
// jittered ray, Gaussian-weighted by its offset from the pixel center, with
// a random time and, with an aperture, a jittered origin.
func (c *Camera) Rays(x, y int, sampler core.Sampler) []core.Ray {
	if c.config.Samples == 1 {
		direction := c.topLeft.Subtract(c.position).
			Add(c.u.Multiply(c.uStep * (float64(x) + 0.5))).
			Subtract(c.v.Multiply(c.vStep * (float64(y) + 0.5)))
		return []core.Ray{core.NewRayAt(c.position, direction, 0.5)}
	}

	pixelCorner := c.topLeft.
		Add(c.u.Multiply(c.uStep * float64(x))).
		Subtract(c.v.Multiply(c.vStep * float64(y)))

	rays := make([]core.Ray, 0, c.gridDim*c.gridDim)
	for gy := 0; gy < c.gridDim; gy++ {
		for gx := 0; gx < c.gridDim; gx++ {
			jitter := sampler.Get2D()
			fx := (float64(gx) + jitter.X) / float64(c.gridDim)
			fy := (float64(gy) + jitter.Y) / float64(c.gridDim)

			target := pixelCorner.
				Add(c.cellX.Multiply(float64(gx) + jitter.X)).
				Add(c.cellY.Multiply(float64(gy) + jitter.Y))

			origin := c.lensOrigin(sampler)
			ray := core.NewRayAt(origin, target.Subtract(origin), sampler.Get1D())
			ray.Weight = gaussianWeight(fx-0.5, fy-0.5)
			rays = append(rays, ray)
		}
	}
	return rays
}

// lensOrigin jitters the camera position inside the aperture disk
func (c *Camera) lensOrigin(sampler core.Sampler) core.Vec3 {
	if c.config.Aperture == 0 {
		return c.position
	}
	p := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.config.Aperture / 2)
	return c.position.Add(c.u.Multiply(p.X)).Add(c.v.Multiply(p.Y))
}

// Accumulate returns the weighted average Σw·c / Σw of the colors traced
// for rays. A zero total weight yields black.
func Accumulate(rays []core.Ray, colors []core.Vec3) core.Vec3 {
	var sum core.Vec3
	var total float64
	for i, ray := range rays {
		sum = sum.Add(colors[i].Multiply(ray.Weight))
		total += ray.Weight
	}
	return sum.Divide(total)
}
