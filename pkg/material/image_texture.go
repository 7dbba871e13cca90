package material

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
)

// DecalMode controls how a texture color combines with the material
type DecalMode int

const (
	DecalReplaceKd  DecalMode = iota // texture replaces the diffuse color
	DecalBlendKd                     // texture is averaged with the diffuse color
	DecalReplaceAll                  // texture color is returned without shading
)

// InterpolationMode selects the image filter
type InterpolationMode int

const (
	InterpolationNearest InterpolationMode = iota
	InterpolationBilinear
)

// AppearanceMode controls texture coordinates outside [0,1]
type AppearanceMode int

const (
	AppearanceClamp AppearanceMode = iota
	AppearanceRepeat
)

// TextureOptions are shared by image and procedural textures
type TextureOptions struct {
	Decal          DecalMode
	Bump           bool
	BumpMultiplier float64
}

// ApplyDecal returns m with its diffuse color updated by a texture lookup
func ApplyDecal(m Material, color core.Vec3, decal DecalMode) Material {
	switch decal {
	case DecalReplaceKd:
		m.Diffuse = color
	case DecalBlendKd:
		m.Diffuse = m.Diffuse.Add(color).Multiply(0.5)
	}
	return m
}

// ImageTexture provides color from a 2D image.
// Row 0 is the top of the image and v grows downward.
type ImageTexture struct {
	TextureOptions
	Width         int
	Height        int
	Pixels        []core.Vec3 // Row-major: Pixels[y*Width + x]
	Interpolation InterpolationMode
	Appearance    AppearanceMode
}

// NewImageTexture creates a new image texture with nearest filtering and
// repeating coordinates
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		TextureOptions: TextureOptions{BumpMultiplier: 1},
		Width:          width,
		Height:         height,
		Pixels:         pixels,
		Appearance:     AppearanceRepeat,
	}
}

// Wrap maps texture coordinates into [0,1] according to the appearance mode
func (t *ImageTexture) Wrap(u, v float64) (float64, float64) {
	if t.Appearance == AppearanceClamp {
		return clamp01(u), clamp01(v)
	}
	return u - math.Floor(u), v - math.Floor(v)
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// Pixel returns the texel at integer coordinates, clamped to the image
func (t *ImageTexture) Pixel(x, y int) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.Vec3{}
	}
	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))
	return t.Pixels[y*t.Width+x]
}

// ColorAt samples the texture at (u, v), already wrapped into [0,1]
func (t *ImageTexture) ColorAt(u, v float64) core.Vec3 {
	i := u * float64(t.Width)
	j := v * float64(t.Height)

	if t.Interpolation == InterpolationNearest {
		return t.Pixel(int(math.Floor(i)), int(math.Floor(j)))
	}
	return t.bilinear(u, v)
}

func (t *ImageTexture) bilinear(u, v float64) core.Vec3 {
	// Texel centers sit at half-integer coordinates
	i := u*float64(t.Width) - 0.5
	j := v*float64(t.Height) - 0.5
	i0 := int(math.Floor(i))
	j0 := int(math.Floor(j))
	dx := i - float64(i0)
	dy := j - float64(j0)

	return t.Pixel(i0, j0).Multiply((1 - dx) * (1 - dy)).
		Add(t.Pixel(i0+1, j0).Multiply(dx * (1 - dy))).
		Add(t.Pixel(i0, j0+1).Multiply((1 - dx) * dy)).
		Add(t.Pixel(i0+1, j0+1).Multiply(dx * dy))
}

// Gradient returns the forward difference of the texture's luminance along
// u and v, used for bump mapping
func (t *ImageTexture) Gradient(u, v float64) core.Vec2 {
	i := int(math.Floor(u * float64(t.Width)))
	j := int(math.Floor(v * float64(t.Height)))

	here := t.Pixel(i, j).Luminance()
	return core.NewVec2(
		t.Pixel(i+1, j).Luminance()-here,
		t.Pixel(i, j+1).Luminance()-here,
	)
}

// BumpNormal perturbs n along the surface partial derivatives dpdu, dpdv
func (t *ImageTexture) BumpNormal(n, dpdu, dpdv core.Vec3, u, v float64) core.Vec3 {
	g := t.Gradient(u, v)
	du := dpdu.Add(n.Multiply(g.X * t.BumpMultiplier))
	dv := dpdv.Add(n.Multiply(g.Y * t.BumpMultiplier))
	bumped := dv.Cross(du).Normalize()
	if bumped.IsZero() {
		return n
	}
	// Keep the perturbed normal on the original side
	if bumped.Dot(n) < 0 {
		bumped = bumped.Negate()
	}
	return bumped
}

// LatLong returns the bilinear lookup for a world direction on a
// latitude-longitude environment image (+Y up)
func (t *ImageTexture) LatLong(direction core.Vec3) core.Vec3 {
	d := direction.Normalize()
	theta := math.Acos(math.Max(-1, math.Min(1, d.Y)))
	phi := math.Atan2(d.Z, d.X)
	u := (math.Pi - phi) / (2 * math.Pi)
	v := theta / math.Pi
	return t.bilinear(u, v)
}
