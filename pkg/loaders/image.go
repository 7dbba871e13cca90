package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// LoadImage reads a PNG or JPEG file into a texture with colors in [0,1]
func LoadImage(filename string) (*material.ImageTexture, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer f.Close()

	tex, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return tex, nil
}

// LoadEnvironmentMap reads a lat-long map, filtered bilinearly and wrapping
// around horizontally
func LoadEnvironmentMap(filename string) (*material.ImageTexture, error) {
	tex, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	tex.Interpolation = material.InterpolationBilinear
	tex.Appearance = material.AppearanceRepeat
	return tex, nil
}

// DecodeImage decodes any registered format; alpha is dropped
func DecodeImage(r io.Reader) (*material.ImageTexture, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("empty %s image", format)
	}

	pixels := make([]core.Vec3, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			pixels = append(pixels, toLinear(img.At(x, y).RGBA()))
		}
	}
	return material.NewImageTexture(w, h, pixels), nil
}

// toLinear scales 16-bit channels to [0,1]
func toLinear(r, g, b, _ uint32) core.Vec3 {
	const full = 0xffff
	return core.NewVec3(float64(r)/full, float64(g)/full, float64(b)/full)
}
