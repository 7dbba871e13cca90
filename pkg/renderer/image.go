package renderer

import (
	"image"
	"image/color"

	"github.com/df07/whitted-raytracer/pkg/core"
)

// ImageSink receives final pixel colors. Every coordinate is written exactly
// once by exactly one worker, so implementations need no locking.
type ImageSink interface {
	SetColor(x, y int, c core.Vec3)
	Width() int
	Height() int
}

// LinearImage is an in-memory sink holding unclamped linear colors
type LinearImage struct {
	width, height int
	pixels        []core.Vec3
}

// NewLinearImage creates a black image
func NewLinearImage(width, height int) *LinearImage {
	return &LinearImage{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

func (img *LinearImage) SetColor(x, y int, c core.Vec3) {
	img.pixels[y*img.width+x] = c
}

// Color returns the stored color at (x, y)
func (img *LinearImage) Color(x, y int) core.Vec3 {
	return img.pixels[y*img.width+x]
}

func (img *LinearImage) Width() int {
	return img.width
}

func (img *LinearImage) Height() int {
	return img.height
}

// ToRGBA converts to 8-bit color. Components are clamped to [0, maxValue]
// and scaled by 1/maxValue (maxValue 0 means 1), then gamma corrected when
// gamma is positive.
func (img *LinearImage) ToRGBA(gamma, maxValue float64) *image.RGBA {
	if maxValue <= 0 {
		maxValue = 1
	}

	out := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			c := img.Color(x, y).Clamp(0, maxValue).Multiply(1 / maxValue)
			if gamma > 0 {
				c = c.GammaCorrect(gamma)
			}
			out.SetRGBA(x, y, color.RGBA{
				R: uint8(255*c.X + 0.5),
				G: uint8(255*c.Y + 0.5),
				B: uint8(255*c.Z + 0.5),
				A: 255,
			})
		}
	}
	return out
}
