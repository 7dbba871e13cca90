package material

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
)

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize

			var color core.Vec3
			if (checkX+checkY)%2 == 0 {
				color = color1
			} else {
				color = color2
			}

			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientTexture(width, height int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		t := float64(y) / float64(max(1, height-1))
		color := color1.Multiply(1.0 - t).Add(color2.Multiply(t))

		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}

// PerlinAppearance selects how raw noise maps to a gray level
type PerlinAppearance int

const (
	PerlinPatch PerlinAppearance = iota // (n+1)/2, soft blotches
	PerlinVein                          // |n|, sharp veins
)

const perlinTableSize = 16

var perlinGradients = [perlinTableSize]core.Vec3{
	{X: 1, Y: 1, Z: 0}, {X: -1, Y: 1, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: -1, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: 1}, {X: -1, Y: 0, Z: 1}, {X: 1, Y: 0, Z: -1}, {X: -1, Y: 0, Z: -1},
	{X: 0, Y: 1, Z: 1}, {X: 0, Y: -1, Z: 1}, {X: 0, Y: 1, Z: -1}, {X: 0, Y: -1, Z: -1},
	{X: 1, Y: 1, Z: 0}, {X: -1, Y: 1, Z: 0}, {X: 0, Y: -1, Z: 1}, {X: 0, Y: -1, Z: -1},
}

// PerlinTexture is 3-D gradient noise evaluated at the world hit point
type PerlinTexture struct {
	TextureOptions
	Appearance PerlinAppearance
	Scale      float64 // frequency: the point is multiplied by Scale before lookup
	table      [perlinTableSize]core.Vec3
}

// NewPerlinTexture creates a noise texture whose gradient table is shuffled
// with the given sampler
func NewPerlinTexture(appearance PerlinAppearance, scale float64, sampler core.Sampler) *PerlinTexture {
	p := &PerlinTexture{
		TextureOptions: TextureOptions{BumpMultiplier: 1},
		Appearance:     appearance,
		Scale:          scale,
		table:          perlinGradients,
	}
	for i := perlinTableSize - 1; i > 0; i-- {
		j := int(sampler.Get1D() * float64(i+1))
		if j > i {
			j = i
		}
		p.table[i], p.table[j] = p.table[j], p.table[i]
	}
	return p
}

func (p *PerlinTexture) hash(i, j, k int) core.Vec3 {
	index := (((k%perlinTableSize)+j)%perlinTableSize + i) % perlinTableSize
	if index < 0 {
		index += perlinTableSize
	}
	return p.table[index]
}

// fade is the quintic falloff 1 - 6t^5 + 15t^4 - 10t^3 on |t| in [0,1]
func fade(t float64) float64 {
	t = math.Abs(t)
	return 1 - t*t*t*(t*(t*6-15)+10)
}

// Noise returns raw gradient noise at q in roughly [-1,1]
func (p *PerlinTexture) Noise(q core.Vec3) float64 {
	i := int(math.Floor(q.X))
	j := int(math.Floor(q.Y))
	k := int(math.Floor(q.Z))

	var value float64
	for corner := 0; corner < 8; corner++ {
		ci, cj, ck := i+(corner&1), j+((corner>>1)&1), k+((corner>>2)&1)
		d := q.Subtract(core.NewVec3(float64(ci), float64(cj), float64(ck)))
		value += p.hash(ci, cj, ck).Dot(d) * fade(d.X) * fade(d.Y) * fade(d.Z)
	}
	return value
}

// Value returns the gray level at a world point
func (p *PerlinTexture) Value(point core.Vec3) float64 {
	n := p.Noise(point.Multiply(p.Scale))
	if p.Appearance == PerlinVein {
		return math.Abs(n)
	}
	return (n + 1) / 2
}

// ColorAt returns the noise as a gray color
func (p *PerlinTexture) ColorAt(point core.Vec3) core.Vec3 {
	return core.Splat(p.Value(point))
}

// BumpNormal tilts n against the tangential part of the noise gradient
func (p *PerlinTexture) BumpNormal(n, point core.Vec3) core.Vec3 {
	const h = 1e-3
	g := core.NewVec3(
		p.Value(point.Add(core.NewVec3(h, 0, 0)))-p.Value(point.Subtract(core.NewVec3(h, 0, 0))),
		p.Value(point.Add(core.NewVec3(0, h, 0)))-p.Value(point.Subtract(core.NewVec3(0, h, 0))),
		p.Value(point.Add(core.NewVec3(0, 0, h)))-p.Value(point.Subtract(core.NewVec3(0, 0, h))),
	).Multiply(1 / (2 * h))

	tangential := g.Subtract(n.Multiply(g.Dot(n)))
	bumped := n.Subtract(tangential.Multiply(p.BumpMultiplier)).Normalize()
	if bumped.IsZero() {
		return n
	}
	return bumped
}
