package material

import "github.com/df07/whitted-raytracer/pkg/core"

// Material describes how a surface responds to light. It is a plain value:
// shapes hold their own copy and every hit record receives another.
type Material struct {
	Ambient         core.Vec3 // ka, scaled by the scene's ambient light
	Diffuse         core.Vec3 // kd
	Specular        core.Vec3 // ks
	Mirror          core.Vec3 // km, weight of the recursive mirror ray
	Transparency    core.Vec3 // non-zero makes the surface a dielectric
	RefractionIndex float64
	PhongExponent   float64
	Roughness       float64 // > 0 spreads mirror rays into a cone
	BRDF            BRDF
}

// NewDiffuseMaterial creates a matte material with a small ambient term
func NewDiffuseMaterial(color core.Vec3) Material {
	return Material{
		Ambient: color.Multiply(0.1),
		Diffuse: color,
	}
}

// NewPlasticMaterial creates a diffuse material with a Phong highlight
func NewPlasticMaterial(color, specular core.Vec3, exponent float64) Material {
	m := NewDiffuseMaterial(color)
	m.Specular = specular
	m.PhongExponent = exponent
	return m
}

// NewMirrorMaterial creates a perfect (or, with roughness, glossy) mirror
func NewMirrorMaterial(reflectance core.Vec3, roughness float64) Material {
	return Material{
		Mirror:    reflectance,
		Roughness: roughness,
	}
}

// NewGlassMaterial creates a dielectric. attenuation is raised to the
// distance travelled inside the medium.
func NewGlassMaterial(attenuation core.Vec3, refractionIndex float64) Material {
	return Material{
		Transparency:    attenuation,
		RefractionIndex: refractionIndex,
		Specular:        core.NewVec3(1, 1, 1),
		PhongExponent:   100,
	}
}

// IsMirror reports whether recursive mirror reflection applies
func (m Material) IsMirror() bool {
	return !m.Mirror.IsZero()
}

// IsTransparent reports whether the surface refracts
func (m Material) IsTransparent() bool {
	return !m.Transparency.IsZero()
}
