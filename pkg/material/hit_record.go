package material

import "github.com/df07/whitted-raytracer/pkg/core"

// TextureInfo is the texture lookup captured at a hit
type TextureInfo struct {
	HasTexture bool
	Color      core.Vec3
	Decal      DecalMode
}

// HitRecord is a self-contained snapshot of a ray-surface intersection.
// It is returned by value and never aliases shape state.
type HitRecord struct {
	Point      core.Vec3 // Point of intersection
	Normal     core.Vec3 // Unit surface normal (outward, not flipped toward the ray)
	T          float64   // Parameter t along the ray
	Material   Material
	Texture    TextureInfo
	Time       float64   // Creation time of the ray that produced the hit
	IsLight    bool      // Hit an emissive surface
	LightColor core.Vec3 // Radiance returned when IsLight is set
}

// IncidentLight is a light's answer to "what arrives at this point"
type IncidentLight struct {
	InShadow  bool
	Intensity core.Vec3
	Direction core.Vec3 // Unit direction from the hit point toward the light
}
