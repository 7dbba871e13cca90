package material

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
)

// BRDFMode selects the reflectance model used for direct lighting
type BRDFMode int

const (
	BRDFDefault BRDFMode = iota // kd*cos + ks*(n.h)^phong
	BRDFPhong
	BRDFPhongModified
	BRDFBlinnPhong
	BRDFBlinnPhongModified
	BRDFTorranceSparrow
)

// String returns the mode name used in configuration
func (m BRDFMode) String() string {
	switch m {
	case BRDFPhong:
		return "phong"
	case BRDFPhongModified:
		return "phong_modified"
	case BRDFBlinnPhong:
		return "blinnphong"
	case BRDFBlinnPhongModified:
		return "blinnphong_modified"
	case BRDFTorranceSparrow:
		return "torrance_sparrow"
	default:
		return "default"
	}
}

// ParseBRDFMode maps a configuration name to a mode
func ParseBRDFMode(name string) (BRDFMode, bool) {
	for mode := BRDFDefault; mode <= BRDFTorranceSparrow; mode++ {
		if mode.String() == name {
			return mode, true
		}
	}
	return BRDFDefault, false
}

// BRDF holds the per-material reflectance model parameters.
// The zero value is the default model, which reads Material.PhongExponent.
type BRDF struct {
	Mode            BRDFMode
	Exponent        float64
	RefractiveIndex float64 // Fresnel term of Torrance-Sparrow
	Normalized      bool    // energy-normalized variants of the modified models
}

// Evaluate returns the light reflected toward the viewer from one incident
// light sample
func (b BRDF) Evaluate(ray core.Ray, hit HitRecord, incident IncidentLight) core.Vec3 {
	if incident.InShadow {
		return core.Vec3{}
	}

	n := hit.Normal
	wi := incident.Direction
	wo := ray.Direction.Negate()
	cosThetaI := wi.Dot(n)
	if cosThetaI < 0 {
		return core.Vec3{}
	}

	m := hit.Material
	switch b.Mode {
	case BRDFPhong, BRDFPhongModified:
		// Perfect reflection of wi about n
		r := n.Multiply(2 * cosThetaI).Subtract(wi).Normalize()
		return b.lobe(m, math.Max(0, r.Dot(wo)), cosThetaI, 2, b.Mode == BRDFPhong).MultiplyVec(incident.Intensity)
	case BRDFBlinnPhong, BRDFBlinnPhongModified:
		h := wi.Add(wo).Normalize()
		return b.lobe(m, math.Max(0, n.Dot(h)), cosThetaI, 8, b.Mode == BRDFBlinnPhong).MultiplyVec(incident.Intensity)
	case BRDFTorranceSparrow:
		return b.torranceSparrow(m, n, wi, wo, cosThetaI).MultiplyVec(incident.Intensity)
	default:
		h := wi.Add(wo).Normalize()
		specular := m.Specular.Multiply(math.Pow(math.Max(0, n.Dot(h)), m.PhongExponent))
		return m.Diffuse.Multiply(cosThetaI).Add(specular).MultiplyVec(incident.Intensity)
	}
}

// lobe evaluates the Phong family. classic divides the specular term by
// cos(theta_i), which cancels against the cosine factor; normOffset is the
// energy normalization constant (2 for Phong, 8 for Blinn-Phong).
func (b BRDF) lobe(m Material, cosAlpha, cosThetaI, normOffset float64, classic bool) core.Vec3 {
	raised := math.Pow(cosAlpha, b.Exponent)

	switch {
	case classic:
		return m.Diffuse.Multiply(cosThetaI).Add(m.Specular.Multiply(raised))
	case b.Normalized:
		diffuse := m.Diffuse.Multiply(1 / math.Pi)
		specular := m.Specular.Multiply(raised * (b.Exponent + normOffset) / (normOffset * math.Pi))
		return diffuse.Add(specular).Multiply(cosThetaI)
	default:
		return m.Diffuse.Add(m.Specular.Multiply(raised)).Multiply(cosThetaI)
	}
}

func (b BRDF) torranceSparrow(m Material, n, wi, wo core.Vec3, cosThetaI float64) core.Vec3 {
	diffuse := m.Diffuse.Multiply(1 / math.Pi)

	cosThetaO := n.Dot(wo)
	if cosThetaO <= 0 || cosThetaI == 0 {
		return diffuse.Multiply(cosThetaI)
	}

	h := wi.Add(wo).Normalize()
	nh := math.Max(0, n.Dot(h))
	woh := wo.Dot(h)
	if woh <= 0 {
		return diffuse.Multiply(cosThetaI)
	}

	d := (b.Exponent + 2) / (2 * math.Pi) * math.Pow(nh, b.Exponent)
	g := math.Min(1, math.Min(2*nh*cosThetaO/woh, 2*nh*cosThetaI/woh))
	f := Schlick(woh, FresnelR0(b.RefractiveIndex))

	specular := m.Specular.Multiply(d * f * g / (4 * cosThetaI * cosThetaO))
	return diffuse.Add(specular).Multiply(cosThetaI)
}

// Diffuse returns only the cosine-weighted diffuse term, used for surfaces
// seen from behind
func (b BRDF) Diffuse(hit HitRecord, incident IncidentLight) core.Vec3 {
	if incident.InShadow {
		return core.Vec3{}
	}
	cosThetaI := math.Max(0, hit.Normal.Dot(incident.Direction))
	return hit.Material.Diffuse.MultiplyVec(incident.Intensity).Multiply(cosThetaI)
}

// FresnelR0 returns the normal-incidence reflectance between air and a
// medium of the given index
func FresnelR0(eta float64) float64 {
	r0 := (eta - 1) / (eta + 1)
	return r0 * r0
}

// Schlick approximates Fresnel reflectance at the given cosine
func Schlick(cosTheta, r0 float64) float64 {
	c := 1 - math.Max(0, math.Min(1, cosTheta))
	return r0 + (1-r0)*c*c*c*c*c
}
