package material

import (
	"github.com/arendv/go-interactive-raytracer/pkg/core"
)

// ShadeInfo is the out-parameter of Shade. A material that wants the
// integrator to trace a mirror bounce sets NeedsBounce and fills in the
// reflection ray and the blend weight.
type ShadeInfo struct {
	NeedsBounce   bool
	ReflectionRay core.Ray
	Reflectance   float32
}

// Material evaluates the surface's scattering for a light/view direction
// pair. The variant set is closed: SolidColor, Lambertian, LambertianPhong
// and CookTorrance. Materials are owned by the scene and referenced from hit
// records by index.
type Material interface {
	Shade(info *ShadeInfo, hit *core.HitRecord, l, v core.Vector3) core.ColorRGB
}

// SolidColor ignores lighting entirely and returns a fixed color.
type SolidColor struct {
	Color core.ColorRGB
}

// NewSolidColor creates a new solid color material
func NewSolidColor(color core.ColorRGB) *SolidColor {
	return &SolidColor{Color: color}
}

// Shade implements Material
func (m *SolidColor) Shade(info *ShadeInfo, hit *core.HitRecord, l, v core.Vector3) core.ColorRGB {
	return m.Color
}

// Lambertian is a perfectly diffuse material.
type Lambertian struct {
	DiffuseColor       core.ColorRGB
	DiffuseReflectance float32 // kd
}

// NewLambertian creates a new diffuse material
func NewLambertian(diffuseColor core.ColorRGB, kd float32) *Lambertian {
	return &Lambertian{DiffuseColor: diffuseColor, DiffuseReflectance: kd}
}

// Shade implements Material
func (m *Lambertian) Shade(info *ShadeInfo, hit *core.HitRecord, l, v core.Vector3) core.ColorRGB {
	return Lambert(m.DiffuseReflectance, m.DiffuseColor)
}

// LambertianPhong adds a Phong specular lobe on top of the diffuse term.
type LambertianPhong struct {
	DiffuseColor        core.ColorRGB
	DiffuseReflectance  float32 // kd
	SpecularReflectance float32 // ks
	PhongExponent       float32
}

// NewLambertianPhong creates a new diffuse+specular material
func NewLambertianPhong(diffuseColor core.ColorRGB, kd, ks, phongExponent float32) *LambertianPhong {
	return &LambertianPhong{
		DiffuseColor:        diffuseColor,
		DiffuseReflectance:  kd,
		SpecularReflectance: ks,
		PhongExponent:       phongExponent,
	}
}

// Shade implements Material
func (m *LambertianPhong) Shade(info *ShadeInfo, hit *core.HitRecord, l, v core.Vector3) core.ColorRGB {
	return Lambert(m.DiffuseReflectance, m.DiffuseColor).
		Add(Phong(m.SpecularReflectance, m.PhongExponent, l, v, hit.Normal))
}

// CookTorrance is the microfacet material (GGX distribution, Schlick
// Fresnel, Smith geometry). Fully metallic surfaces additionally request a
// mirror bounce from the integrator.
type CookTorrance struct {
	Albedo    core.ColorRGB
	Metalness float32 // 0 = dielectric, 1 = conductor
	Roughness float32 // 1 = rough, 0 = smooth
}

// NewCookTorrance creates a new microfacet material
func NewCookTorrance(albedo core.ColorRGB, metalness, roughness float32) *CookTorrance {
	return &CookTorrance{Albedo: albedo, Metalness: metalness, Roughness: roughness}
}

// Shade implements Material
func (m *CookTorrance) Shade(info *ShadeInfo, hit *core.HitRecord, l, v core.Vector3) core.ColorRGB {
	h := l.Add(v).Normalized()

	f0 := m.Albedo
	if m.Metalness == 0 {
		f0 = core.ColorRGB{R: 0.04, G: 0.04, B: 0.04}
	}

	fresnel := FresnelSchlick(h, v, f0)
	distribution := DistributionGGX(hit.Normal, h, m.Roughness)
	geometry := GeometrySmith(hit.Normal, v, l, m.Roughness)

	specular := fresnel.Multiply(distribution * geometry /
		(4 * v.Dot(hit.Normal) * l.Dot(hit.Normal)))

	var diffuse core.ColorRGB
	if m.Metalness != 1 {
		diffuse = LambertRGB(core.White.Subtract(fresnel), m.Albedo)
	}

	if m.Metalness == 1 {
		info.NeedsBounce = true
		info.ReflectionRay = core.NewRay(
			hit.Origin.Add(hit.Normal.Multiply(core.ReflectionOffset)),
			core.Reflect(v.Negate(), hit.Normal),
		)
		info.Reflectance = core.Powf(1-m.Roughness, 2)
	}

	return specular.Add(diffuse)
}
