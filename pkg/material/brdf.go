package material

import (
	"github.com/arendv/go-interactive-raytracer/pkg/core"
)

// The BRDF building blocks. All vectors are expected unit length; l points
// from the surface toward the light and v toward the viewer.

// Lambert returns the diffuse term cd * kd / pi for a scalar reflectance
func Lambert(kd float32, cd core.ColorRGB) core.ColorRGB {
	return cd.Multiply(kd / core.Pi)
}

// LambertRGB is the per-channel variant with a color-valued reflectance
func LambertRGB(kd, cd core.ColorRGB) core.ColorRGB {
	return cd.MultiplyRGB(kd).Divide(core.Pi)
}

// Phong returns the specular term ks * |r·v|^exp with r the reflection of
// the light direction. Note the absolute value: the lobe also fires from
// behind the surface.
func Phong(ks, exp float32, l, v, n core.Vector3) core.ColorRGB {
	r := core.Reflect(l, n)
	specular := ks * core.Powf(core.Absf(v.Dot(r)), exp)
	return core.ColorRGB{R: specular, G: specular, B: specular}
}

// FresnelSchlick approximates the Fresnel reflectance from the half vector.
// f0 is (0.04, 0.04, 0.04) for dielectrics and the albedo for conductors.
func FresnelSchlick(h, v core.Vector3, f0 core.ColorRGB) core.ColorRGB {
	return f0.Add(core.White.Subtract(f0).Multiply(core.Powf(1-h.Dot(v), 5)))
}

// DistributionGGX is the Trowbridge-Reitz normal distribution with the UE4
// remapping alpha = roughness^2 (hence roughness^4 below)
func DistributionGGX(n, h core.Vector3, roughness float32) float32 {
	a := core.Powf(roughness, 4)
	nh := n.Dot(h)
	denominator := core.Pi * core.Powf(nh*nh*(a-1)+1, 2)
	if denominator == 0 {
		// perfectly smooth surface: the delta lobe is carried entirely by
		// the mirror bounce
		return 0
	}
	return a / denominator
}

// GeometrySchlickGGX is the single-direction masking term with the direct
// lighting remapping k = (roughness+1)^2 / 8
func GeometrySchlickGGX(n, v core.Vector3, roughness float32) float32 {
	nv := n.Dot(v)
	k := core.Powf(roughness+1, 2) / 8
	return nv / (nv*(1-k) + k)
}

// GeometrySmith combines the masking terms for view and light directions
func GeometrySmith(n, v, l core.Vector3, roughness float32) float32 {
	return GeometrySchlickGGX(n, v, roughness) * GeometrySchlickGGX(n, l, roughness)
}
