package geometry

import (
	"github.com/arendv/go-interactive-raytracer/pkg/core"
)

// Plane is an infinite plane through Origin with unit Normal.
type Plane struct {
	Origin        core.Vector3
	Normal        core.Vector3
	MaterialIndex int
}

// NewPlane creates a new plane; the normal is normalized on construction
func NewPlane(origin, normal core.Vector3, materialIndex int) Plane {
	return Plane{Origin: origin, Normal: normal.Normalized(), MaterialIndex: materialIndex}
}

// Hit intersects the ray with the plane. A parallel ray divides by zero,
// producing an out-of-interval (or NaN) t and therefore a miss. The normal
// is reported as stored, with no sign flip toward the ray.
func (p Plane) Hit(ray core.Ray, hit *core.HitRecord) bool {
	t := p.Origin.Subtract(ray.Origin).Dot(p.Normal) / ray.Direction.Dot(p.Normal)

	if !(t >= ray.TMin && t < ray.TMax) {
		return false
	}

	hit.DidHit = true
	hit.MaterialIndex = p.MaterialIndex
	hit.T = t
	hit.Origin = ray.At(t)
	hit.Normal = p.Normal
	return true
}

// HitAny reports whether the ray intersects the plane at all
func (p Plane) HitAny(ray core.Ray) bool {
	var tmp core.HitRecord
	return p.Hit(ray, &tmp)
}
