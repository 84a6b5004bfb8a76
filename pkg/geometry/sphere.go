package geometry

import (
	"github.com/arendv/go-interactive-raytracer/pkg/core"
)

// Sphere is a sphere primitive referencing a scene material by index.
type Sphere struct {
	Origin        core.Vector3
	Radius        float32
	MaterialIndex int
}

// NewSphere creates a new sphere
func NewSphere(origin core.Vector3, radius float32, materialIndex int) Sphere {
	return Sphere{Origin: origin, Radius: radius, MaterialIndex: materialIndex}
}

// Hit solves the quadratic for the ray against the sphere and fills hit with
// the closest intersection inside [TMin, TMax). A tangent ray
// (discriminant == 0) does not count as a hit.
func (s Sphere) Hit(ray core.Ray, hit *core.HitRecord) bool {
	sphereToRay := ray.Origin.Subtract(s.Origin)
	a := ray.Direction.SqrMagnitude()
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.SqrMagnitude() - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant <= 0 {
		return false
	}

	sqrtD := core.Sqrtf(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	// If the near root is behind the interval start, the origin is inside
	// the sphere and the far root is the visible one.
	t := t1
	if t1 < ray.TMin {
		t = t2
	}

	if t < ray.TMin || t >= ray.TMax {
		return false
	}

	hit.DidHit = true
	hit.MaterialIndex = s.MaterialIndex
	hit.T = t
	hit.Origin = ray.At(t)
	hit.Normal = hit.Origin.Subtract(s.Origin).Normalized()
	return true
}

// HitAny reports whether the ray intersects the sphere at all
func (s Sphere) HitAny(ray core.Ray) bool {
	var tmp core.HitRecord
	return s.Hit(ray, &tmp)
}
