package geometry

import (
	"github.com/arendv/go-interactive-raytracer/pkg/core"
)

// AABB is an axis-aligned bounding box stored as min/max corners.
type AABB struct {
	Min core.Vector3
	Max core.Vector3
}

// EmptyAABB returns an inverted box that any Grow call will snap to a point
func EmptyAABB() AABB {
	return AABB{
		Min: core.Vector3{X: 1e30, Y: 1e30, Z: 1e30},
		Max: core.Vector3{X: -1e30, Y: -1e30, Z: -1e30},
	}
}

// Grow extends the box to contain the point p
func (b *AABB) Grow(p core.Vector3) {
	b.Min = core.MinVec(b.Min, p)
	b.Max = core.MaxVec(b.Max, p)
}

// GrowAABB extends the box to contain another box
func (b *AABB) GrowAABB(other AABB) {
	b.Min = core.MinVec(b.Min, other.Min)
	b.Max = core.MaxVec(b.Max, other.Max)
}

// Area returns the half surface area used by the SAH cost metric
func (b AABB) Area() float32 {
	e := b.Max.Subtract(b.Min)
	return e.X*e.Y + e.Y*e.Z + e.Z*e.X
}

// Contains reports whether p lies inside the box, boundaries included
func (b AABB) Contains(p core.Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// SlabTest intersects the ray against the box with three 1-D interval tests.
// Division by a zero direction component yields infinities, which the
// min/max comparisons resolve correctly; NaN comparisons fail and reject.
func SlabTest(bmin, bmax core.Vector3, ray core.Ray) bool {
	tx1 := (bmin.X - ray.Origin.X) / ray.Direction.X
	tx2 := (bmax.X - ray.Origin.X) / ray.Direction.X

	tmin := min(tx1, tx2)
	tmax := max(tx1, tx2)

	ty1 := (bmin.Y - ray.Origin.Y) / ray.Direction.Y
	ty2 := (bmax.Y - ray.Origin.Y) / ray.Direction.Y

	tmin = max(tmin, min(ty1, ty2))
	tmax = min(tmax, max(ty1, ty2))

	tz1 := (bmin.Z - ray.Origin.Z) / ray.Direction.Z
	tz2 := (bmax.Z - ray.Origin.Z) / ray.Direction.Z

	tmin = max(tmin, min(tz1, tz2))
	tmax = min(tmax, max(tz1, tz2))

	return tmax > 0 && tmax >= tmin
}
