package geometry

import (
	"github.com/arendv/go-interactive-raytracer/pkg/core"
)

// CullMode selects which triangle orientation a closest-hit query rejects.
// Any-hit (shadow) queries invert the polarity so that a shadow ray leaving
// a front-facing surface still sees back-facing geometry.
type CullMode int

const (
	FrontFaceCulling CullMode = iota
	BackFaceCulling
	NoCulling
)

// Triangle is a single triangle with a stored geometric normal.
type Triangle struct {
	V0, V1, V2    core.Vector3
	Normal        core.Vector3
	CullMode      CullMode
	MaterialIndex int
}

// NewTriangle creates a triangle, computing the normal from the winding
// order of its vertices
func NewTriangle(v0, v1, v2 core.Vector3) Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	return Triangle{
		V0: v0, V1: v1, V2: v2,
		Normal:   edge1.Cross(edge2).Normalized(),
		CullMode: NoCulling,
	}
}

// NewTriangleWithNormal creates a triangle with a supplied normal
func NewTriangleWithNormal(v0, v1, v2, normal core.Vector3) Triangle {
	return Triangle{
		V0: v0, V1: v1, V2: v2,
		Normal:   normal.Normalized(),
		CullMode: NoCulling,
	}
}

// isPointInsideEdge checks the hit point against one directed edge; the
// point is outside the triangle when the cross test goes negative. A NaN
// comparison also rejects, so degenerate normals produce misses.
func isPointInsideEdge(v0, v1, hitPoint, n core.Vector3) bool {
	e := v1.Subtract(v0)
	p := hitPoint.Subtract(v0)
	return n.Dot(e.Cross(p)) >= 0
}

// hit runs the plane-then-edges intersection test. anyHit selects the
// inverted culling polarity used for shadow queries.
func (tr Triangle) hit(ray core.Ray, hit *core.HitRecord, anyHit bool) bool {
	cullMode := tr.CullMode
	if anyHit {
		switch cullMode {
		case BackFaceCulling:
			cullMode = FrontFaceCulling
		case FrontFaceCulling:
			cullMode = BackFaceCulling
		}
	}

	orthogonality := ray.Direction.Dot(tr.Normal)
	if core.AreEqual(orthogonality, 0) ||
		(cullMode == BackFaceCulling && orthogonality > 0) ||
		(cullMode == FrontFaceCulling && orthogonality < 0) {
		return false
	}

	l := tr.V0.Subtract(ray.Origin)
	t := l.Dot(tr.Normal) / orthogonality
	if !(t > ray.TMin && t < ray.TMax) {
		return false
	}

	hitPoint := ray.At(t)
	if !isPointInsideEdge(tr.V0, tr.V1, hitPoint, tr.Normal) ||
		!isPointInsideEdge(tr.V1, tr.V2, hitPoint, tr.Normal) ||
		!isPointInsideEdge(tr.V2, tr.V0, hitPoint, tr.Normal) {
		return false
	}

	hit.DidHit = true
	hit.MaterialIndex = tr.MaterialIndex
	hit.Normal = tr.Normal
	hit.Origin = hitPoint
	hit.T = t
	return true
}

// Hit fills hit with the closest intersection, honoring the cull mode
func (tr Triangle) Hit(ray core.Ray, hit *core.HitRecord) bool {
	return tr.hit(ray, hit, false)
}

// HitAny reports an intersection with the shadow-query culling polarity
func (tr Triangle) HitAny(ray core.Ray) bool {
	var tmp core.HitRecord
	return tr.hit(ray, &tmp, true)
}
