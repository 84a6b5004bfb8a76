package geometry

import (
	"fmt"

	"github.com/arendv/go-interactive-raytracer/pkg/core"
)

// TriangleMesh owns source geometry, its world transforms, the transformed
// vertex cache derived from them, and a BVH over the transformed triangles.
// Any edit to geometry or transforms must be followed by UpdateTransforms
// before the next ray is cast; the BVH is rebuilt there and references into
// the old one do not survive.
type TriangleMesh struct {
	Positions []core.Vector3
	Normals   []core.Vector3 // one per triangle
	Indices   []uint32       // length is a multiple of 3

	MaterialIndex int
	CullMode      CullMode

	rotation    core.Matrix4
	translation core.Matrix4
	scale       core.Matrix4

	TransformedPositions []core.Vector3
	TransformedNormals   []core.Vector3

	bvh *BVH
}

// NewTriangleMesh creates an empty mesh with identity transforms
func NewTriangleMesh(cullMode CullMode, materialIndex int) *TriangleMesh {
	return &TriangleMesh{
		MaterialIndex: materialIndex,
		CullMode:      cullMode,
		rotation:      core.Identity(),
		translation:   core.Identity(),
		scale:         core.Identity(),
	}
}

// NewTriangleMeshFromGeometry creates a mesh from parsed geometry and builds
// its transformed caches. Normals may be nil, in which case they are
// computed from the winding order.
func NewTriangleMeshFromGeometry(positions []core.Vector3, indices []uint32, normals []core.Vector3, cullMode CullMode, materialIndex int) (*TriangleMesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("mesh indices length %d is not a multiple of 3", len(indices))
	}
	for _, idx := range indices {
		if int(idx) >= len(positions) {
			return nil, fmt.Errorf("mesh index %d out of range for %d positions", idx, len(positions))
		}
	}

	m := NewTriangleMesh(cullMode, materialIndex)
	m.Positions = positions
	m.Indices = indices
	if normals != nil {
		m.Normals = normals
	} else {
		m.CalculateNormals()
	}
	m.UpdateTransforms()
	return m, nil
}

// AppendTriangle adds a standalone triangle to the mesh geometry. Pass
// skipTransformUpdate when batching several appends; the caller then runs
// UpdateTransforms once at the end.
func (m *TriangleMesh) AppendTriangle(tr Triangle, skipTransformUpdate bool) {
	start := uint32(len(m.Positions))

	m.Positions = append(m.Positions, tr.V0, tr.V1, tr.V2)
	m.Indices = append(m.Indices, start, start+1, start+2)
	m.Normals = append(m.Normals, tr.Normal)

	if !skipTransformUpdate {
		m.UpdateTransforms()
	}
}

// CalculateNormals recomputes the per-triangle normals from the source
// positions and winding order
func (m *TriangleMesh) CalculateNormals() {
	m.Normals = m.Normals[:0]
	for i := 0; i < len(m.Indices); i += 3 {
		v0 := m.Positions[m.Indices[i]]
		v1 := m.Positions[m.Indices[i+1]]
		v2 := m.Positions[m.Indices[i+2]]
		normal := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalized()
		m.Normals = append(m.Normals, normal)
	}
}

// Translate replaces the translation transform
func (m *TriangleMesh) Translate(translation core.Vector3) {
	m.translation = core.CreateTranslation(translation)
}

// RotateY replaces the rotation transform with a yaw rotation
func (m *TriangleMesh) RotateY(yaw float32) {
	m.rotation = core.CreateRotationY(yaw)
}

// Scale replaces the scale transform
func (m *TriangleMesh) Scale(scale core.Vector3) {
	m.scale = core.CreateScale(scale)
}

// UpdateTransforms recomputes the transformed vertex and normal caches and
// rebuilds the BVH. The scale is applied first and the rotation last, so
// translated meshes orbit the world origin when rotated.
func (m *TriangleMesh) UpdateTransforms() {
	rts := m.rotation.Multiply(m.translation).Multiply(m.scale)

	m.TransformedPositions = m.TransformedPositions[:0]
	for _, p := range m.Positions {
		m.TransformedPositions = append(m.TransformedPositions, rts.TransformPoint(p))
	}

	m.TransformedNormals = m.TransformedNormals[:0]
	for _, n := range m.Normals {
		m.TransformedNormals = append(m.TransformedNormals, rts.TransformVector(n).Normalized())
	}

	m.bvh = BuildBVH(m.TransformedPositions, m.Indices)
}

// BVH exposes the current acceleration structure (for tests and stats)
func (m *TriangleMesh) BVH() *BVH {
	return m.bvh
}

// TriangleCount returns the number of triangles in the mesh
func (m *TriangleMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// triangleAt materializes the triangle for a source triangle index
func (m *TriangleMesh) triangleAt(triIdx uint32) Triangle {
	i := triIdx * 3
	return Triangle{
		V0:            m.TransformedPositions[m.Indices[i]],
		V1:            m.TransformedPositions[m.Indices[i+1]],
		V2:            m.TransformedPositions[m.Indices[i+2]],
		Normal:        m.TransformedNormals[triIdx],
		CullMode:      m.CullMode,
		MaterialIndex: m.MaterialIndex,
	}
}

// Hit finds the closest triangle intersection by descending the BVH,
// tightening the ray interval as hits are found.
func (m *TriangleMesh) Hit(ray core.Ray, hit *core.HitRecord) bool {
	if m.bvh == nil {
		return false
	}
	return m.hitNode(0, ray, hit)
}

func (m *TriangleMesh) hitNode(nodeIdx uint32, ray core.Ray, hit *core.HitRecord) bool {
	node := m.bvh.Nodes[nodeIdx]
	if !SlabTest(node.AABBMin, node.AABBMax, ray) {
		return false
	}

	if node.IsLeaf() {
		found := false
		for i := uint32(0); i < node.TriCount; i++ {
			tri := m.triangleAt(m.bvh.TriIndex[node.LeftFirst+i])
			var tmp core.HitRecord
			if tri.Hit(ray, &tmp) && tmp.T < hit.T {
				*hit = tmp
				ray.TMax = tmp.T
				found = true
			}
		}
		return found
	}

	hitLeft := m.hitNode(node.LeftFirst, ray, hit)
	if hitLeft {
		ray.TMax = hit.T
	}
	hitRight := m.hitNode(node.LeftFirst+1, ray, hit)
	return hitLeft || hitRight
}

// HitAny reports whether any triangle blocks the ray. Unlike a slab-only
// test this walks down to the triangles, so geometry that merely shares a
// leaf box with the ray does not cast a shadow.
func (m *TriangleMesh) HitAny(ray core.Ray) bool {
	if m.bvh == nil {
		return false
	}
	return m.hitAnyNode(0, ray)
}

func (m *TriangleMesh) hitAnyNode(nodeIdx uint32, ray core.Ray) bool {
	node := m.bvh.Nodes[nodeIdx]
	if !SlabTest(node.AABBMin, node.AABBMax, ray) {
		return false
	}

	if node.IsLeaf() {
		for i := uint32(0); i < node.TriCount; i++ {
			if m.triangleAt(m.bvh.TriIndex[node.LeftFirst+i]).HitAny(ray) {
				return true
			}
		}
		return false
	}

	return m.hitAnyNode(node.LeftFirst, ray) || m.hitAnyNode(node.LeftFirst+1, ray)
}
