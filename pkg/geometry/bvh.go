package geometry

import (
	"math"

	"github.com/arendv/go-interactive-raytracer/pkg/core"
)

// BVHNode is a packed node. TriCount == 0 marks an internal node whose left
// child sits at LeftFirst (right child at LeftFirst+1); TriCount > 0 marks a
// leaf whose triangles occupy TriIndex[LeftFirst : LeftFirst+TriCount].
type BVHNode struct {
	AABBMin   core.Vector3
	AABBMax   core.Vector3
	LeftFirst uint32
	TriCount  uint32
}

// IsLeaf reports whether the node holds triangles directly
func (n BVHNode) IsLeaf() bool {
	return n.TriCount > 0
}

// centroidTriangle is the build-time view of one triangle.
type centroidTriangle struct {
	v0, v1, v2 core.Vector3
	centroid   core.Vector3
}

// BVH is a bounding-volume hierarchy over one mesh's transformed triangles.
// The builder partitions a permutation of triangle indices rather than the
// mesh's index buffer, so mesh connectivity is never reordered; the mesh
// rebuilds the whole structure whenever its transforms change.
type BVH struct {
	Nodes     []BVHNode
	NodesUsed uint32
	TriIndex  []uint32 // permutation: triangle slot -> triangle index

	tris []centroidTriangle
}

// Number of SAH bins per axis.
const bvhBins = 8

type bvhBin struct {
	bounds   AABB
	triCount uint32
}

// BuildBVH constructs the hierarchy for the given transformed vertex
// positions and triangle index triples. The node array is pre-sized to
// 2*T - 1 so the builder never reallocates; an empty mesh yields a single
// root with zero triangles whose NaN bounds fail every slab test.
func BuildBVH(positions []core.Vector3, indices []uint32) *BVH {
	triCount := len(indices) / 3

	bvh := &BVH{
		Nodes:     make([]BVHNode, max(1, 2*triCount-1)),
		NodesUsed: 1,
		TriIndex:  make([]uint32, triCount),
		tris:      make([]centroidTriangle, 0, triCount),
	}

	for i := 0; i < len(indices); i += 3 {
		v0 := positions[indices[i]]
		v1 := positions[indices[i+1]]
		v2 := positions[indices[i+2]]
		bvh.tris = append(bvh.tris, centroidTriangle{
			v0: v0, v1: v1, v2: v2,
			centroid: v0.Add(v1).Add(v2).Multiply(1.0 / 3.0),
		})
	}
	for i := range bvh.TriIndex {
		bvh.TriIndex[i] = uint32(i)
	}

	root := &bvh.Nodes[0]
	root.LeftFirst = 0
	root.TriCount = uint32(triCount)
	if triCount == 0 {
		nan := float32(math.NaN())
		nanCorner := core.Vector3{X: nan, Y: nan, Z: nan}
		root.AABBMin, root.AABBMax = nanCorner, nanCorner
		return bvh
	}

	bvh.updateNodeBounds(0)
	bvh.subdivide(0)
	return bvh
}

// updateNodeBounds grows the node box over every vertex of every triangle in
// the node's slot range
func (bvh *BVH) updateNodeBounds(nodeIdx uint32) {
	node := &bvh.Nodes[nodeIdx]
	bounds := EmptyAABB()
	for i := uint32(0); i < node.TriCount; i++ {
		tri := bvh.tris[bvh.TriIndex[node.LeftFirst+i]]
		bounds.Grow(tri.v0)
		bounds.Grow(tri.v1)
		bounds.Grow(tri.v2)
	}
	node.AABBMin = bounds.Min
	node.AABBMax = bounds.Max
}

// findBestSplitPlane evaluates the binned SAH over all three axes and
// returns the cheapest candidate plane
func (bvh *BVH) findBestSplitPlane(node BVHNode) (axis int, splitPos float32, cost float32) {
	bestCost := float32(1e30)
	bestAxis := -1
	var bestPos float32

	for a := 0; a < 3; a++ {
		boundsMin := float32(1e30)
		boundsMax := float32(-1e30)
		for i := uint32(0); i < node.TriCount; i++ {
			c := bvh.tris[bvh.TriIndex[node.LeftFirst+i]].centroid.At(a)
			boundsMin = min(boundsMin, c)
			boundsMax = max(boundsMax, c)
		}
		if boundsMin == boundsMax {
			continue
		}

		// populate the bins
		var bins [bvhBins]bvhBin
		for i := range bins {
			bins[i].bounds = EmptyAABB()
		}
		scale := float32(bvhBins) / (boundsMax - boundsMin)
		for i := uint32(0); i < node.TriCount; i++ {
			tri := bvh.tris[bvh.TriIndex[node.LeftFirst+i]]
			binIdx := min(bvhBins-1, int((tri.centroid.At(a)-boundsMin)*scale))
			bins[binIdx].triCount++
			bins[binIdx].bounds.Grow(tri.v0)
			bins[binIdx].bounds.Grow(tri.v1)
			bins[binIdx].bounds.Grow(tri.v2)
		}

		// prefix/suffix sweep over the 7 planes between the bins
		var leftArea, rightArea [bvhBins - 1]float32
		var leftCount, rightCount [bvhBins - 1]uint32
		leftBox, rightBox := EmptyAABB(), EmptyAABB()
		leftSum, rightSum := uint32(0), uint32(0)
		for i := 0; i < bvhBins-1; i++ {
			leftSum += bins[i].triCount
			leftCount[i] = leftSum
			leftBox.GrowAABB(bins[i].bounds)
			leftArea[i] = leftBox.Area()

			rightSum += bins[bvhBins-1-i].triCount
			rightCount[bvhBins-2-i] = rightSum
			rightBox.GrowAABB(bins[bvhBins-1-i].bounds)
			rightArea[bvhBins-2-i] = rightBox.Area()
		}

		scale = (boundsMax - boundsMin) / bvhBins
		for i := 0; i < bvhBins-1; i++ {
			planeCost := float32(leftCount[i])*leftArea[i] + float32(rightCount[i])*rightArea[i]
			if planeCost < bestCost {
				bestAxis = a
				bestPos = boundsMin + scale*float32(i+1)
				bestCost = planeCost
			}
		}
	}

	return bestAxis, bestPos, bestCost
}

// nodeCost is the SAH cost of leaving the node unsplit
func (bvh *BVH) nodeCost(node BVHNode) float32 {
	e := node.AABBMax.Subtract(node.AABBMin)
	area := e.X*e.Y + e.Y*e.Z + e.Z*e.X
	return float32(node.TriCount) * area
}

// subdivide recursively splits a node while the SAH predicts a win
func (bvh *BVH) subdivide(nodeIdx uint32) {
	node := &bvh.Nodes[nodeIdx]

	axis, splitPos, splitCost := bvh.findBestSplitPlane(*node)
	if axis < 0 || splitCost >= bvh.nodeCost(*node) {
		return
	}

	// Hoare partition of the slot permutation around the split plane
	i := int(node.LeftFirst)
	j := int(node.LeftFirst+node.TriCount) - 1
	for i <= j {
		if bvh.tris[bvh.TriIndex[i]].centroid.At(axis) < splitPos {
			i++
		} else {
			bvh.TriIndex[i], bvh.TriIndex[j] = bvh.TriIndex[j], bvh.TriIndex[i]
			j--
		}
	}

	// a fully skewed partition stays a leaf
	leftCount := uint32(i) - node.LeftFirst
	if leftCount == 0 || leftCount == node.TriCount {
		return
	}

	leftChildIdx := bvh.NodesUsed
	rightChildIdx := bvh.NodesUsed + 1
	bvh.NodesUsed += 2

	bvh.Nodes[leftChildIdx].LeftFirst = node.LeftFirst
	bvh.Nodes[leftChildIdx].TriCount = leftCount
	bvh.Nodes[rightChildIdx].LeftFirst = uint32(i)
	bvh.Nodes[rightChildIdx].TriCount = node.TriCount - leftCount
	node.LeftFirst = leftChildIdx
	node.TriCount = 0

	bvh.updateNodeBounds(leftChildIdx)
	bvh.updateNodeBounds(rightChildIdx)
	bvh.subdivide(leftChildIdx)
	bvh.subdivide(rightChildIdx)
}
