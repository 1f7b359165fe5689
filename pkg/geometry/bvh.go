package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// bvhNode is either a leaf holding one shape or an internal node with two children
type bvhNode struct {
	box   core.AABB
	left  *bvhNode
	right *bvhNode
	shape Shape // Non-nil only for leaves
}

// BVH is a bounding volume hierarchy over a fixed set of shapes.
// It is never modified after NewBVH returns, so any number of goroutines
// may call Hit concurrently.
type BVH struct {
	root       *bvhNode
	primitives int
}

// boxedShape pairs a shape with its bounding box so the build sorts without recomputing boxes
type boxedShape struct {
	shape    Shape
	box      core.AABB
	centroid core.Vec3
}

// NewBVH constructs a BVH over shapes, bounding motion over [time0, time1]
func NewBVH(shapes []Shape, time0, time1 float64) (*BVH, error) {
	if len(shapes) == 0 {
		return nil, core.NewInvalidSceneError("cannot build a BVH over zero primitives")
	}

	// Build on a private copy so the caller's slice order is left alone
	items := make([]boxedShape, len(shapes))
	for i, shape := range shapes {
		if shape == nil {
			return nil, core.NewInvalidSceneError("primitive %d is nil", i)
		}
		box := shape.BoundingBox(time0, time1)
		if !box.IsValid() || !finiteVec(box.Min) || !finiteVec(box.Max) {
			return nil, core.NewInvalidSceneError("primitive %d (%T) has invalid bounding box %v", i, shape, box)
		}
		items[i] = boxedShape{shape: shape, box: box, centroid: box.Center()}
	}

	return &BVH{
		root:       buildBVH(items),
		primitives: len(items),
	}, nil
}

// buildBVH recursively splits at the median along the longest centroid axis
func buildBVH(items []boxedShape) *bvhNode {
	if len(items) == 1 {
		return &bvhNode{box: items[0].box, shape: items[0].shape}
	}

	centroidBounds := core.EmptyAABB()
	for _, item := range items {
		centroidBounds = centroidBounds.Union(core.NewAABB(item.centroid, item.centroid))
	}
	axis := centroidBounds.LongestAxis()

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].centroid.Axis(axis) < items[j].centroid.Axis(axis)
	})

	// Two items become an ordered pair of leaves; larger sets split at the median
	mid := len(items) / 2
	left := buildBVH(items[:mid])
	right := buildBVH(items[mid:])

	return &bvhNode{
		box:   left.box.Union(right.box),
		left:  left,
		right: right,
	}
}

// Hit returns the closest intersection in [tMin, tMax]
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !bvh.root.box.Hit(ray, tMin, tMax) {
		return nil, false
	}
	return bvh.hitNode(bvh.root, ray, tMin, tMax)
}

// hitNode descends into a node whose box the ray is already known to hit
func (bvh *BVH) hitNode(node *bvhNode, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if node.shape != nil {
		return node.shape.Hit(ray, tMin, tMax)
	}

	leftEntry, hitLeft := node.left.box.Entry(ray, tMin, tMax)
	rightEntry, hitRight := node.right.box.Entry(ray, tMin, tMax)

	switch {
	case hitLeft && !hitRight:
		return bvh.hitNode(node.left, ray, tMin, tMax)
	case hitRight && !hitLeft:
		return bvh.hitNode(node.right, ray, tMin, tMax)
	case !hitLeft && !hitRight:
		return nil, false
	}

	// Both children are hit: visit the nearer box first
	first, second := node.left, node.right
	secondEntry := rightEntry
	if rightEntry < leftEntry {
		first, second = node.right, node.left
		secondEntry = leftEntry
	}

	closestHit, hitAnything := bvh.hitNode(first, ray, tMin, tMax)
	closestSoFar := tMax
	if hitAnything {
		closestSoFar = closestHit.T
	}

	// The second box can only hold a closer hit if the ray enters it before closestSoFar
	if secondEntry <= closestSoFar {
		if hit, isHit := bvh.hitNode(second, ray, tMin, closestSoFar); isHit {
			return hit, true
		}
	}

	return closestHit, hitAnything
}

// BoundingBox returns the root bounding box
func (bvh *BVH) BoundingBox(time0, time1 float64) core.AABB {
	return bvh.root.box
}

// BVHStats describes the shape of a built hierarchy
type BVHStats struct {
	Primitives       int
	Nodes            int
	Leaves           int
	MaxDepth         int
	AverageLeafDepth float64
}

// Stats walks the tree and reports its size and depth
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{Primitives: bvh.primitives}
	depthSum := 0
	bvh.collectStats(bvh.root, 0, &stats, &depthSum)
	if stats.Leaves > 0 {
		stats.AverageLeafDepth = float64(depthSum) / float64(stats.Leaves)
	}
	return stats
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(node *bvhNode, depth int, stats *BVHStats, depthSum *int) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.shape != nil {
		stats.Leaves++
		*depthSum += depth
		return
	}

	bvh.collectStats(node.left, depth+1, stats, depthSum)
	bvh.collectStats(node.right, depth+1, stats, depthSum)
}
