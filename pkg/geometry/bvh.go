package geometry

import (
	"github.com/fluxt/star-wars/pkg/core"
	"github.com/fluxt/star-wars/pkg/material"
)

// Candidate is the closest broad-phase hit found so far.
// Index is the shape's position in the original list and breaks ties on equal t.
type Candidate struct {
	Shape Shape
	Index int
	Hit   BroadHit
}

// closer reports whether a hit at t from shape index should replace the current best
func (c Candidate) closer(t float64, index int, found bool) bool {
	return !found || t < c.Hit.T || (t == c.Hit.T && index < c.Index)
}

// bvhEntry pairs a shape with its position in the scene list
type bvhEntry struct {
	shape Shape
	index int
	bbox  core.AABB
}

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	entries     []bvhEntry // Shapes for leaf nodes (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection
type BVH struct {
	Root  *BVHNode
	count int
}

// Leaf threshold: if we have this many or fewer shapes, store them in a leaf node
const leafThreshold = 8

// NewBVH constructs a BVH from a slice of shapes. The slice itself is not modified.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	entries := make([]bvhEntry, len(shapes))
	for i, shape := range shapes {
		entries[i] = bvhEntry{shape: shape, index: i, bbox: shape.BoundingBox()}
	}

	return &BVH{Root: buildBVH(entries), count: len(shapes)}
}

// buildBVH recursively builds the BVH using median splits along the longest axis
func buildBVH(entries []bvhEntry) *BVHNode {
	boundingBox := entries[0].bbox
	for i := 1; i < len(entries); i++ {
		boundingBox = boundingBox.Union(entries[i].bbox)
	}

	if len(entries) <= leafThreshold {
		return &BVHNode{BoundingBox: boundingBox, entries: entries}
	}

	axis := boundingBox.LongestAxis()
	minVal, maxVal := boundingBox.Min.Axis(axis), boundingBox.Max.Axis(axis)

	// Skip if no extent along this axis
	if maxVal <= minVal {
		return &BVHNode{BoundingBox: boundingBox, entries: entries}
	}

	left, right := partitionEntries(entries, axis, (minVal+maxVal)*0.5)

	// Ensure we don't create empty partitions
	if len(left) == 0 || len(right) == 0 {
		return &BVHNode{BoundingBox: boundingBox, entries: entries}
	}

	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(left),
		Right:       buildBVH(right),
	}
}

// partitionEntries splits entries by bounding-box center against splitPos
func partitionEntries(entries []bvhEntry, axis int, splitPos float64) ([]bvhEntry, []bvhEntry) {
	var left, right []bvhEntry
	for _, e := range entries {
		if e.bbox.Center().Axis(axis) < splitPos {
			left = append(left, e)
		} else {
			right = append(right, e)
		}
	}
	return left, right
}

// Hit finds the closest broad-phase hit in (tMin, tMax]
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (Candidate, bool) {
	var best Candidate
	if bvh.Root == nil {
		return best, false
	}
	found := bvh.hitNode(bvh.Root, ray, tMin, tMax, &best, false)
	return best, found
}

// hitNode recursively tests ray intersection with BVH nodes.
// tMax shrinks to the best t found so far; equal t is still accepted so the index tie-break applies.
func (bvh *BVH) hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64, best *Candidate, found bool) bool {
	if found {
		tMax = best.Hit.T
	}
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return found
	}

	if node.entries != nil {
		for _, e := range node.entries {
			if found {
				tMax = best.Hit.T
			}
			hit, ok := e.shape.Intersect(ray, tMin, tMax)
			if ok && best.closer(hit.T, e.index, found) {
				*best = Candidate{Shape: e.shape, Index: e.index, Hit: hit}
				found = true
			}
		}
		return found
	}

	if node.Left != nil {
		found = bvh.hitNode(node.Left, ray, tMin, tMax, best, found)
	}
	if node.Right != nil {
		found = bvh.hitNode(node.Right, ray, tMin, tMax, best, found)
	}
	return found
}

// ClosestHit runs the broad phase over the hierarchy and shades only the winner
func (bvh *BVH) ClosestHit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.ShadingHit, bool) {
	best, ok := bvh.Hit(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	return best.Shape.Shade(ray, best.Hit, sampler), true
}

// BoundingBox returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh.Root == nil {
		return core.AABB{}
	}
	return bvh.Root.BoundingBox
}

// Len returns the number of shapes in the hierarchy
func (bvh *BVH) Len() int {
	return bvh.count
}

// Closest finds the closest broad-phase hit by testing every shape in order.
// It gives the same answer as a BVH built from the same slice.
func Closest(shapes []Shape, ray core.Ray, tMin, tMax float64) (Candidate, bool) {
	var best Candidate
	found := false
	closest := tMax
	for i, shape := range shapes {
		hit, ok := shape.Intersect(ray, tMin, closest)
		if ok && best.closer(hit.T, i, found) {
			best = Candidate{Shape: shape, Index: i, Hit: hit}
			found = true
			closest = hit.T
		}
	}
	return best, found
}

// BVHStats describes the shape of a built hierarchy
type BVHStats struct {
	TotalNodes  int
	LeafNodes   int
	MaxDepth    int
	AvgDepth    float64
	TotalShapes int
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	if bvh.Root == nil {
		return BVHStats{}
	}

	stats := BVHStats{}
	collectStats(bvh.Root, 0, &stats)

	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}
	return stats
}

// collectStats recursively collects statistics about the BVH
func collectStats(node *BVHNode, depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.entries != nil {
		stats.LeafNodes++
		stats.TotalShapes += len(node.entries)
		stats.AvgDepth += float64(depth)
		return
	}
	if node.Left != nil {
		collectStats(node.Left, depth+1, stats)
	}
	if node.Right != nil {
		collectStats(node.Right, depth+1, stats)
	}
}
