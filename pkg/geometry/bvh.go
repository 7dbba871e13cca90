package geometry

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// SplitPolicy selects how the builder partitions a range of shapes
type SplitPolicy int

const (
	// SplitMedian places the shape with the median extent minimum at the
	// split index using quickselect
	SplitMedian SplitPolicy = iota
	// SplitGeometricCenter partitions by the center of the combined extent
	SplitGeometricCenter
)

// String returns the policy name used in configuration
func (p SplitPolicy) String() string {
	if p == SplitGeometricCenter {
		return "center"
	}
	return "median"
}

// ParseSplitPolicy maps a configuration name to a policy
func ParseSplitPolicy(name string) (SplitPolicy, bool) {
	switch name {
	case "median":
		return SplitMedian, true
	case "center":
		return SplitGeometricCenter, true
	}
	return SplitMedian, false
}

// BVHBuilder builds binary bounding volume hierarchies
type BVHBuilder struct {
	Policy SplitPolicy
}

// BVHNode is an internal node with two children. One child may be nil when a
// partition degenerated; never both.
type BVHNode struct {
	Left  Shape
	Right Shape
	bbox  core.AABB
	area  float64
}

// Build returns nil for no shapes, the shape itself for one, and a tree of
// BVHNodes otherwise. The input slice is not modified.
func (b BVHBuilder) Build(shapes []Shape) Shape {
	if len(shapes) == 0 {
		return nil
	}

	// Work on a copy so callers can reuse their slice
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return b.build(shapesCopy, 0)
}

func (b BVHBuilder) build(shapes []Shape, axis int) Shape {
	switch len(shapes) {
	case 0:
		return nil
	case 1:
		return shapes[0]
	}

	var split int
	if b.Policy == SplitGeometricCenter {
		split = partitionByCenter(shapes, axis)
	} else {
		split = partitionByMedian(shapes, axis)
	}

	next := (axis + 1) % 3
	return newBVHNode(b.build(shapes[:split], next), b.build(shapes[split:], next))
}

// newBVHNode derives the node's box and area from its children
func newBVHNode(left, right Shape) *BVHNode {
	node := &BVHNode{Left: left, Right: right}
	switch {
	case left != nil && right != nil:
		node.bbox = left.BoundingBox().Union(right.BoundingBox())
		node.area = left.Area() + right.Area()
	case left != nil:
		node.bbox = left.BoundingBox()
		node.area = left.Area()
	case right != nil:
		node.bbox = right.BoundingBox()
		node.area = right.Area()
	default:
		panic("bvh: node built with zero children")
	}
	return node
}

// partitionByCenter moves shapes whose extent max lies below the center of
// the combined extent to the front and returns the split index, bumped by
// one when the front is empty.
func partitionByCenter(shapes []Shape, axis int) int {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range shapes {
		box := s.BoundingBox()
		lo = math.Min(lo, box.Min.Axis(axis))
		hi = math.Max(hi, box.Max.Axis(axis))
	}
	center := (lo + hi) / 2

	split := 0
	for i, s := range shapes {
		if s.BoundingBox().Max.Axis(axis) < center {
			shapes[split], shapes[i] = shapes[i], shapes[split]
			split++
		}
	}

	if split == 0 {
		split++
	}
	return split
}

// partitionByMedian reorders shapes so that index n/2 holds the shape with
// the median extent minimum, smaller ones before it and larger ones after.
// Expected O(n) via quickselect.
func partitionByMedian(shapes []Shape, axis int) int {
	keys := make([]float64, len(shapes))
	for i, s := range shapes {
		keys[i] = s.BoundingBox().Min.Axis(axis)
	}

	k := len(shapes) / 2
	lo, hi := 0, len(shapes)-1
	for lo < hi {
		p := partitionAround(shapes, keys, lo, hi, lo+(hi-lo)/2)
		switch {
		case p == k:
			return k
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
	return k
}

// partitionAround is a Lomuto partition of [lo, hi] around the pivot index.
// It returns the pivot's final position.
func partitionAround(shapes []Shape, keys []float64, lo, hi, pivot int) int {
	swap := func(i, j int) {
		shapes[i], shapes[j] = shapes[j], shapes[i]
		keys[i], keys[j] = keys[j], keys[i]
	}

	pivotKey := keys[pivot]
	swap(pivot, hi)
	store := lo
	for i := lo; i < hi; i++ {
		if keys[i] < pivotKey {
			swap(i, store)
			store++
		}
	}
	swap(store, hi)
	return store
}

// Hit tests the box, then both children, keeping the nearer hit
func (n *BVHNode) Hit(ray core.Ray, backfaceCulling, opaqueOnly bool) (material.HitRecord, bool) {
	if !n.bbox.Hit(ray, 0, math.Inf(1)) {
		return material.HitRecord{}, false
	}

	var leftHit, rightHit material.HitRecord
	var leftOK, rightOK bool
	if n.Left != nil {
		leftHit, leftOK = n.Left.Hit(ray, backfaceCulling, opaqueOnly)
	}
	if n.Right != nil {
		rightHit, rightOK = n.Right.Hit(ray, backfaceCulling, opaqueOnly)
	}

	switch {
	case leftOK && rightOK:
		if rightHit.T < leftHit.T {
			return rightHit, true
		}
		return leftHit, true
	case leftOK:
		return leftHit, true
	case rightOK:
		return rightHit, true
	}
	return material.HitRecord{}, false
}

// BoundingBox returns the union of the children's boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// Area returns the sum of the children's areas
func (n *BVHNode) Area() float64 {
	return n.area
}

// SamplePoint picks a child with probability proportional to its area and
// samples it
func (n *BVHNode) SamplePoint(sampler core.Sampler) core.Vec3 {
	switch {
	case n.Left == nil:
		return n.Right.SamplePoint(sampler)
	case n.Right == nil:
		return n.Left.SamplePoint(sampler)
	}
	if sampler.Get1D()*n.area < n.Left.Area() {
		return n.Left.SamplePoint(sampler)
	}
	return n.Right.SamplePoint(sampler)
}

// Stats returns the node count and maximum depth of a tree, for logging
func Stats(root Shape) (nodes, depth int) {
	node, ok := root.(*BVHNode)
	if !ok {
		return 0, 0
	}
	var ld, rd, ln, rn int
	if node.Left != nil {
		ln, ld = Stats(node.Left)
	}
	if node.Right != nil {
		rn, rd = Stats(node.Right)
	}
	return 1 + ln + rn, 1 + max(ld, rd)
}
