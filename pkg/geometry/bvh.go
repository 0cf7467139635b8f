package geometry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrNoBoundingBox is returned when a BVH is asked to hold an unbounded object
var ErrNoBoundingBox = errors.New("object has no bounding box")

// bvhNode is either a leaf holding one object or an interior node with two children.
// Children are indices into BVH.nodes.
type bvhNode struct {
	box         core.AABB
	object      Hittable // Non-nil for leaves
	left, right int
}

// bvhEntry pairs an object with its box so boxes are computed once during construction
type bvhEntry struct {
	object Hittable
	box    core.AABB
}

// BVH represents a Bounding Volume Hierarchy stored as a flat node array
type BVH struct {
	nodes []bvhNode
	root  int
}

// BVHStats describes the shape of a built hierarchy
type BVHStats struct {
	TotalNodes int
	LeafNodes  int
	MaxDepth   int
}

// NewBVH builds a hierarchy over objects using boxes valid for [time0, time1].
// Each level splits on a random axis after sorting by box minimum.
func NewBVH(objects []Hittable, time0, time1 float64, sampler core.Sampler) (*BVH, error) {
	bvh := &BVH{root: -1}
	if len(objects) == 0 {
		return bvh, nil
	}

	entries := make([]bvhEntry, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("bvh: object %d (%T): %w", i, object, ErrNoBoundingBox)
		}
		entries[i] = bvhEntry{object: object, box: box}
	}

	bvh.nodes = make([]bvhNode, 0, 2*len(entries)-1)
	bvh.root = bvh.build(entries, sampler)
	return bvh, nil
}

// build sorts entries in place and returns the index of the subtree root
func (bvh *BVH) build(entries []bvhEntry, sampler core.Sampler) int {
	axis := core.RandomInt(sampler, 3)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].box.Min.Axis(axis) < entries[j].box.Min.Axis(axis)
	})

	var left, right int
	switch len(entries) {
	case 1:
		return bvh.addNode(bvhNode{box: entries[0].box, object: entries[0].object, left: -1, right: -1})
	case 2:
		left = bvh.addNode(bvhNode{box: entries[0].box, object: entries[0].object, left: -1, right: -1})
		right = bvh.addNode(bvhNode{box: entries[1].box, object: entries[1].object, left: -1, right: -1})
	default:
		mid := len(entries) / 2
		left = bvh.build(entries[:mid], sampler)
		right = bvh.build(entries[mid:], sampler)
	}

	box := bvh.nodes[left].box.Union(bvh.nodes[right].box)
	return bvh.addNode(bvhNode{box: box, left: left, right: right})
}

func (bvh *BVH) addNode(node bvhNode) int {
	bvh.nodes = append(bvh.nodes, node)
	return len(bvh.nodes) - 1
}

// Hit tests if a ray intersects any object in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if bvh.root < 0 {
		return nil, false
	}
	return bvh.hitNode(bvh.root, ray, tMin, tMax)
}

// hitNode tests both children over the same interval and keeps the nearer hit
func (bvh *BVH) hitNode(index int, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	node := &bvh.nodes[index]
	if !node.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.object != nil {
		return node.object.Hit(ray, tMin, tMax)
	}

	leftHit, leftOk := bvh.hitNode(node.left, ray, tMin, tMax)
	rightHit, rightOk := bvh.hitNode(node.right, ray, tMin, tMax)

	switch {
	case leftOk && rightOk:
		if leftHit.T <= rightHit.T {
			return leftHit, true
		}
		return rightHit, true
	case leftOk:
		return leftHit, true
	case rightOk:
		return rightHit, true
	}
	return nil, false
}

// BoundingBox returns the root box; an empty hierarchy has none
func (bvh *BVH) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if bvh.root < 0 {
		return core.AABB{}, false
	}
	return bvh.nodes[bvh.root].box, true
}

// Stats returns node counts and depth of the hierarchy
func (bvh *BVH) Stats() BVHStats {
	var stats BVHStats
	if bvh.root >= 0 {
		bvh.collectStats(bvh.root, 0, &stats)
	}
	return stats
}

func (bvh *BVH) collectStats(index, depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	node := &bvh.nodes[index]
	if node.object != nil {
		stats.LeafNodes++
		return
	}
	bvh.collectStats(node.left, depth+1, stats)
	bvh.collectStats(node.right, depth+1, stats)
}
