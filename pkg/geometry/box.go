package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box is an axis-aligned box built from six rectangles
type Box struct {
	Min, Max core.Vec3
	sides    *HittableList
}

// NewBox creates a box spanning the corners p0 and p1 with outward-facing sides
func NewBox(p0, p1 core.Vec3, material material.Material) *Box {
	lo := core.NewVec3(min(p0.X, p1.X), min(p0.Y, p1.Y), min(p0.Z, p1.Z))
	hi := core.NewVec3(max(p0.X, p1.X), max(p0.Y, p1.Y), max(p0.Z, p1.Z))

	// Rectangles face +axis, so the min-side faces are flipped to point outward
	sides := NewHittableList(
		NewXYRect(lo.X, hi.X, lo.Y, hi.Y, hi.Z, material),
		NewFlipFace(NewXYRect(lo.X, hi.X, lo.Y, hi.Y, lo.Z, material)),
		NewXZRect(lo.X, hi.X, lo.Z, hi.Z, hi.Y, material),
		NewFlipFace(NewXZRect(lo.X, hi.X, lo.Z, hi.Z, lo.Y, material)),
		NewYZRect(lo.Y, hi.Y, lo.Z, hi.Z, hi.X, material),
		NewFlipFace(NewYZRect(lo.Y, hi.Y, lo.Z, hi.Z, lo.X, material)),
	)

	return &Box{Min: lo, Max: hi, sides: sides}
}

// Hit returns the nearest side hit
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the box itself
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
