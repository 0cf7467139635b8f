package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// FlipFace inverts which side of the wrapped object counts as the front
type FlipFace struct {
	Object Hittable
}

// NewFlipFace wraps object with its front and back faces swapped
func NewFlipFace(object Hittable) *FlipFace {
	return &FlipFace{Object: object}
}

// Hit returns the wrapped hit with the face flag toggled
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hitRecord, isHit := f.Object.Hit(ray, tMin, tMax)
	if !isHit {
		return nil, false
	}
	hitRecord.FrontFace = !hitRecord.FrontFace
	return hitRecord, true
}

// BoundingBox returns the wrapped object's box
func (f *FlipFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Object.BoundingBox(time0, time1)
}

// PDFValue forwards to the wrapped object
func (f *FlipFace) PDFValue(origin, direction core.Vec3) float64 {
	return PDFValue(f.Object, origin, direction)
}

// Random forwards to the wrapped object
func (f *FlipFace) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return RandomDirection(f.Object, origin, sampler)
}
