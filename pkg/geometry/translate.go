package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves a wrapped object by a fixed offset
type Translate struct {
	Object Hittable
	Offset core.Vec3
}

// NewTranslate wraps object so it appears displaced by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit intersects the ray moved into object space, then moves the hit point back.
// Translation leaves directions unchanged so the normal and face side carry over.
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	moved := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hitRecord, isHit := t.Object.Hit(moved, tMin, tMax)
	if !isHit {
		return nil, false
	}

	hitRecord.Point = hitRecord.Point.Add(t.Offset)
	return hitRecord, true
}

// BoundingBox returns the wrapped object's box shifted by the offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(t.Offset), true
}

// PDFValue forwards to the wrapped object from the origin moved into object space
func (t *Translate) PDFValue(origin, direction core.Vec3) float64 {
	return PDFValue(t.Object, origin.Subtract(t.Offset), direction)
}

// Random forwards to the wrapped object from the origin moved into object space
func (t *Translate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return RandomDirection(t.Object, origin.Subtract(t.Offset), sampler)
}
