package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable interface for objects that can be hit by rays
type Hittable interface {
	// Hit returns the nearest intersection with t in (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// BoundingBox returns a box valid over the shutter interval [time0, time1];
	// false means the object is unbounded
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}

// LightTarget is implemented by objects that can be sampled directly
// when used as an importance-sampling target (area lights)
type LightTarget interface {
	// PDFValue returns the solid-angle density of sampling direction from origin
	PDFValue(origin, direction core.Vec3) float64

	// Random returns a direction from origin towards the object
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// PDFValue returns h's sampling density, or 0 when h cannot be sampled directly
func PDFValue(h Hittable, origin, direction core.Vec3) float64 {
	if target, ok := h.(LightTarget); ok {
		return target.PDFValue(origin, direction)
	}
	return 0
}

// RandomDirection returns a direction sampled towards h, or +X when h cannot be sampled directly
func RandomDirection(h Hittable, origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if target, ok := h.(LightTarget); ok {
		return target.Random(origin, sampler)
	}
	return core.NewVec3(1, 0, 0)
}
