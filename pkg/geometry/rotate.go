package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Axis selects a coordinate axis for rotation
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Rotate rotates a wrapped object about a coordinate axis through the origin
type Rotate struct {
	Object   Hittable
	toWorld  mgl64.Mat3
	toObject mgl64.Mat3
}

// NewRotate wraps object rotated by degrees about axis
func NewRotate(object Hittable, axis Axis, degrees float64) *Rotate {
	theta := mgl64.DegToRad(degrees)

	var rotation mgl64.Mat3
	switch axis {
	case AxisX:
		rotation = mgl64.Rotate3DX(theta)
	case AxisY:
		rotation = mgl64.Rotate3DY(theta)
	default:
		rotation = mgl64.Rotate3DZ(theta)
	}

	return &Rotate{
		Object:   object,
		toWorld:  rotation,
		toObject: rotation.Transpose(),
	}
}

// NewRotateY wraps object rotated by degrees about the Y axis
func NewRotateY(object Hittable, degrees float64) *Rotate {
	return NewRotate(object, AxisY, degrees)
}

// Hit intersects the ray rotated into object space and rotates the result back.
// Rotation preserves angles, so the face side found in object space still holds.
func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(
		transform(r.toObject, ray.Origin),
		transform(r.toObject, ray.Direction),
		ray.Time,
	)

	hitRecord, isHit := r.Object.Hit(rotated, tMin, tMax)
	if !isHit {
		return nil, false
	}

	hitRecord.Point = transform(r.toWorld, hitRecord.Point)
	hitRecord.Normal = transform(r.toWorld, hitRecord.Normal)
	return hitRecord, true
}

// BoundingBox bounds the eight rotated corners of the wrapped object's box
func (r *Rotate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := r.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}

	corners := box.Corners()
	for i, corner := range corners {
		corners[i] = transform(r.toWorld, corner)
	}
	return core.NewAABBFromPoints(corners[:]...), true
}

// PDFValue forwards to the wrapped object in object space
func (r *Rotate) PDFValue(origin, direction core.Vec3) float64 {
	return PDFValue(r.Object, transform(r.toObject, origin), transform(r.toObject, direction))
}

// Random samples the wrapped object in object space and rotates the direction back
func (r *Rotate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return transform(r.toWorld, RandomDirection(r.Object, transform(r.toObject, origin), sampler))
}

func transform(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	out := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(out[0], out[1], out[2])
}
