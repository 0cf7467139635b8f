package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Plane names the two axes an axis-aligned rectangle spans
type Plane int

const (
	PlaneYZ Plane = iota // Perpendicular to X
	PlaneXZ              // Perpendicular to Y
	PlaneXY              // Perpendicular to Z
)

// axes returns the constant axis k followed by the two spanned axes a and b
func (p Plane) axes() (k, a, b int) {
	switch p {
	case PlaneYZ:
		return 0, 1, 2
	case PlaneXZ:
		return 1, 0, 2
	default:
		return 2, 0, 1
	}
}

// rectPadding thickens the flat rectangle box so it has nonzero extent on the constant axis
const rectPadding = 0.0001

// AARect is a rectangle [A0,A1]×[B0,B1] lying at K on the plane's constant axis.
// Its outward normal points along the positive constant axis.
type AARect struct {
	Plane    Plane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material material.Material
}

// NewAARect creates an axis-aligned rectangle on the given plane
func NewAARect(plane Plane, a0, a1, b0, b1, k float64, material material.Material) *AARect {
	return &AARect{
		Plane:    plane,
		A0:       a0,
		A1:       a1,
		B0:       b0,
		B1:       b1,
		K:        k,
		Material: material,
	}
}

// NewXYRect creates a rectangle spanning x and y at z=k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *AARect {
	return NewAARect(PlaneXY, x0, x1, y0, y1, k, material)
}

// NewXZRect creates a rectangle spanning x and z at y=k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *AARect {
	return NewAARect(PlaneXZ, x0, x1, z0, z1, k, material)
}

// NewYZRect creates a rectangle spanning y and z at x=k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *AARect {
	return NewAARect(PlaneYZ, y0, y1, z0, z1, k, material)
}

// Hit tests if a ray intersects the rectangle
func (r *AARect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	k, a, b := r.Plane.axes()

	// A parallel ray yields ±Inf or NaN, both rejected by the range check
	t := (r.K - ray.Origin.Axis(k)) / ray.Direction.Axis(k)
	if !(t > tMin && t < tMax) {
		return nil, false
	}

	point := ray.At(t)
	pa := point.Axis(a)
	pb := point.Axis(b)
	if pa < r.A0 || pa > r.A1 || pb < r.B0 || pb > r.B1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    point,
		U:        (pa - r.A0) / (r.A1 - r.A0),
		V:        (pb - r.B0) / (r.B1 - r.B0),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, core.Vec3{}.WithAxis(k, 1))

	return hitRecord, true
}

// BoundingBox returns the rectangle box padded along the constant axis
func (r *AARect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	k, a, b := r.Plane.axes()
	min := core.Vec3{}.WithAxis(a, r.A0).WithAxis(b, r.B0).WithAxis(k, r.K-rectPadding)
	max := core.Vec3{}.WithAxis(a, r.A1).WithAxis(b, r.B1).WithAxis(k, r.K+rectPadding)
	return core.NewAABB(min, max), true
}

// Area returns the rectangle's surface area
func (r *AARect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// PDFValue converts the uniform area density to solid angle as seen from origin
func (r *AARect) PDFValue(origin, direction core.Vec3) float64 {
	hit, isHit := r.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1))
	if !isHit {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal)) / direction.Length()
	if cosine == 0 {
		return 0
	}

	return distanceSquared / (cosine * r.Area())
}

// Random returns the vector from origin to a uniformly chosen point on the rectangle
func (r *AARect) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	k, a, b := r.Plane.axes()
	sample := sampler.Get2D()
	point := core.Vec3{}.
		WithAxis(a, r.A0+sample.X*(r.A1-r.A0)).
		WithAxis(b, r.B0+sample.Y*(r.B1-r.B0)).
		WithAxis(k, r.K)
	return point.Subtract(origin)
}
