package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// PDF is a probability density over directions that can also generate samples from itself
type PDF interface {
	// Value returns the solid-angle density of direction
	Value(direction core.Vec3) float64

	// Generate draws a direction distributed according to Value
	Generate(sampler core.Sampler) core.Vec3
}

// CosinePDF samples the hemisphere around a normal with density cos(θ)/π
type CosinePDF struct {
	uvw core.ONB
}

// NewCosinePDF creates a cosine-weighted density about normal
func NewCosinePDF(normal core.Vec3) *CosinePDF {
	return &CosinePDF{uvw: core.NewONBFromW(normal)}
}

// Value returns max(0, cos(θ))/π for the angle between direction and the normal
func (p *CosinePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate returns a cosine-distributed unit direction in the normal's hemisphere
func (p *CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.uvw.Local(core.RandomCosineDirection(sampler.Get2D())).Normalize()
}

// HittablePDF samples directions from an origin towards a target object
type HittablePDF struct {
	origin core.Vec3
	target geometry.Hittable
}

// NewHittablePDF creates a density over directions from origin towards target
func NewHittablePDF(target geometry.Hittable, origin core.Vec3) *HittablePDF {
	return &HittablePDF{origin: origin, target: target}
}

// Value delegates to the target's light-sampling density
func (p *HittablePDF) Value(direction core.Vec3) float64 {
	return geometry.PDFValue(p.target, p.origin, direction)
}

// Generate delegates to the target's light-sampling generator
func (p *HittablePDF) Generate(sampler core.Sampler) core.Vec3 {
	return geometry.RandomDirection(p.target, p.origin, sampler)
}

// MixturePDF is an equal-weight blend of two densities
type MixturePDF struct {
	first, second PDF
}

// NewMixturePDF creates a 50/50 mixture of first and second
func NewMixturePDF(first, second PDF) *MixturePDF {
	return &MixturePDF{first: first, second: second}
}

// Value averages the two component densities
func (p *MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*p.first.Value(direction) + 0.5*p.second.Value(direction)
}

// Generate picks a component with equal probability and samples it
func (p *MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return p.first.Generate(sampler)
	}
	return p.second.Generate(sampler)
}
