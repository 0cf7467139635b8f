package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

const (
	// shadowAcneEpsilon keeps secondary rays from re-hitting their own surface
	shadowAcneEpsilon = 0.001

	// minPDF is the smallest sampling density trusted as a divisor
	minPDF = 1e-12
)

// PathTracingIntegrator implements unidirectional path tracing with light importance sampling
type PathTracingIntegrator struct{}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, env Environment, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := env.World.Hit(ray, shadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return env.Background
	}

	emitted := hit.Material.Emitted(ray, *hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emitted
	}

	if scatter.Specular {
		incoming := pt.RayColor(scatter.Scattered, env, depth-1, sampler)
		return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
	}

	return emitted.Add(pt.calculateDiffuseColor(ray, hit, scatter, env, depth, sampler))
}

// calculateDiffuseColor samples a continuation from the light/cosine mixture and
// weights it by the material density over the sampling density
func (pt *PathTracingIntegrator) calculateDiffuseColor(ray core.Ray, hit *material.HitRecord, scatter material.ScatterResult, env Environment, depth int, sampler core.Sampler) core.Vec3 {
	var sampling pdf.PDF = pdf.NewCosinePDF(hit.Normal)
	if env.Lights != nil {
		sampling = pdf.NewMixturePDF(pdf.NewHittablePDF(env.Lights, hit.Point), sampling)
	}

	scattered := core.NewRayAtTime(hit.Point, sampling.Generate(sampler), ray.Time)
	pdfValue := sampling.Value(scattered.Direction)
	if !(pdfValue > minPDF) || math.IsInf(pdfValue, 0) {
		return core.Vec3{}
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, *hit, scattered)
	incoming := pt.RayColor(scattered, env, depth-1, sampler)

	contribution := scatter.Attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / pdfValue)
	if !contribution.IsFinite() {
		return core.Vec3{}
	}
	return contribution
}
