package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Environment is the read-only scene state an integrator traces against
type Environment struct {
	World      geometry.Hittable // Usually a BVH over all objects
	Lights     geometry.Hittable // Importance-sampling targets; nil when the scene has none
	Background core.Vec3         // Radiance returned by rays that escape
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray with at most depth bounces
	RayColor(ray core.Ray, env Environment, depth int, sampler core.Sampler) core.Vec3
}
