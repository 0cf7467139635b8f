package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewSimpleLightScene creates a checkered sphere on a ground sphere, lit only by
// a rectangular light behind it and a glowing sphere above
func NewSimpleLightScene() *Scene {
	s := &Scene{
		Background: core.NewVec3(0, 0, 0),
		Camera: renderer.CameraConfig{
			LookFrom:    core.NewVec3(26, 3, 6),
			LookAt:      core.NewVec3(0, 2, 0),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        20.0,
			AspectRatio: 16.0 / 9.0,
		},
		Sampling: renderer.SamplingConfig{
			Width:           400,
			Height:          225,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}

	checker := material.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewTexturedLambertian(checker)),
	)

	s.AddRectLight(geometry.NewXYRect(3, 5, 1, 3, -2, nil), core.NewVec3(4, 4, 4), false)
	s.AddLight(geometry.NewSphere(core.NewVec3(0, 7, 0), 2, material.NewDiffuseLight(core.NewVec3(4, 4, 4))))

	return s
}
