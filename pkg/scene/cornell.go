package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// cornellSize is the edge length of the standard Cornell box
const cornellSize = 555.0

// newCornellBox creates the empty Cornell box: five walls and a ceiling light facing down
func newCornellBox() *Scene {
	s := &Scene{
		Background: core.NewVec3(0, 0, 0), // Black background
		Camera: renderer.CameraConfig{
			LookFrom:    core.NewVec3(278, 278, -800), // Position camera outside the box looking in
			LookAt:      core.NewVec3(278, 278, 0),    // Look at the center of the box
			Up:          core.NewVec3(0, 1, 0),
			VFov:        40.0,
			AspectRatio: 1.0, // Square aspect ratio for Cornell box
			Time0:       0,
			Time1:       1,
		},
		Sampling: renderer.SamplingConfig{
			Width:           400,
			Height:          400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}

	// Create materials
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	s.Add(
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, cornellSize, green), // Right wall
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, 0, red),             // Left wall
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, 0, white),           // Floor
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, cornellSize, white), // Ceiling
		geometry.NewXYRect(0, cornellSize, 0, cornellSize, cornellSize, white), // Back wall
	)

	// Ceiling light just below the ceiling, flipped to emit downwards
	s.AddRectLight(geometry.NewXZRect(213, 343, 227, 332, 554, nil), core.NewVec3(15, 15, 15), true)

	return s
}

// NewCornellScene creates the Cornell box with a metal sphere and a glass sphere.
// The glass sphere is also a sampling target so caustics converge faster.
func NewCornellScene() *Scene {
	s := newCornellBox()

	// Left sphere (smaller, metallic)
	s.Add(geometry.NewSphere(
		core.NewVec3(185, 82.5, 169),
		82.5,
		material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.0),
	))

	// Right sphere (larger, glass)
	glass := geometry.NewSphere(core.NewVec3(370, 90, 351), 90, material.NewDielectric(1.5))
	s.AddLight(glass)

	return s
}

// NewCornellBoxesScene creates the Cornell box with two rotated white boxes
func NewCornellBoxesScene() *Scene {
	s := newCornellBox()
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	tall := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	s.Add(geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295)))

	short := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	s.Add(geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65)))

	return s
}
