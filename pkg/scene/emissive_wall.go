package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewEmissiveWallScene creates a single emitting wall filling the view of a pinhole
// camera. Every primary ray returns the wall's emission, which makes the scene a
// reference for tone mapping and output checks.
func NewEmissiveWallScene() *Scene {
	s := &Scene{
		Background: core.NewVec3(0, 0, 0),
		Camera: renderer.CameraConfig{
			LookFrom:    core.NewVec3(0, 0, 0),
			LookAt:      core.NewVec3(0, 0, -1),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        90.0,
			AspectRatio: 1.0,
		},
		Sampling: renderer.SamplingConfig{
			Width:           2,
			Height:          2,
			SamplesPerPixel: 1,
			MaxDepth:        1,
		},
	}

	s.AddRectLight(geometry.NewXYRect(-100, 100, -100, 100, -1, nil), core.NewVec3(0.25, 0.25, 0.25), false)
	return s
}
