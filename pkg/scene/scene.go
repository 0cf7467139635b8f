package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	Objects    []geometry.Hittable     // Objects in the scene
	Lights     []geometry.Hittable     // Importance-sampling targets, also present in Objects
	Background core.Vec3               // Radiance for rays that escape
	Camera     renderer.CameraConfig   // View parameters
	Sampling   renderer.SamplingConfig // Default render settings for this scene
	World      geometry.Hittable       // Acceleration structure built by Preprocess
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...geometry.Hittable) {
	s.Objects = append(s.Objects, objects...)
}

// AddLight appends an emitter that is both rendered and importance sampled
func (s *Scene) AddLight(light geometry.Hittable) {
	s.Objects = append(s.Objects, light)
	s.Lights = append(s.Lights, light)
}

// AddRectLight adds an emissive rectangle; flip turns its emitting side towards -axis
func (s *Scene) AddRectLight(rect *geometry.AARect, emission core.Vec3, flip bool) {
	rect.Material = material.NewDiffuseLight(emission)
	if flip {
		s.AddLight(geometry.NewFlipFace(rect))
		return
	}
	s.AddLight(rect)
}

// SetImageSize changes the output resolution and keeps the camera aspect ratio in sync
func (s *Scene) SetImageSize(width, height int) {
	s.Sampling.Width = width
	s.Sampling.Height = height
	if width > 0 && height > 0 {
		s.Camera.AspectRatio = float64(width) / float64(height)
	}
}

// Preprocess prepares the scene for rendering by building the BVH over all objects
// for the camera's shutter interval
func (s *Scene) Preprocess(sampler core.Sampler) error {
	bvh, err := geometry.NewBVH(s.Objects, s.Camera.Time0, s.Camera.Time1, sampler)
	if err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	s.World = bvh
	return nil
}

// GetEnvironment returns the integrator's view of the scene. Before Preprocess
// the objects are searched linearly.
func (s *Scene) GetEnvironment() integrator.Environment {
	env := integrator.Environment{
		World:      s.World,
		Background: s.Background,
	}
	if env.World == nil {
		env.World = geometry.NewHittableList(s.Objects...)
	}
	if len(s.Lights) == 1 {
		env.Lights = s.Lights[0]
	} else if len(s.Lights) > 1 {
		env.Lights = geometry.NewHittableList(s.Lights...)
	}
	return env
}

// GetCameraConfig returns the camera parameters
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.Camera
}

// GetPrimitiveCount returns the number of top-level objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Objects)
}

// BVHStats returns hierarchy statistics after Preprocess
func (s *Scene) BVHStats() (geometry.BVHStats, bool) {
	bvh, ok := s.World.(*geometry.BVH)
	if !ok {
		return geometry.BVHStats{}, false
	}
	return bvh.Stats(), true
}
