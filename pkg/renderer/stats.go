package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Samples taken per pixel
	DroppedSamples  int           // Non-finite samples replaced by black
	Elapsed         time.Duration // Wall time of the render
}

// add merges the counters of a finished row
func (s *RenderStats) add(row RenderStats) {
	s.TotalPixels += row.TotalPixels
	s.TotalSamples += row.TotalSamples
	s.DroppedSamples += row.DroppedSamples
}

// PixelStats accumulates samples for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB sum of finite samples
	SampleCount int       // Samples taken, including dropped ones
	Dropped     int       // Samples that were not finite
}

// AddSample adds a radiance sample; non-finite samples count as black
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.SampleCount++
	if !color.IsFinite() {
		ps.Dropped++
		return
	}
	ps.ColorAccum = ps.ColorAccum.Add(color)
}
