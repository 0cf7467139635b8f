package renderer

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// ErrInvalidConfig is returned for sampling configurations that cannot be rendered
var ErrInvalidConfig = errors.New("invalid sampling config")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed for per-row random sources; 0 draws fresh entropy
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Validate reports the first field that cannot be rendered
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfig, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidConfig, c.MaxDepth)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}

// Scene interface to avoid circular imports
type Scene interface {
	GetEnvironment() integrator.Environment
	GetCameraConfig() CameraConfig
}

// Raytracer handles the rendering process
type Raytracer struct {
	env        integrator.Environment
	camera     *Camera
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a raytracer for scene using the path tracing integrator
func NewRaytracer(scene Scene, config SamplingConfig, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NopLogger{}
	}

	return &Raytracer{
		env:        scene.GetEnvironment(),
		camera:     NewCamera(scene.GetCameraConfig()),
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(),
		logger:     logger,
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(i integrator.Integrator) {
	rt.integrator = i
}

// Render traces every pixel and returns the tone-mapped frame.
// Cancellation is observed between rows; a cancelled render returns ctx's error.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	startTime := time.Now()
	width, height := rt.config.Width, rt.config.Height

	frame := NewFrame(width, height)
	pool := NewWorkerPool(rt, frame, rt.config.NumWorkers)

	rt.logger.Printf("Rendering %dx%d at %d samples per pixel, max depth %d (using %d workers)...\n",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, pool.GetNumWorkers())

	pool.Start(ctx)

	seeds := rt.newSeedSource()
	for row := 0; row < height; row++ {
		pool.SubmitTask(RowTask{Row: row, Seed: seeds(row)})
	}

	stats := RenderStats{SamplesPerPixel: rt.config.SamplesPerPixel}
	var renderErr error
	for i := 0; i < height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.add(result.Stats)
	}
	pool.Stop()

	stats.Elapsed = time.Since(startTime)
	if renderErr != nil {
		rt.logger.Printf("Rendering stopped after %v: %v\n", stats.Elapsed, renderErr)
		return nil, stats, renderErr
	}

	if stats.DroppedSamples > 0 {
		rt.logger.Printf("Dropped %d non-finite samples\n", stats.DroppedSamples)
	}
	rt.logger.Printf("Render complete in %v (%d samples)\n", stats.Elapsed, stats.TotalSamples)
	return frame, stats, nil
}

// newSeedSource returns the per-row seed function: derived from Seed when set,
// otherwise drawn from a time-seeded source up front
func (rt *Raytracer) newSeedSource() func(row int) int64 {
	if rt.config.Seed != 0 {
		base := rt.config.Seed
		return func(row int) int64 { return rowSeed(base, row) }
	}

	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	return func(row int) int64 { return entropy.Int63() }
}

// rowSeed mixes the base seed and row index (splitmix64 finalizer)
func rowSeed(base int64, row int) int64 {
	z := uint64(base) + uint64(row+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}

// RenderRow renders scanline row (0 at the bottom) into its top-first position in frame
func (rt *Raytracer) RenderRow(row int, seed int64, frame *Frame) RenderStats {
	sampler := core.NewSeededSampler(seed)
	width, height := rt.config.Width, rt.config.Height
	sDenominator := viewportDenominator(width)
	tDenominator := viewportDenominator(height)

	stats := RenderStats{}
	outputRow := height - 1 - row

	for i := 0; i < width; i++ {
		var pixel PixelStats
		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			s := (float64(i) + sampler.Get1D()) / sDenominator
			t := (float64(row) + sampler.Get1D()) / tDenominator

			ray := rt.camera.GetRay(s, t, sampler)
			pixel.AddSample(rt.integrator.RayColor(ray, rt.env, rt.config.MaxDepth, sampler))
		}

		rgb := ToneMap(pixel.ColorAccum, pixel.SampleCount)
		copy(frame.Pix[frame.offset(i, outputRow):], rgb[:])

		stats.TotalPixels++
		stats.TotalSamples += pixel.SampleCount
		stats.DroppedSamples += pixel.Dropped
	}

	return stats
}

// viewportDenominator maps pixel indices onto [0, 1]; a single-pixel dimension keeps its size
func viewportDenominator(size int) float64 {
	if size <= 1 {
		return float64(size)
	}
	return float64(size - 1)
}
