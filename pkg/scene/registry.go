package scene

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrUnknownScene is returned when a scene name has no builder
var ErrUnknownScene = errors.New("unknown scene")

// builders maps scene names to constructors; randomized scenes draw from the sampler
var builders = map[string]func(sampler core.Sampler) *Scene{
	"cornell":       func(core.Sampler) *Scene { return NewCornellScene() },
	"cornell-boxes": func(core.Sampler) *Scene { return NewCornellBoxesScene() },
	"random":        NewRandomScene,
	"simple-light":  func(core.Sampler) *Scene { return NewSimpleLightScene() },
	"emissive-wall": func(core.Sampler) *Scene { return NewEmissiveWallScene() },
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named scene. A non-zero seed makes randomized scenes reproducible.
func New(name string, seed int64) (*Scene, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := build(core.NewSeededSampler(seed))
	s.Name = name
	return s, nil
}
