package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns color at surface coordinates (u, v) and 3D point p
	Value(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// defaultCheckerFrequency matches a check roughly every 0.3 world units
const defaultCheckerFrequency = 10.0

// Checker alternates between two textures in a 3D sine pattern over world space
type Checker struct {
	Odd       Texture
	Even      Texture
	Frequency float64
}

// NewChecker creates a checker texture from two sub-textures
func NewChecker(odd, even Texture) *Checker {
	return &Checker{Odd: odd, Even: even, Frequency: defaultCheckerFrequency}
}

// NewCheckerColors creates a checker texture from two solid colors
func NewCheckerColors(odd, even core.Vec3) *Checker {
	return NewChecker(NewSolidColor(odd), NewSolidColor(even))
}

// Value selects the odd or even texture from the sign of the sine product
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	f := c.Frequency
	sines := math.Sin(f*p.X) * math.Sin(f*p.Y) * math.Sin(f*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}
