package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/noise"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two textures on a 3D lattice of cubes
type CheckerTexture struct {
	Scale float64 // Edge length of one checker cell
	Even  Texture
	Odd   Texture
}

// NewCheckerTexture creates a spatial checker pattern
func NewCheckerTexture(scale float64, even, odd Texture) *CheckerTexture {
	return &CheckerTexture{Scale: scale, Even: even, Odd: odd}
}

// NewSolidCheckerTexture creates a checker pattern between two solid colors
func NewSolidCheckerTexture(scale float64, even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate picks the even or odd texture by the parity of the lattice cell containing point
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	inv := 1.0 / c.Scale
	x := int(math.Floor(point.X * inv))
	y := int(math.Floor(point.Y * inv))
	z := int(math.Floor(point.Z * inv))
	if (x+y+z)&1 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}

// NoiseMode selects how a noise texture remaps the raw noise value
type NoiseMode int

const (
	NoiseMarble     NoiseMode = iota // Sine of z plus turbulence, marble-like veins
	NoiseTurbulence                  // Plain turbulence magnitude
	NoiseSmooth                      // Single octave remapped to [0,1]
)

// turbulenceDepth is the number of octaves noise textures sum
const turbulenceDepth = 7

// NoiseTexture is a grey procedural texture driven by Perlin noise
type NoiseTexture struct {
	Perlin *noise.Perlin
	Scale  float64
	Mode   NoiseMode
}

// NewNoiseTexture creates a noise texture
func NewNoiseTexture(perlin *noise.Perlin, scale float64, mode NoiseMode) *NoiseTexture {
	return &NoiseTexture{Perlin: perlin, Scale: scale, Mode: mode}
}

// Evaluate returns a grey level derived from noise at point
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	var value float64
	switch n.Mode {
	case NoiseTurbulence:
		value = n.Perlin.Turbulence(point.Multiply(n.Scale), turbulenceDepth)
	case NoiseSmooth:
		value = 0.5 * (1.0 + n.Perlin.Noise(point.Multiply(n.Scale)))
	default:
		value = 0.5 * (1.0 + math.Sin(n.Scale*point.Z+10.0*n.Perlin.Turbulence(point, turbulenceDepth)))
	}
	return core.NewVec3(value, value, value)
}
