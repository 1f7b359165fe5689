package integrator

import "github.com/df07/go-pathtracer/pkg/core"

// Background supplies the radiance of rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// GradientBackground blends from Bottom to Top by the height of the ray direction
type GradientBackground struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewGradientBackground creates a vertical sky gradient
func NewGradientBackground(top, bottom core.Vec3) *GradientBackground {
	return &GradientBackground{Top: top, Bottom: bottom}
}

// Color returns a gradient color based on ray direction
func (g *GradientBackground) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return g.Bottom.Multiply(1.0 - t).Add(g.Top.Multiply(t))
}

// SolidBackground returns the same color in every direction
type SolidBackground struct {
	Radiance core.Vec3
}

// NewSolidBackground creates a uniform background; black for scenes lit only by emitters
func NewSolidBackground(color core.Vec3) *SolidBackground {
	return &SolidBackground{Radiance: color}
}

// Color returns the fixed background color
func (s *SolidBackground) Color(ray core.Ray) core.Vec3 {
	return s.Radiance
}
