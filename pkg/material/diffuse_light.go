package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emission Texture // Emitted light color/intensity
}

// NewDiffuseLight creates a light with uniform emission
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission varies over the surface
func NewTexturedDiffuseLight(emission Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter implements the Material interface. Lights absorb every incoming ray.
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emitted light at the given surface coordinates
func (e *DiffuseLight) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return e.Emission.Evaluate(uv, point)
}
