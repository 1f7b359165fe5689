package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter returns the bounced ray and its attenuation. A false result
	// means the ray was absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(uv core.Vec2, point core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface coordinates
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// EmittedBy returns the light a hit surface emits, black for non-emitters
func EmittedBy(hit *HitRecord) core.Vec3 {
	if emitter, ok := hit.Material.(Emitter); ok {
		return emitter.Emitted(hit.UV, hit.Point)
	}
	return core.Vec3{}
}
