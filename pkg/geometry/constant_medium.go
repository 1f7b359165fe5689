package geometry

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ConstantMedium fills a convex boundary shape with fog of uniform density
type ConstantMedium struct {
	Boundary      Shape
	Density       float64
	Phase         material.Material
	negInvDensity float64
}

// NewConstantMedium creates a fog volume with an isotropic phase function of the given color
func NewConstantMedium(boundary Shape, density float64, albedo core.Vec3) *ConstantMedium {
	return NewTexturedConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// NewTexturedConstantMedium creates a fog volume whose color comes from a texture
func NewTexturedConstantMedium(boundary Shape, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		Phase:         material.NewTexturedIsotropic(albedo),
		negInvDensity: -1.0 / density,
	}
}

// Hit finds where the ray enters and leaves the boundary and scatters
// somewhere in between with probability set by the density
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	enter, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, enter.T+0.0001, math.Inf(1))
	if !ok {
		return nil, false
	}

	t0 := math.Max(enter.T, tMin)
	t1 := math.Min(exit.T, tMax)
	if t0 >= t1 {
		return nil, false
	}
	t0 = math.Max(t0, 0)

	rayLength := ray.Direction.Length()
	distanceInside := (t1 - t0) * rayLength
	hitDistance := m.negInvDensity * math.Log(rayUniform(ray))
	if hitDistance > distanceInside {
		return nil, false
	}

	t := t0 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // Arbitrary, the phase function ignores it
		FrontFace: true,
		Material:  m.Phase,
	}, true
}

// BoundingBox is the boundary's bounding box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) core.AABB {
	return m.Boundary.BoundingBox(time0, time1)
}

// Validate requires a positive finite density and a valid boundary
func (m *ConstantMedium) Validate() error {
	if !(m.Density > 0) || math.IsInf(m.Density, 0) {
		return core.NewInvalidSceneError("constant medium density must be positive and finite, got %v", m.Density)
	}
	return Validate(m.Boundary)
}

// rayUniform derives a uniform value in (0, 1] from the ray's bits.
// Shapes are not handed a sampler, and this keeps the scattering distance
// reproducible for a given ray without shared random state.
func rayUniform(ray core.Ray) float64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range []float64{
		ray.Origin.X, ray.Origin.Y, ray.Origin.Z,
		ray.Direction.X, ray.Direction.Y, ray.Direction.Z,
		ray.Time,
	} {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	return float64(h.Sum64()>>11+1) / (1 << 53)
}
