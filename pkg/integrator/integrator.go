package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable is the world a ray is traced against.
// Both *geometry.BVH and *geometry.ShapeList satisfy it.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns one radiance sample along ray. The sampler is owned
	// by the calling pixel and must not be shared across goroutines.
	RayColor(ray core.Ray, sampler core.Sampler) core.Vec3
}
