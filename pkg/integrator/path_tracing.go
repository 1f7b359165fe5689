package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// shadowAcneEpsilon keeps a scattered ray from re-hitting the surface it left
const shadowAcneEpsilon = 0.001

// PathTracer implements unidirectional path tracing with material sampling only
type PathTracer struct {
	World      Hittable
	Background Background
	MaxDepth   int
}

// NewPathTracer creates a path tracer over an immutable world
func NewPathTracer(world Hittable, background Background, maxDepth int) *PathTracer {
	return &PathTracer{World: world, Background: background, MaxDepth: maxDepth}
}

// RayColor computes one radiance sample for ray. Non-finite components are
// zeroed so a single bad path cannot poison a pixel average.
func (pt *PathTracer) RayColor(ray core.Ray, sampler core.Sampler) core.Vec3 {
	color := pt.trace(ray, pt.MaxDepth, sampler)
	return core.NewVec3(finiteOrZero(color.X), finiteOrZero(color.Y), finiteOrZero(color.Z))
}

// trace follows ray for at most depth more bounces
func (pt *PathTracer) trace(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := pt.World.Hit(ray, shadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return pt.Background.Color(ray)
	}

	colorEmitted := material.EmittedBy(hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	incoming := pt.trace(scatter.Scattered, depth-1, sampler)
	return colorEmitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
