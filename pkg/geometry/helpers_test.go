package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// DummyMaterial absorbs everything; geometry tests only care that it is carried through
type DummyMaterial struct{}

func (d DummyMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

// MockShape for testing
type MockShape struct {
	boundingBox core.AABB
	hitFn       func(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}

func (m MockShape) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return m.hitFn(ray, tMin, tMax)
}

func (m MockShape) BoundingBox(time0, time1 float64) core.AABB {
	return m.boundingBox
}

func neverHit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return nil, false
}
