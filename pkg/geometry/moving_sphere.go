package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// MovingSphere is a sphere whose center moves linearly from Center0 at Time0
// to Center1 at Time1. Rays cast outside that window see the extrapolated center.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a new moving sphere
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material material.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

// Center returns the sphere center at the given time
func (s *MovingSphere) Center(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	t := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Lerp(s.Center1, t)
}

// Hit tests the ray against the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphere(s.Center(ray.Time), s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox bounds the sphere over the whole [time0, time1] interval
func (s *MovingSphere) BoundingBox(time0, time1 float64) core.AABB {
	return sphereBox(s.Center(time0), s.Radius).Union(sphereBox(s.Center(time1), s.Radius))
}

// Validate rejects zero-radius and non-finite moving spheres
func (s *MovingSphere) Validate() error {
	if err := validateSphere(s.Center0, s.Radius, s.Material); err != nil {
		return err
	}
	if !finiteVec(s.Center1) || !finite(s.Time0, s.Time1) {
		return core.NewInvalidSceneError("moving sphere has non-finite motion: %v@%v -> %v@%v",
			s.Center0, s.Time0, s.Center1, s.Time1)
	}
	return nil
}
