package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestConstantMedium_Deterministic(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, DummyMaterial{})
	fog := NewConstantMedium(boundary, 0.5, core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0.01, -1))

	first, firstOK := fog.Hit(ray, 0.001, 100)
	second, secondOK := fog.Hit(ray, 0.001, 100)

	if firstOK != secondOK {
		t.Fatalf("Expected repeatable hit result, got %v then %v", firstOK, secondOK)
	}
	if firstOK && first.T != second.T {
		t.Errorf("Expected identical scatter distance, got %f then %f", first.T, second.T)
	}
}

func TestConstantMedium_ScattersInsideBoundary(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, DummyMaterial{})
	dense := NewConstantMedium(boundary, 1e6, core.NewVec3(0.5, 0.5, 0.5))

	for i := 0; i < 20; i++ {
		ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(float64(i)*0.005, 0, -1))
		hit, ok := dense.Hit(ray, 0.001, 100)
		if !ok {
			t.Fatalf("Ray %d: expected a very dense medium to scatter", i)
		}
		if hit.T < 3.9 || hit.T > 4.1 {
			t.Errorf("Ray %d: expected scatter just inside the boundary near t=4, got %f", i, hit.T)
		}
		if _, isIsotropic := hit.Material.(*material.Isotropic); !isIsotropic {
			t.Errorf("Ray %d: expected isotropic phase material, got %T", i, hit.Material)
		}
	}
}

func TestConstantMedium_ThinMediumMostlyPassesThrough(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, DummyMaterial{})
	thin := NewConstantMedium(boundary, 1e-6, core.NewVec3(1, 1, 1))

	hits := 0
	for i := 0; i < 100; i++ {
		ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(float64(i)*0.001, 0, -1))
		if _, ok := thin.Hit(ray, 0.001, 100); ok {
			hits++
		}
	}
	if hits > 5 {
		t.Errorf("Expected almost no scattering in a thin medium, got %d/100", hits)
	}
}

func TestConstantMedium_MissAndInside(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, DummyMaterial{})
	fog := NewConstantMedium(boundary, 1e6, core.NewVec3(1, 1, 1))

	if _, ok := fog.Hit(core.NewRay(core.NewVec3(3, 0, 5), core.NewVec3(0, 0, -1)), 0.001, 100); ok {
		t.Error("Expected miss for ray outside the boundary")
	}

	// A ray starting inside scatters at positive t
	hit, ok := fog.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), 0.001, 100)
	if !ok {
		t.Fatal("Expected dense medium to scatter a ray starting inside")
	}
	if hit.T < 0 || hit.T > 1 {
		t.Errorf("Expected scatter within the boundary, got t=%f", hit.T)
	}
}

func TestConstantMedium_Validate(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, DummyMaterial{})
	tests := []struct {
		density float64
		wantErr bool
	}{
		{0.01, false},
		{0, true},
		{-1, true},
		{math.NaN(), true},
		{math.Inf(1), true},
	}
	for _, tt := range tests {
		err := NewConstantMedium(boundary, tt.density, core.NewVec3(1, 1, 1)).Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Density %v: expected error=%v, got %v", tt.density, tt.wantErr, err)
		}
	}
}

func TestRayUniformRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		ray := core.NewRayAt(core.NewVec3(float64(i), 0, 0), core.NewVec3(0, 1, 0), float64(i)*0.1)
		u := rayUniform(ray)
		if u <= 0 || u > 1 {
			t.Fatalf("Expected value in (0,1], got %v", u)
		}
	}
}
