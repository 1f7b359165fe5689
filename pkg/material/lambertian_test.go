package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// fixedSampler returns the same values on every draw
type fixedSampler struct {
	value float64
}

func (f fixedSampler) Get1D() float64 { return f.value }
func (f fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(f.value, f.value)
}

func TestLambertian_ScattersIntoHemisphere(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	lambertian := NewLambertian(albedo)
	sampler := core.NewPixelSampler(42, 0, 0)

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: normal,
	}
	ray := core.NewRayAt(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0.25)

	for i := 0; i < 200; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Scattered.Direction.Dot(normal) < -1e-9 {
			t.Fatalf("Expected scatter above surface, got %v", scatter.Scattered.Direction)
		}
		if scatter.Scattered.Time != 0.25 {
			t.Fatalf("Expected scattered ray to keep time 0.25, got %f", scatter.Scattered.Time)
		}
		if !scatter.Attenuation.Equals(albedo) {
			t.Fatalf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	// Sample (0, *) maps to the unit vector (0,0,1); with normal (0,0,-1) the sum cancels
	normal := core.NewVec3(0, 0, -1)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1))

	scatter, ok := lambertian.Scatter(ray, hit, fixedSampler{value: 0})
	if !ok {
		t.Fatal("Lambertian should always scatter")
	}
	if !scatter.Scattered.Direction.Equals(normal) {
		t.Errorf("Expected fallback to normal %v, got %v", normal, scatter.Scattered.Direction)
	}
}

func TestLambertian_TexturedAlbedo(t *testing.T) {
	checker := NewSolidCheckerTexture(1.0, core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1))
	lambertian := NewTexturedLambertian(checker)
	sampler := core.NewPixelSampler(1, 0, 0)
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))

	even := HitRecord{Point: core.NewVec3(0.5, 0.5, 0.5), Normal: core.NewVec3(0, 1, 0)}
	odd := HitRecord{Point: core.NewVec3(1.5, 0.5, 0.5), Normal: core.NewVec3(0, 1, 0)}

	if s, _ := lambertian.Scatter(ray, even, sampler); !s.Attenuation.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected even cell red, got %v", s.Attenuation)
	}
	if s, _ := lambertian.Scatter(ray, odd, sampler); !s.Attenuation.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected odd cell blue, got %v", s.Attenuation)
	}
}
