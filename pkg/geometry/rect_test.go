package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestRect_HitEachPlane(t *testing.T) {
	tests := []struct {
		name           string
		rect           *Rect
		ray            core.Ray
		expectedPoint  core.Vec3
		expectedNormal core.Vec3
	}{
		{
			name:           "xy from +z",
			rect:           NewXYRect(-1, 1, -1, 1, 0, DummyMaterial{}),
			ray:            core.NewRay(core.NewVec3(0.5, 0.25, 3), core.NewVec3(0, 0, -1)),
			expectedPoint:  core.NewVec3(0.5, 0.25, 0),
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "xz from +y",
			rect:           NewXZRect(0, 2, 0, 2, 1, DummyMaterial{}),
			ray:            core.NewRay(core.NewVec3(1, 5, 1), core.NewVec3(0, -1, 0)),
			expectedPoint:  core.NewVec3(1, 1, 1),
			expectedNormal: core.NewVec3(0, 1, 0),
		},
		{
			name:           "yz from -x",
			rect:           NewYZRect(0, 1, 0, 1, 2, DummyMaterial{}),
			ray:            core.NewRay(core.NewVec3(0, 0.5, 0.5), core.NewVec3(1, 0, 0)),
			expectedPoint:  core.NewVec3(2, 0.5, 0.5),
			expectedNormal: core.NewVec3(-1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tt.rect.Hit(tt.ray, 0.001, 100)
			if !ok {
				t.Fatal("Expected hit, got miss")
			}
			if !hit.Point.Equals(tt.expectedPoint) {
				t.Errorf("Expected point %v, got %v", tt.expectedPoint, hit.Point)
			}
			if !hit.Normal.Equals(tt.expectedNormal) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestRect_MissOutsideExtentsAndParallel(t *testing.T) {
	rect := NewXYRect(-1, 1, -1, 1, 0, DummyMaterial{})

	outside := core.NewRay(core.NewVec3(1.5, 0, 3), core.NewVec3(0, 0, -1))
	if _, ok := rect.Hit(outside, 0.001, 100); ok {
		t.Error("Expected miss outside extents")
	}

	parallel := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	if _, ok := rect.Hit(parallel, 0.001, 100); ok {
		t.Error("Expected miss for ray parallel to the plane")
	}
}

func TestRect_FlippedFrontFace(t *testing.T) {
	rect := NewXZRect(-1, 1, -1, 1, 0, DummyMaterial{})
	rect.Flipped = true

	fromBelow := core.NewRay(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0))
	hit, ok := rect.Hit(fromBelow, 0.001, 100)
	if !ok {
		t.Fatal("Expected hit")
	}
	if !hit.FrontFace {
		t.Error("Expected flipped rect to be front facing from below")
	}
	if !hit.Normal.Equals(core.NewVec3(0, -1, 0)) {
		t.Errorf("Expected normal (0,-1,0), got %v", hit.Normal)
	}
}

func TestRect_UV(t *testing.T) {
	rect := NewXYRect(0, 4, 0, 2, 0, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(1, 1.5, 1), core.NewVec3(0, 0, -1))

	hit, ok := rect.Hit(ray, 0.001, 100)
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.UV.X-0.25) > 1e-12 || math.Abs(hit.UV.Y-0.75) > 1e-12 {
		t.Errorf("Expected UV (0.25, 0.75), got %v", hit.UV)
	}
}

func TestRect_BoundingBoxPadded(t *testing.T) {
	rect := NewXZRect(0, 2, 0, 3, 1, DummyMaterial{})
	box := rect.BoundingBox(0, 1)

	if box.Min.X != 0 || box.Max.X != 2 || box.Min.Z != 0 || box.Max.Z != 3 {
		t.Errorf("Expected extents preserved, got %v", box)
	}
	if box.Max.Y-box.Min.Y <= 0 {
		t.Errorf("Expected non-zero thickness on fixed axis, got %v", box)
	}
	if box.Min.Y >= 1 || box.Max.Y <= 1 {
		t.Errorf("Expected padded box to straddle y=1, got %v", box)
	}
}

func TestRect_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rect    *Rect
		wantErr bool
	}{
		{"valid", NewXYRect(0, 1, 0, 1, 0, DummyMaterial{}), false},
		{"empty a", NewXYRect(1, 1, 0, 1, 0, DummyMaterial{}), true},
		{"inverted b", NewYZRect(0, 1, 2, 1, 0, DummyMaterial{}), true},
		{"infinite k", NewXZRect(0, 1, 0, 1, math.Inf(1), DummyMaterial{}), true},
		{"no material", NewXZRect(0, 1, 0, 1, 0, nil), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.rect.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestQuad_Hit(t *testing.T) {
	quad := NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		DummyMaterial{},
	)

	tests := []struct {
		name        string
		ray         core.Ray
		expectHit   bool
		expectedT   float64
		expectedUV  core.Vec2
		expectFront bool
	}{
		{
			name:        "center from front",
			ray:         core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, -1)),
			expectHit:   true,
			expectedT:   1,
			expectedUV:  core.NewVec2(0.5, 0.5),
			expectFront: true,
		},
		{
			name:        "corner region from back",
			ray:         core.NewRay(core.NewVec3(0.25, 0.75, -2), core.NewVec3(0, 0, 1)),
			expectHit:   true,
			expectedT:   2,
			expectedUV:  core.NewVec2(0.25, 0.75),
			expectFront: false,
		},
		{
			name:      "outside",
			ray:       core.NewRay(core.NewVec3(1.5, 0.5, 1), core.NewVec3(0, 0, -1)),
			expectHit: false,
		},
		{
			name:      "parallel",
			ray:       core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
		{
			name:      "behind origin",
			ray:       core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, 1)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := quad.Hit(tt.ray, 0.001, 100)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if math.Abs(hit.UV.X-tt.expectedUV.X) > 1e-9 || math.Abs(hit.UV.Y-tt.expectedUV.Y) > 1e-9 {
				t.Errorf("Expected UV %v, got %v", tt.expectedUV, hit.UV)
			}
			if hit.FrontFace != tt.expectFront {
				t.Errorf("Expected front face %v, got %v", tt.expectFront, hit.FrontFace)
			}
		})
	}
}

func TestQuad_BoundingBox(t *testing.T) {
	quad := NewQuad(
		core.NewVec3(1, 2, 3),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 4),
		DummyMaterial{},
	)
	box := quad.BoundingBox(0, 1)

	if box.Min.X != 1 || box.Max.X != 3 || box.Min.Z != 3 || box.Max.Z != 7 {
		t.Errorf("Expected X [1,3] and Z [3,7], got %v", box)
	}
	if box.Min.Y >= 2 || box.Max.Y <= 2 {
		t.Errorf("Expected padded Y around 2, got [%v,%v]", box.Min.Y, box.Max.Y)
	}
}

func TestQuad_Validate(t *testing.T) {
	valid := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), DummyMaterial{})
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid quad, got %v", err)
	}

	degenerate := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(2, 0, 0), DummyMaterial{})
	if err := degenerate.Validate(); err == nil {
		t.Error("Expected error for parallel edges")
	}
	if _, ok := degenerate.Hit(core.NewRay(core.NewVec3(0.5, 0, 1), core.NewVec3(0, 0, -1)), 0.001, 100); ok {
		t.Error("Expected degenerate quad never to be hit")
	}
}
