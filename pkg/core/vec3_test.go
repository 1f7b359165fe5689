package core

import (
	"math"
	"testing"
)

func TestVec3_RotateAxis(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		axis     int
		angle    float64
		expected Vec3
	}{
		{
			name:     "No rotation",
			vector:   NewVec3(1, 0, 0),
			axis:     1,
			angle:    0,
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "90 degree rotation around Z axis",
			vector:   NewVec3(1, 0, 0),
			axis:     2,
			angle:    math.Pi / 2,
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "90 degree rotation around Y axis",
			vector:   NewVec3(1, 0, 0),
			axis:     1,
			angle:    math.Pi / 2,
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "90 degree rotation around X axis",
			vector:   NewVec3(0, 1, 0),
			axis:     0,
			angle:    math.Pi / 2,
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "180 degree rotation around Y axis",
			vector:   NewVec3(1, 0, 0),
			axis:     1,
			angle:    math.Pi,
			expected: NewVec3(-1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.RotateAxis(tt.axis, tt.angle)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_RotateAxisRoundTrip(t *testing.T) {
	v := NewVec3(0.3, -1.2, 2.5)
	for axis := 0; axis < 3; axis++ {
		back := v.RotateAxis(axis, 0.7).RotateAxis(axis, -0.7)
		if back.Subtract(v).Length() > 1e-12 {
			t.Errorf("axis %d: expected %v after round trip, got %v", axis, v, back)
		}
	}
}

func TestVec3_CrossAndDot(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Cross(y); got != NewVec3(0, 0, 1) {
		t.Errorf("Expected x cross y = z, got %v", got)
	}
	if x.Dot(y) != 0 {
		t.Errorf("Expected orthogonal vectors to have zero dot product")
	}
	if got := NewVec3(3, 4, 0).Length(); got != 5 {
		t.Errorf("Expected length 5, got %f", got)
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Expected zero vector to normalize to zero, got %v", got)
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	got := NewVec3(0.25, 1.0, -0.5).GammaCorrect(2.0)
	expected := NewVec3(0.5, 1.0, 0)
	if got.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestVec3_AxisAccessors(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for axis, want := range []float64{1, 2, 3} {
		if v.Axis(axis) != want {
			t.Errorf("Axis(%d): expected %f, got %f", axis, want, v.Axis(axis))
		}
	}
	if got := v.WithAxis(1, 9); got != NewVec3(1, 9, 3) {
		t.Errorf("Expected WithAxis to replace Y, got %v", got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRayAt(NewVec3(1, 1, 1), NewVec3(0, 0, -2), 0.5)
	if got := ray.At(1.5); got != NewVec3(1, 1, -2) {
		t.Errorf("Expected point (1,1,-2), got %v", got)
	}
	if ray.Time != 0.5 {
		t.Errorf("Expected time 0.5, got %f", ray.Time)
	}
}
