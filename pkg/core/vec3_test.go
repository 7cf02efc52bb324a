package core

import (
	"math"
	"testing"
)

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{
			name:     "X cross Y is Z",
			a:        NewVec3(1, 0, 0),
			b:        NewVec3(0, 1, 0),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "Y cross Z is X",
			a:        NewVec3(0, 1, 0),
			b:        NewVec3(0, 0, 1),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "anti-commutative",
			a:        NewVec3(0, 1, 0),
			b:        NewVec3(1, 0, 0),
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "parallel vectors give zero",
			a:        NewVec3(2, 2, 2),
			b:        NewVec3(1, 1, 1),
			expected: NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)
			if result.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Normalized vector should have unit length, got %f", v.Length())
	}
	if math.Abs(v.X-0.6) > 1e-12 || math.Abs(v.Y-0.8) > 1e-12 {
		t.Errorf("Expected (0.6, 0.8, 0), got %v", v)
	}

	// Zero vector stays zero rather than producing NaN
	zero := NewVec3(0, 0, 0).Normalize()
	if zero.Length() != 0 {
		t.Errorf("Normalizing zero vector should return zero, got %v", zero)
	}
}

func TestVec3_MultiplyVec(t *testing.T) {
	a := NewVec3(0.5, 0.25, 1.0)
	b := NewVec3(0.8, 0.4, 0.2)
	result := a.MultiplyVec(b)
	expected := NewVec3(0.4, 0.1, 0.2)
	if result.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Tiny vector should be near zero")
	}
	if NewVec3(1e-3, 0, 0).NearZero() {
		t.Error("Small but significant vector should not be near zero")
	}
}

func TestVec3_ClampAndGamma(t *testing.T) {
	clamped := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	expected := NewVec3(0, 0.5, 1)
	if clamped.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, clamped)
	}

	corrected := NewVec3(0.25, 1.0, 0.0).GammaCorrect(2.0)
	if math.Abs(corrected.X-0.5) > 1e-12 || math.Abs(corrected.Y-1.0) > 1e-12 || corrected.Z != 0 {
		t.Errorf("Gamma 2 of (0.25, 1, 0) should be (0.5, 1, 0), got %v", corrected)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -1))
	point := ray.At(2.5)
	expected := NewVec3(1, 2, 0.5)
	if point.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, point)
	}
}
