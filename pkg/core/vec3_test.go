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
		{"X cross Y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"Y cross Z", NewVec3(0, 1, 0), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"look down -Z cross up", NewVec3(0, 0, -1), NewVec3(0, 1, 0), NewVec3(1, 0, 0)},
		{"parallel vectors", NewVec3(2, 0, 0), NewVec3(5, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)
			if !result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	zero := Vec3{}
	if n := zero.Normalize(); !n.Equals(zero) {
		t.Errorf("Expected zero vector to normalize to zero, got %v", n)
	}

	n := NewVec3(3, 4, 0).Normalize()
	if math.Abs(n.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", n.Length())
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	expected := NewVec3(0, 0.5, 1)
	if !v.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, v)
	}
}

func TestLerp(t *testing.T) {
	white := NewVec3(1, 1, 1)
	sky := NewVec3(0.5, 0.7, 1.0)

	if c := Lerp(white, sky, 0); !c.Equals(white) {
		t.Errorf("Expected %v at t=0, got %v", white, c)
	}
	if c := Lerp(white, sky, 1); !c.Equals(sky) {
		t.Errorf("Expected %v at t=1, got %v", sky, c)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))
	p := ray.At(1.5)
	expected := NewVec3(1, 2, 0)
	if !p.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, p)
	}
}
