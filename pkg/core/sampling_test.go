package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		v := sampler.Get1D()
		if v < 0 || v >= 1 {
			t.Fatalf("Get1D out of range: %f", v)
		}
		s := sampler.Get2D()
		if s.X < 0 || s.X >= 1 || s.Y < 0 || s.Y >= 1 {
			t.Fatalf("Get2D out of range: %v", s)
		}
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(7)
	b := NewSeededSampler(7)
	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("Samplers with same seed diverged at draw %d", i)
		}
	}
}

func TestSampleCosineHemisphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	normals := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(1, 1, 1).Normalize(),
	}

	for _, normal := range normals {
		for i := 0; i < 500; i++ {
			dir := SampleCosineHemisphere(normal, sampler.Get2D())
			if math.Abs(dir.Length()-1.0) > 1e-9 {
				t.Fatalf("Expected unit direction, got length %f", dir.Length())
			}
			if dir.Dot(normal) < 0 {
				t.Fatalf("Direction %v below hemisphere of normal %v", dir, normal)
			}
		}
	}
}

func TestSampleUniformHemisphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(3)))
	normal := NewVec3(0, -1, 0)

	for i := 0; i < 500; i++ {
		dir := SampleUniformHemisphere(normal, sampler.Get2D())
		if math.Abs(dir.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %f", dir.Length())
		}
		if dir.Dot(normal) < 0 {
			t.Fatalf("Direction %v below hemisphere", dir)
		}
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.X*p.X+p.Y*p.Y > 1.0+1e-12 {
			t.Fatalf("Point %v outside unit disk", p)
		}
	}

	// Center of the square maps to the disk center
	if p := SamplePointInUnitDisk(NewVec2(0.5, 0.5)); p.X != 0 || p.Y != 0 {
		t.Errorf("Expected origin, got %v", p)
	}
}

func TestSamplePointInUnitSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitSphere(sampler.Get3D())
		if p.Length() > 1.0+1e-12 {
			t.Fatalf("Point %v outside unit sphere", p)
		}
	}
}

func TestSampleOnUnitSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	var mean Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		d := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(d.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit vector, got length %f", d.Length())
		}
		mean = mean.Add(d)
	}

	// Uniform directions average out to the origin
	mean = mean.Multiply(1.0 / n)
	if mean.Length() > 0.05 {
		t.Errorf("Expected mean direction near zero, got %v", mean)
	}
}
