package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/fluxt/star-wars/pkg/core"
	"github.com/fluxt/star-wars/pkg/material"
)

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Intersect(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	sampler := core.NewSeededSampler(1)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			broad, isHit := sphere.Intersect(ray, 0.001, 1000.0)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(broad.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, broad.T)
			}

			hit := sphere.Shade(ray, broad, sampler)
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			tolerance := 1e-9
			if math.Abs(hit.Normal.X-tt.expectedNormal.X) > tolerance ||
				math.Abs(hit.Normal.Y-tt.expectedNormal.Y) > tolerance ||
				math.Abs(hit.Normal.Z-tt.expectedNormal.Z) > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Intersect_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Test tMax bound
	hit, isHit := sphere.Intersect(ray, 0.001, 0.5)
	if isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// Test tMin bound
	hit, isHit = sphere.Intersect(ray, 3.5, 1000.0)
	if isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// Near root out of range falls back to the far root
	hit, isHit = sphere.Intersect(ray, 1.5, 1000.0)
	if !isHit || math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far root at t=3, got hit=%v t=%f", isHit, hit.T)
	}
}

func TestSphere_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	broad, isHit := sphere.Intersect(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected glancing hit, but got miss")
	}

	hit := sphere.Shade(ray, broad, core.NewSeededSampler(0))
	expectedPoint := core.NewVec3(1, 0, 0)
	if hit.Point.Subtract(expectedPoint).Length() > 1e-9 {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}
}

// A ray aimed at the center hits at the distance to the surface, with the normal along point - center
func TestSphere_RayThroughCenter(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	sampler := core.NewRandomSampler(random)

	for i := 0; i < 500; i++ {
		center := core.NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		radius := 0.1 + random.Float64()*3
		sphere := NewSphere(center, radius, nil)

		// Origin outside the sphere, unit direction toward the center
		offset := core.SampleOnUnitSphere(core.NewVec2(random.Float64(), random.Float64())).Multiply(radius + 0.5 + random.Float64()*10)
		origin := center.Add(offset)
		direction := center.Subtract(origin).Normalize()
		ray := core.NewRay(origin, direction)

		broad, ok := sphere.Intersect(ray, 0.001, math.Inf(1))
		if !ok {
			t.Fatalf("Expected ray through center to hit sphere %v r=%v", center, radius)
		}

		expectedT := offset.Length() - radius
		if math.Abs(broad.T-expectedT) > 1e-9 {
			t.Errorf("Expected t=%v, got %v", expectedT, broad.T)
		}

		hit := sphere.Shade(ray, broad, sampler)
		radial := hit.Point.Subtract(center).Normalize()
		if hit.Normal.Cross(radial).Length() > 1e-9 {
			t.Errorf("Normal %v not parallel to %v", hit.Normal, radial)
		}
		if math.Abs(hit.Normal.Length()-1) > 1e-9 {
			t.Errorf("Expected unit normal, got length %v", hit.Normal.Length())
		}
	}
}

func TestSphere_UV(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, material.NewLambertian(core.NewVec3(1, 1, 1)))
	sampler := core.NewSeededSampler(0)

	tests := []struct {
		name   string
		origin core.Vec3
		uv     core.Vec2
	}{
		{"+X", core.NewVec3(5, 0, 0), core.NewVec2(0.5, 0.5)},
		{"+Y", core.NewVec3(0, 5, 0), core.NewVec2(0.5, 1.0)},
		{"-Y", core.NewVec3(0, -5, 0), core.NewVec2(0.5, 0.0)},
		{"-Z", core.NewVec3(0, 0, -5), core.NewVec2(0.75, 0.5)},
		{"+Z", core.NewVec3(0, 0, 5), core.NewVec2(0.25, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.origin.Negate())
			broad, ok := sphere.Intersect(ray, 0.001, math.Inf(1))
			if !ok {
				t.Fatal("Expected hit")
			}
			hit := sphere.Shade(ray, broad, sampler)
			if math.Abs(hit.UV.X-tt.uv.X) > 1e-9 || math.Abs(hit.UV.Y-tt.uv.Y) > 1e-9 {
				t.Errorf("Expected UV %v, got %v", tt.uv, hit.UV)
			}
			if hit.UV.X < 0 || hit.UV.X > 1 || hit.UV.Y < 0 || hit.UV.Y > 1 {
				t.Errorf("UV out of range: %v", hit.UV)
			}
		})
	}
}

func TestSphere_NegativeRadius(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), -1.0, nil)
	bbox := sphere.BoundingBox()
	if !bbox.Min.Equals(core.NewVec3(-1, -1, -1)) || !bbox.Max.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("Expected unit box, got %v", bbox)
	}

	// From outside, the outward normal points inward so the hit is a back face
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))
	broad, ok := sphere.Intersect(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit")
	}
	hit := sphere.Shade(ray, broad, core.NewSeededSampler(0))
	if hit.FrontFace {
		t.Error("Expected back face for negative radius sphere")
	}
	if !hit.Normal.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected normal facing the ray, got %v", hit.Normal)
	}
}

func TestSphere_BoundingBoxContainsSurface(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, -2, 3), 1.5, nil)
	bbox := sphere.BoundingBox()
	random := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		dir := core.SampleOnUnitSphere(core.NewVec2(random.Float64(), random.Float64()))
		p := sphere.Center.Add(dir.Multiply(sphere.Radius * (1 - 1e-12)))
		if !bbox.Contains(p) {
			t.Errorf("Bounding box %v does not contain surface point %v", bbox, p)
		}
	}

	if again := sphere.BoundingBox(); again != bbox {
		t.Errorf("Bounding box should be deterministic: %v vs %v", bbox, again)
	}
}
