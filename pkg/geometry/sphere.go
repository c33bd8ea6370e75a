package geometry

import (
	"math"

	"github.com/fluxt/star-wars/pkg/core"
	"github.com/fluxt/star-wars/pkg/material"
)

// Sphere represents a sphere shape.
// A negative radius flips the normals inward, which makes a hollow shell inside a glass sphere.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect solves |o + t·d - c|² = r² with h = d·(c - o)
func (s *Sphere) Intersect(ray core.Ray, tMin, tMax float64) (BroadHit, bool) {
	oc := s.Center.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 || a == 0 {
		return BroadHit{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if root <= tMin || root > tMax {
		root = (h + sqrtD) / a
		if root <= tMin || root > tMax {
			return BroadHit{}, false
		}
	}

	return BroadHit{T: root}, true
}

// Shade fills in point, normal, spherical UV and a cosine-weighted suggested direction
func (s *Sphere) Shade(ray core.Ray, hit BroadHit, sampler core.Sampler) *material.ShadingHit {
	point := ray.At(hit.T)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	shading := &material.ShadingHit{
		Point:    point,
		T:        hit.T,
		Material: s.Material,
	}
	shading.SetFaceNormal(ray, outwardNormal)
	shading.UV = sphereUV(point.Subtract(s.Center).Multiply(1.0 / math.Abs(s.Radius)))
	shading.Direction = core.SampleCosineHemisphere(shading.Normal, sampler.Get2D())

	return shading
}

// sphereUV maps a point on the unit sphere to [0,1]².
// u runs around the Y axis starting at -X, v runs from -Y (0) to +Y (1).
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(math.Max(-1, math.Min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	r := math.Abs(s.Radius)
	radius := core.NewVec3(r, r, r)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}

func (s *Sphere) isShape() {}
