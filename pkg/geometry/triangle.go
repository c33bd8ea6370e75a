package geometry

import (
	"math"

	"github.com/fluxt/star-wars/pkg/core"
	"github.com/fluxt/star-wars/pkg/material"
)

// machineEpsilon is the float64 unit roundoff used for the parallel-ray test
const machineEpsilon = 0x1p-52

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	normal     core.Vec3         // Cached normal vector
	bbox       core.AABB         // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material material.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
	}

	// Precompute normal and bounding box for efficiency
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)

	return t
}

// Intersect tests the triangle using the Möller-Trumbore algorithm.
// The barycentric coordinates of the hit are returned in U and V.
func (t *Triangle) Intersect(ray core.Ray, tMin, tMax float64) (BroadHit, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// Ray lies in the plane of the triangle (or the triangle is degenerate)
	if math.Abs(det) <= machineEpsilon {
		return BroadHit{}, false
	}

	f := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return BroadHit{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return BroadHit{}, false
	}

	tHit := f * edge2.Dot(q)
	if tHit <= tMin || tHit > tMax {
		return BroadHit{}, false
	}

	return BroadHit{T: tHit, U: u, V: v}, true
}

// Shade fills in point, geometric normal and barycentric UV
func (t *Triangle) Shade(ray core.Ray, hit BroadHit, sampler core.Sampler) *material.ShadingHit {
	shading := &material.ShadingHit{
		Point:    ray.At(hit.T),
		T:        hit.T,
		UV:       core.NewVec2(hit.U, hit.V),
		Material: t.Material,
	}
	shading.SetFaceNormal(ray, t.normal)
	shading.Direction = core.SampleCosineHemisphere(shading.Normal, sampler.Get2D())

	return shading
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's unit normal, following the V0→V1→V2 winding
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

func (t *Triangle) isShape() {}
