package geometry

import (
	"github.com/fluxt/star-wars/pkg/core"
	"github.com/fluxt/star-wars/pkg/material"
)

// BroadHit is the cheap intersection result used to find the closest primitive.
// U and V carry whatever parameters the primitive solved for (barycentrics for triangles)
// so the narrow phase does not have to solve again.
type BroadHit struct {
	T    float64
	U, V float64
}

// Shape is a primitive that can be intersected by rays.
// The set of shapes is closed: Sphere and Triangle.
type Shape interface {
	// BoundingBox returns an axis-aligned box containing the whole shape
	BoundingBox() core.AABB

	// Intersect finds the smallest t with tMin < t <= tMax. It never allocates.
	Intersect(ray core.Ray, tMin, tMax float64) (BroadHit, bool)

	// Shade builds the full shading record for a hit previously returned by Intersect
	Shade(ray core.Ray, hit BroadHit, sampler core.Sampler) *material.ShadingHit

	isShape()
}
