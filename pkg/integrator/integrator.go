package integrator

import (
	"github.com/fluxt/star-wars/pkg/core"
	"github.com/fluxt/star-wars/pkg/material"
)

// World is what an integrator needs from a scene
type World interface {
	// ClosestHit returns the shading record of the nearest hit in (tMin, tMax]
	ClosestHit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.ShadingHit, bool)

	// Background returns the radiance for a ray that escapes the scene
	Background(direction core.Vec3) core.Vec3
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance carried back along a camera ray
	RayColor(ray core.Ray, world World, sampler core.Sampler) core.Vec3
}

// Gradient is a vertical sky gradient from Bottom (looking straight down) to Top (straight up)
type Gradient struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// DefaultSky returns the white to sky-blue gradient
func DefaultSky() Gradient {
	return Gradient{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// At blends the gradient by 0.5·(y+1) of the unit direction
func (g Gradient) At(direction core.Vec3) core.Vec3 {
	unitDirection := direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.Lerp(g.Bottom, g.Top, t)
}
