package integrator

import (
	"math"

	"github.com/fluxt/star-wars/pkg/core"
)

// DefaultTMin keeps scattered rays from re-hitting the surface they left
const DefaultTMin = 0.001

// PathTracingIntegrator implements unidirectional path tracing with fixed-depth termination
type PathTracingIntegrator struct {
	MaxDepth int     // Maximum number of bounces
	TMin     float64 // Self-intersection epsilon
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth: maxDepth,
		TMin:     DefaultTMin,
	}
}

// RayColor computes the color for a camera ray. MaxDepth counts bounces, so the
// path after the last bounce still sees the background.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world World, sampler core.Sampler) core.Vec3 {
	return pt.Radiance(ray, world, sampler, pt.MaxDepth+1)
}

// Radiance evaluates the recurrence L = Le + attenuation ⊙ L(scattered) with depth levels left
func (pt *PathTracingIntegrator) Radiance(ray core.Ray, world World, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.ClosestHit(ray, pt.TMin, math.Inf(1), sampler)
	if !isHit {
		return world.Background(ray.Direction)
	}

	colorEmitted := hit.Material.Emitted(hit)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		// Absorbed, or a light: only the emitted light remains
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(
		pt.Radiance(scatter.Scattered, world, sampler, depth-1))

	return colorEmitted.Add(colorScattered)
}
