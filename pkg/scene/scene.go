package scene

import (
	"time"

	"go.uber.org/zap"

	"github.com/fluxt/star-wars/pkg/core"
	"github.com/fluxt/star-wars/pkg/geometry"
	"github.com/fluxt/star-wars/pkg/integrator"
	"github.com/fluxt/star-wars/pkg/logger"
	"github.com/fluxt/star-wars/pkg/material"
	"github.com/fluxt/star-wars/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Shapes       []geometry.Shape // Objects in the scene, in listing order
	CameraConfig renderer.CameraConfig
	Sky          integrator.Gradient // Background for rays that escape

	bvh *geometry.BVH
}

// NewScene creates an empty scene under the default sky
func NewScene(name string, cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		Name:         name,
		Shapes:       make([]geometry.Shape, 0),
		CameraConfig: cameraConfig,
		Sky:          integrator.DefaultSky(),
	}
}

// DefaultCameraConfig is the camera at the origin looking down -Z with a 90 degree vertical field of view
func DefaultCameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		Direction:     core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		FocusDistance: 1,
	}
}

// Add appends shapes to the scene. The acceleration structure is rebuilt by the next Preprocess.
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
	s.bvh = nil
}

// Preprocess prepares the scene for rendering by building the BVH.
// It must be called before the scene is shared between render workers.
func (s *Scene) Preprocess() {
	start := time.Now()
	s.bvh = geometry.NewBVH(s.Shapes)

	stats := s.bvh.Stats()
	logger.Info("Built scene BVH",
		zap.String("scene", s.Name),
		zap.Int("primitives", stats.TotalShapes),
		zap.Int("nodes", stats.TotalNodes),
		zap.Int("leaves", stats.LeafNodes),
		zap.Int("maxDepth", stats.MaxDepth),
		zap.Duration("elapsed", time.Since(start)))
}

// ClosestHit returns the shading record for the nearest primitive hit in (tMin, tMax].
// Without a BVH every shape is tested in order; both paths pick the same primitive.
func (s *Scene) ClosestHit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.ShadingHit, bool) {
	if s.bvh != nil {
		return s.bvh.ClosestHit(ray, tMin, tMax, sampler)
	}

	candidate, ok := geometry.Closest(s.Shapes, ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	return candidate.Shape.Shade(ray, candidate.Hit, sampler), true
}

// Background returns the sky color for an escaping ray
func (s *Scene) Background(direction core.Vec3) core.Vec3 {
	return s.Sky.At(direction)
}

// PrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.Shapes)
}

// BVH returns the acceleration structure, or nil before Preprocess
func (s *Scene) BVH() *geometry.BVH {
	return s.bvh
}
