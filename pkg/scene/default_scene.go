package scene

import (
	"github.com/fluxt/star-wars/pkg/core"
	"github.com/fluxt/star-wars/pkg/geometry"
	"github.com/fluxt/star-wars/pkg/material"
)

// NewDefaultScene creates the ground sphere with a diffuse sphere between two metal spheres
func NewDefaultScene() (*Scene, error) {
	s := NewScene("default", DefaultCameraConfig())

	// Create materials
	groundMat := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	centerMat := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	leftMat := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	rightMat := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, groundMat),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, centerMat),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, leftMat),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, rightMat),
	)

	return s, nil
}

// NewSingleSphereScene creates one grey diffuse sphere directly in front of the camera
func NewSingleSphereScene() (*Scene, error) {
	s := NewScene("single-sphere", DefaultCameraConfig())
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))
	return s, nil
}

// NewEmptyScene creates a scene with nothing but the sky
func NewEmptyScene() (*Scene, error) {
	return NewScene("empty", DefaultCameraConfig()), nil
}
