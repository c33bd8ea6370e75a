package scene

import (
	"github.com/fluxt/star-wars/pkg/core"
	"github.com/fluxt/star-wars/pkg/geometry"
	"github.com/fluxt/star-wars/pkg/material"
)

// NewTextureScene creates checker textured spheres on a checker textured ground
func NewTextureScene() (*Scene, error) {
	cameraConfig := DefaultCameraConfig()
	cameraConfig.Center = core.NewVec3(0, 0.4, 1)
	cameraConfig.Direction = core.NewVec3(0, -0.3, -2)
	cameraConfig.VFov = 60

	s := NewScene("textures", cameraConfig)

	// Create procedural textures
	ground := material.NewCheckerTexture(
		core.NewVec3(0.9, 0.9, 0.9), // White
		core.NewVec3(0.2, 0.3, 0.1), // Dark green
		200,
	)
	fine := material.NewCheckerTexture(
		core.NewVec3(0.9, 0.9, 0.9), // White
		core.NewVec3(0.2, 0.2, 0.8), // Blue
		16,
	)
	coarse := material.NewCheckerTexture(
		core.NewVec3(0.7, 0.3, 0.1),  // Orange
		core.NewVec3(0.5, 0.2, 0.05), // Dark brown
		4,
	)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewTexturedLambertian(ground)),
		geometry.NewSphere(core.NewVec3(-0.6, 0, -1.2), 0.5, material.NewTexturedLambertian(fine)),
		geometry.NewSphere(core.NewVec3(0.6, 0, -1.2), 0.5, material.NewTexturedLambertian(coarse)),
	)

	return s, nil
}
