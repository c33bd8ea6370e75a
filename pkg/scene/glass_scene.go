package scene

import (
	"github.com/fluxt/star-wars/pkg/core"
	"github.com/fluxt/star-wars/pkg/geometry"
	"github.com/fluxt/star-wars/pkg/material"
)

// NewGlassScene creates a solid glass sphere, a hollow glass bubble and a fuzzy mirror
func NewGlassScene() (*Scene, error) {
	cameraConfig := DefaultCameraConfig()
	cameraConfig.Center = core.NewVec3(0, 0.3, 1)
	cameraConfig.Direction = core.NewVec3(0, -0.3, -2)
	cameraConfig.VFov = 50
	cameraConfig.FocusDistance = 2.1
	cameraConfig.DefocusAngle = 0.6

	s := NewScene("glass", cameraConfig)

	groundMat := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	blueMat := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	mirror := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.2)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, groundMat),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, blueMat),
		// Solid glass
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		// Hollow glass: the negative radius flips the normal of the inner surface
		geometry.NewSphere(core.NewVec3(-0.35, -0.3, -0.4), 0.2, glass),
		geometry.NewSphere(core.NewVec3(-0.35, -0.3, -0.4), -0.18, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, mirror),
	)

	return s, nil
}
