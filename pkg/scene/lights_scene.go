package scene

import (
	"github.com/fluxt/star-wars/pkg/core"
	"github.com/fluxt/star-wars/pkg/geometry"
	"github.com/fluxt/star-wars/pkg/integrator"
	"github.com/fluxt/star-wars/pkg/material"
)

// NewLightsScene creates diffuse objects lit only by emissive spheres under a near-black sky
func NewLightsScene() (*Scene, error) {
	cameraConfig := DefaultCameraConfig()
	cameraConfig.Center = core.NewVec3(0, 0.5, 1.5)
	cameraConfig.Direction = core.NewVec3(0, -0.3, -2)
	cameraConfig.VFov = 55

	s := NewScene("lights", cameraConfig)
	s.Sky = integrator.Gradient{
		Top:    core.NewVec3(0.02, 0.02, 0.04),
		Bottom: core.NewVec3(0, 0, 0),
	}

	warm := material.NewDiffuseLight(core.NewVec3(6, 4.5, 3))
	cool := material.NewDiffuseLight(core.NewVec3(1, 2, 5))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.6, 0.6, 0.6))),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8))),
		geometry.NewSphere(core.NewVec3(1, -0.25, -0.6), 0.25, material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.1)),
		geometry.NewSphere(core.NewVec3(-1.2, 0.8, -0.5), 0.3, warm),
		geometry.NewSphere(core.NewVec3(1.5, 1.5, -1.5), 0.4, cool),
	)

	return s, nil
}
