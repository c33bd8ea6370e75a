package scene

import (
	"github.com/fluxt/star-wars/pkg/core"
	"github.com/fluxt/star-wars/pkg/geometry"
	"github.com/fluxt/star-wars/pkg/material"
)

// NewTriangleScene creates a tetrahedron mesh standing on a ground sphere
func NewTriangleScene() (*Scene, error) {
	cameraConfig := DefaultCameraConfig()
	cameraConfig.Center = core.NewVec3(0, 0.5, 1)
	cameraConfig.Direction = core.NewVec3(0, -0.4, -2)
	cameraConfig.VFov = 60

	s := NewScene("triangles", cameraConfig)

	s.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100,
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	vertices := []core.Vec3{
		core.NewVec3(0, 0.4, -1), // apex
		core.NewVec3(-0.45, -0.5, -0.75),
		core.NewVec3(0.45, -0.5, -0.75),
		core.NewVec3(0, -0.5, -1.5),
	}
	faces := []int{
		0, 1, 2,
		0, 2, 3,
		0, 3, 1,
		1, 3, 2, // base
	}

	tetrahedron, err := geometry.NewTriangleMesh(vertices, faces, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.2)))
	if err != nil {
		return nil, err
	}
	s.Add(tetrahedron...)

	// A mirror triangle behind the mesh
	s.Add(geometry.NewTriangle(
		core.NewVec3(-1.5, -0.5, -2.2),
		core.NewVec3(1.5, -0.5, -2.2),
		core.NewVec3(0, 1.2, -2.4),
		material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.05)))

	return s, nil
}
