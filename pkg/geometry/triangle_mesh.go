package geometry

import (
	"fmt"

	"github.com/fluxt/star-wars/pkg/core"
	"github.com/fluxt/star-wars/pkg/material"
)

// NewTriangleMesh creates triangles from vertices and face indices.
// Each group of 3 zero-based indices forms one triangle sharing the given material.
// The triangles are returned as individual shapes so the scene BVH can prune them.
func NewTriangleMesh(vertices []core.Vec3, faces []int, mat material.Material) ([]Shape, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}

	numTriangles := len(faces) / 3
	triangles := make([]Shape, 0, numTriangles)

	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]

		for _, idx := range []int{i0, i1, i2} {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range [0, %d)", i, idx, len(vertices))
			}
		}

		triangles = append(triangles, NewTriangle(vertices[i0], vertices[i1], vertices[i2], mat))
	}

	return triangles, nil
}
