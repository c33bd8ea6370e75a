package loaders

import (
	"fmt"

	"github.com/fogleman/fauxgl"
	"github.com/fogleman/simplify"
	"go.uber.org/zap"

	"github.com/fluxt/star-wars/pkg/core"
	"github.com/fluxt/star-wars/pkg/logger"
)

// LoadSTL loads a binary or ASCII STL file. When 0 < factor < 1 the mesh is
// decimated to about that fraction of its triangles.
func LoadSTL(filename string, factor float64) (*MeshData, error) {
	mesh, err := fauxgl.LoadSTL(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load STL %s: %w", filename, err)
	}

	triangles := make([]*simplify.Triangle, len(mesh.Triangles))
	for i, t := range mesh.Triangles {
		triangles[i] = simplify.NewTriangle(
			simplifyVector(t.V1.Position),
			simplifyVector(t.V2.Position),
			simplifyVector(t.V3.Position))
	}

	if factor > 0 && factor < 1 {
		before := len(triangles)
		triangles = simplify.NewMesh(triangles).Simplify(factor).Triangles
		logger.Debug("Simplified STL mesh",
			zap.String("file", filename),
			zap.Int("before", before),
			zap.Int("after", len(triangles)))
	}

	// STL is a triangle soup: three fresh vertices per triangle
	data := &MeshData{
		Vertices: make([]core.Vec3, 0, len(triangles)*3),
		Faces:    make([]int, 0, len(triangles)*3),
	}
	for _, t := range triangles {
		base := len(data.Vertices)
		data.Vertices = append(data.Vertices, vec3(t.V1), vec3(t.V2), vec3(t.V3))
		data.Faces = append(data.Faces, base, base+1, base+2)
	}
	return data, nil
}

func simplifyVector(v fauxgl.Vector) simplify.Vector {
	return simplify.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

func vec3(v simplify.Vector) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}
