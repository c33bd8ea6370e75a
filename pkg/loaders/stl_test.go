package loaders

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/fluxt/star-wars/pkg/core"
)

// writeBinarySTL writes triangles in the binary STL layout:
// 80-byte header, uint32 count, then normal + 3 vertices + uint16 per triangle
func writeBinarySTL(t *testing.T, triangles [][3]core.Vec3) string {
	t.Helper()

	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	binary.Write(&buf, binary.LittleEndian, uint32(len(triangles)))
	for _, tri := range triangles {
		record := [12]float32{}
		for i, v := range tri {
			record[3+i*3] = float32(v.X)
			record[4+i*3] = float32(v.Y)
			record[5+i*3] = float32(v.Z)
		}
		binary.Write(&buf, binary.LittleEndian, record)
		binary.Write(&buf, binary.LittleEndian, uint16(0))
	}

	path := filepath.Join(t.TempDir(), "mesh.stl")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write STL: %v", err)
	}
	return path
}

func TestLoadSTL_Binary(t *testing.T) {
	triangles := [][3]core.Vec3{
		{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)},
		{core.NewVec3(1, 0, 0), core.NewVec3(1, 1, 0), core.NewVec3(0, 1, 0)},
	}
	path := writeBinarySTL(t, triangles)

	mesh, err := LoadMesh(path, MeshOptions{})
	if err != nil {
		t.Fatalf("LoadMesh failed: %v", err)
	}

	if mesh.TriangleCount() != 2 {
		t.Fatalf("Expected 2 triangles, got %d", mesh.TriangleCount())
	}
	if len(mesh.Vertices) != 6 {
		t.Errorf("Expected 6 vertices, got %d", len(mesh.Vertices))
	}

	for i, tri := range triangles {
		for j, expected := range tri {
			got := mesh.Vertices[mesh.Faces[i*3+j]]
			if got != expected {
				t.Errorf("Triangle %d vertex %d: expected %v, got %v", i, j, expected, got)
			}
		}
	}
}

func TestLoadSTL_Missing(t *testing.T) {
	if _, err := LoadSTL(filepath.Join(t.TempDir(), "missing.stl"), 0); err == nil {
		t.Error("Expected error for missing file")
	}
}
