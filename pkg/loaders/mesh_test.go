package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/fluxt/star-wars/pkg/core"
)

func TestParseMesh_Triangle(t *testing.T) {
	input := `# a single triangle
v 0 0 0
v 1 0 0
v 0 1 0

f 1 2 3
`
	mesh, err := ParseMesh(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseMesh failed: %v", err)
	}

	if len(mesh.Vertices) != 3 {
		t.Errorf("Expected 3 vertices, got %d", len(mesh.Vertices))
	}
	if mesh.Vertices[1] != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected second vertex (1,0,0), got %v", mesh.Vertices[1])
	}

	expected := []int{0, 1, 2}
	if len(mesh.Faces) != len(expected) {
		t.Fatalf("Expected faces %v, got %v", expected, mesh.Faces)
	}
	for i := range expected {
		if mesh.Faces[i] != expected[i] {
			t.Errorf("Expected faces %v, got %v", expected, mesh.Faces)
			break
		}
	}
	if mesh.Diagnostics != nil {
		t.Errorf("Expected no diagnostics, got %v", mesh.Diagnostics)
	}
}

func TestParseMesh_IndexForms(t *testing.T) {
	tests := []struct {
		name     string
		face     string
		expected []int
	}{
		{"positive", "f 1 2 3", []int{0, 1, 2}},
		{"negative", "f -4 -3 -2", []int{0, 1, 2}},
		{"slashed", "f 2/1/1 3//2 4/3", []int{1, 2, 3}},
		{"quad fan", "f 1 2 3 4", []int{0, 1, 2, 0, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\n" + tt.face + "\n"
			mesh, err := ParseMesh(strings.NewReader(input))
			if err != nil {
				t.Fatalf("ParseMesh failed: %v", err)
			}
			if mesh.Diagnostics != nil {
				t.Fatalf("Expected no diagnostics, got %v", mesh.Diagnostics)
			}
			if len(mesh.Faces) != len(tt.expected) {
				t.Fatalf("Expected faces %v, got %v", tt.expected, mesh.Faces)
			}
			for i := range tt.expected {
				if mesh.Faces[i] != tt.expected[i] {
					t.Errorf("Expected faces %v, got %v", tt.expected, mesh.Faces)
					break
				}
			}
		})
	}
}

func TestParseMesh_IgnoredRecords(t *testing.T) {
	input := `mtllib scene.mtl
o thing
g group
s off
usemtl red
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vt 0 0
f 1/1/1 2/1/1 3/1/1
`
	mesh, err := ParseMesh(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseMesh failed: %v", err)
	}
	if mesh.Diagnostics != nil {
		t.Errorf("Expected no diagnostics, got %v", mesh.Diagnostics)
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("Expected 1 triangle, got %d", mesh.TriangleCount())
	}
}

func TestParseMesh_Diagnostics(t *testing.T) {
	input := `v 0 0 0
v 1 0 0
v 0 1 0
v 1 x 0
v 1 2
f 1 2 9
f 0 1 2
f 1 2
bogus line
f 1 2 3
`
	mesh, err := ParseMesh(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseMesh failed: %v", err)
	}

	if len(mesh.Vertices) != 3 {
		t.Errorf("Expected 3 valid vertices, got %d", len(mesh.Vertices))
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("Expected 1 valid triangle, got %d", mesh.TriangleCount())
	}

	errs := multierr.Errors(mesh.Diagnostics)
	expectedLines := []int{4, 5, 6, 7, 8, 9}
	if len(errs) != len(expectedLines) {
		t.Fatalf("Expected %d diagnostics, got %d: %v", len(expectedLines), len(errs), mesh.Diagnostics)
	}
	for i, e := range errs {
		var lineErr *LineError
		if !errors.As(e, &lineErr) {
			t.Fatalf("Expected *LineError, got %T", e)
		}
		if lineErr.Line != expectedLines[i] {
			t.Errorf("Expected diagnostic on line %d, got %d", expectedLines[i], lineErr.Line)
		}
	}
}

func TestLoadMesh_TextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	content := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write mesh: %v", err)
	}

	mesh, err := LoadMesh(path, MeshOptions{})
	if err != nil {
		t.Fatalf("LoadMesh failed: %v", err)
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("Expected 2 triangles, got %d", mesh.TriangleCount())
	}
}

func TestLoadMesh_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMesh(filepath.Join(dir, "missing.obj"), MeshOptions{}); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(dir, "mesh.ply")
	if err := os.WriteFile(path, []byte("ply\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := LoadMesh(path, MeshOptions{}); err == nil {
		t.Error("Expected error for unsupported extension")
	}
}
