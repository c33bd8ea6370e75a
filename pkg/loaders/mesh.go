package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/fluxt/star-wars/pkg/core"
	"github.com/fluxt/star-wars/pkg/logger"
)

// MeshData contains the raw vertex and face data loaded from a mesh file
type MeshData struct {
	Vertices []core.Vec3 // Vertex positions
	Faces    []int       // Zero-based triangle indices (3 per triangle)

	// Diagnostics holds one *LineError per skipped line, combined with multierr.
	// It is nil when every line parsed.
	Diagnostics error
}

// TriangleCount returns the number of triangles in the mesh
func (m *MeshData) TriangleCount() int {
	return len(m.Faces) / 3
}

// LineError describes a mesh line that was skipped
type LineError struct {
	Line   int    // 1-based line number
	Text   string // The offending line
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// MeshOptions controls optional processing while loading a mesh
type MeshOptions struct {
	// Simplify keeps roughly this fraction of an STL mesh's triangles (0 or >= 1 disables)
	Simplify float64
}

// LoadMesh loads a mesh file, choosing the format from its extension:
// .obj and .txt use the v/f text format, .stl uses STL (binary or ASCII)
func LoadMesh(filename string, opts MeshOptions) (*MeshData, error) {
	startTime := time.Now()

	var mesh *MeshData
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".obj", ".txt":
		mesh, err = loadTextMesh(filename)
	case ".stl":
		mesh, err = LoadSTL(filename, opts.Simplify)
	default:
		return nil, fmt.Errorf("unsupported mesh format %q", ext)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded mesh",
		zap.String("file", filename),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("skippedLines", len(multierr.Errors(mesh.Diagnostics))),
		zap.Duration("elapsed", time.Since(startTime)))

	return mesh, nil
}

func loadTextMesh(filename string) (*MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open mesh file: %w", err)
	}
	defer file.Close()

	mesh, err := ParseMesh(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return mesh, nil
}

// ParseMesh reads "v x y z" and "f i j k ..." records. Face indices are 1-based;
// negative indices count back from the last vertex read so far. Faces with more
// than three vertices are split into a triangle fan and "i/t/n" index forms use
// the first component. Malformed lines are skipped and reported in Diagnostics;
// the returned error is only set when reading r fails.
func ParseMesh(r io.Reader) (*MeshData, error) {
	mesh := &MeshData{}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		var reason string
		switch fields[0] {
		case "v":
			reason = mesh.parseVertex(fields[1:])
		case "f":
			reason = mesh.parseFace(fields[1:])
		case "vn", "vt", "vp", "o", "g", "s", "l", "usemtl", "mtllib":
			// Not needed for flat-shaded triangles
		default:
			reason = fmt.Sprintf("unknown record %q", fields[0])
		}

		if reason != "" {
			lineErr := &LineError{Line: lineNum, Text: text, Reason: reason}
			logger.Warn("Skipping mesh line", zap.Error(lineErr))
			mesh.Diagnostics = multierr.Append(mesh.Diagnostics, lineErr)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return mesh, nil
}

// parseVertex returns a non-empty reason when the record is malformed
func (m *MeshData) parseVertex(args []string) string {
	if len(args) < 3 {
		return fmt.Sprintf("vertex needs 3 coordinates, got %d", len(args))
	}

	var coords [3]float64
	for i := 0; i < 3; i++ {
		value, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return fmt.Sprintf("invalid coordinate %q", args[i])
		}
		coords[i] = value
	}

	m.Vertices = append(m.Vertices, core.NewVec3(coords[0], coords[1], coords[2]))
	return ""
}

// parseFace returns a non-empty reason when the record is malformed
func (m *MeshData) parseFace(args []string) string {
	if len(args) < 3 {
		return fmt.Sprintf("face needs at least 3 vertices, got %d", len(args))
	}

	indices := make([]int, len(args))
	for i, arg := range args {
		// "12/4/7" -> "12"
		token, _, _ := strings.Cut(arg, "/")
		idx, err := strconv.Atoi(token)
		if err != nil {
			return fmt.Sprintf("invalid index %q", arg)
		}

		switch {
		case idx > 0:
			idx--
		case idx < 0:
			idx += len(m.Vertices)
		default:
			return "index 0 is not valid, indices start at 1"
		}
		if idx < 0 || idx >= len(m.Vertices) {
			return fmt.Sprintf("index %s refers to a missing vertex (have %d)", token, len(m.Vertices))
		}
		indices[i] = idx
	}

	for i := 1; i+1 < len(indices); i++ {
		m.Faces = append(m.Faces, indices[0], indices[i], indices[i+1])
	}
	return ""
}
