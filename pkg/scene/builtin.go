package scene

import (
	"fmt"
	"sort"
)

// builtin describes a scene that is constructed in code
type builtin struct {
	description string
	build       func() (*Scene, error)
}

var builtins = map[string]builtin{
	"default":       {"Ground with a diffuse sphere between two metal spheres", NewDefaultScene},
	"glass":         {"Solid and hollow glass spheres next to a mirror", NewGlassScene},
	"single-sphere": {"One grey diffuse sphere in front of the camera", NewSingleSphereScene},
	"empty":         {"No objects, only the sky gradient", NewEmptyScene},
	"triangles":     {"A tetrahedron built from a triangle mesh on a ground sphere", NewTriangleScene},
	"lights":        {"Glowing spheres lighting diffuse objects under a dark sky", NewLightsScene},
	"textures":      {"Checker textured ground and spheres", NewTextureScene},
	"sphere-grid":   {"Grid of coloured metal spheres", NewSphereGridScene},
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the named built-in scene
func Lookup(name string) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return b.build()
}
