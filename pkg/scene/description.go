package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/fluxt/star-wars/pkg/core"
	"github.com/fluxt/star-wars/pkg/geometry"
	"github.com/fluxt/star-wars/pkg/integrator"
	"github.com/fluxt/star-wars/pkg/loaders"
	"github.com/fluxt/star-wars/pkg/logger"
	"github.com/fluxt/star-wars/pkg/material"
	"github.com/fluxt/star-wars/pkg/renderer"
)

// Description is the YAML form of a scene file
type Description struct {
	Name        string                         `yaml:"name"`
	Description string                         `yaml:"description"`
	Camera      *CameraDescription             `yaml:"camera"`
	Background  *BackgroundDescription         `yaml:"background"`
	Materials   map[string]MaterialDescription `yaml:"materials"`
	Spheres     []SphereDescription            `yaml:"spheres"`
	Triangles   []TriangleDescription          `yaml:"triangles"`
	Meshes      []MeshDescription              `yaml:"meshes"`
}

// Vector is a 3-component list such as [0, 1, 0]
type Vector []float64

// CameraDescription overrides the default camera; omitted fields keep their defaults
type CameraDescription struct {
	Center        Vector  `yaml:"center"`
	Direction     Vector  `yaml:"direction"`
	Up            Vector  `yaml:"up"`
	VFov          float64 `yaml:"vfov"`
	FocusDistance float64 `yaml:"focus_distance"`
	DefocusAngle  float64 `yaml:"defocus_angle"`
}

// BackgroundDescription overrides the sky gradient
type BackgroundDescription struct {
	Top    Vector `yaml:"top"`
	Bottom Vector `yaml:"bottom"`
}

// MaterialDescription is one named material.
// Type is lambertian, metal, dielectric or light.
type MaterialDescription struct {
	Type     string              `yaml:"type"`
	Albedo   Vector              `yaml:"albedo"`
	Texture  *TextureDescription `yaml:"texture"`
	Fuzz     float64             `yaml:"fuzz"`
	IOR      float64             `yaml:"ior"`
	Emission Vector              `yaml:"emission"`
}

// TextureDescription is a lambertian albedo texture: checker or image
type TextureDescription struct {
	Type  string  `yaml:"type"`
	Even  Vector  `yaml:"even"`
	Odd   Vector  `yaml:"odd"`
	Scale float64 `yaml:"scale"`
	Path  string  `yaml:"path"`
}

// SphereDescription places a sphere; a negative radius makes a hollow shell
type SphereDescription struct {
	Center   Vector  `yaml:"center"`
	Radius   float64 `yaml:"radius"`
	Material string  `yaml:"material"`
}

// TriangleDescription places a single triangle
type TriangleDescription struct {
	Vertices []Vector `yaml:"vertices"`
	Material string   `yaml:"material"`
}

// MeshDescription loads a mesh file relative to the scene file
type MeshDescription struct {
	Path      string                `yaml:"path"`
	Material  string                `yaml:"material"`
	Simplify  float64               `yaml:"simplify"`
	Transform *TransformDescription `yaml:"transform"`
}

// TransformDescription is applied translate, then rotate, then scale
type TransformDescription struct {
	Translate Vector `yaml:"translate"`
	Rotate    Vector `yaml:"rotate"` // degrees about X, Y, Z
	Scale     Vector `yaml:"scale"`
}

// LoadFile reads and builds a YAML scene description
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	s, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = filepath.Base(path)
	}
	return s, nil
}

// Parse builds a scene from YAML. Relative mesh and texture paths are resolved against baseDir.
func Parse(data []byte, baseDir string) (*Scene, error) {
	var desc Description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("failed to parse scene description: %w", err)
	}
	return desc.Build(baseDir)
}

// Build turns the description into a scene
func (d *Description) Build(baseDir string) (*Scene, error) {
	cameraConfig, err := d.Camera.config()
	if err != nil {
		return nil, err
	}

	s := NewScene(d.Name, cameraConfig)
	if d.Background != nil {
		if s.Sky, err = d.Background.gradient(s.Sky); err != nil {
			return nil, err
		}
	}

	materials := make(map[string]material.Material, len(d.Materials))
	for name, md := range d.Materials {
		mat, err := md.build(baseDir)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}
	lookup := func(name string) (material.Material, error) {
		mat, ok := materials[name]
		if !ok {
			return nil, fmt.Errorf("unknown material %q", name)
		}
		return mat, nil
	}

	for i, sd := range d.Spheres {
		center, err := sd.Center.vec("center")
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		if sd.Radius == 0 {
			return nil, fmt.Errorf("sphere %d: radius must not be zero", i)
		}
		mat, err := lookup(sd.Material)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		s.Add(geometry.NewSphere(center, sd.Radius, mat))
	}

	for i, td := range d.Triangles {
		if len(td.Vertices) != 3 {
			return nil, fmt.Errorf("triangle %d: expected 3 vertices, got %d", i, len(td.Vertices))
		}
		var v [3]core.Vec3
		for j := range v {
			if v[j], err = td.Vertices[j].vec("vertex"); err != nil {
				return nil, fmt.Errorf("triangle %d: %w", i, err)
			}
		}
		mat, err := lookup(td.Material)
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
		s.Add(geometry.NewTriangle(v[0], v[1], v[2], mat))
	}

	for i, md := range d.Meshes {
		mat, err := lookup(md.Material)
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		triangles, err := md.build(baseDir, mat)
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		s.Add(triangles...)
	}

	return s, nil
}

func (c *CameraDescription) config() (renderer.CameraConfig, error) {
	cfg := DefaultCameraConfig()
	if c == nil {
		return cfg, nil
	}

	var err error
	if cfg.Center, err = c.Center.vecOr("camera center", cfg.Center); err != nil {
		return cfg, err
	}
	if cfg.Direction, err = c.Direction.vecOr("camera direction", cfg.Direction); err != nil {
		return cfg, err
	}
	if cfg.Up, err = c.Up.vecOr("camera up", cfg.Up); err != nil {
		return cfg, err
	}
	if c.VFov != 0 {
		cfg.VFov = c.VFov
	}
	if c.FocusDistance != 0 {
		cfg.FocusDistance = c.FocusDistance
	}
	cfg.DefocusAngle = c.DefocusAngle
	return cfg, nil
}

func (b *BackgroundDescription) gradient(sky integrator.Gradient) (integrator.Gradient, error) {
	var err error
	if sky.Top, err = b.Top.vecOr("background top", sky.Top); err != nil {
		return sky, err
	}
	if sky.Bottom, err = b.Bottom.vecOr("background bottom", sky.Bottom); err != nil {
		return sky, err
	}
	return sky, nil
}

func (m MaterialDescription) build(baseDir string) (material.Material, error) {
	switch m.Type {
	case "lambertian":
		if m.Texture != nil {
			texture, err := m.Texture.build(baseDir)
			if err != nil {
				return nil, err
			}
			return material.NewTexturedLambertian(texture), nil
		}
		albedo, err := m.Albedo.vec("albedo")
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(albedo), nil

	case "metal":
		albedo, err := m.Albedo.vec("albedo")
		if err != nil {
			return nil, err
		}
		return material.NewMetal(albedo, m.Fuzz), nil

	case "dielectric":
		if m.IOR <= 0 {
			return nil, fmt.Errorf("ior must be positive, got %g", m.IOR)
		}
		return material.NewDielectric(m.IOR), nil

	case "light":
		emission, err := m.Emission.vec("emission")
		if err != nil {
			return nil, err
		}
		return material.NewDiffuseLight(emission), nil

	default:
		return nil, fmt.Errorf("unknown material type %q", m.Type)
	}
}

func (t *TextureDescription) build(baseDir string) (material.ColorSource, error) {
	switch t.Type {
	case "checker":
		even, err := t.Even.vec("even")
		if err != nil {
			return nil, err
		}
		odd, err := t.Odd.vec("odd")
		if err != nil {
			return nil, err
		}
		return material.NewCheckerTexture(even, odd, t.Scale), nil

	case "image":
		if t.Path == "" {
			return nil, fmt.Errorf("image texture needs a path")
		}
		return loaders.LoadTexture(resolve(baseDir, t.Path))

	default:
		return nil, fmt.Errorf("unknown texture type %q", t.Type)
	}
}

func (m MeshDescription) build(baseDir string, mat material.Material) ([]geometry.Shape, error) {
	if m.Path == "" {
		return nil, fmt.Errorf("mesh needs a path")
	}
	path := resolve(baseDir, m.Path)

	mesh, err := loaders.LoadMesh(path, loaders.MeshOptions{Simplify: m.Simplify})
	if err != nil {
		return nil, err
	}
	if mesh.Diagnostics != nil {
		logger.Warn("Mesh loaded with skipped lines",
			zap.String("file", path),
			zap.Int("skipped", len(multierr.Errors(mesh.Diagnostics))))
	}

	transform, err := m.Transform.build()
	if err != nil {
		return nil, err
	}

	return geometry.NewTriangleMesh(transform.ApplyAll(mesh.Vertices), mesh.Faces, mat)
}

func (t *TransformDescription) build() (loaders.Transform, error) {
	transform := loaders.IdentityTransform()
	if t == nil {
		return transform, nil
	}

	var err error
	if transform.Translate, err = t.Translate.vecOr("translate", transform.Translate); err != nil {
		return transform, err
	}
	if transform.RotateDeg, err = t.Rotate.vecOr("rotate", transform.RotateDeg); err != nil {
		return transform, err
	}
	if transform.Scale, err = t.Scale.vecOr("scale", transform.Scale); err != nil {
		return transform, err
	}
	return transform, nil
}

func (v Vector) vec(field string) (core.Vec3, error) {
	if len(v) != 3 {
		return core.Vec3{}, fmt.Errorf("%s: expected 3 components, got %d", field, len(v))
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

// vecOr returns fallback when the vector was omitted
func (v Vector) vecOr(field string, fallback core.Vec3) (core.Vec3, error) {
	if v == nil {
		return fallback, nil
	}
	return v.vec(field)
}

func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
