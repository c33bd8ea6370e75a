// Package config handles render configuration loading and management.
package config

import (
	"fmt"
	"strings"

	"github.com/fluxt/star-wars/pkg/core"
	"github.com/fluxt/star-wars/pkg/renderer"
)

// Config holds all render settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Camera  *CameraConfig `yaml:"camera,omitempty"` // Overrides the scene's camera
	Scene   SceneConfig   `yaml:"scene"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds image size and sampling settings.
type RenderConfig struct {
	Width    int   `yaml:"width"`
	Height   int   `yaml:"height"`
	Samples  int   `yaml:"samples"`
	MaxDepth int   `yaml:"max_depth"`
	Seed     int64 `yaml:"seed"`
	Workers  int   `yaml:"workers"`   // 0 means one per CPU
	TileSize int   `yaml:"tile_size"` // 0 means the renderer default
}

// CameraConfig overrides individual camera fields; omitted fields keep the scene's values.
type CameraConfig struct {
	Center        []float64 `yaml:"center,omitempty"`
	Direction     []float64 `yaml:"direction,omitempty"`
	Up            []float64 `yaml:"up,omitempty"`
	VFov          float64   `yaml:"vfov,omitempty"`
	FocusDistance float64   `yaml:"focus_distance,omitempty"`
	DefocusAngle  *float64  `yaml:"defocus_angle,omitempty"`
}

// SceneConfig selects what to render.
type SceneConfig struct {
	Name string `yaml:"name"` // Built-in scene
	File string `yaml:"file"` // YAML scene description, takes priority over Name
	Dir  string `yaml:"dir"`  // Where scene files are listed from
}

// OutputConfig holds where the image goes.
type OutputConfig struct {
	Path            string   `yaml:"path"` // Local file; empty disables
	DownscaleWidth  int      `yaml:"downscale_width"`
	DownscaleHeight int      `yaml:"downscale_height"`
	S3              S3Config `yaml:"s3"`
}

// S3Config holds the optional upload destination.
type S3Config struct {
	Bucket    string `yaml:"bucket"` // Empty disables the upload
	Key       string `yaml:"key"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:    400,
			Height:   225,
			Samples:  100,
			MaxDepth: 50,
			Seed:     42,
			Workers:  0,
			TileSize: renderer.DefaultTileSize,
		},
		Scene: SceneConfig{
			Name: "default",
			Dir:  "scenes",
		},
		Output: OutputConfig{
			Path: "output/render.png",
			S3: S3Config{
				Region: "us-east-1",
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings that cannot produce a render.
func (c *Config) Validate() error {
	r := c.Render
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", r.Width, r.Height)
	}
	if r.Samples < 1 {
		return fmt.Errorf("samples must be at least 1, got %d", r.Samples)
	}
	if r.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", r.MaxDepth)
	}
	if r.Workers < 0 || r.TileSize < 0 {
		return fmt.Errorf("workers and tile size must not be negative")
	}

	if c.Scene.Name == "" && c.Scene.File == "" {
		return fmt.Errorf("no scene selected")
	}

	o := c.Output
	if o.DownscaleWidth < 0 || o.DownscaleHeight < 0 {
		return fmt.Errorf("downscale size must not be negative")
	}
	if o.Path == "" && o.S3.Bucket == "" {
		return fmt.Errorf("no output configured: set an output path or an S3 bucket")
	}
	if o.S3.Bucket != "" && o.S3.Key == "" {
		return fmt.Errorf("s3 bucket %q needs an object key", o.S3.Bucket)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}

	if c.Camera != nil {
		if _, err := c.Camera.Apply(renderer.CameraConfig{}); err != nil {
			return err
		}
	}
	return nil
}

// Sampling returns the renderer settings.
func (c *Config) Sampling() renderer.SamplingConfig {
	return renderer.SamplingConfig{
		SamplesPerPixel: c.Render.Samples,
		MaxDepth:        c.Render.MaxDepth,
		Seed:            c.Render.Seed,
		NumWorkers:      c.Render.Workers,
		TileSize:        c.Render.TileSize,
	}
}

// Apply overrides base with the fields set in the camera section.
func (c *CameraConfig) Apply(base renderer.CameraConfig) (renderer.CameraConfig, error) {
	if c == nil {
		return base, nil
	}

	var err error
	if base.Center, err = vec3("camera.center", c.Center, base.Center); err != nil {
		return base, err
	}
	if base.Direction, err = vec3("camera.direction", c.Direction, base.Direction); err != nil {
		return base, err
	}
	if base.Up, err = vec3("camera.up", c.Up, base.Up); err != nil {
		return base, err
	}
	if c.VFov != 0 {
		base.VFov = c.VFov
	}
	if c.FocusDistance != 0 {
		base.FocusDistance = c.FocusDistance
	}
	if c.DefocusAngle != nil {
		base.DefocusAngle = *c.DefocusAngle
	}
	return base, nil
}

func vec3(field string, values []float64, fallback core.Vec3) (core.Vec3, error) {
	if values == nil {
		return fallback, nil
	}
	if len(values) != 3 {
		return fallback, fmt.Errorf("%s: expected 3 components, got %d", field, len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}
