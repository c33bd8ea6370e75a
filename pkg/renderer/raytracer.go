package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/fluxt/star-wars/pkg/integrator"
	"github.com/fluxt/star-wars/pkg/logger"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed; same seed gives the same image
	NumWorkers      int   // Parallel workers (<= 0 means one per CPU)
	TileSize        int   // Tile edge in pixels (<= 0 means DefaultTileSize)
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
		NumWorkers:      0,
		TileSize:        DefaultTileSize,
	}
}

// Validate reports configuration values the renderer cannot work with
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("samples per pixel must be at least 1, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// Raytracer renders a world through a camera
type Raytracer struct {
	camera     *Camera
	world      integrator.World
	integrator integrator.Integrator
	config     SamplingConfig
}

// NewRaytracer creates a raytracer using unidirectional path tracing
func NewRaytracer(camera *Camera, world integrator.World, config SamplingConfig) *Raytracer {
	return &Raytracer{
		camera:     camera,
		world:      world,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		config:     config,
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integ integrator.Integrator) {
	rt.integrator = integ
}

// Render produces the full image. Tiles are rendered in parallel; the result is
// bit-identical for a given seed regardless of worker count. If ctx is cancelled
// no image is returned.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	tiles := NewTileGrid(width, height, rt.config.TileSize, rt.config.Seed)

	tileRenderer := NewTileRenderer(rt.camera, rt.world, rt.integrator, rt.config.SamplesPerPixel)
	pool := NewWorkerPool(tileRenderer, img, rt.config.NumWorkers, len(tiles))

	logger.Info("Render started",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("samples", rt.config.SamplesPerPixel),
		zap.Int("maxDepth", rt.config.MaxDepth),
		zap.Int("tiles", len(tiles)),
		zap.Int("workers", pool.GetNumWorkers()))

	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}

	var stats RenderStats
	var renderErr error
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.Merge(result.Stats)
		logger.Debug("Tile finished",
			zap.Int("tile", result.TaskID),
			zap.Int("done", stats.TilesRendered),
			zap.Int("total", len(tiles)))
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	if renderErr != nil {
		return nil, stats, fmt.Errorf("render aborted: %w", renderErr)
	}

	logger.Info("Render finished",
		zap.Duration("duration", stats.Duration),
		zap.Int("samples", stats.TotalSamples),
		zap.Float64("samplesPerSecond", stats.SamplesPerSecond()))

	return img, stats, nil
}

// Render is a convenience wrapper that builds a Raytracer and renders once
func Render(ctx context.Context, camera *Camera, world integrator.World, config SamplingConfig) (*image.RGBA, RenderStats, error) {
	return NewRaytracer(camera, world, config).Render(ctx)
}
