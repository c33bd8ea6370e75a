package renderer

import (
	"context"
	"image"

	"github.com/fluxt/star-wars/pkg/core"
	"github.com/fluxt/star-wars/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	camera          *Camera
	world           integrator.World
	integrator      integrator.Integrator
	samplesPerPixel int
}

// NewTileRenderer creates a new tile renderer. Camera, world and integrator are only read.
func NewTileRenderer(camera *Camera, world integrator.World, integratorInst integrator.Integrator, samplesPerPixel int) *TileRenderer {
	return &TileRenderer{
		camera:          camera,
		world:           world,
		integrator:      integratorInst,
		samplesPerPixel: samplesPerPixel,
	}
}

// RenderTile renders every pixel in the tile into img. Tiles never overlap, so
// concurrent calls on distinct tiles can share img. A pixel is written only after
// all of its samples are taken.
func (tr *TileRenderer) RenderTile(ctx context.Context, tile *Tile, img *image.RGBA) (RenderStats, error) {
	sampler := core.NewRandomSampler(tile.Random)
	bounds := tile.Bounds

	for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
		if err := ctx.Err(); err != nil {
			return RenderStats{}, err
		}
		for col := bounds.Min.X; col < bounds.Max.X; col++ {
			img.SetRGBA(col, row, ToneMap(tr.samplePixel(row, col, sampler)))
		}
	}

	pixels := bounds.Dx() * bounds.Dy()
	stats := RenderStats{
		TotalPixels:   pixels,
		TotalSamples:  pixels * tr.samplesPerPixel,
		TilesRendered: 1,
	}
	if pixels > 0 {
		stats.AverageSamples = float64(tr.samplesPerPixel)
	}
	return stats, nil
}

// samplePixel averages samplesPerPixel radiance estimates for one pixel
func (tr *TileRenderer) samplePixel(row, col int, sampler core.Sampler) core.Vec3 {
	colorAccum := core.Vec3{}
	for s := 0; s < tr.samplesPerPixel; s++ {
		ray := tr.camera.GetRay(row, col, sampler)
		colorAccum = colorAccum.Add(tr.integrator.RayColor(ray, tr.world, sampler))
	}
	return colorAccum.Multiply(1.0 / float64(tr.samplesPerPixel))
}
