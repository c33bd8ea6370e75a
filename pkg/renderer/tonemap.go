package renderer

import (
	"image/color"
	"math"

	"github.com/fluxt/star-wars/pkg/core"
)

// ToneMap converts linear radiance to an opaque 8-bit color:
// gamma 2 (square root), clamp to [0,1], then floor(255.999·c)
func ToneMap(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: quantize(c.X),
		G: quantize(c.Y),
		B: quantize(c.Z),
		A: 255,
	}
}

func quantize(v float64) uint8 {
	// NaN and negative radiance both map to black
	if !(v > 0) {
		return 0
	}
	v = math.Min(math.Sqrt(v), 1.0)
	return uint8(255.999 * v)
}
