package output

import (
	"image"

	"github.com/nfnt/resize"
)

// Downscale resizes img with bilinear filtering. A zero width or height keeps the
// aspect ratio; both zero returns img unchanged.
func Downscale(img image.Image, width, height int) image.Image {
	if width <= 0 && height <= 0 {
		return img
	}
	return resize.Resize(uint(max(width, 0)), uint(max(height, 0)), img, resize.Bilinear)
}
