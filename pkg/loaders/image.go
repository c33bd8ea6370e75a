package loaders

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/fluxt/star-wars/pkg/material"
)

// LoadImage decodes any format imaging supports (PNG, JPEG, GIF, TIFF, BMP),
// honouring EXIF orientation
func LoadImage(filename string) (image.Image, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	return img, nil
}

// LoadTexture loads an image file as a texture
func LoadTexture(filename string) (*material.ImageTexture, error) {
	img, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	return material.NewImageTextureFromImage(img), nil
}
