package output

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/fluxt/star-wars/pkg/logger"
)

// FileSink writes the image to a local file. The format follows the extension
// (.png, .jpg, .jpeg, .gif, .tif, .tiff, .bmp).
type FileSink struct {
	Path string
}

// NewFileSink creates a file sink, rejecting extensions that cannot be encoded
func NewFileSink(path string) (*FileSink, error) {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return nil, fmt.Errorf("output %s: %w", path, err)
	}
	return &FileSink{Path: path}, nil
}

// Name returns the output path
func (f *FileSink) Name() string {
	return f.Path
}

// Write encodes to a temporary file next to the target and renames it into place,
// so the target never holds a partial image
func (f *FileSink) Write(ctx context.Context, img image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	format, err := imaging.FormatFromFilename(f.Path)
	if err != nil {
		return fmt.Errorf("output %s: %w", f.Path, err)
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".render-*"+filepath.Ext(f.Path))
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := imaging.Encode(tmp, img, format); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode %s: %w", f.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.Path, err)
	}
	if err := os.Rename(tmpName, f.Path); err != nil {
		return fmt.Errorf("failed to move image into place: %w", err)
	}

	bounds := img.Bounds()
	logger.Info("Saved image",
		zap.String("file", f.Path),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()))
	return nil
}
