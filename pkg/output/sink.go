package output

import (
	"context"
	"image"

	"go.uber.org/multierr"
)

// Sink stores a finished image
type Sink interface {
	// Name identifies the destination in logs
	Name() string

	Write(ctx context.Context, img image.Image) error
}

// WriteAll writes img to every sink. Every sink is attempted; the failures are combined.
func WriteAll(ctx context.Context, img image.Image, sinks ...Sink) error {
	var err error
	for _, sink := range sinks {
		err = multierr.Append(err, sink.Write(ctx, img))
	}
	return err
}
