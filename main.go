package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fluxt/star-wars/pkg/config"
	"github.com/fluxt/star-wars/pkg/logger"
	"github.com/fluxt/star-wars/pkg/output"
	"github.com/fluxt/star-wars/pkg/renderer"
	"github.com/fluxt/star-wars/pkg/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Error("Render failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Sync()
}

// run loads configuration, renders the selected scene and writes the image to every configured sink
func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("star-wars", flag.ContinueOnError)
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// S3 credentials may live in .env; a missing file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read .env: %w", err)
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	config.ApplyEnv(cfg)
	flags.Apply(cfg)

	if flags.ListScenes {
		return listScenes(stdout, cfg.Scene.Dir)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("failed to initialise logging: %w", err)
	}

	s, err := createScene(cfg)
	if err != nil {
		return err
	}

	cameraConfig, err := cfg.Camera.Apply(s.CameraConfig)
	if err != nil {
		return err
	}
	camera, err := renderer.NewCamera(cameraConfig, cfg.Render.Width, cfg.Render.Height)
	if err != nil {
		return fmt.Errorf("invalid camera: %w", err)
	}

	sinks, err := createSinks(cfg)
	if err != nil {
		return err
	}

	img, stats, err := renderer.Render(ctx, camera, s, cfg.Sampling())
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Rendered %s: %dx%d, %d samples/pixel in %v\n",
		s.Name, cfg.Render.Width, cfg.Render.Height, cfg.Render.Samples, stats.Duration)

	final := output.Downscale(img, cfg.Output.DownscaleWidth, cfg.Output.DownscaleHeight)
	if err := output.WriteAll(ctx, final, sinks...); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	for _, sink := range sinks {
		fmt.Fprintf(stdout, "Saved %s\n", sink.Name())
	}
	return nil
}

// createScene builds the scene file if one is configured, otherwise the named built-in
func createScene(cfg *config.Config) (*scene.Scene, error) {
	var s *scene.Scene
	var err error
	if cfg.Scene.File != "" {
		s, err = scene.LoadFile(cfg.Scene.File)
	} else {
		s, err = scene.Lookup(cfg.Scene.Name)
	}
	if err != nil {
		return nil, err
	}

	s.Preprocess()
	logger.Info("Scene ready",
		zap.String("scene", s.Name),
		zap.Int("primitives", s.PrimitiveCount()))
	return s, nil
}

// createSinks returns the local file and S3 destinations that are configured
func createSinks(cfg *config.Config) ([]output.Sink, error) {
	var sinks []output.Sink

	if cfg.Output.Path != "" {
		fileSink, err := output.NewFileSink(cfg.Output.Path)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, fileSink)
	}

	if s3 := cfg.Output.S3; s3.Bucket != "" {
		s3Sink, err := output.NewS3Sink(output.S3Config{
			Bucket:    s3.Bucket,
			Key:       s3.Key,
			Region:    s3.Region,
			Endpoint:  s3.Endpoint,
			AccessKey: s3.AccessKey,
			SecretKey: s3.SecretKey,
		})
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s3Sink)
	}

	return sinks, nil
}

// listScenes prints the built-in scenes and the scene files in dir
func listScenes(w io.Writer, dir string) error {
	scenes, err := scene.Discover(dir)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scenes {
		id := info.ID
		if info.Type == "file" {
			id = "-scene-file " + info.FilePath
		}
		fmt.Fprintf(w, "  %-28s %s", id, info.DisplayName)
		if info.Description != "" {
			fmt.Fprintf(w, ": %s", info.Description)
		}
		fmt.Fprintln(w)
	}
	return nil
}
