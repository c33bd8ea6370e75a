package config

import "flag"

// Flags holds the command-line overrides registered on a FlagSet.
type Flags struct {
	set *flag.FlagSet

	ConfigPath string
	ListScenes bool

	scene     string
	sceneFile string
	out       string
	width     int
	height    int
	samples   int
	depth     int
	seed      int64
	workers   int
	debug     bool
}

// RegisterFlags defines the render flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{set: fs}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&f.ListScenes, "list", false, "List available scenes and exit")
	fs.StringVar(&f.scene, "scene", "", "Built-in scene name")
	fs.StringVar(&f.sceneFile, "scene-file", "", "YAML scene description file")
	fs.StringVar(&f.out, "out", "", "Output image path (.png, .jpg, .gif, .tif, .bmp)")
	fs.IntVar(&f.width, "width", 0, "Image width in pixels")
	fs.IntVar(&f.height, "height", 0, "Image height in pixels")
	fs.IntVar(&f.samples, "samples", 0, "Samples per pixel")
	fs.IntVar(&f.depth, "depth", 0, "Maximum bounces per path")
	fs.Int64Var(&f.seed, "seed", 0, "Random seed")
	fs.IntVar(&f.workers, "workers", 0, "Render workers (0 = one per CPU)")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	return f
}

// Apply applies the flags given on the command line to cfg (highest priority).
func (f *Flags) Apply(cfg *Config) {
	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "scene":
			cfg.Scene.Name = f.scene
			cfg.Scene.File = ""
		case "scene-file":
			cfg.Scene.File = f.sceneFile
		case "out":
			cfg.Output.Path = f.out
		case "width":
			cfg.Render.Width = f.width
		case "height":
			cfg.Render.Height = f.height
		case "samples":
			cfg.Render.Samples = f.samples
		case "depth":
			cfg.Render.MaxDepth = f.depth
		case "seed":
			cfg.Render.Seed = f.seed
		case "workers":
			cfg.Render.Workers = f.workers
		case "debug":
			if f.debug {
				cfg.Logging.Level = "debug"
			}
		}
	})
}
