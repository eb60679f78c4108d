package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagShape   = flag.String("shape", "", "Shape to generate: quad, grid, steiner, cube, sphere")
	flagX       = flag.Int("x", 0, "Grid cells along X")
	flagY       = flag.Int("y", 0, "Grid cells along Y")
	flagCell    = flag.Float64("cell", 0, "Grid cell size")
	flagSize    = flag.Float64("size", 0, "Cube half extent")
	flagRadius  = flag.Float64("radius", 0, "Sphere radius")
	flagDensity = flag.Int("density", 0, "Sphere density")
	flagOut     = flag.String("out", "", "Write the mesh to this OBJ file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagShape != "" {
		cfg.Shape.Kind = *flagShape
	}
	if *flagX > 0 {
		cfg.Shape.X = *flagX
	}
	if *flagY > 0 {
		cfg.Shape.Y = *flagY
	}
	if *flagCell > 0 {
		cfg.Shape.CellSize = float32(*flagCell)
	}
	if *flagSize > 0 {
		cfg.Shape.Size = float32(*flagSize)
	}
	if *flagRadius > 0 {
		cfg.Shape.Radius = float32(*flagRadius)
	}
	if *flagDensity > 0 {
		cfg.Shape.Density = *flagDensity
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
}
