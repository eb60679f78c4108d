// Package config handles meshgen configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/midgard-meshgen/pkg/meshes"
)

// Config holds all meshgen settings.
type Config struct {
	Shape   ShapeConfig   `yaml:"shape" toml:"shape"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// ShapeConfig selects a generator and its parameters.
type ShapeConfig struct {
	Kind     string  `yaml:"kind" toml:"kind"`           // quad, grid, steiner, cube, sphere
	X        int     `yaml:"x" toml:"x"`                 // Grid cells along X
	Y        int     `yaml:"y" toml:"y"`                 // Grid cells along Y
	CellSize float32 `yaml:"cell_size" toml:"cell_size"` // Grid cell edge length
	Size     float32 `yaml:"size" toml:"size"`           // Cube half extent
	Radius   float32 `yaml:"radius" toml:"radius"`
	Density  int     `yaml:"density" toml:"density"`
}

// OutputConfig holds where generated meshes are written.
type OutputConfig struct {
	Path   string `yaml:"path" toml:"path"` // Empty means stats only
	Format string `yaml:"format" toml:"format"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Shape: ShapeConfig{
			Kind:     string(meshes.KindSphere),
			X:        8,
			Y:        8,
			CellSize: 100,
			Size:     50,
			Radius:   50,
			Density:  16,
		},
		Output: OutputConfig{
			Path:   "",
			Format: "obj",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Params converts the shape settings into generator parameters.
func (c *Config) Params() (meshes.Params, error) {
	kind, err := meshes.ParseKind(c.Shape.Kind)
	if err != nil {
		return meshes.Params{}, err
	}
	return meshes.Params{
		Kind:     kind,
		X:        c.Shape.X,
		Y:        c.Shape.Y,
		CellSize: c.Shape.CellSize,
		Size:     c.Shape.Size,
		Radius:   c.Shape.Radius,
		Density:  c.Shape.Density,
	}, nil
}

// Validate checks the settings the selected shape depends on. Generators
// accept anything, so out-of-range values are rejected here instead.
func (c *Config) Validate() error {
	kind, err := meshes.ParseKind(c.Shape.Kind)
	if err != nil {
		return err
	}

	var errs []error
	switch kind {
	case meshes.KindGrid:
		// Texture coordinates divide by x-1 and y-1.
		if c.Shape.X < 2 || c.Shape.Y < 2 {
			errs = append(errs, fmt.Errorf("grid needs at least 2x2 cells, got %dx%d", c.Shape.X, c.Shape.Y))
		}
	case meshes.KindSteiner:
		if c.Shape.X < 1 || c.Shape.Y < 1 {
			errs = append(errs, fmt.Errorf("steiner grid needs at least 1x1 cells, got %dx%d", c.Shape.X, c.Shape.Y))
		}
	case meshes.KindCube:
		if c.Shape.Size <= 0 {
			errs = append(errs, fmt.Errorf("cube size must be positive, got %g", c.Shape.Size))
		}
	case meshes.KindSphere:
		if c.Shape.Radius <= 0 {
			errs = append(errs, fmt.Errorf("sphere radius must be positive, got %g", c.Shape.Radius))
		}
		if c.Shape.Density < 2 {
			errs = append(errs, fmt.Errorf("sphere density must be at least 2, got %d", c.Shape.Density))
		}
	}
	if (kind == meshes.KindGrid || kind == meshes.KindSteiner) && c.Shape.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %g", c.Shape.CellSize))
	}
	if c.Output.Path != "" && c.Output.Format != "obj" {
		errs = append(errs, fmt.Errorf("unsupported output format %q", c.Output.Format))
	}
	return errors.Join(errs...)
}
