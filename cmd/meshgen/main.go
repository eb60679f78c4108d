// meshgen generates a procedural mesh, logs its statistics and optionally
// writes it to a Wavefront OBJ file.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-meshgen/internal/config"
	"github.com/Faultbox/midgard-meshgen/internal/logger"
	"github.com/Faultbox/midgard-meshgen/pkg/formats"
	"github.com/Faultbox/midgard-meshgen/pkg/meshdesc"
	"github.com/Faultbox/midgard-meshgen/pkg/meshes"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: init logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("meshgen failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	params, err := cfg.Params()
	if err != nil {
		return err
	}

	desc, err := meshes.Generate(params)
	if err != nil {
		return err
	}

	bounds := desc.Bounds()
	fields := logger.MeshFields(string(params.Kind), desc.VertexCount(), desc.TriangleCount())
	fields = append(fields,
		zap.Int("edges", desc.EdgeCount()),
		zap.Float32s("min", []float32{bounds.Min.X, bounds.Min.Y, bounds.Min.Z}),
		zap.Float32s("max", []float32{bounds.Max.X, bounds.Max.Y, bounds.Max.Z}),
	)
	logger.Info("mesh generated", fields...)

	if cfg.Output.Path == "" {
		return nil
	}
	if err := writeMesh(desc, cfg.Output.Path, string(params.Kind)); err != nil {
		return err
	}
	logger.Info("mesh written", zap.String("path", cfg.Output.Path))
	return nil
}

func writeMesh(desc *meshdesc.MeshDescription, path, name string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	return formats.WriteOBJ(f, desc, name)
}
