package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/plasmakit/reactorgeom/internal/config"
	"github.com/plasmakit/reactorgeom/internal/geometry"
)

// loadGeometry builds the geometry from --preset or a config file path.
func loadGeometry(args []string) (*geometry.Geometry, error) {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg.Build()
	}
	if len(args) == 1 {
		cfg, err := config.Load(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg.Build()
	}
	return nil, fmt.Errorf("provide a config file or --preset (see 'reactorgeom presets')")
}

// parsePoint parses "x" or "x,y" depending on the geometry dimension.
func parsePoint(raw string, dim geometry.Dimension) (geometry.Point, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != int(dim) {
		return geometry.Point{}, fmt.Errorf("point %q: expected %d coordinates", raw, dim)
	}

	var p geometry.Point
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("point %q: %w", raw, err)
	}
	p.X = x
	if dim == geometry.Dim2D {
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return geometry.Point{}, fmt.Errorf("point %q: %w", raw, err)
		}
		p.Y = y
	}
	return p, nil
}
