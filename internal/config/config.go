// Package config loads and saves geometry definitions from YAML and
// builds them into queryable geometries.
package config

import (
	"fmt"
	"os"

	"github.com/plasmakit/reactorgeom/internal/geometry"
	"gopkg.in/yaml.v3"
)

// Extent is a min/max coordinate pair. 1D extents use one coordinate
// per end, 2D extents two.
type Extent struct {
	Min []float64 `yaml:"min,flow"`
	Max []float64 `yaml:"max,flow"`
}

// ShapeConfig is one overlay in the definition order.
type ShapeConfig struct {
	Material string `yaml:"material"`
	Extent   Extent `yaml:"extent"`
}

// Config is a complete geometry definition. Shape order is preserved
// when building: it is the paint order of the final geometry.
type Config struct {
	Name           string        `yaml:"name"`
	Dimension      int           `yaml:"dimension"`
	Cylindrical    bool          `yaml:"cylindrical"`
	Domain         Extent        `yaml:"domain"`
	DomainMaterial string        `yaml:"domain_material,omitempty"`
	Shapes         []ShapeConfig `yaml:"shapes"`
}

// Default returns a unit-square 2D definition with no overlays.
func Default() *Config {
	return &Config{
		Name:      "reactor",
		Dimension: 2,
		Domain:    Extent{Min: []float64{0, 0}, Max: []float64{1, 1}},
	}
}

// Load reads a definition file, applying defaults for omitted fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the definition to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build constructs the geometry: install the domain, then add shapes in
// the listed order.
func (c *Config) Build() (*geometry.Geometry, error) {
	g, err := geometry.New(c.Name, geometry.Dimension(c.Dimension), c.Cylindrical)
	if err != nil {
		return nil, err
	}

	min, max, err := c.Domain.points(g.Dimension())
	if err != nil {
		return nil, fmt.Errorf("config: domain of %q: %w", c.Name, err)
	}
	material := c.DomainMaterial
	if material == "" {
		material = geometry.DefaultMaterial
	}
	if err := g.InstallDomainMaterial(min, max, material); err != nil {
		return nil, err
	}

	for i, sc := range c.Shapes {
		min, max, err := sc.Extent.points(g.Dimension())
		if err != nil {
			return nil, fmt.Errorf("config: shape %d (%q): %w", i, sc.Material, err)
		}
		var s geometry.Shape
		if g.Dimension() == geometry.Dim1D {
			s, err = geometry.NewInterval(sc.Material, min.X, max.X)
		} else {
			s, err = geometry.NewRectangle(sc.Material, min, max)
		}
		if err != nil {
			return nil, err
		}
		if err := g.AddShape(s); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (e Extent) points(dim geometry.Dimension) (geometry.Point, geometry.Point, error) {
	n := int(dim)
	if len(e.Min) < n || len(e.Max) < n {
		return geometry.Point{}, geometry.Point{},
			fmt.Errorf("extent needs %d coordinates per end, got %d/%d", n, len(e.Min), len(e.Max))
	}
	min := geometry.Point{X: e.Min[0]}
	max := geometry.Point{X: e.Max[0]}
	if n == 2 {
		min.Y = e.Min[1]
		max.Y = e.Max[1]
	}
	return min, max, nil
}
