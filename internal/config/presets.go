package config

import "sort"

// Presets are built-in geometry definitions: an inductively coupled
// plasma reactor cross-section, a feature-etch stack, and a 1D layer
// profile.
var Presets = map[string]*Config{
	"icp2d": {
		Name:      "icp2d",
		Dimension: 2,
		Domain:    Extent{Min: []float64{-0.25, 0.0}, Max: []float64{0.25, 0.4}},
		Shapes: []ShapeConfig{
			// Metal walls on all four boundaries, plus the pedestal.
			{Material: "Metal", Extent: Extent{Min: []float64{-0.25, 0.38}, Max: []float64{0.25, 0.4}}},
			{Material: "Metal", Extent: Extent{Min: []float64{-0.25, 0.0}, Max: []float64{0.25, 0.02}}},
			{Material: "Metal", Extent: Extent{Min: []float64{-0.25, 0.0}, Max: []float64{-0.231, 0.4}}},
			{Material: "Metal", Extent: Extent{Min: []float64{0.23, 0.0}, Max: []float64{0.25, 0.4}}},
			{Material: "Metal", Extent: Extent{Min: []float64{-0.20, 0.0}, Max: []float64{0.20, 0.1}}},
			// Quartz window separating the coil area from the plasma.
			{Material: "Quartz", Extent: Extent{Min: []float64{-0.23, 0.3}, Max: []float64{0.23, 0.32}}},
			// Air occupies the coil area, coils overwrite it.
			{Material: "Air", Extent: Extent{Min: []float64{-0.23, 0.32}, Max: []float64{0.23, 0.38}}},
			{Material: "Coil", Extent: Extent{Min: []float64{-0.20, 0.34}, Max: []float64{-0.18, 0.36}}},
			{Material: "Coil", Extent: Extent{Min: []float64{-0.14, 0.34}, Max: []float64{-0.12, 0.36}}},
			{Material: "Coil", Extent: Extent{Min: []float64{-0.08, 0.34}, Max: []float64{-0.06, 0.36}}},
			{Material: "Coil", Extent: Extent{Min: []float64{0.18, 0.34}, Max: []float64{0.20, 0.36}}},
			{Material: "Coil", Extent: Extent{Min: []float64{0.12, 0.34}, Max: []float64{0.14, 0.36}}},
			{Material: "Coil", Extent: Extent{Min: []float64{0.06, 0.34}, Max: []float64{0.081, 0.36}}},
		},
	},
	"feat2d": {
		Name:      "feat2d",
		Dimension: 2,
		Domain:    Extent{Min: []float64{0, 0}, Max: []float64{200e-9, 500e-9}},
		Shapes: []ShapeConfig{
			{Material: "SiO2", Extent: Extent{Min: []float64{0, 0}, Max: []float64{200e-9, 50e-9}}},
			{Material: "Si", Extent: Extent{Min: []float64{0, 50e-9}, Max: []float64{200e-9, 400e-9}}},
			{Material: "PR", Extent: Extent{Min: []float64{0, 400e-9}, Max: []float64{50e-9, 450e-9}}},
			{Material: "PR", Extent: Extent{Min: []float64{150e-9, 400e-9}, Max: []float64{200e-9, 450e-9}}},
		},
	},
	"stack1d": {
		Name:      "stack1d",
		Dimension: 1,
		Domain:    Extent{Min: []float64{0}, Max: []float64{1e-6}},
		Shapes: []ShapeConfig{
			{Material: "Si", Extent: Extent{Min: []float64{0}, Max: []float64{400e-9}}},
			{Material: "SiO2", Extent: Extent{Min: []float64{400e-9}, Max: []float64{500e-9}}},
		},
	},
}

// GetPreset returns a built-in definition, or nil if name is unknown.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the preset names sorted alphabetically.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
