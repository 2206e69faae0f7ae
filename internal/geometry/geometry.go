package geometry

import "fmt"

// Geometry is an ordered sequence of shapes over a common domain. Index
// 0 of the sequence is the domain once installed; later entries are
// overlays in the exact order they were added. Shapes are never removed
// or reordered.
type Geometry struct {
	name        string
	dim         Dimension
	cylindrical bool

	shapes    []Shape
	registry  *MaterialRegistry
	hasDomain bool
}

// New creates an empty geometry. The dimension is fixed for the
// geometry's lifetime; cylindrical is carried as metadata only and does
// not alter containment math.
func New(name string, dim Dimension, cylindrical bool) (*Geometry, error) {
	if dim != Dim1D && dim != Dim2D {
		return nil, fmt.Errorf("geometry: unsupported dimension %d", dim)
	}
	return &Geometry{
		name:        name,
		dim:         dim,
		cylindrical: cylindrical,
		registry:    NewMaterialRegistry(),
	}, nil
}

// InstallDomain installs the background domain spanning min to max with
// the ambient DefaultMaterial. For 1D geometries only the X components
// are used.
func (g *Geometry) InstallDomain(min, max Point) error {
	return g.InstallDomainMaterial(min, max, DefaultMaterial)
}

// InstallDomainMaterial installs the domain with an explicit background
// material. Installing a domain is a one-time event: a second call
// fails with *DomainExistsError and leaves the geometry unchanged.
func (g *Geometry) InstallDomainMaterial(min, max Point, material string) error {
	if g.hasDomain {
		return &DomainExistsError{Name: g.name, Material: g.shapes[0].Material()}
	}
	dom, err := newDomain(g.dim, min, max, material)
	if err != nil {
		return err
	}
	g.shapes = append(g.shapes, dom)
	g.registry.Register(material)
	g.hasDomain = true
	return nil
}

// AddShape appends an overlay to the sequence and registers its
// material. Insertion order is semantically significant: MaterialAt
// resolves overlaps in favor of the shape added last. On error the
// sequence and registry are left untouched.
func (g *Geometry) AddShape(s Shape) error {
	if !g.hasDomain {
		return &DomainNotCreatedError{Material: s.Material()}
	}
	if s.Dimension() != g.dim {
		return &DimensionMismatchError{Geometry: g.dim, Shape: s.Dimension(), Material: s.Material()}
	}
	g.shapes = append(g.shapes, s)
	g.registry.Register(s.Material())
	return nil
}

// MaterialAt resolves the material at p by painter's algorithm: scan
// the full sequence in insertion order and keep the material of every
// shape containing p, so the last one wins. Points covered by no shape
// resolve to DefaultMaterial, with no check against the domain extent;
// out-of-domain points therefore also report the ambient material.
func (g *Geometry) MaterialAt(p Point) string {
	mat := DefaultMaterial
	for _, s := range g.shapes {
		if s.Contains(p) {
			mat = s.Material()
		}
	}
	return mat
}

// Name returns the geometry's name, used to derive output file names.
func (g *Geometry) Name() string { return g.name }

// Dimension returns the fixed spatial dimension.
func (g *Geometry) Dimension() Dimension { return g.dim }

// Cylindrical reports the symmetry metadata flag.
func (g *Geometry) Cylindrical() bool { return g.cylindrical }

// HasDomain reports whether the domain has been installed.
func (g *Geometry) HasDomain() bool { return g.hasDomain }

// Domain returns the background shape, or false before installation.
func (g *Geometry) Domain() (Shape, bool) {
	if !g.hasDomain {
		return Shape{}, false
	}
	return g.shapes[0], true
}

// Shapes returns the sequence in insertion order, domain first. The
// returned slice must not be mutated.
func (g *Geometry) Shapes() []Shape { return g.shapes }

// Registry returns the geometry's material registry.
func (g *Geometry) Registry() *MaterialRegistry { return g.registry }
