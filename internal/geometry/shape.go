package geometry

// DefaultMaterial is the ambient material assumed for any point not
// covered by an overlay.
const DefaultMaterial = "Plasma"

// DomainLabel is the fixed label carried by every domain shape.
const DomainLabel = "Domain"

// Dimension is the spatial dimension of a shape or geometry.
type Dimension int

const (
	Dim1D Dimension = 1
	Dim2D Dimension = 2
)

// Kind discriminates the concrete shape variants.
type Kind int

const (
	KindInterval Kind = iota
	KindRectangle
)

func (k Kind) String() string {
	switch k {
	case KindInterval:
		return "Interval"
	case KindRectangle:
		return "Rectangle"
	default:
		return "Unknown"
	}
}

// Point is a position in the simulation plane. 1D shapes use X only.
type Point struct {
	X float64
	Y float64
}

// Shape is an immutable material-tagged region. The zero value is not
// usable; construct with NewRectangle, NewInterval or Geometry.InstallDomain.
type Shape struct {
	kind     Kind
	domain   bool
	label    string
	material string
	min, max Point

	// Derived at construction.
	width, height, length float64
}

// NewRectangle builds a 2D axis-aligned rectangle from its bottom-left
// and top-right corners. Degenerate (zero-area) rectangles are valid.
func NewRectangle(material string, bl, ur Point) (Shape, error) {
	if material == "" {
		return Shape{}, &InvalidGeometryError{Kind: KindRectangle, Min: bl, Max: ur, Reason: "empty material"}
	}
	if bl.X > ur.X || bl.Y > ur.Y {
		return Shape{}, &InvalidGeometryError{Kind: KindRectangle, Min: bl, Max: ur, Reason: "bottom-left exceeds top-right"}
	}
	return Shape{
		kind:     KindRectangle,
		label:    KindRectangle.String(),
		material: material,
		min:      bl,
		max:      ur,
		width:    ur.X - bl.X,
		height:   ur.Y - bl.Y,
	}, nil
}

// NewInterval builds a 1D interval [low, high]. Degenerate (zero-length)
// intervals are valid.
func NewInterval(material string, low, high float64) (Shape, error) {
	if material == "" {
		return Shape{}, &InvalidGeometryError{Kind: KindInterval, Min: Point{X: low}, Max: Point{X: high}, Reason: "empty material"}
	}
	if low > high {
		return Shape{}, &InvalidGeometryError{Kind: KindInterval, Min: Point{X: low}, Max: Point{X: high}, Reason: "low exceeds high"}
	}
	return Shape{
		kind:     KindInterval,
		label:    KindInterval.String(),
		material: material,
		min:      Point{X: low},
		max:      Point{X: high},
		length:   high - low,
	}, nil
}

// newDomain builds the background shape installed at sequence index 0.
func newDomain(dim Dimension, min, max Point, material string) (Shape, error) {
	var s Shape
	var err error
	switch dim {
	case Dim1D:
		s, err = NewInterval(material, min.X, max.X)
	default:
		s, err = NewRectangle(material, min, max)
	}
	if err != nil {
		return Shape{}, err
	}
	s.domain = true
	s.label = DomainLabel
	return s, nil
}

// Contains reports whether p lies inside the shape. Boundaries count as
// inside: a point exactly on an edge is contained, so among overlapping
// shapes sharing an edge the one added last wins the material query.
func (s Shape) Contains(p Point) bool {
	switch s.kind {
	case KindInterval:
		return s.min.X <= p.X && p.X <= s.max.X
	default:
		return s.min.X <= p.X && p.X <= s.max.X &&
			s.min.Y <= p.Y && p.Y <= s.max.Y
	}
}

// Kind returns the shape variant.
func (s Shape) Kind() Kind { return s.kind }

// IsDomain reports whether the shape is a geometry's background domain.
func (s Shape) IsDomain() bool { return s.domain }

// Label returns the shape's label.
func (s Shape) Label() string { return s.label }

// Material returns the material name occupying the region.
func (s Shape) Material() string { return s.material }

// Dimension returns Dim1D for intervals and Dim2D for rectangles.
func (s Shape) Dimension() Dimension {
	if s.kind == KindInterval {
		return Dim1D
	}
	return Dim2D
}

// Min returns the bottom-left corner (or the low end for intervals).
func (s Shape) Min() Point { return s.min }

// Max returns the top-right corner (or the high end for intervals).
func (s Shape) Max() Point { return s.max }

// Width is the X extent. Zero for intervals; use Length instead.
func (s Shape) Width() float64 { return s.width }

// Height is the Y extent. Zero for intervals.
func (s Shape) Height() float64 { return s.height }

// Length is the interval extent. Zero for rectangles.
func (s Shape) Length() float64 { return s.length }
