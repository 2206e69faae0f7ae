package geometry

import "fmt"

// Errors carry the offending identifiers so callers can branch with
// errors.As. All conditions are recoverable by fixing the input; none
// leave a Geometry partially mutated.

// InvalidGeometryError reports a malformed shape extent at construction.
type InvalidGeometryError struct {
	Kind   Kind
	Min    Point
	Max    Point
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("geometry: invalid %s extent (%g,%g)-(%g,%g): %s",
		e.Kind, e.Min.X, e.Min.Y, e.Max.X, e.Max.Y, e.Reason)
}

// DomainNotCreatedError reports an AddShape call before InstallDomain.
type DomainNotCreatedError struct {
	Material string // material of the rejected shape
}

func (e *DomainNotCreatedError) Error() string {
	return fmt.Sprintf("geometry: domain not created yet; install a domain before adding %q", e.Material)
}

// DomainExistsError reports a second InstallDomain call.
type DomainExistsError struct {
	Name     string // geometry name
	Material string // material of the existing domain
}

func (e *DomainExistsError) Error() string {
	return fmt.Sprintf("geometry: %q already has a domain (material %q)", e.Name, e.Material)
}

// DimensionMismatchError reports a shape whose dimension disagrees with
// its geometry.
type DimensionMismatchError struct {
	Geometry Dimension
	Shape    Dimension
	Material string
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("geometry: %dD shape %q does not fit %dD geometry", e.Shape, e.Material, e.Geometry)
}

// UnknownMaterialError reports a registry lookup for a material never
// registered. It indicates a consumer/core desync, not bad user input.
type UnknownMaterialError struct {
	Material string
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("geometry: unknown material %q", e.Material)
}
