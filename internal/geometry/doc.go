// Package geometry defines the spatial and material model for reactor
// and feature-etch simulations.
//
// A [Geometry] is an ordered sequence of material-tagged shapes over a
// rectangular (2D) or interval (1D) domain:
//
//   - [Shape]: an immutable region ([KindRectangle] or [KindInterval])
//     with a boundary-inclusive containment test
//   - [Geometry]: the domain plus overlays in insertion order, resolved
//     by painter's algorithm (last overlapping shape wins)
//   - [MaterialRegistry]: material names mapped to stable indices in
//     first-seen order
//
// # Example
//
//	g, _ := geometry.New("icp2d", geometry.Dim2D, false)
//	g.InstallDomain(geometry.Point{X: -0.25}, geometry.Point{X: 0.25, Y: 0.4})
//	coil, _ := geometry.NewRectangle("Coil", geometry.Point{X: -0.2, Y: 0.34}, geometry.Point{X: -0.18, Y: 0.36})
//	g.AddShape(coil)
//	mat := g.MaterialAt(geometry.Point{X: -0.19, Y: 0.35}) // "Coil"
//
// # Thread Safety
//
// A Geometry is build-then-freeze: install the domain and add shapes
// from a single goroutine, after which MaterialAt and all accessors are
// safe to call concurrently. Queries are pure and never fail; any point
// not covered by a shape resolves to [DefaultMaterial].
package geometry
