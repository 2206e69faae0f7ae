// Package viz provides terminal visualization for geometries.
//
// [Canvas] is a Braille-based pixel grid for drawing shape footprints,
// and [View] is an interactive Bubble Tea probe: it renders the overlay
// footprint and reports the material under a movable cursor.
//
// # Key Bindings
//
//	arrows/hjkl - move the probe cursor
//	q           - quit
package viz
