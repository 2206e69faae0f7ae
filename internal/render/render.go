// Package render rasterizes a finalized geometry to an image. Shapes
// are painted in insertion order, domain first as a background fill,
// so the pixels match Geometry.MaterialAt exactly.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/plasmakit/reactorgeom/internal/geometry"
)

// Options control the raster output.
type Options struct {
	Width  int
	Height int
	// Mask renders the domain in one contrast color and every overlay
	// in a second, visualizing the non-ambient footprint.
	Mask bool
}

// DefaultOptions returns the standard 800x800 render.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 800}
}

// LegendEntry pairs a material with its registry index and plot color.
type LegendEntry struct {
	Material string
	Index    int
	Color    color.RGBA
}

// Legend returns one entry per registered material, in registry order.
func Legend(g *geometry.Geometry) []LegendEntry {
	entries := make([]LegendEntry, 0, g.Registry().Len())
	for name, idx := range g.Registry().All() {
		entries = append(entries, LegendEntry{Material: name, Index: idx, Color: materialColor(idx)})
	}
	return entries
}

// Render rasterizes g. 1D geometries render as a horizontal strip with
// intervals spanning the full image height.
func Render(g *geometry.Geometry, opts Options) (*image.RGBA, error) {
	dom, ok := g.Domain()
	if !ok {
		return nil, fmt.Errorf("render: geometry %q has no domain", g.Name())
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("render: invalid image size %dx%d", opts.Width, opts.Height)
	}
	if dom.Max().X == dom.Min().X {
		return nil, fmt.Errorf("render: geometry %q domain has zero width", g.Name())
	}
	if g.Dimension() == geometry.Dim2D && dom.Max().Y == dom.Min().Y {
		return nil, fmt.Errorf("render: geometry %q domain has zero height", g.Name())
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))

	for i, s := range g.Shapes() {
		var c color.RGBA
		if opts.Mask {
			if s.IsDomain() {
				c = maskDomainColor
			} else {
				c = maskShapeColor
			}
		} else {
			idx, err := g.Registry().IndexOf(s.Material())
			if err != nil {
				return nil, err
			}
			c = materialColor(idx)
		}

		rect := pixelRect(g, dom, s, opts)
		if i == 0 {
			rect = img.Bounds() // domain is the background fill
		}
		draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
	}

	return img, nil
}

// WritePNG renders g into dir. The file name is derived from the
// geometry's name ("<name>.png", or "<name>_mask.png" in mask mode).
// It returns the written path.
func WritePNG(g *geometry.Geometry, dir string, opts Options) (string, error) {
	img, err := Render(g, opts)
	if err != nil {
		return "", err
	}

	name := g.Name() + ".png"
	if opts.Mask {
		name = g.Name() + "_mask.png"
	}
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", err
	}
	return path, nil
}

// pixelRect maps a shape's extent into clamped image coordinates. The
// image Y axis is flipped so the domain's top edge is row zero.
func pixelRect(g *geometry.Geometry, dom, s geometry.Shape, opts Options) image.Rectangle {
	spanX := dom.Max().X - dom.Min().X
	x0 := int(math.Floor((s.Min().X - dom.Min().X) / spanX * float64(opts.Width)))
	x1 := int(math.Ceil((s.Max().X - dom.Min().X) / spanX * float64(opts.Width)))

	y0, y1 := 0, opts.Height
	if g.Dimension() == geometry.Dim2D {
		spanY := dom.Max().Y - dom.Min().Y
		y0 = int(math.Floor((dom.Max().Y - s.Max().Y) / spanY * float64(opts.Height)))
		y1 = int(math.Ceil((dom.Max().Y - s.Min().Y) / spanY * float64(opts.Height)))
	}

	return image.Rect(x0, y0, x1, y1).Intersect(image.Rect(0, 0, opts.Width, opts.Height))
}
