package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Base color table indexed by registry index. Index 0 (the ambient
// material) is white so the domain reads as empty space in plots.
var materialColors = []color.RGBA{
	{0xFF, 0xFF, 0xFF, 0xFF}, // ambient
	{0x80, 0x80, 0x80, 0xFF}, // gray
	{0xE6, 0xB3, 0x33, 0xFF}, // amber
	{0x33, 0x66, 0xCC, 0xFF}, // blue
	{0xCC, 0x44, 0x33, 0xFF}, // red
	{0x33, 0x99, 0x55, 0xFF}, // green
	{0x99, 0x55, 0xCC, 0xFF}, // violet
	{0x44, 0xAA, 0xAA, 0xFF}, // teal
}

// Mask-mode contrast colors: the domain footprint in one color, every
// overlay in the other.
var (
	maskDomainColor = color.RGBA{0x5E, 0x2C, 0x8A, 0xFF}
	maskShapeColor  = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

// materialColor returns the color for a registry index. Indices beyond
// the base table get colors spaced around the hue wheel by the golden
// angle, so nearby indices stay visually distinct.
func materialColor(index int) color.RGBA {
	if index >= 0 && index < len(materialColors) {
		return materialColors[index]
	}
	hue := float64((index-len(materialColors))*137) // golden-angle steps
	for hue >= 360 {
		hue -= 360
	}
	c := colorful.Hsv(hue, 0.65, 0.90)
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xFF}
}
