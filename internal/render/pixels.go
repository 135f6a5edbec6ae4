package render

import (
	"image/color"

	"sandfall/internal/sandbox"
)

// ColorOf returns the display color for a cell: the element's base color
// shaded by the cell variant, scaled by the catalog color-variance factor.
// Variance-free elements render their base color untouched.
func ColorOf(cell sandbox.Cell) color.RGBA {
	base := cell.Element.Color()
	f := cell.Element.ColorVariance()
	if f <= 0 {
		return color.RGBA{R: base.R, G: base.G, B: base.B, A: base.A}
	}
	// Map variant 0..255 onto a brightness factor in [1-f/2, 1+f/2].
	scale := 1 - f/2 + f*float64(cell.Variant)/255
	return color.RGBA{
		R: scaleChannel(base.R, scale),
		G: scaleChannel(base.G, scale),
		B: scaleChannel(base.B, scale),
		A: base.A,
	}
}

func scaleChannel(c uint8, scale float64) uint8 {
	v := float64(c)*scale + 0.5
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// FillRGBA converts the whole sandbox into RGBA pixels. The buffer must hold
// 4*width*height bytes.
func FillRGBA(buf []byte, s *sandbox.SandBox) {
	cells := s.Cells()
	if len(buf) < 4*len(cells) {
		return
	}
	for i, cell := range cells {
		col := ColorOf(cell)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
