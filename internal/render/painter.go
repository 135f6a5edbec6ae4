//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"sandfall/internal/sandbox"
)

// GridPainter updates a single RGBA image from the sandbox cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the sandbox into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, s *sandbox.SandBox, scale int) {
	if s.Width() != gp.w || s.Height() != gp.h {
		return
	}
	FillRGBA(gp.buf, s)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
