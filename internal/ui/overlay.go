//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sandfall/internal/sandbox"
)

// Overlay draws optional debugging visuals on top of the world view.
// Key 1 toggles a strength heatmap, useful for watching iron corrode and
// lava cool.
type Overlay struct {
	showStrength bool
	img          *ebiten.Image
	buf          []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showStrength = !o.showStrength
	}
}

// Draw renders the enabled overlays onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image, s *sandbox.SandBox, scale int) {
	if o == nil || !o.showStrength {
		return
	}
	w, h := s.Width(), s.Height()
	total := w * h
	if total == 0 {
		return
	}
	if o.img == nil || o.img.Bounds().Dx() != w || o.img.Bounds().Dy() != h {
		o.img = ebiten.NewImage(w, h)
		o.buf = make([]byte, 4*total)
	}

	tint := color.RGBA{R: 255, G: 120, B: 40}
	cells := s.Cells()
	for i, c := range cells {
		base := i * 4
		if c.Element == sandbox.Air || c.Strength == 0 {
			o.buf[base+0] = 0
			o.buf[base+1] = 0
			o.buf[base+2] = 0
			o.buf[base+3] = 0
			continue
		}
		intensity := float64(c.Strength) / 255
		alpha := 160 * intensity / 255
		// WritePixels expects premultiplied alpha.
		o.buf[base+0] = uint8(math.Round(float64(tint.R) * alpha))
		o.buf[base+1] = uint8(math.Round(float64(tint.G) * alpha))
		o.buf[base+2] = uint8(math.Round(float64(tint.B) * alpha))
		o.buf[base+3] = uint8(math.Round(alpha * 255))
	}
	o.img.WritePixels(o.buf)

	op := &ebiten.DrawImageOptions{}
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}
