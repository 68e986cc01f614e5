//go:build ebiten

package ui

import (
	"image/color"

	"chunkfall/internal/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the grid: chunk borders
// (key 1) and the chunks re-uploaded in the last frame (key 2).
type Overlay struct {
	scale      int
	showChunks bool
	showDirty  bool
	pixel      *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showChunks = !o.showChunks
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showDirty = !o.showDirty
	}
}

// Draw renders the enabled layers. dirty lists the chunks uploaded this frame.
func (o *Overlay) Draw(screen *ebiten.Image, g *grid.Grid, dirty []grid.ChunkCoord) {
	if g == nil {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	span := float64(g.ChunkSize() * scale)
	lo, hi := g.Bounds()

	if o.showDirty {
		for _, c := range dirty {
			x := float64(c.X-lo.X) * span
			y := float64(c.Y-lo.Y) * span
			o.fillRect(screen, x, y, span, span, color.RGBA{R: 255, G: 80, B: 40, A: 48})
		}
	}
	if o.showChunks {
		w := float64(hi.X-lo.X+1) * span
		h := float64(hi.Y-lo.Y+1) * span
		line := color.RGBA{R: 90, G: 200, B: 255, A: 96}
		for cx := 0; cx <= hi.X-lo.X+1; cx++ {
			o.fillRect(screen, float64(cx)*span, 0, 1, h, line)
		}
		for cy := 0; cy <= hi.Y-lo.Y+1; cy++ {
			o.fillRect(screen, 0, float64(cy)*span, w, 1, line)
		}
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, 1)
	op.ColorScale.ScaleAlpha(float32(col.A) / 255)
	screen.DrawImage(o.pixel, op)
}
