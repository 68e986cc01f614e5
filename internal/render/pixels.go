package render

import (
	"image/color"

	"chunkfall/internal/grid"
)

// Background is drawn behind empty cells.
var Background = color.RGBA{R: 24, G: 26, B: 32, A: 255}

// fillChunkRGBA converts a chunk into RGBA pixels in buf, one pixel per tile.
// buf must hold 4*size*size bytes. Empty cells keep a transparent pixel so the
// background shows through.
func fillChunkRGBA(buf []byte, ch *grid.Chunk) {
	n := ch.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			col := ch.At(x, y).Color()
			base := (y*n + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
