//go:build ebiten

package render

import (
	"chunkfall/internal/grid"

	"github.com/hajimehoshi/ebiten/v2"
)

// ChunkPainter keeps one image per chunk and re-uploads only dirty chunks.
type ChunkPainter struct {
	size     int
	images   map[grid.ChunkCoord]*ebiten.Image
	buf      []byte
	uploaded []grid.ChunkCoord
}

// NewChunkPainter allocates a painter for chunks of the given side length.
func NewChunkPainter(size int) *ChunkPainter {
	return &ChunkPainter{
		size:   size,
		images: make(map[grid.ChunkCoord]*ebiten.Image),
		buf:    make([]byte, 4*size*size),
	}
}

// Draw renders every chunk of g onto dst, scaled by scale, with the grid
// origin at the top-left corner of dst.
func (p *ChunkPainter) Draw(dst *ebiten.Image, g *grid.Grid, scale int) {
	if g.ChunkSize() != p.size {
		p.Reset(g.ChunkSize())
	}
	lo, _ := g.Bounds()
	dst.Fill(Background)
	p.uploaded = p.uploaded[:0]
	g.Render(func(coord grid.ChunkCoord, ch *grid.Chunk, dirty bool) {
		img, ok := p.images[coord]
		if !ok {
			img = ebiten.NewImage(p.size, p.size)
			p.images[coord] = img
			dirty = true
		}
		if dirty {
			fillChunkRGBA(p.buf, ch)
			img.WritePixels(p.buf)
			p.uploaded = append(p.uploaded, coord)
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64((coord.X-lo.X)*p.size), float64((coord.Y-lo.Y)*p.size))
		op.GeoM.Scale(float64(scale), float64(scale))
		dst.DrawImage(img, op)
	})
}

// Uploaded lists the chunks re-uploaded by the last Draw.
func (p *ChunkPainter) Uploaded() []grid.ChunkCoord { return p.uploaded }

// Reset drops every cached image, e.g. after the world was rebuilt.
func (p *ChunkPainter) Reset(size int) {
	for _, img := range p.images {
		img.Dispose()
	}
	p.size = size
	p.images = make(map[grid.ChunkCoord]*ebiten.Image)
	p.buf = make([]byte, 4*size*size)
}
