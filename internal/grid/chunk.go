package grid

import "chunkfall/internal/cell"

// Chunk is a square block of cells stored row-major. Only the grid writes to
// it; renderers get read access through At.
type Chunk struct {
	coord ChunkCoord
	size  int
	cells []cell.Cell
	dirty bool
}

func newChunk(coord ChunkCoord, size int) *Chunk {
	return &Chunk{
		coord: coord,
		size:  size,
		cells: make([]cell.Cell, size*size),
		dirty: true,
	}
}

// Coord returns the chunk coordinate.
func (c *Chunk) Coord() ChunkCoord { return c.coord }

// Size returns the side length in tiles.
func (c *Chunk) Size() int { return c.size }

// At returns the cell at local (x, y). Coordinates must be in [0, Size()).
func (c *Chunk) At(x, y int) cell.Cell { return c.cells[y*c.size+x] }

// Dirty reports whether the chunk changed since the last render.
func (c *Chunk) Dirty() bool { return c.dirty }

func (c *Chunk) set(x, y int, v cell.Cell) {
	c.cells[y*c.size+x] = v
	c.dirty = true
}

// stamp writes v without flagging the chunk for redraw.
func (c *Chunk) stamp(x, y int, v cell.Cell) {
	c.cells[y*c.size+x] = v
}

func (c *Chunk) liveCount() int {
	n := 0
	for _, v := range c.cells {
		if v.IsLive() {
			n++
		}
	}
	return n
}
