package grid

import "chunkfall/internal/cell"

// ChunkCoord addresses a chunk. Chunk (cx, cy) covers tiles
// [cx*N, cx*N+N) x [cy*N, cy*N+N).
type ChunkCoord struct {
	X, Y int
}

// Tile is an absolute tile coordinate. Y grows downwards.
type Tile struct {
	X, Y int
}

// FloorDiv divides rounding towards negative infinity, so -1/16 is -1.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Chunk returns the coordinate of the chunk holding t.
func (t Tile) Chunk(size int) ChunkCoord {
	return ChunkCoord{X: FloorDiv(t.X, size), Y: FloorDiv(t.Y, size)}
}

// Local returns t relative to the origin of its chunk, in [0, size).
func (t Tile) Local(size int) (int, int) {
	c := t.Chunk(size)
	return t.X - c.X*size, t.Y - c.Y*size
}

// Offset returns the tile displaced by off.
func (t Tile) Offset(off cell.Offset) Tile {
	return Tile{X: t.X + off.X, Y: t.Y + off.Y}
}

// TileOf converts chunk-local coordinates back to an absolute tile.
func TileOf(c ChunkCoord, x, y, size int) Tile {
	return Tile{X: c.X*size + x, Y: c.Y*size + y}
}
