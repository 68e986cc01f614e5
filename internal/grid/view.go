package grid

import "chunkfall/internal/cell"

// NeighborView resolves relative offsets from one tile across the 3x3 block
// of chunks around it. Missing chunks and anything beyond the block read as
// cell.Barrier. It has no way to write.
type NeighborView struct {
	chunks [3][3]*Chunk // [dy+1][dx+1]
	size   int
	x, y   int
}

var _ cell.View = NeighborView{}

// at returns a copy of v anchored on local tile (x, y) of the center chunk.
func (v NeighborView) at(x, y int) NeighborView {
	v.x, v.y = x, y
	return v
}

// Cell returns the cell at off relative to the anchor tile.
func (v NeighborView) Cell(off cell.Offset) cell.Cell {
	tx, ty := v.x+off.X, v.y+off.Y
	cx, cy := FloorDiv(tx, v.size), FloorDiv(ty, v.size)
	if cx < -1 || cx > 1 || cy < -1 || cy > 1 {
		return cell.Barrier()
	}
	ch := v.chunks[cy+1][cx+1]
	if ch == nil {
		return cell.Barrier()
	}
	return ch.At(tx-cx*v.size, ty-cy*v.size)
}

// IsEmpty reports whether the cell at off is empty.
func (v NeighborView) IsEmpty(off cell.Offset) bool {
	return v.Cell(off).IsEmpty()
}
