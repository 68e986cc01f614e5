package app

import "chunkfall/internal/grid"

// screenTile maps a cursor position to the tile under it. origin is the
// top-left tile of the view.
func screenTile(x, y, scale int, origin grid.Tile) grid.Tile {
	if scale <= 0 {
		scale = 1
	}
	return grid.Tile{
		X: origin.X + grid.FloorDiv(x, scale),
		Y: origin.Y + grid.FloorDiv(y, scale),
	}
}

// brushTiles returns the tiles within radius of center, row by row.
func brushTiles(center grid.Tile, radius int) []grid.Tile {
	if radius < 0 {
		radius = 0
	}
	var out []grid.Tile
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			out = append(out, grid.Tile{X: center.X + dx, Y: center.Y + dy})
		}
	}
	return out
}
