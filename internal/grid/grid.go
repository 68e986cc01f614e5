// Package grid stores cells in fixed-size chunks and steps live cells once
// per frame.
//
// A frame runs in two phases. The evaluate phase sweeps every live cell in a
// deterministic order and asks its rule for an instruction while the chunks
// are only read. The apply phase then drains the recorded commands in order,
// touching at most the source and destination chunk of one command at a time.
// Rules therefore see a consistent snapshot of the neighborhood and no chunk
// is ever written while another reference to it is being read.
package grid

import (
	"fmt"

	"chunkfall/internal/cell"
	"chunkfall/internal/core"
)

// Shadow mask bits, one ByteGrid per chunk, reset every frame.
const (
	maskEvaluated uint8 = 1 << iota
	maskWritten
)

// Grid owns a rectangular arena of chunks.
type Grid struct {
	size     int
	min, max ChunkCoord

	chunks []*Chunk
	index  map[ChunkCoord]int
	shadow []*core.ByteGrid
	queue  []command

	rng     cell.Source
	frame   uint64
	started bool

	metrics *Metrics
}

// Option customizes a Grid at construction.
type Option func(*Grid)

// WithMetrics reports per-frame counters to m.
func WithMetrics(m *Metrics) Option {
	return func(g *Grid) { g.metrics = m }
}

// New allocates every chunk of the configured region. Either the whole grid
// is built or an error wrapping ErrInvalidConfig is returned.
func New(cfg Config, rng cell.Source, opts ...Option) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	total := cfg.ChunksX * cfg.ChunksY
	g := &Grid{
		size:   cfg.ChunkSize,
		min:    cfg.Origin,
		max:    ChunkCoord{X: cfg.Origin.X + cfg.ChunksX - 1, Y: cfg.Origin.Y + cfg.ChunksY - 1},
		chunks: make([]*Chunk, 0, total),
		index:  make(map[ChunkCoord]int, total),
		shadow: make([]*core.ByteGrid, 0, total),
		rng:    rng,
	}
	for cy := g.min.Y; cy <= g.max.Y; cy++ {
		for cx := g.min.X; cx <= g.max.X; cx++ {
			coord := ChunkCoord{X: cx, Y: cy}
			g.index[coord] = len(g.chunks)
			g.chunks = append(g.chunks, newChunk(coord, g.size))
			g.shadow = append(g.shadow, core.NewByteGrid(g.size, g.size))
		}
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// ChunkSize returns the side length of every chunk.
func (g *Grid) ChunkSize() int { return g.size }

// Bounds returns the lowest and highest allocated chunk coordinates.
func (g *Grid) Bounds() (ChunkCoord, ChunkCoord) { return g.min, g.max }

// Frame returns the last frame passed to Update.
func (g *Grid) Frame() uint64 { return g.frame }

// Chunk returns the chunk at coord, if allocated.
func (g *Grid) Chunk(coord ChunkCoord) (*Chunk, bool) {
	id, ok := g.index[coord]
	if !ok {
		return nil, false
	}
	return g.chunks[id], true
}

// locate resolves an absolute tile to a chunk id and local coordinates.
func (g *Grid) locate(t Tile) (int, int, int, bool) {
	id, ok := g.index[t.Chunk(g.size)]
	if !ok {
		return 0, 0, 0, false
	}
	x, y := t.Local(g.size)
	return id, x, y, true
}

// Cell returns the cell at t. ok is false when t lies in unallocated space.
func (g *Grid) Cell(t Tile) (cell.Cell, bool) {
	id, x, y, ok := g.locate(t)
	if !ok {
		return cell.Barrier(), false
	}
	return g.chunks[id].At(x, y), true
}

// SetCell paints c at t. Tiles in unallocated chunks are ignored, as are
// barrier cells, which only exist as a view of missing space. A live cell
// stamped ahead of the last processed frame is clamped to it, so the next
// Update evaluates it.
func (g *Grid) SetCell(t Tile, c cell.Cell) bool {
	if c.Kind == cell.KindBarrier {
		return false
	}
	if c.Kind == cell.KindLive && c.LastFrame > g.frame {
		c.LastFrame = g.frame
	}
	id, x, y, ok := g.locate(t)
	if !ok {
		return false
	}
	g.chunks[id].set(x, y, c)
	return true
}

// SpawnLiveCell places a live cell governed by state at t. The cell is
// stamped with the last processed frame so the next Update evaluates it.
func (g *Grid) SpawnLiveCell(t Tile, state cell.LiveState) bool {
	if state == nil {
		return false
	}
	return g.SetCell(t, cell.Live(state, g.frame))
}

// View returns the neighbor view a rule at t would receive.
func (g *Grid) View(t Tile) (NeighborView, bool) {
	id, x, y, ok := g.locate(t)
	if !ok {
		return NeighborView{}, false
	}
	return g.neighborhood(g.chunks[id].coord).at(x, y), true
}

func (g *Grid) neighborhood(center ChunkCoord) NeighborView {
	v := NeighborView{size: g.size}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if id, ok := g.index[ChunkCoord{X: center.X + dx, Y: center.Y + dy}]; ok {
				v.chunks[dy+1][dx+1] = g.chunks[id]
			}
		}
	}
	return v
}

// LiveCount returns the number of live cells in the grid.
func (g *Grid) LiveCount() int {
	n := 0
	for _, ch := range g.chunks {
		n += ch.liveCount()
	}
	return n
}

// RenderFunc receives one chunk and whether it changed since the last render.
type RenderFunc func(coord ChunkCoord, chunk *Chunk, dirty bool)

// Render hands every chunk to fn and clears its dirty flag.
func (g *Grid) Render(fn RenderFunc) {
	for _, ch := range g.chunks {
		dirty := ch.dirty
		ch.dirty = false
		fn(ch.coord, ch, dirty)
	}
}
