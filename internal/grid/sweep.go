package grid

import (
	"image/color"

	"chunkfall/internal/cell"
)

// command is one evaluated cell waiting to be applied.
type command struct {
	from    Tile
	to      Tile
	kind    cell.MoveKind
	payload cell.Cell
	recolor *color.RGBA
}

// Stats summarizes one Update.
type Stats struct {
	Evaluated int
	Moved     int
	Rejected  int
	Recolored int
}

// Update advances every live cell by one frame. frame is owned by the
// driver and is expected to increase by one per call.
func (g *Grid) Update(frame uint64) Stats {
	var stats Stats
	for _, m := range g.shadow {
		m.Clear()
	}
	g.queue = g.queue[:0]

	g.evaluate(frame, &stats)
	g.apply(frame, &stats)

	g.frame = frame
	g.started = true
	g.metrics.observe(stats, g)
	return stats
}

// evaluate visits chunks by ascending row with the column direction flipped
// on odd frames, and cells inside a chunk the same way.
func (g *Grid) evaluate(frame uint64, stats *Stats) {
	even := frame%2 == 0
	width := g.max.X - g.min.X + 1
	for cy := g.min.Y; cy <= g.max.Y; cy++ {
		for i := 0; i < width; i++ {
			cx := g.min.X + i
			if !even {
				cx = g.max.X - i
			}
			id, ok := g.index[ChunkCoord{X: cx, Y: cy}]
			if !ok {
				continue
			}
			g.evaluateChunk(id, frame, even, stats)
		}
	}
}

func (g *Grid) evaluateChunk(id int, frame uint64, even bool, stats *Stats) {
	ch := g.chunks[id]
	mask := g.shadow[id]
	view := g.neighborhood(ch.coord)
	n := g.size
	for y := 0; y < n; y++ {
		for i := 0; i < n; i++ {
			x := i
			if !even {
				x = n - 1 - i
			}
			c := ch.At(x, y)
			if !c.IsLive() || mask.Get(x, y)&maskEvaluated != 0 {
				continue
			}
			if g.started && c.LastFrame >= frame {
				continue
			}
			mask.Set(x, y, mask.Get(x, y)|maskEvaluated)

			in := c.State.Update(view.at(x, y), g.rng)
			from := TileOf(ch.coord, x, y, n)
			g.queue = append(g.queue, command{
				from:    from,
				to:      from.Offset(in.Move.Offset),
				kind:    in.Move.Kind,
				payload: c,
				recolor: in.Recolor,
			})
			stats.Evaluated++
		}
	}
}

func (g *Grid) apply(frame uint64, stats *Stats) {
	for _, cmd := range g.queue {
		g.applyCommand(cmd, frame, stats)
	}
	g.queue = g.queue[:0]
}

// applyCommand writes one command. A move is dropped, leaving the cell in
// place, when it targets its own tile or unallocated space, when a Replace
// target is no longer empty, or when either tile was already written this
// frame. A source tile that was overwritten means the evaluated cell has
// already been displaced, so nothing is written at all.
func (g *Grid) applyCommand(cmd command, frame uint64, stats *Stats) {
	src, sx, sy, ok := g.locate(cmd.from)
	if !ok || g.shadow[src].Get(sx, sy)&maskWritten != 0 {
		stats.Rejected++
		return
	}
	srcChunk := g.chunks[src]

	mover := cmd.payload.Stamped(frame)
	recolored := cmd.recolor != nil
	if recolored {
		mover.Tint = *cmd.recolor
		stats.Recolored++
	}
	stay := func() {
		if recolored {
			srcChunk.set(sx, sy, mover)
			return
		}
		srcChunk.stamp(sx, sy, mover)
	}

	if cmd.kind == cell.MoveNone {
		stay()
		return
	}
	if cmd.to == cmd.from {
		stats.Rejected++
		stay()
		return
	}
	dst, dx, dy, ok := g.locate(cmd.to)
	if !ok || g.shadow[dst].Get(dx, dy)&maskWritten != 0 {
		stats.Rejected++
		stay()
		return
	}
	dstChunk := g.chunks[dst]
	target := dstChunk.At(dx, dy)

	switch cmd.kind {
	case cell.MoveReplace:
		if !target.IsEmpty() {
			stats.Rejected++
			stay()
			return
		}
		dstChunk.set(dx, dy, mover)
		srcChunk.set(sx, sy, cell.Empty())
	case cell.MoveSwitch:
		dstChunk.set(dx, dy, mover)
		srcChunk.set(sx, sy, target)
		g.shadow[src].Set(sx, sy, g.shadow[src].Get(sx, sy)|maskWritten)
	default:
		stats.Rejected++
		stay()
		return
	}
	g.shadow[dst].Set(dx, dy, g.shadow[dst].Get(dx, dy)|maskWritten)
	stats.Moved++
}
