// Package cell defines the state of a single grid tile and the contract live
// cells use to inspect their surroundings.
package cell

import "image/color"

// Kind tags which variant a Cell holds.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindStatic
	KindLive
	// KindBarrier stands in for unallocated space. It is never stored in a
	// chunk; views hand it out so rules treat the world edge as solid.
	KindBarrier
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindStatic:
		return "static"
	case KindLive:
		return "live"
	case KindBarrier:
		return "barrier"
	default:
		return "unknown"
	}
}

// Cell is the state of one tile. The zero value is Empty and two cells are
// equal when all of their fields are equal.
type Cell struct {
	Kind Kind

	// Tint is the color of a Static cell. On a Live cell a non-zero Tint
	// overrides the rule's color; recolor instructions write it.
	Tint color.RGBA

	// State and LastFrame are only meaningful for Live cells.
	State     LiveState
	LastFrame uint64
}

var barrierColor = color.RGBA{A: 255}

// Empty returns an empty cell.
func Empty() Cell { return Cell{} }

// Static returns an inert cell painted with c.
func Static(c color.RGBA) Cell { return Cell{Kind: KindStatic, Tint: c} }

// Live returns a cell governed by state, stamped with frame.
func Live(state LiveState, frame uint64) Cell {
	return Cell{Kind: KindLive, State: state, LastFrame: frame}
}

// Barrier returns the opaque cell used for tiles outside the allocated world.
func Barrier() Cell { return Cell{Kind: KindBarrier} }

// IsEmpty reports whether the tile holds nothing.
func (c Cell) IsEmpty() bool { return c.Kind == KindEmpty }

// IsLive reports whether the tile is governed by a rule.
func (c Cell) IsLive() bool { return c.Kind == KindLive && c.State != nil }

// Color returns the display color for the cell.
func (c Cell) Color() color.RGBA {
	switch c.Kind {
	case KindStatic:
		return c.Tint
	case KindLive:
		if c.Tint != (color.RGBA{}) {
			return c.Tint
		}
		if c.State == nil {
			return barrierColor
		}
		return c.State.Color()
	case KindBarrier:
		return barrierColor
	default:
		return color.RGBA{}
	}
}

// Stamped returns a copy of a live cell with LastFrame set to frame.
// Non-live cells are returned unchanged.
func (c Cell) Stamped(frame uint64) Cell {
	if c.Kind == KindLive {
		c.LastFrame = frame
	}
	return c
}
