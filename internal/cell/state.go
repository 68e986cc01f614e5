package cell

import "image/color"

// LiveState is the ruleset attached to a live cell. Update must be a pure
// function of the view, the random draws and the receiver: the grid evaluates
// every live cell before applying any instruction.
//
// Implementations are stored inside Cell values and must be comparable.
type LiveState interface {
	Update(v View, rng Source) Instruction
	Color() color.RGBA
	Material() string
}

// View is a read-only window around one tile, addressed by relative offset.
type View interface {
	Cell(off Offset) Cell
	IsEmpty(off Offset) bool
}

// Source provides uniform random draws to rules.
type Source interface {
	Bool() bool
}

// Direction draws -1 or +1 from src.
func Direction(src Source) int {
	if src.Bool() {
		return -1
	}
	return 1
}

// Offset is a relative tile displacement. Y grows downwards.
type Offset struct {
	X, Y int
}

// Below is the tile directly underneath.
var Below = Offset{X: 0, Y: 1}

// IsZero reports whether the offset addresses the source tile itself.
func (o Offset) IsZero() bool { return o.X == 0 && o.Y == 0 }

// Add returns the component-wise sum.
func (o Offset) Add(p Offset) Offset { return Offset{X: o.X + p.X, Y: o.Y + p.Y} }
