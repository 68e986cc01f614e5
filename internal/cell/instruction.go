package cell

import "image/color"

// MoveKind selects how a live cell relocates.
type MoveKind uint8

const (
	// MoveNone leaves the cell where it is.
	MoveNone MoveKind = iota
	// MoveReplace moves the cell into the target tile and empties the source.
	MoveReplace
	// MoveSwitch exchanges the full contents of the source and target tiles.
	MoveSwitch
)

func (k MoveKind) String() string {
	switch k {
	case MoveReplace:
		return "replace"
	case MoveSwitch:
		return "switch"
	default:
		return "none"
	}
}

// Move is an optional relocation relative to the source tile.
type Move struct {
	Kind   MoveKind
	Offset Offset
}

// Instruction is what a rule asks the grid to do with its cell this frame.
type Instruction struct {
	Move    Move
	Recolor *color.RGBA
}

// Stay returns an instruction that neither moves nor recolors.
func Stay() Instruction { return Instruction{} }

// ReplaceWith moves the cell into the tile at off.
func ReplaceWith(off Offset) Instruction {
	return Instruction{Move: Move{Kind: MoveReplace, Offset: off}}
}

// SwitchWith swaps the cell with the tile at off.
func SwitchWith(off Offset) Instruction {
	return Instruction{Move: Move{Kind: MoveSwitch, Offset: off}}
}

// WithRecolor returns a copy of in that also recolors the cell.
func (in Instruction) WithRecolor(c color.RGBA) Instruction {
	in.Recolor = &c
	return in
}

// Moves reports whether the instruction requests a relocation.
func (in Instruction) Moves() bool { return in.Move.Kind != MoveNone }
