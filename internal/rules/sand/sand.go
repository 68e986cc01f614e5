// Package sand implements the granular-fall rule.
package sand

import (
	"image/color"

	"chunkfall/internal/cell"
)

// Material is the registry name of the rule.
const Material = "sand"

var tints = []color.RGBA{
	{R: 214, G: 174, B: 128, A: 255},
	{R: 228, G: 185, B: 92, A: 255},
	{R: 200, G: 160, B: 110, A: 255},
	{R: 240, G: 205, B: 150, A: 255},
}

// Sand falls straight down when it can, otherwise slides to a random diagonal.
type Sand struct {
	Tint color.RGBA
}

// New returns a grain with a tint drawn from rng. A nil rng yields the first tint.
func New(rng cell.Source) Sand {
	if rng == nil {
		return Sand{Tint: tints[0]}
	}
	idx := 0
	if rng.Bool() {
		idx |= 1
	}
	if rng.Bool() {
		idx |= 2
	}
	return Sand{Tint: tints[idx]}
}

// Update implements cell.LiveState.
func (s Sand) Update(v cell.View, rng cell.Source) cell.Instruction {
	if v.IsEmpty(cell.Below) {
		return cell.ReplaceWith(cell.Below)
	}
	diag := cell.Offset{X: cell.Direction(rng), Y: 1}
	if v.IsEmpty(diag) {
		return cell.ReplaceWith(diag)
	}
	return cell.Stay()
}

// Color implements cell.LiveState.
func (s Sand) Color() color.RGBA { return s.Tint }

// Material implements cell.LiveState.
func (s Sand) Material() string { return Material }

func init() {
	cell.RegisterMaterial(Material, func(rng cell.Source) cell.LiveState {
		return New(rng)
	})
}
