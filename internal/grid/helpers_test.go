package grid

import (
	"image/color"
	"testing"

	"chunkfall/internal/cell"

	"github.com/stretchr/testify/require"
)

// seqSource replays a fixed sequence of draws, cycling when exhausted.
type seqSource struct {
	seq []bool
	n   int
}

func (s *seqSource) Bool() bool {
	if len(s.seq) == 0 {
		return false
	}
	v := s.seq[s.n%len(s.seq)]
	s.n++
	return v
}

func newTestGrid(t *testing.T, cfg Config, draws ...bool) *Grid {
	t.Helper()
	g, err := New(cfg, &seqSource{seq: draws})
	require.NoError(t, err)
	return g
}

func smallConfig(size, w, h int) Config {
	return Config{ChunkSize: size, ChunksX: w, ChunksY: h}
}

var stone = cell.Static(color.RGBA{R: 90, G: 90, B: 90, A: 255})

// scripted always returns the same instruction and records its id on every
// evaluation.
type scripted struct {
	id  int
	in  *cell.Instruction
	log *[]int
}

func (s scripted) Update(cell.View, cell.Source) cell.Instruction {
	if s.log != nil {
		*s.log = append(*s.log, s.id)
	}
	if s.in == nil {
		return cell.Stay()
	}
	return *s.in
}
func (s scripted) Color() color.RGBA { return color.RGBA{B: 255, A: 255} }
func (s scripted) Material() string  { return "scripted" }

func instr(in cell.Instruction) *cell.Instruction { return &in }

func mustCell(t *testing.T, g *Grid, x, y int) cell.Cell {
	t.Helper()
	c, ok := g.Cell(Tile{X: x, Y: y})
	require.Truef(t, ok, "tile (%d,%d) not allocated", x, y)
	return c
}
