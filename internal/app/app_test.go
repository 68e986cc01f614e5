package app

import (
	"flag"
	"io"
	"testing"

	"chunkfall/internal/grid"
	"chunkfall/internal/sims/sandbox"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("sand", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{
		"-config", "world.yaml",
		"-scale", "2",
		"-seed", "7",
		"-brush", "0",
		"-set", "chunk_size=8",
		"-set", " spouts = 3:2 ",
	})
	require.NoError(t, err)

	assert.Equal(t, "world.yaml", cfg.ConfigPath)
	assert.Equal(t, 2, cfg.Scale)
	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 0, cfg.Brush)
	assert.Equal(t, map[string]string{"chunk_size": "8", "spouts": "3:2"}, cfg.Sim)
}

func TestConfigBindRejectsBadOverride(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("sand", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	require.ErrorContains(t, fs.Parse([]string{"-set", "=3"}), sandbox.ErrBadOverride.Error())
}

func TestScreenTile(t *testing.T) {
	origin := grid.Tile{X: -16, Y: 0}
	assert.Equal(t, grid.Tile{X: -16, Y: 0}, screenTile(0, 0, 4, origin))
	assert.Equal(t, grid.Tile{X: -14, Y: 1}, screenTile(11, 7, 4, origin))
	assert.Equal(t, grid.Tile{X: -17, Y: 0}, screenTile(-1, 0, 4, origin))
	assert.Equal(t, grid.Tile{X: -13, Y: 2}, screenTile(3, 2, 0, origin))
}

func TestBrushTiles(t *testing.T) {
	center := grid.Tile{X: 5, Y: 5}
	assert.Equal(t, []grid.Tile{center}, brushTiles(center, 0))
	assert.Equal(t, []grid.Tile{center}, brushTiles(center, -2))

	tiles := brushTiles(center, 1)
	assert.ElementsMatch(t, []grid.Tile{
		{X: 5, Y: 4}, {X: 4, Y: 5}, {X: 5, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 6},
	}, tiles)
	assert.Len(t, brushTiles(center, 2), 13)
}
