// Package terrain paints static hills into a grid from 1D Perlin noise.
package terrain

import (
	"image/color"

	"github.com/aquilax/go-perlin"

	"chunkfall/internal/cell"
	"chunkfall/internal/grid"
)

// Painter is the paint surface; *grid.Grid satisfies it.
type Painter interface {
	SetCell(t grid.Tile, c cell.Cell) bool
}

// Config shapes the generated ground line.
type Config struct {
	Enabled bool    `yaml:"enabled" env:"ENABLED"`
	Seed    int64   `yaml:"seed" env:"SEED"`
	Base    float64 `yaml:"base" env:"BASE"`
	Amp     float64 `yaml:"amplitude" env:"AMPLITUDE"`
	Scale   float64 `yaml:"scale" env:"SCALE"`
}

// DefaultConfig returns gentle hills filling roughly the bottom fifth.
func DefaultConfig() Config {
	return Config{Enabled: true, Seed: 7, Base: 0.2, Amp: 0.12, Scale: 0.045}
}

// Region is the tile rectangle to paint: [X, X+W) x [Y, Y+H).
type Region struct {
	X, Y, W, H int
}

var rock = []color.RGBA{
	{R: 96, G: 88, B: 80, A: 255},
	{R: 110, G: 100, B: 90, A: 255},
	{R: 84, G: 78, B: 72, A: 255},
}

// Heights returns the ground height in tiles for each column of r.
func Heights(cfg Config, r Region) []int {
	if r.W <= 0 || r.H <= 0 {
		return nil
	}
	noise := perlin.NewPerlin(2, 2, 3, cfg.Seed)
	out := make([]int, r.W)
	for i := range out {
		// Noise1D is roughly in [-1, 1].
		n := noise.Noise1D(float64(r.X+i) * cfg.Scale)
		h := int((cfg.Base + cfg.Amp*n) * float64(r.H))
		if h < 0 {
			h = 0
		}
		if h > r.H {
			h = r.H
		}
		out[i] = h
	}
	return out
}

// Paint fills every column of r from the bottom up to its height with static
// rock and returns the number of tiles painted.
func Paint(p Painter, cfg Config, r Region) int {
	if !cfg.Enabled {
		return 0
	}
	painted := 0
	bottom := r.Y + r.H - 1
	for i, h := range Heights(cfg, r) {
		x := r.X + i
		for dy := 0; dy < h; dy++ {
			shade := rock[shadeIndex(x+dy, len(rock))]
			if p.SetCell(grid.Tile{X: x, Y: bottom - dy}, cell.Static(shade)) {
				painted++
			}
		}
	}
	return painted
}

// shadeIndex wraps v into [0, n), also for negative tiles.
func shadeIndex(v, n int) int {
	return (v%n + n) % n
}
