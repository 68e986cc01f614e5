// Package sandbox wires a grid, a seeded random source and a frame counter
// into a core.Sim that drivers can step and render.
package sandbox

import (
	"fmt"
	"log/slog"

	"chunkfall/internal/cell"
	"chunkfall/internal/core"
	"chunkfall/internal/grid"
	"chunkfall/internal/terrain"
	pcore "chunkfall/pkg/core"
)

// Display buffer values.
const (
	DisplayEmpty uint8 = iota
	DisplayStatic
	DisplayLive
)

// World is the sandbox simulation.
type World struct {
	cfg  Config
	grid *grid.Grid
	rng  *pcore.RNG

	frame   uint64
	last    grid.Stats
	display []uint8

	logger  *slog.Logger
	metrics *grid.Metrics
}

// Option customizes a World.
type Option func(*World)

// WithLogger sets the structured logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(w *World) { w.logger = l }
}

// WithMetrics forwards per-frame counters of every grid the world builds.
func WithMetrics(m *grid.Metrics) Option {
	return func(w *World) { w.metrics = m }
}

// New validates cfg and builds the initial world.
func New(cfg Config, opts ...Option) (*World, error) {
	if err := cfg.Grid().Validate(); err != nil {
		return nil, err
	}
	if _, err := cell.NewLiveState(cfg.Material, pcore.NewRNG(0)); err != nil {
		return nil, err
	}
	w := &World{cfg: cfg, logger: slog.Default()}
	for _, opt := range opts {
		opt(w)
	}
	if err := w.rebuild(cfg.Seed); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *World) rebuild(seed int64) error {
	rng := pcore.NewRNG(seed)
	var gopts []grid.Option
	if w.metrics != nil {
		gopts = append(gopts, grid.WithMetrics(w.metrics))
	}
	g, err := grid.New(w.cfg.Grid(), rng, gopts...)
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}
	painted := terrain.Paint(g, w.cfg.Terrain, w.cfg.Region())

	w.grid = g
	w.rng = rng
	w.frame = 0
	w.last = grid.Stats{}
	w.display = make([]uint8, w.cfg.Region().W*w.cfg.Region().H)
	w.rebuildDisplay()

	w.logger.Info("sandbox reset",
		"seed", seed,
		"chunk_size", w.cfg.ChunkSize,
		"chunks", fmt.Sprintf("%dx%d", w.cfg.ChunksX, w.cfg.ChunksY),
		"terrain_tiles", painted,
	)
	return nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sandbox" }

// Size reports the grid dimensions in tiles.
func (w *World) Size() core.Size {
	r := w.cfg.Region()
	return core.Size{W: r.W, H: r.H}
}

// Cells exposes the display buffer, one byte per tile in row-major order.
func (w *World) Cells() []uint8 { return w.display }

// Grid exposes the underlying grid for renderers and paint input.
func (w *World) Grid() *grid.Grid { return w.grid }

// Frame returns the number of frames stepped since the last reset.
func (w *World) Frame() uint64 { return w.frame }

// LastStats returns the counters of the most recent Step.
func (w *World) LastStats() grid.Stats { return w.last }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Reset rebuilds the world. A zero seed falls back to the configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	if err := w.rebuild(seed); err != nil {
		w.logger.Error("sandbox reset failed", "seed", seed, "err", err)
	}
}

// Step runs the spouts and advances the grid by one frame.
func (w *World) Step() {
	w.frame++
	w.runSpouts()
	w.last = w.grid.Update(w.frame)
	w.rebuildDisplay()
}

func (w *World) runSpouts() {
	top := w.cfg.OriginY * w.cfg.ChunkSize
	for _, s := range w.cfg.Spouts {
		if s.Every <= 0 || w.frame%uint64(s.Every) != 0 {
			continue
		}
		t := grid.Tile{X: s.X, Y: top}
		if c, ok := w.grid.Cell(t); !ok || !c.IsEmpty() {
			continue
		}
		if _, err := w.Spawn(t, w.cfg.Material); err != nil {
			w.logger.Warn("spout spawn failed", "x", s.X, "err", err)
		}
	}
}

// Paint sets a static cell with the given color, ignoring tiles outside the grid.
func (w *World) Paint(t grid.Tile, c cell.Cell) bool {
	return w.grid.SetCell(t, c)
}

// Spawn places a live cell of the named material at t and reports whether
// it landed. Tiles outside the grid are ignored and report false.
func (w *World) Spawn(t grid.Tile, material string) (bool, error) {
	st, err := cell.NewLiveState(material, w.rng)
	if err != nil {
		return false, err
	}
	return w.grid.SpawnLiveCell(t, st), nil
}

func (w *World) rebuildDisplay() {
	r := w.cfg.Region()
	n := w.cfg.ChunkSize
	lo, hi := w.grid.Bounds()
	for cy := lo.Y; cy <= hi.Y; cy++ {
		for cx := lo.X; cx <= hi.X; cx++ {
			ch, ok := w.grid.Chunk(grid.ChunkCoord{X: cx, Y: cy})
			if !ok {
				continue
			}
			for y := 0; y < n; y++ {
				for x := 0; x < n; x++ {
					t := grid.TileOf(ch.Coord(), x, y, n)
					idx := (t.Y-r.Y)*r.W + (t.X - r.X)
					w.display[idx] = displayValue(ch.At(x, y))
				}
			}
		}
	}
}

func displayValue(c cell.Cell) uint8 {
	switch c.Kind {
	case cell.KindStatic:
		return DisplayStatic
	case cell.KindLive:
		return DisplayLive
	default:
		return DisplayEmpty
	}
}

func init() {
	core.Register("sandbox", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
