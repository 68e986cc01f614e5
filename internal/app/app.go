//go:build ebiten

package app

import (
	"image/color"
	"time"

	"chunkfall/internal/cell"
	"chunkfall/internal/core"
	"chunkfall/internal/grid"
	"chunkfall/internal/render"
	"chunkfall/internal/sims/sandbox"
	"chunkfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var wallColor = color.RGBA{R: 120, G: 116, B: 110, A: 255}

// Game adapts a sandbox world to the ebiten.Game interface.
type Game struct {
	world   *sandbox.World
	painter *render.ChunkPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep

	scale    int
	brush    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world.
func New(world *sandbox.World, cfg *Config) *Game {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		world:    world,
		painter:  render.NewChunkPainter(world.Grid().ChunkSize()),
		overlay:  ui.NewOverlay(scale),
		hud:      ui.NewHUD(world, cfg.HUDWidth),
		timer:    core.NewFixedStep(cfg.TPS),
		scale:    scale,
		brush:    cfg.Brush,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.painter.Reset(g.world.Grid().ChunkSize())
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && g.brush > 0 {
		g.brush--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.brush++
	}

	g.overlay.Update()
	g.handleMouse()

	if g.tickOnce || (!g.paused && g.timer.ShouldStep()) {
		g.world.Step()
		g.tickOnce = false
	}
	g.hud.Update()
	return nil
}

func (g *Game) handleMouse() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	x, y := ebiten.CursorPosition()
	if x >= g.viewWidth() {
		return
	}
	lo, _ := g.world.Grid().Bounds()
	origin := grid.TileOf(lo, 0, 0, g.world.Grid().ChunkSize())
	center := screenTile(x, y, g.scale, origin)
	for _, t := range brushTiles(center, g.brush) {
		if left {
			g.world.Paint(t, cell.Static(wallColor))
			continue
		}
		if c, ok := g.world.Grid().Cell(t); ok && c.IsEmpty() {
			_, _ = g.world.Spawn(t, g.world.Config().Material)
		}
	}
}

func (g *Game) viewWidth() int { return g.world.Size().W * g.scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	view := screen
	if g.hudWidth > 0 {
		b := screen.Bounds()
		b.Max.X = g.viewWidth()
		view = screen.SubImage(b).(*ebiten.Image)
	}
	g.painter.Draw(view, g.world.Grid(), g.scale)
	g.overlay.Draw(view, g.world.Grid(), g.painter.Uploaded())
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
