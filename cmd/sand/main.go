//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"chunkfall/internal/app"
	"chunkfall/internal/sims/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg, err := sandbox.Load(cfg.ConfigPath, cfg.Sim)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Seed != 0 {
		simCfg.Seed = cfg.Seed
	}
	cfg.Seed = simCfg.Seed

	world, err := sandbox.New(simCfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(world, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetTPS(max(cfg.TPS, ebiten.DefaultTPS))
	ebiten.SetWindowTitle("chunkfall")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
