// Command sandbench steps a sandbox world headlessly and reports per-frame
// counters, optionally exposing them on a Prometheus endpoint.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"chunkfall/internal/grid"
	"chunkfall/internal/sims/sandbox"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type options struct {
	configPath  string
	frames      int
	seed        int64
	logEvery    int
	metricsAddr string
	overrides   map[string]string
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseFlags(args []string, out io.Writer) (options, error) {
	opts := options{frames: 600, logEvery: 100, overrides: map[string]string{}}
	fs := flag.NewFlagSet("sandbench", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML sim config")
	fs.IntVar(&opts.frames, "frames", opts.frames, "frames to simulate")
	fs.Int64Var(&opts.seed, "seed", 0, "seed override, 0 keeps the configured seed")
	fs.IntVar(&opts.logEvery, "log-every", opts.logEvery, "log stats every N frames, 0 disables")
	fs.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve /metrics on this address while running")
	fs.Func("set", "sim override key=value (repeatable)", func(v string) error {
		key, value, err := sandbox.ParseOverride(v)
		if err != nil {
			return err
		}
		opts.overrides[key] = value
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.frames < 0 {
		return opts, fmt.Errorf("frames must be non-negative, got %d", opts.frames)
	}
	return opts, nil
}

func run(ctx context.Context, out io.Writer, args []string) error {
	opts, err := parseFlags(args, out)
	if err != nil {
		return err
	}
	cfg, err := sandbox.Load(opts.configPath, opts.overrides)
	if err != nil {
		return err
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}

	logger := slog.Default().With("component", "sandbench")
	reg := prometheus.NewRegistry()
	world, err := sandbox.New(cfg, sandbox.WithLogger(logger), sandbox.WithMetrics(grid.NewMetrics(reg)))
	if err != nil {
		return fmt.Errorf("create world: %w", err)
	}

	if opts.metricsAddr != "" {
		shutdown, err := serveMetrics(opts.metricsAddr, reg, logger)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	var total grid.Stats
	start := time.Now()
	for i := 0; i < opts.frames; i++ {
		if err := ctx.Err(); err != nil {
			logger.Warn("interrupted", "frame", world.Frame())
			break
		}
		world.Step()
		s := world.LastStats()
		total.Evaluated += s.Evaluated
		total.Moved += s.Moved
		total.Rejected += s.Rejected
		total.Recolored += s.Recolored
		if opts.logEvery > 0 && world.Frame()%uint64(opts.logEvery) == 0 {
			logger.Info("frame",
				"frame", world.Frame(),
				"live", world.Grid().LiveCount(),
				"evaluated", s.Evaluated,
				"moved", s.Moved,
				"rejected", s.Rejected,
			)
		}
	}
	elapsed := time.Since(start)

	fmt.Fprintf(out, "frames=%d live=%d evaluated=%d moved=%d rejected=%d recolored=%d elapsed=%s\n",
		world.Frame(), world.Grid().LiveCount(),
		total.Evaluated, total.Moved, total.Rejected, total.Recolored,
		elapsed.Round(time.Millisecond))
	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "err", err)
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
