package grid

import "github.com/prometheus/client_golang/prometheus"

// Metrics exports per-frame sweep counters.
type Metrics struct {
	frames      prometheus.Counter
	evaluations prometheus.Counter
	moves       prometheus.Counter
	rejected    prometheus.Counter
	recolors    prometheus.Counter
	live        prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg when it is
// not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chunkfall",
			Subsystem: "grid",
			Name:      "frames_total",
			Help:      "Frames processed by Update.",
		}),
		evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chunkfall",
			Subsystem: "grid",
			Name:      "evaluations_total",
			Help:      "Live-cell rule evaluations.",
		}),
		moves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chunkfall",
			Subsystem: "grid",
			Name:      "moves_total",
			Help:      "Relocations applied to the grid.",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chunkfall",
			Subsystem: "grid",
			Name:      "rejected_moves_total",
			Help:      "Relocations dropped at apply time.",
		}),
		recolors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chunkfall",
			Subsystem: "grid",
			Name:      "recolors_total",
			Help:      "Recolor instructions applied.",
		}),
		live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "chunkfall",
			Subsystem: "grid",
			Name:      "live_cells",
			Help:      "Live cells after the last frame.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.frames, m.evaluations, m.moves, m.rejected, m.recolors, m.live)
	}
	return m
}

func (m *Metrics) observe(s Stats, g *Grid) {
	if m == nil {
		return
	}
	m.frames.Inc()
	m.evaluations.Add(float64(s.Evaluated))
	m.moves.Add(float64(s.Moved))
	m.rejected.Add(float64(s.Rejected))
	m.recolors.Add(float64(s.Recolored))
	m.live.Set(float64(g.LiveCount()))
}
