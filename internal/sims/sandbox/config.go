package sandbox

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"chunkfall/internal/grid"
	"chunkfall/internal/rules/sand"
	"chunkfall/internal/terrain"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "SAND_"

// ErrBadOverride is returned by ParseOverride for anything but key=value.
var ErrBadOverride = errors.New("expected key=value")

// Spout drops a live cell into the top row every Every frames.
type Spout struct {
	X     int `yaml:"x"`
	Every int `yaml:"every"`
}

// Config controls the sandbox dimensions and seeding.
type Config struct {
	ChunkSize int `yaml:"chunk_size" env:"CHUNK_SIZE"`
	ChunksX   int `yaml:"chunks_x" env:"CHUNKS_X"`
	ChunksY   int `yaml:"chunks_y" env:"CHUNKS_Y"`
	OriginX   int `yaml:"origin_x" env:"ORIGIN_X"`
	OriginY   int `yaml:"origin_y" env:"ORIGIN_Y"`

	Seed     int64  `yaml:"seed" env:"SEED"`
	Material string `yaml:"material" env:"MATERIAL"`

	Terrain terrain.Config `yaml:"terrain" envPrefix:"TERRAIN_"`
	Spouts  []Spout        `yaml:"spouts"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	g := grid.DefaultConfig()
	return Config{
		ChunkSize: g.ChunkSize,
		ChunksX:   g.ChunksX,
		ChunksY:   g.ChunksY,
		Seed:      42,
		Material:  sand.Material,
		Terrain:   terrain.DefaultConfig(),
		Spouts:    []Spout{{X: 56, Every: 2}},
	}
}

// Grid returns the grid layout described by the config.
func (c Config) Grid() grid.Config {
	return grid.Config{
		ChunkSize: c.ChunkSize,
		Origin:    grid.ChunkCoord{X: c.OriginX, Y: c.OriginY},
		ChunksX:   c.ChunksX,
		ChunksY:   c.ChunksY,
	}
}

// Region returns the allocated area in tiles.
func (c Config) Region() terrain.Region {
	return terrain.Region{
		X: c.OriginX * c.ChunkSize,
		Y: c.OriginY * c.ChunkSize,
		W: c.ChunksX * c.ChunkSize,
		H: c.ChunksY * c.ChunkSize,
	}
}

// LoadFile reads a YAML config on top of the defaults. An empty path
// returns the defaults unchanged.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any SAND_* variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load builds the effective config: defaults, then the YAML file at path (if
// any), then SAND_* environment variables, then flag-style overrides.
func Load(path string, overrides map[string]string) (Config, error) {
	c, err := LoadFile(path)
	if err != nil {
		return c, err
	}
	if err := ApplyEnv(&c); err != nil {
		return c, err
	}
	return c.WithOverrides(overrides), nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().WithOverrides(cfg)
}

// WithOverrides returns a copy of c with the recognised keys of cfg applied.
// Unparseable or out-of-range values are ignored.
func (c Config) WithOverrides(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["chunk_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ChunkSize = parsed
		}
	}
	if v, ok := cfg["chunks_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ChunksX = parsed
		}
	}
	if v, ok := cfg["chunks_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ChunksY = parsed
		}
	}
	if v, ok := cfg["origin_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.OriginX = parsed
		}
	}
	if v, ok := cfg["origin_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.OriginY = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["material"]; ok && v != "" {
		c.Material = v
	}
	if v, ok := cfg["terrain"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Terrain.Enabled = parsed
		}
	}
	if v, ok := cfg["spouts"]; ok {
		c.Spouts = parseSpouts(v)
	}
	return c
}

// parseSpouts reads "x[:every],x[:every]"; malformed entries are skipped.
func parseSpouts(v string) []Spout {
	var out []Spout
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xs, every, hasEvery := strings.Cut(part, ":")
		x, err := strconv.Atoi(xs)
		if err != nil {
			continue
		}
		s := Spout{X: x, Every: 1}
		if hasEvery {
			if n, err := strconv.Atoi(every); err == nil && n > 0 {
				s.Every = n
			}
		}
		out = append(out, s)
	}
	return out
}

// ParseOverride splits a "key=value" flag argument. Surrounding spaces are
// trimmed; an empty key is an error.
func ParseOverride(v string) (string, string, error) {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("%q: %w", v, ErrBadOverride)
	}
	return key, strings.TrimSpace(value), nil
}
