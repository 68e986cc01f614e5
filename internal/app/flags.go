package app

import (
	"flag"

	"chunkfall/internal/sims/sandbox"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string
	Scale      int
	TPS        int
	Seed       int64
	Brush      int
	HUDWidth   int
	Sim        map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 4, TPS: 60, Brush: 2, HUDWidth: 220, Sim: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet. Seed 0 keeps the
// seed from the sim config.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to a YAML sim config")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Brush, "brush", c.Brush, "paint brush radius in tiles")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels, 0 hides it")
	fs.Func("set", "sim override key=value (repeatable)", c.setSim)
}

func (c *Config) setSim(v string) error {
	key, value, err := sandbox.ParseOverride(v)
	if err != nil {
		return err
	}
	if c.Sim == nil {
		c.Sim = map[string]string{}
	}
	c.Sim[key] = value
	return nil
}
