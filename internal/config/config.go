// Package config holds the runtime settings shared by every front end.
package config

import (
	"bytes"
	"flag"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"gridsnake/internal/core"
)

// Config is the full set of settings. Zero values are not meaningful; start from Default.
type Config struct {
	World       World   `yaml:"world"`
	Tick        Tick    `yaml:"tick"`
	Spawner     Spawner `yaml:"spawner"`
	Seed        int64   `yaml:"seed"`
	Sound       Sound   `yaml:"sound"`
	Log         Log     `yaml:"log"`
	WelcomeFile string  `yaml:"welcome_file"`
}

// World is the board geometry in pixels.
type World struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

type Tick struct {
	Interval time.Duration `yaml:"interval"`
}

type Spawner struct {
	Cooldown      time.Duration `yaml:"cooldown"`
	AppleLifespan time.Duration `yaml:"apple_lifespan"`
}

// Sound configures the tone played when an apple is eaten.
type Sound struct {
	Enabled   bool          `yaml:"enabled"`
	Frequency float64       `yaml:"frequency"`
	Duration  time.Duration `yaml:"duration"`
}

// Log configures the zap logger.
type Log struct {
	Level    string   `yaml:"level"`
	Encoding string   `yaml:"encoding"`
	Output   []string `yaml:"output"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		World: World{
			Width:      640,
			Height:     480,
			CellWidth:  core.DefaultCellWidth,
			CellHeight: core.DefaultCellHeight,
		},
		Tick: Tick{Interval: 100 * time.Millisecond},
		Spawner: Spawner{
			Cooldown:      3 * time.Second,
			AppleLifespan: 5 * time.Second,
		},
		Seed: 42,
		Sound: Sound{
			Enabled:   true,
			Frequency: 880,
			Duration:  80 * time.Millisecond,
		},
		Log: Log{
			Level:    "info",
			Encoding: "console",
			Output:   []string{"stderr"},
		},
		WelcomeFile: "welcome.txt",
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes the YAML file at path into c. Keys missing from the file keep their current value.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	return errors.Wrapf(c.Decode(bytes.NewReader(data)), "parse config %s", path)
}

// Decode reads YAML from r into c. Unknown keys are rejected.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.World.Width, "width", c.World.Width, "world width in pixels")
	fs.IntVar(&c.World.Height, "height", c.World.Height, "world height in pixels")
	fs.IntVar(&c.World.CellWidth, "cell-width", c.World.CellWidth, "cell width in pixels")
	fs.IntVar(&c.World.CellHeight, "cell-height", c.World.CellHeight, "cell height in pixels")
	fs.DurationVar(&c.Tick.Interval, "tick", c.Tick.Interval, "simulation tick interval")
	fs.DurationVar(&c.Spawner.Cooldown, "cooldown", c.Spawner.Cooldown, "time between apple spawns")
	fs.DurationVar(&c.Spawner.AppleLifespan, "lifespan", c.Spawner.AppleLifespan, "how long an apple stays on the board")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for apple placement")
	fs.BoolVar(&c.Sound.Enabled, "sound", c.Sound.Enabled, "play a tone when an apple is eaten")
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "log level (debug, info, warn, error)")
	fs.StringVar(&c.WelcomeFile, "welcome", c.WelcomeFile, "file holding the welcome message")
}

// Parse binds c to fs, parses args and applies the file named by -config.
// Flags given on the command line win over values from the file.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	path := fs.String("config", "", "YAML config file")
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return c.Validate()
	}

	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	if err := c.LoadFile(*path); err != nil {
		return err
	}
	for name, v := range explicit {
		if err := fs.Set(name, v); err != nil {
			return errors.Wrapf(err, "reapply -%s", name)
		}
	}
	return c.Validate()
}

// WorldInfo converts the world section to the engine's geometry.
func (c *Config) WorldInfo() core.WorldInfo {
	return core.NewWorldInfoCells(c.World.Width, c.World.Height, c.World.CellWidth, c.World.CellHeight)
}

// Validate reports the first setting that cannot run.
func (c *Config) Validate() error {
	if err := c.WorldInfo().Validate(); err != nil {
		return errors.Wrap(err, "world")
	}
	if c.Tick.Interval <= 0 {
		return errors.Errorf("tick interval must be positive, got %s", c.Tick.Interval)
	}
	if c.Spawner.Cooldown <= 0 {
		return errors.Errorf("spawner cooldown must be positive, got %s", c.Spawner.Cooldown)
	}
	if c.Spawner.AppleLifespan <= 0 {
		return errors.Errorf("apple lifespan must be positive, got %s", c.Spawner.AppleLifespan)
	}
	if c.Sound.Enabled {
		if c.Sound.Frequency <= 0 {
			return errors.Errorf("sound frequency must be positive, got %g", c.Sound.Frequency)
		}
		if c.Sound.Duration <= 0 {
			return errors.Errorf("sound duration must be positive, got %s", c.Sound.Duration)
		}
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log level")
	}
	switch c.Log.Encoding {
	case "console", "json":
	default:
		return errors.Errorf("log encoding must be console or json, got %q", c.Log.Encoding)
	}
	return nil
}
