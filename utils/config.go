package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the command line runner
type Config struct {
	MapPath             string        `json:"map_path"`
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	Steps               int           `json:"steps"`
	FrameRate           time.Duration `json:"frame_rate"`
	RandomDensity       float64       `json:"random_density"`
	Seed                int64         `json:"seed"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	ClearScreen         bool          `json:"clear_screen"`
	Batch               bool          `json:"batch"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		MapPath:             "map",
		Width:               64,
		Height:              64,
		Steps:               1000,
		FrameRate:           100 * time.Millisecond,
		RandomDensity:       0,
		Seed:                1,
		UseMemoryPool:       true,
		StagnationThreshold: 0, // keep running through stagnation
		ClearScreen:         true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to fs so flags override file values
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.MapPath, "map", c.MapPath, "map file to load, empty for a blank grid")
	fs.IntVar(&c.Width, "width", c.Width, "blank grid width")
	fs.IntVar(&c.Height, "height", c.Height, "blank grid height")
	fs.IntVar(&c.Steps, "steps", c.Steps, "number of generations to run")
	fs.DurationVar(&c.FrameRate, "frame", c.FrameRate, "delay between generations")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "share of living cells seeded into a blank grid")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for blank grid randomization")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "reuse generation buffers")
	fs.IntVar(&c.StagnationThreshold, "stagnation", c.StagnationThreshold, "stop after this many stagnant generations, 0 never stops")
	fs.BoolVar(&c.ClearScreen, "clear", c.ClearScreen, "clear the terminal between frames")
	fs.BoolVar(&c.Batch, "batch", c.Batch, "run the map files given as arguments without animation")
}

// Validate checks the values a run depends on
func (c Config) Validate() error {
	if c.MapPath == "" && (c.Width <= 0 || c.Height <= 0) {
		return errors.Errorf("[Validate] invalid grid dimensions %dx%d", c.Width, c.Height)
	}
	if c.Steps < 0 {
		return errors.Errorf("[Validate] steps must not be negative, got %d", c.Steps)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame rate must not be negative, got %v", c.FrameRate)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] density must be within [0, 1], got %v", c.RandomDensity)
	}
	if c.StagnationThreshold < 0 {
		return errors.Errorf("[Validate] stagnation threshold must not be negative, got %d", c.StagnationThreshold)
	}
	return nil
}
