// Package config loads the settings of the lvmaze command: built-in
// defaults, then an optional YAML file, then an optional .env file, then
// LVMAZE_* environment variables. Later sources win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and wraps the offending field.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Search modes accepted in Config.Mode.
const (
	ModeManual  = "manual"
	ModeBreadth = "bfs"
	ModeDepth   = "dfs"
)

// Spanning-tree methods accepted in Config.Method.
const (
	MethodKruskal = "kruskal"
	MethodPrim    = "prim"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LVMAZE_"

// Config holds everything needed to build and drive one session.
type Config struct {
	Rows        int      `yaml:"rows"`
	Cols        int      `yaml:"cols"`
	Bias        float64  `yaml:"bias"`
	Seed        int64    `yaml:"seed"` // 0 seeds from the clock
	Mode        string   `yaml:"mode"`
	Method      string   `yaml:"method"`
	ShowVisited bool     `yaml:"show_visited"`
	MaxTicks    int      `yaml:"max_ticks"` // 0 runs automatic searches to completion
	Moves       []string `yaml:"moves"`     // direction names replayed in manual mode
	LogLevel    string   `yaml:"log_level"`
}

// Default returns a 10×10 unbiased breadth-first session.
func Default() Config {
	return Config{
		Rows:        10,
		Cols:        10,
		Mode:        ModeBreadth,
		Method:      MethodKruskal,
		ShowVisited: true,
		LogLevel:    "info",
	}
}

type loadOptions struct {
	envFile string
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithEnvFile reads overrides from name instead of ".env". An empty name
// skips the file.
func WithEnvFile(name string) LoadOption {
	return func(o *loadOptions) { o.envFile = name }
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), the env file and the LVMAZE_* environment, then validates
// it. A missing env file is not an error.
func Load(path string, opts ...LoadOption) (Config, error) {
	lo := loadOptions{envFile: ".env"}
	for _, opt := range opts {
		opt(&lo)
	}

	cfg := Default()
	if path != "" {
		if err := readYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if lo.envFile != "" {
		if err := godotenv.Load(lo.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: env file %s: %w", lo.envFile, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readYAML(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	d.KnownFields(true)
	if err = d.Decode(cfg); err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays LVMAZE_ROWS, LVMAZE_COLS, LVMAZE_BIAS, LVMAZE_SEED,
// LVMAZE_MODE, LVMAZE_METHOD, LVMAZE_SHOW_VISITED, LVMAZE_MAX_TICKS, LVMAZE_MOVES
// (comma separated) and LVMAZE_LOG_LEVEL.
func (c *Config) applyEnv() error {
	var err error
	lookup := func(key string, set func(string) error) {
		if err != nil {
			return
		}
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			if perr := set(strings.TrimSpace(v)); perr != nil {
				err = fmt.Errorf("config: %s%s: %w", EnvPrefix, key, perr)
			}
		}
	}

	lookup("ROWS", func(v string) (e error) { c.Rows, e = strconv.Atoi(v); return })
	lookup("COLS", func(v string) (e error) { c.Cols, e = strconv.Atoi(v); return })
	lookup("BIAS", func(v string) (e error) { c.Bias, e = strconv.ParseFloat(v, 64); return })
	lookup("SEED", func(v string) (e error) { c.Seed, e = strconv.ParseInt(v, 10, 64); return })
	lookup("MODE", func(v string) error { c.Mode = strings.ToLower(v); return nil })
	lookup("METHOD", func(v string) error { c.Method = strings.ToLower(v); return nil })
	lookup("SHOW_VISITED", func(v string) (e error) { c.ShowVisited, e = strconv.ParseBool(v); return })
	lookup("MAX_TICKS", func(v string) (e error) { c.MaxTicks, e = strconv.Atoi(v); return })
	lookup("MOVES", func(v string) error {
		c.Moves = nil
		for _, m := range strings.Split(v, ",") {
			if m = strings.TrimSpace(m); m != "" {
				c.Moves = append(c.Moves, m)
			}
		}
		return nil
	})
	lookup("LOG_LEVEL", func(v string) error { c.LogLevel = v; return nil })

	return err
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.Rows < 2 || c.Cols < 2:
		return fmt.Errorf("%w: grid %dx%d is smaller than 2x2", ErrInvalidConfig, c.Rows, c.Cols)
	case !(c.Bias >= -1 && c.Bias <= 1):
		return fmt.Errorf("%w: bias %v outside [-1, 1]", ErrInvalidConfig, c.Bias)
	case c.MaxTicks < 0:
		return fmt.Errorf("%w: max_ticks %d is negative", ErrInvalidConfig, c.MaxTicks)
	}
	switch c.Mode {
	case ModeManual, ModeBreadth, ModeDepth:
	default:
		return fmt.Errorf("%w: mode %q", ErrInvalidConfig, c.Mode)
	}
	switch c.Method {
	case MethodKruskal, MethodPrim:
	default:
		return fmt.Errorf("%w: method %q", ErrInvalidConfig, c.Method)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}
