// Package config loads tilepath's command and server settings.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pdrpinto/tilepath"
	"github.com/pdrpinto/tilepath/grid"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TILEPATH_SERVER_ADDR.
const EnvPrefix = "TILEPATH"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full set of command and server settings.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Map    MapConfig    `mapstructure:"map"`
	Search SearchConfig `mapstructure:"search"`
}

// ServerConfig configures the visualisation server.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	// StepInterval is the delay between streamed search steps.
	StepInterval time.Duration `mapstructure:"stepInterval"`
	// MaxCells caps the width*height of maps requested through /init.
	MaxCells int `mapstructure:"maxCells"`
}

// MapConfig selects a map file, or describes a random map when Path is empty.
type MapConfig struct {
	Path     string  `mapstructure:"path"`
	Width    int     `mapstructure:"width"`
	Height   int     `mapstructure:"height"`
	Clusters int     `mapstructure:"clusters"`
	Steps    int     `mapstructure:"steps"`
	Density  float64 `mapstructure:"density"`
	Seed     int64   `mapstructure:"seed"`
}

// SearchConfig tunes batch searches.
type SearchConfig struct {
	// Workers bounds concurrent batch searches; zero means one per CPU.
	Workers int `mapstructure:"workers"`
}

func setDefaults(vp *viper.Viper) {
	vp.SetDefault("server.addr", ":8080")
	vp.SetDefault("server.stepInterval", 50*time.Millisecond)
	vp.SetDefault("server.maxCells", 1<<20)
	vp.SetDefault("map.path", "")
	vp.SetDefault("map.width", 40)
	vp.SetDefault("map.height", 24)
	vp.SetDefault("map.clusters", 8)
	vp.SetDefault("map.steps", 200)
	vp.SetDefault("map.density", 0.25)
	vp.SetDefault("map.seed", 0)
	vp.SetDefault("search.workers", 0)
}

// Load reads a YAML config file. An empty path yields the defaults. Every key
// can be overridden from the environment.
func Load(path string) (*Config, error) {
	vp := viper.New()
	setDefaults(vp)
	vp.SetEnvPrefix(EnvPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	if path != "" {
		vp.SetConfigFile(path)
		vp.SetConfigType("yaml")
		if err := vp.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := vp.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that is out of range.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Server.Addr == "":
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	case cfg.Server.StepInterval <= 0:
		return fmt.Errorf("%w: server.stepInterval must be positive", ErrInvalidConfig)
	case cfg.Server.MaxCells < 1:
		return fmt.Errorf("%w: server.maxCells must be positive", ErrInvalidConfig)
	case cfg.Map.Path == "" && (cfg.Map.Width < 1 || cfg.Map.Height < 1):
		return fmt.Errorf("%w: random map needs a positive width and height", ErrInvalidConfig)
	case cfg.Map.Path == "" && !FitsCells(cfg.Map.Width, cfg.Map.Height, cfg.Server.MaxCells):
		return fmt.Errorf("%w: random map %dx%d exceeds server.maxCells %d",
			ErrInvalidConfig, cfg.Map.Width, cfg.Map.Height, cfg.Server.MaxCells)
	case cfg.Map.Density < 0 || cfg.Map.Density > 1:
		return fmt.Errorf("%w: map.density %v outside [0,1]", ErrInvalidConfig, cfg.Map.Density)
	case cfg.Search.Workers < 0:
		return fmt.Errorf("%w: search.workers is negative", ErrInvalidConfig)
	}
	return nil
}

// FitsCells reports whether a width by height grid has at most limit cells.
// The product is never formed, so huge sides cannot overflow.
func FitsCells(width, height, limit int) bool {
	return width > 0 && height > 0 && width <= limit/height
}

// Random returns the random layout this config describes, keeping the given
// cells open.
func (m MapConfig) Random(keep ...tilepath.Point) grid.RandomConfig {
	return grid.RandomConfig{
		Width:    m.Width,
		Height:   m.Height,
		Clusters: m.Clusters,
		Steps:    m.Steps,
		Density:  m.Density,
		Seed:     m.Seed,
		Keep:     keep,
	}
}

// SearchOptions converts the search section to tilepath options.
func (s SearchConfig) SearchOptions() []tilepath.Option {
	if s.Workers == 0 {
		return nil
	}
	return []tilepath.Option{tilepath.WithWorkers(s.Workers)}
}
