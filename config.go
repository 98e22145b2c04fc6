package sememeval

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/sememeval/codec"
	"github.com/hupe1980/sememeval/resource"
)

// Config is the file form of a sememe prediction run. Zero values mean
// "use the default".
type Config struct {
	Output    string `json:"output"`
	Data      string `json:"data"`
	Files     Files  `json:"files"`
	Mode      int    `json:"mode"`
	TestNum   int    `json:"testNum"`
	Dimension int    `json:"dimension"`

	K         int     `json:"k"`
	Decay     float64 `json:"decay"`
	Threshold float64 `json:"threshold"`
	Seed      uint64  `json:"seed"`

	Workers         int             `json:"workers"`
	CheckpointEvery int             `json:"checkpointEvery"`
	HostStats       bool            `json:"hostStats"`
	NFKC            bool            `json:"nfkc"`
	Resource        resource.Config `json:"resource"`

	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
	Codec     string `json:"codec"`
}

// ApplyDefaults fills zero fields with defaults.
func (c *Config) ApplyDefaults() {
	c.Files.ApplyDefaults()
	if c.Dimension <= 0 {
		c.Dimension = DefaultDimension
	}
	if c.K <= 0 {
		c.K = DefaultK
	}
	if c.Decay == 0 {
		c.Decay = DefaultDecay
	}
	if c.Threshold == 0 {
		c.Threshold = DefaultThreshold
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.CheckpointEvery <= 0 {
		c.CheckpointEvery = DefaultCheckpointEvery
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.Codec == "" {
		c.Codec = codec.Default.Name()
	}
	if c.Resource.MaxWorkers <= 0 {
		c.Resource.MaxWorkers = int64(c.Workers)
	}
}

// LoadConfig reads a JSON config file. An empty path or a missing file
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		cfg.ApplyDefaults()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := codec.Default.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// Options translates the config into evaluator options.
func (c Config) Options() []Option {
	return []Option{
		WithK(c.K),
		WithDecay(c.Decay),
		WithThreshold(c.Threshold),
		WithTestNum(c.TestNum),
		WithSeed(c.Seed),
		WithDimension(c.Dimension),
		WithCheckpoint(c.CheckpointEvery, nil),
		WithHostStats(c.HostStats),
		WithResourceController(resource.NewController(c.Resource)),
		func(o *options) { o.nfkc = c.NFKC },
	}
}

// Logger builds the logger the config asks for.
func (c Config) Logger() (*Logger, error) {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text":
		return NewTextLogger(level), nil
	case "json":
		return NewJSONLogger(level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", c.LogFormat)
	}
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
