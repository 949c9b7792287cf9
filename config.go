package cwumee

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/umee-network/umee-cosmwasm/types"
)

// Route selects how requests built from a bare payload are written on the wire.
type Route string

const (
	// RouteEnvelope writes {"assigned_query": N, "<name>": {...}}.
	RouteEnvelope Route = "envelope"
	// RouteGroup writes {"<group>": {"<tag>": {...}}}.
	RouteGroup Route = "group"
	// RouteChain marks requests forwarded verbatim. It cannot be configured.
	RouteChain Route = "chain"
)

// Config of a Client.
type Config struct {
	Route Route `json:"route" yaml:"route"`
	// MaxResponseBytes bounds the size of a response the client will decode. 0 means no limit.
	MaxResponseBytes types.Size `json:"max_response_bytes" yaml:"max_response_bytes"`
	// DisallowUnknownFields makes response decoding fail on fields the response type does not have.
	DisallowUnknownFields bool   `json:"disallow_unknown_fields" yaml:"disallow_unknown_fields"`
	LogLevel              string `json:"log_level" yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Route:            RouteEnvelope,
		MaxResponseBytes: types.NewSizeMebi(1),
		LogLevel:         zerolog.InfoLevel.String(),
	}
}

func (c Config) Validate() error {
	switch c.Route {
	case RouteEnvelope, RouteGroup:
	default:
		return fmt.Errorf("invalid route %q, expected %q or %q", c.Route, RouteEnvelope, RouteGroup)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty level is info.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	bz, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(bz, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
