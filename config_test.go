package cwumee

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/umee-network/umee-cosmwasm/types"
)

func TestConfigValidate(t *testing.T) {
	specs := map[string]struct {
		mutate func(*Config)
		expErr bool
	}{
		"default":          {mutate: func(*Config) {}},
		"group route":      {mutate: func(c *Config) { c.Route = RouteGroup }},
		"empty log level":  {mutate: func(c *Config) { c.LogLevel = "" }},
		"chain route":      {mutate: func(c *Config) { c.Route = RouteChain }, expErr: true},
		"empty route":      {mutate: func(c *Config) { c.Route = "" }, expErr: true},
		"unknown loglevel": {mutate: func(c *Config) { c.LogLevel = "loud" }, expErr: true},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			spec.mutate(&cfg)
			err := cfg.Validate()
			if spec.expErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "cwumee.yaml")
	require.NoError(t, os.WriteFile(path, []byte("route: group\nmax_response_bytes: 4096\ndisallow_unknown_fields: true\nlog_level: debug\n"), 0o600))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, Config{
		Route:                 RouteGroup,
		MaxResponseBytes:      types.NewSizeKibi(4),
		DisallowUnknownFields: true,
		LogLevel:              "debug",
	}, cfg)
	lvl, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, lvl)

	partial := filepath.Join(dir, "partial.yaml")
	require.NoError(t, os.WriteFile(partial, []byte("disallow_unknown_fields: true\n"), 0o600))
	cfg, err = LoadConfig(partial)
	require.NoError(t, err)
	require.Equal(t, RouteEnvelope, cfg.Route)
	require.Equal(t, DefaultConfig().MaxResponseBytes, cfg.MaxResponseBytes)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("route: smoke-signals\n"), 0o600))
	_, err = LoadConfig(bad)
	require.Error(t, err)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
