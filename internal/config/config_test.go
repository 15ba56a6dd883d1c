package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/setcover/internal/config"
	"github.com/katalvlaran/setcover/setcover"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, setcover.DefaultThreshold, cfg.Solver.Threshold)

	algo, err := cfg.AlgorithmValue()
	require.NoError(t, err)
	assert.Equal(t, setcover.Auto, algo)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse([]byte(`
solver:
  threshold: 5000
  algorithm: greedy
log:
  level: debug
batch:
  jobs: 2
`))
	require.NoError(t, err)
	assert.Equal(t, 5000.0, cfg.Solver.Threshold)
	assert.Equal(t, "greedy", cfg.Solver.Algorithm)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "untouched keys keep defaults")
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, config.DefaultMaxUniverse, cfg.Server.MaxUniverse)
	assert.Equal(t, 2, cfg.Batch.Jobs)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"zero threshold": "solver:\n  threshold: 0\n",
		"bad algorithm":  "solver:\n  algorithm: simplex\n",
		"bad level":      "log:\n  level: loud\n",
		"bad format":     "log:\n  format: xml\n",
		"no jobs":        "batch:\n  jobs: 0\n",
		"no universe":    "server:\n  max_universe: 0\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Parse([]byte("solver:\n  thresold: 3\n"))
	require.Error(t, err, "unknown keys are rejected")
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "setcover.yaml")
	want := config.DefaultConfig()
	want.Server.Addr = "127.0.0.1:9999"
	require.NoError(t, config.Write(path, want))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
