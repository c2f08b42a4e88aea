package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.TheoremFile)
	assert.Equal(t, 0, cfg.MaxSolutions)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SLITHER_THEOREM_FILE", "/tmp/extra.theorem")
	t.Setenv("SLITHER_MAX_SOLUTIONS", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/extra.theorem", cfg.TheoremFile)
	assert.Equal(t, 5, cfg.MaxSolutions)
}

func TestLoadIgnoresInvalidMaxSolutions(t *testing.T) {
	t.Setenv("SLITHER_MAX_SOLUTIONS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MaxSolutions)
}

func TestLoadIgnoresNegativeMaxSolutions(t *testing.T) {
	t.Setenv("SLITHER_MAX_SOLUTIONS", "-3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MaxSolutions)
}
