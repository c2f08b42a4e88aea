package config

import (
	"os"
	"strconv"
)

// Config holds the CLI's environment-driven settings. It has no network
// fields: the solver has no HTTP surface, so nothing here governs a port or
// a secret.
type Config struct {
	// TheoremFile, if set, names a file of additional theorem definitions
	// (same `!`-separated lattice-drawing grammar as the built-in corpus)
	// to parse and merge in alongside the embedded theorems.
	TheoremFile string

	// MaxSolutions caps how many solutions cmd/solve's --all enumeration
	// will collect before stopping. Zero means unlimited.
	MaxSolutions int
}

// Load reads configuration from the environment. Unlike a networked
// service's config, there is nothing here that must be present: every
// field has a usable zero value, so Load never fails.
func Load() (*Config, error) {
	maxSolutions, err := strconv.Atoi(getEnv("SLITHER_MAX_SOLUTIONS", "0"))
	if err != nil || maxSolutions < 0 {
		maxSolutions = 0
	}

	return &Config{
		TheoremFile:  getEnv("SLITHER_THEOREM_FILE", ""),
		MaxSolutions: maxSolutions,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
