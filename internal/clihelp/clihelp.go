// Package clihelp holds the handful of steps every cmd/* entry point
// repeats: reading a puzzle file and assembling the theorem corpus a run
// should use.
package clihelp

import (
	"fmt"
	"os"

	"github.com/gifnksm/slither-link-solver/internal/core"
	"github.com/gifnksm/slither-link-solver/internal/solver"
	"github.com/gifnksm/slither-link-solver/pkg/config"
)

// ReadPuzzle reads and parses the puzzle at path, in either accepted
// textual shape.
func ReadPuzzle(path string) (*core.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzle: %w", err)
	}
	pz, err := core.ParsePuzzle(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse puzzle: %w", err)
	}
	return pz, nil
}

// LoadTheorems returns the built-in theorem corpus, merged with the
// externally supplied file named by cfg.TheoremFile, if any.
func LoadTheorems(cfg *config.Config) ([]*solver.Theorem, error) {
	theorems, err := solver.BuiltinTheorems()
	if err != nil {
		return nil, fmt.Errorf("parse built-in theorems: %w", err)
	}
	if cfg.TheoremFile == "" {
		return theorems, nil
	}

	data, err := os.ReadFile(cfg.TheoremFile)
	if err != nil {
		return nil, fmt.Errorf("read theorem file: %w", err)
	}
	extra, err := solver.ParseTheoremFile(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse theorem file: %w", err)
	}
	return append(theorems, extra...), nil
}
