// Package puzzles bundles a small set of named sample Slither Link puzzles
// for cmd/test and cmd/bench to exercise, plus a loader for a larger
// externally supplied set in the same JSON shape.
package puzzles

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"sync"

	"github.com/gifnksm/slither-link-solver/internal/core"
)

// CompactPuzzle stores one named sample puzzle in Shape B (one character per
// cell) text, the most compact of the two accepted puzzle formats.
type CompactPuzzle struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// PuzzleFile is the top-level structure of a sample-puzzle bundle file.
type PuzzleFile struct {
	Version int             `json:"version"`
	Count   int             `json:"count"`
	Puzzles []CompactPuzzle `json:"puzzles"`
}

// Loader holds a loaded bundle of sample puzzles.
type Loader struct {
	puzzles []CompactPuzzle
	mu      sync.RWMutex
}

var (
	globalLoader *Loader
	loadOnce     sync.Once
	loadErr      error
)

// Load reads a puzzle bundle from a JSON file.
func Load(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle bundle: %w", err)
	}

	var file PuzzleFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse puzzle bundle: %w", err)
	}

	return &Loader{puzzles: file.Puzzles}, nil
}

// LoadGlobal loads a bundle into the package-global singleton loader, once.
// Later calls after the first are no-ops, matching the teacher's
// once-per-process puzzle-file load.
func LoadGlobal(path string) error {
	loadOnce.Do(func() {
		globalLoader, loadErr = Load(path)
	})
	return loadErr
}

// Global returns the global loader, or nil if LoadGlobal was never called.
func Global() *Loader { return globalLoader }

// SetGlobal overrides the global loader, for tests.
func SetGlobal(l *Loader) { globalLoader = l }

// NewLoaderFromPuzzles builds a loader directly from in-memory puzzle data,
// for tests and for Bundled below.
func NewLoaderFromPuzzles(puzzles []CompactPuzzle) *Loader {
	return &Loader{puzzles: puzzles}
}

// Count returns the number of puzzles in the bundle.
func (l *Loader) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.puzzles)
}

// Names returns every puzzle's name, in bundle order.
func (l *Loader) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, len(l.puzzles))
	for i, p := range l.puzzles {
		names[i] = p.Name
	}
	return names
}

// Get returns the parsed puzzle at index.
func (l *Loader) Get(index int) (*core.Puzzle, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index < 0 || index >= len(l.puzzles) {
		return nil, fmt.Errorf("puzzle index %d out of range (0-%d)", index, len(l.puzzles)-1)
	}
	return core.ParsePuzzle(l.puzzles[index].Text)
}

// GetByName returns the parsed puzzle with the given name.
func (l *Loader) GetByName(name string) (*core.Puzzle, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, p := range l.puzzles {
		if p.Name == name {
			return core.ParsePuzzle(p.Text)
		}
	}
	return nil, fmt.Errorf("no puzzle named %q in bundle", name)
}

// GetBySeed deterministically maps seed to one puzzle in the bundle via an
// FNV-1a hash, the same scheme the teacher uses to pick a daily puzzle by
// date string, repurposed here for cmd/bench's repeatable sampling.
func (l *Loader) GetBySeed(seed string) (*core.Puzzle, int, error) {
	l.mu.RLock()
	count := len(l.puzzles)
	l.mu.RUnlock()
	if count == 0 {
		return nil, 0, fmt.Errorf("no puzzles loaded")
	}

	h := fnv.New64a()
	h.Write([]byte(seed))
	index := int(h.Sum64() % uint64(count)) //nolint:gosec // count is bounded by slice length

	pz, err := l.Get(index)
	return pz, index, err
}

// Bundled returns a loader over the sample puzzles embedded in this binary,
// used by cmd/test and cmd/bench when the caller passes no explicit puzzle
// files.
func Bundled() *Loader {
	return NewLoaderFromPuzzles(bundledSamples)
}
