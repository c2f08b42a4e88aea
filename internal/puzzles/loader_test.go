package puzzles

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledHasSamples(t *testing.T) {
	b := Bundled()
	assert.Equal(t, len(bundledSamples), b.Count())
	assert.Equal(t, len(bundledSamples), len(b.Names()))
}

func TestGetByIndexAndName(t *testing.T) {
	b := Bundled()
	pz, err := b.Get(0)
	require.NoError(t, err)
	assert.Greater(t, pz.Row(), 0)

	byName, err := b.GetByName(bundledSamples[0].Name)
	require.NoError(t, err)
	assert.Equal(t, pz.Row(), byName.Row())
	assert.Equal(t, pz.Column(), byName.Column())
}

func TestGetByNameUnknown(t *testing.T) {
	b := Bundled()
	_, err := b.GetByName("does-not-exist")
	assert.Error(t, err)
}

func TestGetIndexOutOfRange(t *testing.T) {
	b := Bundled()
	_, err := b.Get(-1)
	assert.Error(t, err)
	_, err = b.Get(b.Count())
	assert.Error(t, err)
}

func TestGetBySeedIsDeterministic(t *testing.T) {
	b := Bundled()
	_, i1, err := b.GetBySeed("same-seed")
	require.NoError(t, err)
	_, i2, err := b.GetBySeed("same-seed")
	require.NoError(t, err)
	assert.Equal(t, i1, i2)
	assert.GreaterOrEqual(t, i1, 0)
	assert.Less(t, i1, b.Count())
}

func TestGetBySeedEmptyLoaderErrors(t *testing.T) {
	empty := NewLoaderFromPuzzles(nil)
	_, _, err := empty.GetBySeed("x")
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bundle.json")
	file := PuzzleFile{
		Version: 1,
		Count:   1,
		Puzzles: []CompactPuzzle{{Name: "tiny", Text: "2_\n_2"}},
	}
	data, err := json.Marshal(file)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loader, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, loader.Count())

	pz, err := loader.GetByName("tiny")
	require.NoError(t, err)
	assert.Equal(t, 2, pz.Row())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/bundle.json")
	assert.Error(t, err)
}

func TestSetGlobalInstallsLoader(t *testing.T) {
	SetGlobal(NewLoaderFromPuzzles(bundledSamples))
	assert.NotNil(t, Global())
}
