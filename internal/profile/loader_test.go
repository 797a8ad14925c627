package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultYAML = `
version: "1"
vehicle:
  pitch_per_ramp: 0.8
  bank_per_ramp: 1.5
  ramps: 2
search:
  rounds: 5
notes: shared defaults
`

const vanYAML = `
vehicle:
  name: van
  pitch_per_ramp: 1.1
search:
  initial_increment: 0.5
`

func writeProfiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(body), 0o644))
	}
	return dir
}

func TestLoader_LoadMerged(t *testing.T) {
	dir := writeProfiles(t, map[string]string{"default": defaultYAML, "van": vanYAML})
	l := NewLoader(dir)

	def, err := l.LoadMerged("")
	require.NoError(t, err)
	assert.Equal(t, 0.8, *def.Vehicle.PitchPerRamp)
	assert.Equal(t, "", def.Vehicle.Name)

	van, err := l.LoadMerged("van")
	require.NoError(t, err)
	assert.Equal(t, "van", van.Vehicle.Name)
	assert.Equal(t, 1.1, *van.Vehicle.PitchPerRamp, "profile overrides default")
	assert.Equal(t, 1.5, *van.Vehicle.BankPerRamp, "default fills gaps")
	assert.Equal(t, 2, *van.Vehicle.Ramps)
	require.NotNil(t, van.Search)
	assert.Equal(t, 5, *van.Search.Rounds)
	assert.Equal(t, 0.5, *van.Search.InitialIncrement)
	assert.Equal(t, "shared defaults", van.Notes)

	// merging must not leak into the cached default
	again, err := l.LoadMerged(DefaultName)
	require.NoError(t, err)
	assert.Nil(t, again.Search.InitialIncrement)
}

func TestLoader_Errors(t *testing.T) {
	dir := writeProfiles(t, map[string]string{"default": defaultYAML, "broken": "vehicle: [1, 2"})
	l := NewLoader(dir)

	_, err := l.LoadMerged("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = l.LoadMerged("../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = l.LoadMerged("broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read broken")
}

func TestLoader_MissingDefaultIsEmpty(t *testing.T) {
	l := NewLoader(t.TempDir())
	raw, err := l.LoadMerged(DefaultName)
	require.NoError(t, err)
	assert.Equal(t, RawProfile{}, raw)
}

func TestLoader_CacheAndInvalidate(t *testing.T) {
	dir := writeProfiles(t, map[string]string{"default": defaultYAML})
	l := NewLoader(dir)

	first, err := l.LoadMerged(DefaultName)
	require.NoError(t, err)
	require.Equal(t, 0.8, *first.Vehicle.PitchPerRamp)

	require.NoError(t, os.WriteFile(l.Paths().DefaultPath(), []byte("vehicle: {pitch_per_ramp: 2.0, bank_per_ramp: 1.0}"), 0o644))

	cached, err := l.LoadMerged(DefaultName)
	require.NoError(t, err)
	assert.Equal(t, 0.8, *cached.Vehicle.PitchPerRamp)

	l.Invalidate()
	fresh, err := l.LoadMerged(DefaultName)
	require.NoError(t, err)
	assert.Equal(t, 2.0, *fresh.Vehicle.PitchPerRamp)
}

func TestLoader_StaleReadNotCached(t *testing.T) {
	dir := writeProfiles(t, map[string]string{"default": defaultYAML})
	l := NewLoader(dir)

	// files read, then a reload lands before the result is cached
	l.mu.RLock()
	gen := l.gen
	l.mu.RUnlock()
	stale, _, err := readYAML(l.Paths().DefaultPath())
	require.NoError(t, err)
	l.Invalidate()

	assert.False(t, l.store(gen, DefaultName, stale, stale))
	assert.Empty(t, l.cache)

	require.NoError(t, os.WriteFile(l.Paths().DefaultPath(), []byte("vehicle: {pitch_per_ramp: 2.0, bank_per_ramp: 1.0}"), 0o644))
	fresh, err := l.LoadMerged(DefaultName)
	require.NoError(t, err)
	assert.Equal(t, 2.0, *fresh.Vehicle.PitchPerRamp)
	assert.Len(t, l.cache, 1)
}

func TestLoader_Names(t *testing.T) {
	dir := writeProfiles(t, map[string]string{"default": defaultYAML, "van": vanYAML, "bus": vanYAML})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad name.yaml"), []byte("x"), 0o644))

	names, err := NewLoader(dir).Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"bus", "default", "van"}, names)
}
