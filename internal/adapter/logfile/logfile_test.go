package logfile

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var started = time.Date(2019, 4, 15, 5, 0, 7, 0, time.UTC)

func TestOpenGuardsDuplicateRuns(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	f, err := Open(dir, "pixel_match", started)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.FileExists(t, filepath.Join(dir, "pixel_match_20190415-050007.log"))

	_, err = Open(dir, "pixel_match", started)
	assert.ErrorIs(t, err, ErrAlreadyRan)

	f, err = Open(dir, "pixel_match", started.Add(time.Second))
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestPurge(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2019, 4, 15, 0, 0, 0, 0, time.UTC)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	files := map[string]time.Time{
		"old.log":    now.AddDate(0, 0, -31),
		"recent.log": now.AddDate(0, 0, -2),
		"old.json":   now.AddDate(0, 0, -90),
	}
	for name, mod := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		require.NoError(t, os.Chtimes(path, mod, mod))
	}

	removed, err := Purge(dir, 30, now, logger)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, filepath.Join(dir, "old.log"))
	assert.FileExists(t, filepath.Join(dir, "recent.log"))
	assert.FileExists(t, filepath.Join(dir, "old.json"))

	removed, err = Purge(dir, 0, now.AddDate(1, 0, 0), logger)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
