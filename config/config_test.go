package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "all_events.json", cfg.Events.File)
	assert.Equal(t, "csv", cfg.Journal.Type)
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
events:
  file: export/all_events.json
journal:
  type: sqlite
  db_path: ./runs.sqlite
`), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export/all_events.json", cfg.Events.File)
	assert.Equal(t, "sqlite", cfg.Journal.Type)
	assert.Equal(t, "./runs.sqlite", cfg.Journal.DBPath)
	// Unset sections keep their defaults.
	assert.Equal(t, "kest", cfg.Report.AvgcostPrefix)
}

func TestLoadFromFileJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"events":{"file":"a.json"}}`), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a.json", cfg.Events.File)
}

func TestValidateRejectsBadJournal(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Journal.Type = "postgres"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Journal.Type = "sqlite"
	assert.Error(t, cfg.Validate()) // db_path missing
}

func TestSaveToFileRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yml")
	cfg := Default()
	cfg.Report.FIFOPrefix = "topf"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "topf", loaded.Report.FIFOPrefix)
}
