package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "library.json", cfg.Library.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookshelf.yaml")
	contents := `library:
  path: /tmp/books.json
logging:
  level: debug
  file: /tmp/bookshelf.log
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/books.json", cfg.Library.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/bookshelf.log", cfg.Logging.File)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookshelf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "library.json", cfg.Library.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookshelf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("library: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
