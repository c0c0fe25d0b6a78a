package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsolateXDG(t *testing.T) {
	t.Setenv("BRACES_COMPRESS_MAX_DEPTH", "9")

	t.Run("isolated", func(t *testing.T) {
		env := IsolateXDG(t)

		assert.Equal(t, env.ConfigHome, os.Getenv("XDG_CONFIG_HOME"))
		assert.Equal(t, env.ConfigDirs, os.Getenv("XDG_CONFIG_DIRS"))
		assert.Equal(t, env.StateHome, os.Getenv("XDG_STATE_HOME"))
		_, set := os.LookupEnv("BRACES_COMPRESS_MAX_DEPTH")
		assert.False(t, set)
	})

	assert.Equal(t, "9", os.Getenv("BRACES_COMPRESS_MAX_DEPTH"))
}

func TestCreateAndReadFile(t *testing.T) {
	dir := t.TempDir()

	path := CreateFile(t, dir, filepath.Join("nested", "file.txt"), "content")

	assert.Equal(t, filepath.Join(dir, "nested", "file.txt"), path)
	assert.Equal(t, "content", ReadFile(t, path))
}
