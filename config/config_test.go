package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("COMCIGAN_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("COMCIGAN_TEST_KEY", "def"))
	assert.Equal(t, "def", GetEnv("COMCIGAN_TEST_UNSET", "def"))

	t.Setenv("COMCIGAN_TEST_EMPTY", "")
	assert.Equal(t, "def", GetEnv("COMCIGAN_TEST_EMPTY", "def"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("COMCIGAN_TEST_INT", "3")
	assert.Equal(t, 3, GetEnvInt("COMCIGAN_TEST_INT", 0))

	t.Setenv("COMCIGAN_TEST_INT", "three")
	assert.Equal(t, 7, GetEnvInt("COMCIGAN_TEST_INT", 7))

	assert.Equal(t, 7, GetEnvInt("COMCIGAN_TEST_INT_UNSET", 7))
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("COMCIGAN_TEST_DOTENV=loaded\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("COMCIGAN_TEST_DOTENV") })

	LoadEnv(file)
	assert.Equal(t, "loaded", GetEnv("COMCIGAN_TEST_DOTENV", ""))

	// missing files only log
	LoadEnv(filepath.Join(dir, "missing.env"))
}

func TestGetResourcePath(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "/srv/app")
	assert.Equal(t, filepath.Join("/srv/app", "resources", "x.json"), GetResourcePath("x.json"))
}
