package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeOutputPath(t *testing.T) {
	t.Run("existing file accepted", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "swagger.json")
		require.NoError(t, os.WriteFile(target, []byte("{}"), 0o600))

		got, err := SanitizeOutputPath(target)
		require.NoError(t, err)
		assert.Equal(t, target, got)
	})

	t.Run("relative path made absolute", func(t *testing.T) {
		got, err := SanitizeOutputPath("swagger.json")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})

	t.Run("symlink rejected", func(t *testing.T) {
		dir := t.TempDir()
		real := filepath.Join(dir, "real.json")
		link := filepath.Join(dir, "link.json")
		require.NoError(t, os.WriteFile(real, []byte("{}"), 0o600))
		require.NoError(t, os.Symlink(real, link))

		_, err := SanitizeOutputPath(link)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "symlink")
	})
}

func TestOutputFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	got, err := OutputFile(dir, "swagger.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "swagger.yaml"), got)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
