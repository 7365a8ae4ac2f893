package ticktick_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CarterT27/ticktick-cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	saved := &ticktick.Config{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    1767225600,
	}
	require.NoError(t, ticktick.SaveConfig(path, saved))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := ticktick.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoadConfigMissing(t *testing.T) {
	loaded, err := ticktick.LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestClearConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, ticktick.SaveConfig(path, &ticktick.Config{AccessToken: "access"}))
	require.NoError(t, ticktick.ClearConfig(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing twice is fine.
	assert.NoError(t, ticktick.ClearConfig(path))
}
