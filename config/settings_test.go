package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hebi/generation"
)

// unsetEnv clears key for the duration of the test
func unsetEnv(t *testing.T, key string) {
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func clearHebiEnv(t *testing.T) {
	for _, key := range []string{EnvSeed, EnvMap, EnvMapFile, EnvFullscreen} {
		unsetEnv(t, key)
	}
}

func TestLoadSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearHebiEnv(t)
		s, err := LoadSettings()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, s.SessionID)
		assert.Equal(t, generation.MapCorridors, s.MapName)
		assert.NotZero(t, s.Seed)
		assert.False(t, s.Fullscreen)
		assert.Empty(t, s.MapParams)
	})

	t.Run("environment", func(t *testing.T) {
		clearHebiEnv(t)
		t.Setenv(EnvSeed, "1234")
		t.Setenv(EnvMap, "arena")
		t.Setenv(EnvFullscreen, "true")

		s, err := LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, uint64(1234), s.Seed)
		assert.Equal(t, "arena", s.MapName)
		assert.True(t, s.Fullscreen)
	})

	t.Run("env file and map file", func(t *testing.T) {
		clearHebiEnv(t)
		dir := t.TempDir()
		mapFile := filepath.Join(dir, "map.json")
		require.NoError(t, os.WriteFile(mapFile, []byte(`{"corridor_height": 8}`), 0o644))

		envFile := filepath.Join(dir, "test.env")
		content := "HEBI_SEED=77\nHEBI_MAP_FILE=" + mapFile + "\n"
		require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

		s, err := LoadSettings(envFile)
		require.NoError(t, err)
		assert.Equal(t, uint64(77), s.Seed)
		assert.Equal(t, mapFile, s.MapFile)

		mapType, err := s.LoadMapType()
		require.NoError(t, err)
		corridors, ok := mapType.(*generation.CorridorsMap)
		require.True(t, ok)
		assert.Equal(t, 8, corridors.CorridorHeight)
		assert.Equal(t, 34, corridors.Width)
	})

	t.Run("process environment wins over env file", func(t *testing.T) {
		clearHebiEnv(t)
		envFile := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(envFile, []byte("HEBI_SEED=5\n"), 0o644))
		t.Setenv(EnvSeed, "6")

		s, err := LoadSettings(envFile)
		require.NoError(t, err)
		assert.Equal(t, uint64(6), s.Seed)
	})

	t.Run("invalid values", func(t *testing.T) {
		tests := []struct {
			key, value string
		}{
			{EnvSeed, "-1"},
			{EnvSeed, "abc"},
			{EnvFullscreen, "maybe"},
			{EnvMapFile, filepath.Join(t.TempDir(), "missing.json")},
		}
		for _, tt := range tests {
			t.Run(tt.key+"="+tt.value, func(t *testing.T) {
				clearHebiEnv(t)
				t.Setenv(tt.key, tt.value)
				_, err := LoadSettings()
				assert.Error(t, err)
			})
		}
	})

	t.Run("missing env file", func(t *testing.T) {
		clearHebiEnv(t)
		_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.env"))
		assert.Error(t, err)
	})

	t.Run("unknown map type", func(t *testing.T) {
		_, err := Settings{MapName: "maze"}.LoadMapType()
		assert.ErrorIs(t, err, generation.ErrUnknownMapType)
	})
}

func TestWindowSize(t *testing.T) {
	w, h := WindowSize(29, 29)
	assert.Equal(t, 29*24+48, w)
	assert.Equal(t, 29*24+48, h)
}
