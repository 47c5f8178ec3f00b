package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/simon/constants"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "simon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWith("", map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, constants.PresentDelay, cfg.Timings.PresentDelay)
	assert.Equal(t, constants.FlashDuration, cfg.Timings.FlashDuration)
	assert.Equal(t, constants.AdvanceDelay, cfg.Timings.AdvanceDelay)
	assert.Equal(t, constants.FailureFlashDuration, cfg.Timings.FailureFlash)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.Empty(t, cfg.Player)
	assert.Zero(t, cfg.Seed)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
player: Ada
seed: 42
timings:
  advance_delay: 1500ms
  present_delay: 250ms
audio:
  enabled: false
  master_volume: 0.25
`)

	cfg, err := LoadWith(path, map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "Ada", cfg.Player)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timings.AdvanceDelay)
	assert.Equal(t, 250*time.Millisecond, cfg.Timings.PresentDelay)
	assert.Equal(t, constants.FlashDuration, cfg.Timings.FlashDuration, "unset keys keep defaults")
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.25, cfg.Audio.MasterVolume)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "player: Ada\nseed: 1\n")

	cfg, err := LoadWith(path, map[string]string{
		"SIMON_PLAYER":         "Grace",
		"SIMON_SEED":           "7",
		"SIMON_FLASH_DURATION": "120ms",
		"SIMON_AUDIO_ENABLED":  "false",
		"SIMON_MASTER_VOLUME":  "0.9",
		"SIMON_DEBUG":          "true",
	})
	require.NoError(t, err)

	assert.Equal(t, "Grace", cfg.Player)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 120*time.Millisecond, cfg.Timings.FlashDuration)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.9, cfg.Audio.MasterVolume)
	assert.True(t, cfg.Debug)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
	}{
		{"zero advance delay", map[string]string{"SIMON_ADVANCE_DELAY": "0s"}},
		{"negative flash", map[string]string{"SIMON_FLASH_DURATION": "-5ms"}},
		{"volume above one", map[string]string{"SIMON_MASTER_VOLUME": "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWith("", tt.environ)
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestDebugNeedsLogDir(t *testing.T) {
	path := writeFile(t, "debug: true\nlog_dir: \"\"\n")
	_, err := LoadWith(path, map[string]string{})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoadBadInput(t *testing.T) {
	_, err := LoadWith(filepath.Join(t.TempDir(), "missing.yaml"), map[string]string{})
	require.Error(t, err)

	_, err = LoadWith(writeFile(t, "timings: [not, a, map]\n"), map[string]string{})
	require.Error(t, err)

	_, err = LoadWith("", map[string]string{"SIMON_SEED": "many"})
	require.Error(t, err)
}
