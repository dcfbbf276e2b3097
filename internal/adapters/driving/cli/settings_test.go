package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceplan/fichas/internal/core/domain"
)

func TestSettingsCmd_Use(t *testing.T) {
	assert.Equal(t, "settings", settingsCmd.Use)
	assert.Contains(t, settingsCmd.Long, "batch.workers")
}

func TestSettingsShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := runCmd("settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "Data dir: ~/.fichas/data (default)")
	assert.Contains(t, out, "Batch workers: 4")
	assert.Contains(t, out, "Strict audit: no")
	assert.Contains(t, out, "Config file: :memory:")
}

func TestSettingsCmd_DefaultsToShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := runCmd("settings")
	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
}

func TestSettingsSet(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := runCmd("settings", "set", "batch.workers", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "batch.workers = 8")
	assert.Equal(t, 8, settingsService.Get().Workers)

	_, err = runCmd("settings", "set", "audit.strict", "true")
	require.NoError(t, err)
	assert.True(t, settingsService.Get().StrictAudit)

	out, err = runCmd("settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Batch workers: 8")
	assert.Contains(t, out, "Strict audit: yes")
}

func TestSettingsSet_Invalid(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	tests := [][]string{
		{"settings", "set", "unknown.key", "x"},
		{"settings", "set", "batch.workers", "many"},
		{"settings", "set", "output.format", "xml"},
	}
	for _, args := range tests {
		_, err := runCmd(args...)
		require.Error(t, err, args)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestSettingsReset(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := runCmd("settings", "set", "output.format", "json")
	require.NoError(t, err)

	out, err := runCmd("settings", "reset", "output.format")
	require.NoError(t, err)
	assert.Contains(t, out, "output.format reset to default")
	assert.Equal(t, domain.OutputAuto, settingsService.Get().Output)
}

func TestSettingsCmd_NoService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	settingsService = nil

	_, err := runCmd("settings", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
