package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntEnv_ValidValue(t *testing.T) {
	t.Setenv("DASHBOARD_HISTORY_LIMIT", "7")
	n, err := parseIntEnv("DASHBOARD_HISTORY_LIMIT", defaultHistoryLimit)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestParseIntEnv_FallbackWhenUnset(t *testing.T) {
	t.Setenv("DASHBOARD_HISTORY_LIMIT", "")
	n, err := parseIntEnv("DASHBOARD_HISTORY_LIMIT", defaultHistoryLimit)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestParseIntEnv_RejectsTrailingGarbage(t *testing.T) {
	t.Setenv("DASHBOARD_HISTORY_LIMIT", "5x")
	_, err := parseIntEnv("DASHBOARD_HISTORY_LIMIT", defaultHistoryLimit)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DASHBOARD_HISTORY_LIMIT")
}

func TestLoad_RequiresUpstreamBaseURL(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UPSTREAM_BASE_URL")
}
