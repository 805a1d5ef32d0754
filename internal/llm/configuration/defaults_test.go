package configuration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 128, cfg.MaxTokens)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, 20, cfg.CallBudget)
	assert.Equal(t, 200*time.Millisecond, cfg.SamplePause)
	assert.InDelta(t, 0.7, cfg.SampleTemperature, 1e-9)
	assert.Equal(t, 2, cfg.Shots)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "quorum", cfg.Temporal.TaskQueue)

	require.NoError(t, cfg.Validate())
}

func TestDefaultConfig_Independent(t *testing.T) {
	a := DefaultConfig()
	b := DefaultConfig()
	a.Model = "changed"
	assert.Equal(t, DefaultModel, b.Model)
}
