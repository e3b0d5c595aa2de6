package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Total)
	assert.Equal(t, 1, cfg.Level)
	assert.Equal(t, "6-8", cfg.Age)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KIDSLEARN_TOTAL", "5")
	t.Setenv("KIDSLEARN_LEVEL", "3")
	t.Setenv("KIDSLEARN_AGE", "8-10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Total)
	assert.Equal(t, 3, cfg.Level)
	assert.Equal(t, "8-10", string(cfg.AgeTag()))
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"zero total", "KIDSLEARN_TOTAL", "0"},
		{"level too high", "KIDSLEARN_LEVEL", "4"},
		{"unknown age", "KIDSLEARN_AGE", "3-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
