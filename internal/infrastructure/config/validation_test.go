package config

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "horizontal initial outside bounds",
			mutate:  func(c *Config) { c.Layout.Horizontal.Initial = 90 },
			wantErr: "layout.horizontal",
		},
		{
			name:    "vertical max above 100",
			mutate:  func(c *Config) { c.Layout.Vertical.Max = 120 },
			wantErr: "layout.vertical",
		},
		{
			name:    "negative hit area",
			mutate:  func(c *Config) { c.Layout.DividerHitArea = -1 },
			wantErr: "layout.divider_hit_area",
		},
		{
			name:    "zero step",
			mutate:  func(c *Config) { c.Resize.StepPercent = 0 },
			wantErr: "resize.step_percent",
		},
		{
			name:    "NaN step",
			mutate:  func(c *Config) { c.Resize.StepPercent = math.NaN() },
			wantErr: "resize.step_percent",
		},
		{
			name:    "malformed shortcut",
			mutate:  func(c *Config) { c.Resize.ActivationShortcut = "ctrl+" },
			wantErr: "resize.activation_shortcut",
		},
		{
			name:    "truncated hex color",
			mutate:  func(c *Config) { c.Appearance.Palette.Accent = "#4ade8" },
			wantErr: "appearance.palette.accent",
		},
		{
			name:    "bad color",
			mutate:  func(c *Config) { c.Appearance.Palette.Border = "grey" },
			wantErr: "appearance.palette.border",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_AggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.Horizontal.Min = -5
	cfg.Resize.StepPercent = 500

	err := validateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "\n  - layout.horizontal")
	assert.Contains(t, err.Error(), "\n  - resize.step_percent")
}

func TestEncodeTOML_UsesConfigKeys(t *testing.T) {
	data, err := EncodeTOML(DefaultConfig())

	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "[layout]")
	assert.Contains(t, out, "divider_hit_area = 1")
	assert.Contains(t, out, "activation_shortcut = 'ctrl+n'")
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "Panes Configuration", schema["title"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "layout")
	assert.Contains(t, props, "resize")
	assert.Contains(t, props, "logging")
}
