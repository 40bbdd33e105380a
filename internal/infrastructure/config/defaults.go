package config

import (
	"path/filepath"

	"github.com/bnema/panes/internal/domain/entity"
)

const (
	defaultDividerHitArea = 1
	defaultStepPercent    = 5
	defaultMaxLogSizeMB   = 10
	defaultMaxLogBackups  = 3
	defaultMaxLogAgeDays  = 7
	defaultShortcut       = "ctrl+n"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	h := entity.DefaultHorizontalResize()
	v := entity.DefaultVerticalResize()

	return &Config{
		Layout: LayoutConfig{
			Horizontal:     AxisBounds{Initial: h.Initial, Min: h.Min, Max: h.Max},
			Vertical:       AxisBounds{Initial: v.Initial, Min: v.Min, Max: v.Max},
			DividerHitArea: defaultDividerHitArea,
		},
		Resize: ResizeConfig{
			StepPercent:        defaultStepPercent,
			ActivationShortcut: defaultShortcut,
		},
		Appearance: AppearanceConfig{
			Palette: DefaultDarkPalette(),
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			LogDir:        getDefaultLogDir(),
			EnableFileLog: true,
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAge:        defaultMaxLogAgeDays,
		},
	}
}

// DefaultDarkPalette returns the built-in dark colors.
func DefaultDarkPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
	}
}

func getDefaultLogDir() string {
	dir, err := GetLogDir()
	if err != nil {
		return filepath.Join(".", "logs")
	}
	return dir
}
