package config

import "github.com/bnema/panes/internal/domain/entity"

// Config represents the complete configuration for panes.
type Config struct {
	// Layout holds the split bounds for each divider.
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout" toml:"layout" json:"layout"`
	// Resize controls keyboard resizing.
	Resize     ResizeConfig     `mapstructure:"resize" yaml:"resize" toml:"resize" json:"resize"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// LayoutConfig holds split bounds and divider geometry.
type LayoutConfig struct {
	// Horizontal bounds the left/right split (percent of container width).
	Horizontal AxisBounds `mapstructure:"horizontal" yaml:"horizontal" toml:"horizontal" json:"horizontal"`
	// Vertical bounds the top/bottom split (percent of container height).
	Vertical AxisBounds `mapstructure:"vertical" yaml:"vertical" toml:"vertical" json:"vertical"`
	// DividerHitArea is the number of cells on each side of a divider that
	// still start a drag.
	DividerHitArea int `mapstructure:"divider_hit_area" yaml:"divider_hit_area" toml:"divider_hit_area" json:"divider_hit_area"`
}

// AxisBounds is the file representation of entity.ResizeConfig.
type AxisBounds struct {
	Initial float64 `mapstructure:"initial" yaml:"initial" toml:"initial" json:"initial"`
	Min     float64 `mapstructure:"min" yaml:"min" toml:"min" json:"min"`
	Max     float64 `mapstructure:"max" yaml:"max" toml:"max" json:"max"`
}

// ToResizeConfig converts the bounds into the domain type. The result is not
// validated; use entity.ResizeConfig.Validate.
func (b AxisBounds) ToResizeConfig() entity.ResizeConfig {
	return entity.ResizeConfig{Initial: b.Initial, Min: b.Min, Max: b.Max}
}

// ResizeConfig controls keyboard resize mode.
type ResizeConfig struct {
	// StepPercent is how far one arrow key press moves a divider.
	StepPercent float64 `mapstructure:"step_percent" yaml:"step_percent" toml:"step_percent" json:"step_percent"`
	// ActivationShortcut enters resize mode (bubbletea key string, e.g. "ctrl+n").
	ActivationShortcut string `mapstructure:"activation_shortcut" yaml:"activation_shortcut" toml:"activation_shortcut" json:"activation_shortcut"`
}

// AppearanceConfig holds the workbench colors.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" yaml:"palette" toml:"palette" json:"palette"`
}

// ColorPalette contains semantic color tokens.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
}

// LoggingConfig controls log level, format and file output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAge        int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age" json:"max_age"`
}
