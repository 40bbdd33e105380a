// Package config loads, validates and watches the panes TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	configFile     string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return newManager(viper.New(), configFile)
}

func newManager(v *viper.Viper, configFile string) (*Manager, error) {
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// PANES_LAYOUT_HORIZONTAL_MIN overrides layout.horizontal.min, etc.
	v.SetEnvPrefix("PANES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The log variables predate the prefixed key names.
	if err := v.BindEnv("logging.level", "PANES_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind PANES_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "PANES_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind PANES_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables. A
// missing file is created with defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configFile,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}

	config.Resize.ActivationShortcut = strings.ToLower(strings.TrimSpace(config.Resize.ActivationShortcut))
	if config.Resize.ActivationShortcut == "" {
		config.Resize.ActivationShortcut = defaultShortcut
	}

	if config.Layout.DividerHitArea < 0 {
		config.Layout.DividerHitArea = 0
	}

	defaults := DefaultDarkPalette()
	fillColor(&config.Appearance.Palette.Background, defaults.Background)
	fillColor(&config.Appearance.Palette.Surface, defaults.Surface)
	fillColor(&config.Appearance.Palette.SurfaceVariant, defaults.SurfaceVariant)
	fillColor(&config.Appearance.Palette.Text, defaults.Text)
	fillColor(&config.Appearance.Palette.Muted, defaults.Muted)
	fillColor(&config.Appearance.Palette.Accent, defaults.Accent)
	fillColor(&config.Appearance.Palette.Border, defaults.Border)
}

func fillColor(dst *string, fallback string) {
	*dst = strings.TrimSpace(*dst)
	if *dst == "" {
		*dst = fallback
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := WriteConfig(cfg, m.configFile); err != nil {
		return err
	}

	configCopy := *cfg
	m.config = &configCopy
	if m.watching {
		m.skipNextReload = true
	}
	return nil
}

// ConfigFile returns the path to the configuration file.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFile
}

// createDefaultConfig writes the defaults and the JSON schema next to them.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfig(DefaultConfig(), m.configFile); err != nil {
		return err
	}
	return WriteSchemaFile(filepath.Join(filepath.Dir(m.configFile), "config.schema.json"))
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLayoutDefaults(defaults)
	m.setResizeDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	setBoundsDefaults(m.viper, "layout.horizontal", defaults.Layout.Horizontal)
	setBoundsDefaults(m.viper, "layout.vertical", defaults.Layout.Vertical)
	m.viper.SetDefault("layout.divider_hit_area", defaults.Layout.DividerHitArea)
}

func setBoundsDefaults(v *viper.Viper, prefix string, b AxisBounds) {
	v.SetDefault(prefix+".initial", b.Initial)
	v.SetDefault(prefix+".min", b.Min)
	v.SetDefault(prefix+".max", b.Max)
}

func (m *Manager) setResizeDefaults(defaults *Config) {
	m.viper.SetDefault("resize.step_percent", defaults.Resize.StepPercent)
	m.viper.SetDefault("resize.activation_shortcut", defaults.Resize.ActivationShortcut)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	p := defaults.Appearance.Palette
	m.viper.SetDefault("appearance.palette.background", p.Background)
	m.viper.SetDefault("appearance.palette.surface", p.Surface)
	m.viper.SetDefault("appearance.palette.surface_variant", p.SurfaceVariant)
	m.viper.SetDefault("appearance.palette.text", p.Text)
	m.viper.SetDefault("appearance.palette.muted", p.Muted)
	m.viper.SetDefault("appearance.palette.accent", p.Accent)
	m.viper.SetDefault("appearance.palette.border", p.Border)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
}
