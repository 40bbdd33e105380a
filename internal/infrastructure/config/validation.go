package config

import (
	"fmt"
	"math"
	"strings"

	domainvalidation "github.com/bnema/panes/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateResize(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	if err := config.Layout.Horizontal.ToResizeConfig().Validate(); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("layout.horizontal: %v", err))
	}
	if err := config.Layout.Vertical.ToResizeConfig().Validate(); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("layout.vertical: %v", err))
	}
	if config.Layout.DividerHitArea < 0 {
		validationErrors = append(validationErrors, "layout.divider_hit_area must be non-negative")
	}
	return validationErrors
}

func validateResize(config *Config) []string {
	var validationErrors []string
	step := config.Resize.StepPercent
	if math.IsNaN(step) || step <= 0 || step > 100 {
		validationErrors = append(validationErrors, "resize.step_percent must be between 0 (exclusive) and 100")
	}
	validationErrors = append(validationErrors,
		domainvalidation.ValidateKeyShortcut("resize.activation_shortcut", config.Resize.ActivationShortcut)...)
	return validationErrors
}

func validateAppearance(config *Config) []string {
	p := config.Appearance.Palette
	return domainvalidation.ValidateHexColors("appearance.palette",
		domainvalidation.NamedColor{Key: "background", Value: p.Background},
		domainvalidation.NamedColor{Key: "surface", Value: p.Surface},
		domainvalidation.NamedColor{Key: "surface_variant", Value: p.SurfaceVariant},
		domainvalidation.NamedColor{Key: "text", Value: p.Text},
		domainvalidation.NamedColor{Key: "muted", Value: p.Muted},
		domainvalidation.NamedColor{Key: "accent", Value: p.Accent},
		domainvalidation.NamedColor{Key: "border", Value: p.Border},
	)
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "", "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, off (got %q)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}

	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}
