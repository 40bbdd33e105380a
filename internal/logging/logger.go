package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls where file logs go.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

func newLogger(out io.Writer, cfg Config) zerolog.Logger {
	var output io.Writer = out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewWithFile creates a logger that writes to a rotating file in fileCfg.LogDir.
// A terminal UI owns the screen, so stderr output is opt-in. When file
// logging is disabled and stderr is off, the returned logger discards
// everything. The cleanup func closes the log file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	var writers []io.Writer
	cleanup := func() {}

	if fileCfg.Enabled && fileCfg.LogDir != "" {
		if err := os.MkdirAll(fileCfg.LogDir, 0o755); err != nil {
			return zerolog.Nop(), cleanup, err
		}
		rotator := newFileWriter(fileCfg)
		writers = append(writers, rotator)
		cleanup = func() { _ = rotator.Close() }
	}
	if fileCfg.WriteToStderr {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		return zerolog.Nop(), cleanup, nil
	case 1:
		return newLogger(writers[0], cfg), cleanup, nil
	default:
		return newLogger(zerolog.MultiLevelWriter(writers...), cfg), cleanup, nil
	}
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
