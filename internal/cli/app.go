// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/panes/internal/cli/styles"
	"github.com/bnema/panes/internal/domain/build"
	"github.com/bnema/panes/internal/infrastructure/config"
	"github.com/bnema/panes/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	Manager   *config.Manager
	SessionID string

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and builds the logger. A terminal UI owns
// stdout and stderr, so logs only go to the rotating file in the state dir.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:    cfg.Logging.EnableFileLog,
			LogDir:     cfg.Logging.LogDir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAge,
			Compress:   true,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	sessionID := logging.GenerateSessionID()
	ctx := logging.WithSession(logging.WithContext(context.Background(), logger), sessionID)

	logger.Debug().Str("config", mgr.ConfigFile()).Msg("config loaded")

	return &App{
		Config:     cfg,
		Theme:      styles.NewTheme(cfg),
		Manager:    mgr,
		SessionID:  sessionID,
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
