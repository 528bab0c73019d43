package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
	runID  string
}

// NewApp is the constructor for the main application. Quantized labels go to
// outW (unless the run is in-place); diagnostics, the summary and logs go to
// errW.
func NewApp(outW, errW io.Writer, cfg *Config) *App {
	runID := uuid.NewString()
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW).With("run_id", runID)
	logger.Debug("Logger configured successfully.", "config_sources", cfg.ConfigPaths)

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: cfg,
		runID:  runID,
	}
}

// RunID returns the identifier attached to every log record of this app.
func (a *App) RunID() string {
	return a.runID
}
