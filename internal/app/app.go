package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/framectx/internal/config"
	"github.com/vk/framectx/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
	stops  []Stop
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and the scenario
// already loaded.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	cfgModel, err := loader.Load(ctx, appConfig.ScenarioPath)
	if err != nil {
		// A failure to load the scenario is a fatal startup error.
		panic(fmt.Errorf("failed to load scenario: %w", err))
	}
	logger.Debug("Scenario loaded into unified model.",
		"files", len(cfgModel.Workspace.Files()),
		"breakpoints", len(cfgModel.Breakpoints),
		"events", len(cfgModel.Events),
	)

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		model:  cfgModel,
	}
}

// Model returns the loaded scenario. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

// Stops returns the breakpoint stops recorded by the last Run.
func (a *App) Stops() []Stop {
	return a.stops
}
