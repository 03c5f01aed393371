package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/patterns/internal/config"
	"github.com/alexisbeaulieu97/patterns/internal/logger"
	"github.com/alexisbeaulieu97/patterns/internal/ports"
	"github.com/alexisbeaulieu97/patterns/internal/themestore"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config *config.Config
	Logger ports.Logger
	Store  *themestore.Store
}

func (a *AppContext) init(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.Log.Level
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	a.Config = cfg
	a.Logger = log
	a.Store = themestore.Instance(
		themestore.WithLogger(log),
		themestore.WithInitialTheme(cfg.InitialTheme()),
	)
	return nil
}

// CommandContext returns a context carrying a fresh correlation ID and a
// logger scoped to the named command.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	if a.Logger == nil {
		return ctx, logger.NewNoOp()
	}
	return ctx, a.Logger.With("component", name)
}
