package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hhmehra/rangelog/config"
	"github.com/hhmehra/rangelog/internal/app"
	"github.com/hhmehra/rangelog/internal/cli"
	"github.com/hhmehra/rangelog/internal/output"
)

func main() {
	if err := run(); err != nil {
		formatter := output.NewFormatter(os.Stderr)
		formatter.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	application := app.New(cfg, logger)

	deps := &cli.Dependencies{
		App:    application,
		Config: cfg,
	}

	return cli.NewRootCmd(deps).Execute()
}

// newLogger returns the session-loop logger. Progress for humans goes
// through output.Formatter; zap carries the structured per-tick events,
// and stays quiet unless RANGELOG_VERBOSE is set.
func newLogger() (*zap.Logger, error) {
	if os.Getenv("RANGELOG_VERBOSE") == "" {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		return cfg.Build()
	}
	return zap.NewDevelopment()
}
