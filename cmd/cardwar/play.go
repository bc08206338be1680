package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lox/cardwar/internal/config"
	"github.com/lox/cardwar/internal/game"
	"github.com/lox/cardwar/internal/tui"
)

type PlayCmd struct {
	Seed     int64  `help:"Shuffle seed for reproducible deals (0 = random)"`
	LogFile  string `help:"Debug log file (overrides config)" type:"path"`
	LogLevel string `help:"Log level: debug, info, warn, error (overrides config)"`
}

func (c *PlayCmd) apply(cfg *config.Config) {
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if c.LogLevel != "" {
		cfg.UI.LogLevel = c.LogLevel
	}
}

func (c *PlayCmd) Run(globals *Globals) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "cardwar",
		Level:           cfg.LogLevel(),
	})

	opts := []game.Option{game.WithLogger(logger)}
	if cfg.Game.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Game.Seed))
	}
	g := game.New(opts...)
	logger.Info("Starting interactive game", "seed", g.Seed(), "version", version)

	return tui.Run(g, logger)
}
