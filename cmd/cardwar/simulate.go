package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/cardwar/internal/config"
	"github.com/lox/cardwar/internal/simulator"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Width(18)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
)

type SimulateCmd struct {
	Games    int    `short:"n" help:"Number of games to play (overrides config)"`
	Workers  int    `short:"w" help:"Concurrent workers (overrides config)"`
	Strategy string `short:"s" help:"Player strategy: first, random, highest, lowest (overrides config)"`
	Seed     int64  `help:"Base seed; game i uses seed+i (0 = random)"`
	Output   string `short:"o" help:"Write a JSON report to this file" type:"path"`
	Debug    bool   `help:"Log every game at debug level"`

	out io.Writer
}

func (c *SimulateCmd) apply(cfg *config.Config) {
	if c.Games != 0 {
		cfg.Simulate.Games = c.Games
	}
	if c.Workers != 0 {
		cfg.Simulate.Workers = c.Workers
	}
	if c.Strategy != "" {
		cfg.Simulate.Strategy = c.Strategy
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if c.Debug {
		cfg.UI.LogLevel = "debug"
	}
}

func (c *SimulateCmd) Run(globals *Globals) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	out := c.out
	if out == nil {
		out = os.Stdout
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           cfg.LogLevel(),
	})

	sim, err := simulator.New(simulator.Config{
		Games:    cfg.Simulate.Games,
		Workers:  cfg.Simulate.Workers,
		Strategy: cfg.Simulate.Strategy,
		Seed:     cfg.Game.Seed,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	ctx := setupSignalHandler(logger)
	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	printStats(out, stats)

	if c.Output != "" {
		if err := simulator.WriteReport(c.Output, stats); err != nil {
			return err
		}
		logger.Info("Report written", "file", c.Output)
	}
	return nil
}

func printStats(w io.Writer, s *simulator.Stats) {
	row := func(k, v string) {
		fmt.Fprintln(w, keyStyle.Render(k)+valueStyle.Render(v))
	}

	fmt.Fprintln(w, titleStyle.Render(" ♠ ♥ War simulation ♦ ♣ "))
	fmt.Fprintln(w)
	row("Strategy", s.Strategy)
	row("Seed", fmt.Sprint(s.Seed))
	row("Games", fmt.Sprint(s.Games))
	row("Player wins", fmt.Sprintf("%d (%.1f%% ± %.1f%%)", s.PlayerWins, 100*s.PlayerWinRate(), 196*s.StdError()))
	row("Bot wins", fmt.Sprintf("%d (%d tied scores)", s.BotWins, s.TiedScores))
	row("Rounds / game", fmt.Sprintf("%.2f (max %d)", s.MeanRounds(), s.MaxRounds))
	row("Draws", fmt.Sprintf("%d (%d refilled)", s.Draws, s.Refills))
}
