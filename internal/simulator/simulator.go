// Package simulator plays many complete games headlessly, with the player
// side driven by a Chooser strategy and the bot playing its top card.
package simulator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/cardwar/internal/fileutil"
	"github.com/lox/cardwar/internal/game"
	"github.com/lox/cardwar/internal/randutil"
	"golang.org/x/sync/errgroup"
)

// maxRounds guards against a game that never ends
const maxRounds = 1000

// chooserSalt separates the chooser's RNG stream from the shuffle's
const chooserSalt = 0x5eed

// Config holds configuration for running simulations
type Config struct {
	Games    int
	Workers  int
	Strategy string
	Seed     int64
	Logger   *log.Logger
	Clock    quartz.Clock
}

// Simulator runs War game simulations
type Simulator struct {
	config Config
	logger *log.Logger
	// engine receives per-game logs; silent unless debugging
	engine *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) (*Simulator, error) {
	if config.Games < 1 {
		return nil, fmt.Errorf("games must be positive, got %d", config.Games)
	}
	if config.Workers < 1 {
		config.Workers = 1
	}
	if _, err := NewChooser(config.Strategy, randutil.New(0)); err != nil {
		return nil, err
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Seed == 0 {
		_, config.Seed = randutil.NewOrTime(0)
	}

	engine := log.New(io.Discard)
	if config.Logger.GetLevel() <= log.DebugLevel {
		engine = config.Logger
	}

	return &Simulator{
		config: config,
		logger: config.Logger.WithPrefix("sim"),
		engine: engine,
	}, nil
}

// Run plays all games on a bounded worker pool. Game i is seeded with
// Seed+i, so results do not depend on scheduling. A zero Seed is replaced
// by a time-based one in New.
func (s *Simulator) Run(ctx context.Context) (*Stats, error) {
	stats := &Stats{Strategy: s.config.Strategy, Seed: s.config.Seed}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	s.logger.Info("Starting simulation",
		"games", s.config.Games, "workers", s.config.Workers,
		"strategy", s.config.Strategy, "seed", s.config.Seed)

	for i := 0; i < s.config.Games; i++ {
		if gctx.Err() != nil {
			break
		}
		seed := s.config.Seed + int64(i)

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			summary, err := s.playGame(seed)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, seed, err)
			}

			mu.Lock()
			stats.Add(summary)
			done := stats.Games
			mu.Unlock()

			if done%1000 == 0 {
				s.logger.Debug("Progress", "games", done)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation complete",
		"games", stats.Games, "player_wins", stats.PlayerWins,
		"bot_wins", stats.BotWins, "mean_rounds", fmt.Sprintf("%.2f", stats.MeanRounds()))
	return stats, nil
}

// playGame plays one game to completion
func (s *Simulator) playGame(seed int64) (game.Summary, error) {
	chooser, err := NewChooser(s.config.Strategy, randutil.New(seed^chooserSalt))
	if err != nil {
		return game.Summary{}, err
	}

	g := game.New(
		game.WithSeed(seed),
		game.WithClock(s.config.Clock),
		game.WithLogger(s.engine),
	)
	g.StartNewGame()

	for rounds := 0; !g.IsOver(); rounds++ {
		if rounds >= maxRounds {
			return game.Summary{}, fmt.Errorf("no result after %d rounds", maxRounds)
		}
		if _, err := g.PlayCard(chooser.Choose(g.PlayerHand())); err != nil {
			return game.Summary{}, err
		}
	}

	return g.Summary(), nil
}

// WriteReport writes stats as indented JSON, replacing filename atomically
func WriteReport(filename string, stats *Stats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return fileutil.WriteFileAtomic(filename, append(data, '\n'), 0o644)
}
