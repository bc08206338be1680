package game

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/cardwar/internal/deck"
	"github.com/lox/cardwar/internal/gameid"
	"github.com/lox/cardwar/internal/randutil"
)

// Option configures a Game during creation.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	seed   int64
	seeded bool
	clock  quartz.Clock
	logger *log.Logger
	deck   []deck.Card // If set, dealt as-is instead of a shuffled deck
}

// WithSeed seeds the shuffle RNG. Without it (or WithRNG) the wall clock is used.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
		c.rng = nil
	}
}

// WithRNG sets the RNG used for shuffling. It overrides WithSeed.
func WithRNG(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithClock sets the clock used for game timestamps.
func WithClock(clock quartz.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithDeck deals the given cards in order instead of a freshly shuffled
// deck, on every StartNewGame. It is meant for tests and replays; the
// cards must be a full 52-card deck.
func WithDeck(cards []deck.Card) Option {
	return func(c *config) {
		c.deck = append([]deck.Card(nil), cards...)
	}
}

// New creates a game. Call StartNewGame before playing.
func New(opts ...Option) *Game {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	switch {
	case cfg.rng != nil:
	case cfg.seeded:
		cfg.rng = randutil.New(cfg.seed)
	default:
		cfg.rng, cfg.seed = randutil.NewOrTime(0)
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.deck != nil && len(cfg.deck) != deck.Size {
		panic("fixed deck must hold a full 52 cards")
	}

	return &Game{
		rng:    cfg.rng,
		seed:   cfg.seed,
		clock:  cfg.clock,
		logger: cfg.logger.WithPrefix("game"),
		fixed:  cfg.deck,
		ids:    gameid.NewGenerator(cfg.rng, cfg.clock),
	}
}
