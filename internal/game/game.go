package game

import (
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/cardwar/internal/deck"
	"github.com/lox/cardwar/internal/gameid"
)

// HandSize is the number of cards dealt to each side
const HandSize = 7

// Side identifies the human player or the bot
type Side int

const (
	Player Side = iota
	Bot
)

func (s Side) String() string {
	if s == Player {
		return "Player"
	}
	return "Bot"
}

// Center holds the most recently played pair. Both are nil before the first round.
type Center struct {
	Player *deck.Card
	Bot    *deck.Card
}

// Occupied returns how many center slots hold a card
func (c Center) Occupied() int {
	n := 0
	if c.Player != nil {
		n++
	}
	if c.Bot != nil {
		n++
	}
	return n
}

// Game is the War engine state for one session
type Game struct {
	rng    *rand.Rand
	seed   int64
	clock  quartz.Clock
	logger *log.Logger
	fixed  []deck.Card
	ids    *gameid.Generator

	id          string
	reserve     []deck.Card
	playerHand  []deck.Card
	botHand     []deck.Card
	playerScore int
	botScore    int
	center      Center
	discard     []deck.Card
	log         []string
	rounds      []Round
	startedAt   time.Time
	finishedAt  time.Time
}

// StartNewGame discards all state, shuffles a fresh deck and deals
// seven cards to each side. The remaining 38 cards form the reserve.
func (g *Game) StartNewGame() {
	cards := g.fixed
	if cards == nil {
		cards = deck.Shuffle(deck.New(), g.rng)
	} else {
		cards = append([]deck.Card(nil), cards...)
	}

	g.playerHand = append([]deck.Card(nil), cards[:HandSize]...)
	g.botHand = append([]deck.Card(nil), cards[HandSize:2*HandSize]...)
	g.reserve = append([]deck.Card(nil), cards[2*HandSize:]...)
	g.playerScore = 0
	g.botScore = 0
	g.center = Center{}
	g.discard = nil
	g.log = nil
	g.rounds = nil
	g.id = g.ids.Generate()
	g.startedAt = g.clock.Now()
	g.finishedAt = time.Time{}

	g.logger.Info("New game", "id", g.id, "seed", g.seed, "reserve", len(g.reserve))
}

// ID returns the current game's identifier
func (g *Game) ID() string { return g.id }

// Seed returns the seed the shuffle RNG was created from
func (g *Game) Seed() int64 { return g.seed }

// Deck returns a copy of the undealt reserve
func (g *Game) Deck() []deck.Card { return clone(g.reserve) }

// PlayerHand returns a copy of the player's hand
func (g *Game) PlayerHand() []deck.Card { return clone(g.playerHand) }

// BotHand returns a copy of the bot's hand
func (g *Game) BotHand() []deck.Card { return clone(g.botHand) }

// PlayerScore returns the player's score
func (g *Game) PlayerScore() int { return g.playerScore }

// BotScore returns the bot's score
func (g *Game) BotScore() int { return g.botScore }

// CenterCards returns the most recently played pair
func (g *Game) CenterCards() Center {
	c := Center{}
	if g.center.Player != nil {
		p := *g.center.Player
		c.Player = &p
	}
	if g.center.Bot != nil {
		b := *g.center.Bot
		c.Bot = &b
	}
	return c
}

// Discard returns the cards from earlier rounds that have left the center
func (g *Game) Discard() []deck.Card { return clone(g.discard) }

// GameLog returns the outcome messages, newest first
func (g *Game) GameLog() []string {
	if g.log == nil {
		return []string{}
	}
	out := make([]string, len(g.log))
	copy(out, g.log)
	return out
}

// Rounds returns the resolved rounds, oldest first
func (g *Game) Rounds() []Round {
	out := make([]Round, len(g.rounds))
	copy(out, g.rounds)
	return out
}

// CardsAccounted counts every card across reserve, hands, center and discard.
// It is always deck.Size once a game has started.
func (g *Game) CardsAccounted() int {
	return len(g.reserve) + len(g.playerHand) + len(g.botHand) + g.center.Occupied() + len(g.discard)
}

// Snapshot is a read-only copy of the whole game state for rendering
type Snapshot struct {
	ID          string
	Deck        []deck.Card
	PlayerHand  []deck.Card
	BotHand     []deck.Card
	PlayerScore int
	BotScore    int
	Center      Center
	Log         []string
	Rounds      int
	Over        bool
	Winner      Side
}

// Snapshot returns a copy of the current state
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		ID:          g.id,
		Deck:        g.Deck(),
		PlayerHand:  g.PlayerHand(),
		BotHand:     g.BotHand(),
		PlayerScore: g.playerScore,
		BotScore:    g.botScore,
		Center:      g.CenterCards(),
		Log:         g.GameLog(),
		Rounds:      len(g.rounds),
		Over:        g.IsOver(),
		Winner:      g.Winner(),
	}
}

func clone(cards []deck.Card) []deck.Card {
	out := make([]deck.Card, len(cards))
	copy(out, cards)
	return out
}
