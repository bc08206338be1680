package game

import (
	"errors"
	"fmt"

	"github.com/lox/cardwar/internal/deck"
)

// ErrCardNotInHand is returned by PlayCard for a card the player does not hold
var ErrCardNotInHand = errors.New("card not in player hand")

// Outcome is the result of a single round
type Outcome int

const (
	PlayerWin Outcome = iota
	BotWin
	Draw
)

func (o Outcome) String() string {
	switch o {
	case PlayerWin:
		return "player_win"
	case BotWin:
		return "bot_win"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Round records one resolved round
type Round struct {
	Number     int
	PlayerCard deck.Card
	BotCard    deck.Card
	Outcome    Outcome
	// Drawn is true when a draw refilled both hands from the reserve
	Drawn bool
}

// Message renders the round as a game log line
func (r Round) Message() string {
	switch r.Outcome {
	case PlayerWin:
		return fmt.Sprintf("Player wins with %s vs %s", r.PlayerCard, r.BotCard)
	case BotWin:
		return fmt.Sprintf("Bot wins with %s vs %s", r.BotCard, r.PlayerCard)
	default:
		return fmt.Sprintf("Draw with %s, Draw 1 card", r.PlayerCard)
	}
}

// PlayCard plays card from the player's hand against the first card of the
// bot's hand and resolves the round.
//
// When the bot has no cards left the call does nothing and returns a nil
// round. A card the player does not hold returns ErrCardNotInHand and
// leaves the state untouched.
func (g *Game) PlayCard(card deck.Card) (*Round, error) {
	if len(g.botHand) == 0 {
		return nil, nil
	}

	playerHand, ok := deck.Remove(g.playerHand, card)
	if !ok {
		return nil, fmt.Errorf("play %s: %w", card, ErrCardNotInHand)
	}

	botCard := g.botHand[0]

	// The pair already in the center leaves play
	if g.center.Player != nil {
		g.discard = append(g.discard, *g.center.Player)
	}
	if g.center.Bot != nil {
		g.discard = append(g.discard, *g.center.Bot)
	}
	playerCard := card
	g.center = Center{Player: &playerCard, Bot: &botCard}

	g.playerHand = playerHand
	g.botHand = g.botHand[1:]

	round := Round{
		Number:     len(g.rounds) + 1,
		PlayerCard: card,
		BotCard:    botCard,
	}

	switch {
	case card.Value() > botCard.Value():
		round.Outcome = PlayerWin
		g.playerScore++
	case card.Value() < botCard.Value():
		round.Outcome = BotWin
		g.botScore++
	default:
		round.Outcome = Draw
		if len(g.reserve) >= 2 {
			g.playerHand = append(g.playerHand, g.reserve[0])
			g.botHand = append(g.botHand, g.reserve[1])
			g.reserve = g.reserve[2:]
			round.Drawn = true
		}
	}

	g.log = append([]string{round.Message()}, g.log...)
	g.rounds = append(g.rounds, round)

	g.logger.Debug("Round resolved",
		"round", round.Number,
		"player", card,
		"bot", botCard,
		"outcome", round.Outcome,
		"drawn", round.Drawn,
		"score", fmt.Sprintf("%d-%d", g.playerScore, g.botScore))

	if g.IsOver() {
		g.finishedAt = g.clock.Now()
		g.logger.Info("Game over", "id", g.id, "winner", g.Winner(),
			"player", g.playerScore, "bot", g.botScore, "rounds", len(g.rounds))
	}

	return &round, nil
}
