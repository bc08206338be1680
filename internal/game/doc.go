// Package game implements the War engine: a human player against a bot,
// each holding seven cards, comparing one card per round.
//
// The main type is Game, which owns the deck reserve, both hands, the
// scores, the center cards and the newest-first game log.
//
// # Basic Usage
//
//	g := game.New(game.WithSeed(42))
//	g.StartNewGame()
//	round, err := g.PlayCard(g.PlayerHand()[0])
//	if g.IsOver() {
//	    fmt.Println(g.Winner())
//	}
//
// # Rules
//
// The bot always plays the first card of its hand. The higher value scores
// a point. Equal values score nothing and, while the reserve holds at least
// two cards, each side draws one card from its front (player first). The
// game ends when both hands are empty; a tied score is a bot win.
//
// # Deterministic Testing
//
// Randomness and time are injected. Use WithSeed or WithRNG for a fixed
// shuffle and WithClock with a quartz mock for fixed timestamps:
//
//	g := game.New(game.WithRNG(randutil.New(7)), game.WithClock(quartz.NewMock(t)))
//
// A Game is not safe for concurrent use. Each driver (the TUI update loop,
// a simulator worker) owns its own instance.
package game
