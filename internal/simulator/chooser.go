package simulator

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/cardwar/internal/deck"
)

// Chooser picks which card the simulated player plays from its hand.
// The hand is never empty when Choose is called.
type Chooser interface {
	Choose(hand []deck.Card) deck.Card
}

// ChooserFunc adapts a function to the Chooser interface
type ChooserFunc func(hand []deck.Card) deck.Card

// Choose calls f(hand)
func (f ChooserFunc) Choose(hand []deck.Card) deck.Card { return f(hand) }

// NewChooser returns the named built-in strategy. rng is only used by "random".
func NewChooser(name string, rng *rand.Rand) (Chooser, error) {
	switch name {
	case "first":
		return ChooserFunc(func(hand []deck.Card) deck.Card { return hand[0] }), nil
	case "random":
		if rng == nil {
			return nil, fmt.Errorf("random strategy requires an rng")
		}
		return ChooserFunc(func(hand []deck.Card) deck.Card { return hand[rng.IntN(len(hand))] }), nil
	case "highest":
		return ChooserFunc(func(hand []deck.Card) deck.Card { return pick(hand, func(a, b deck.Card) bool { return a.Value() > b.Value() }) }), nil
	case "lowest":
		return ChooserFunc(func(hand []deck.Card) deck.Card { return pick(hand, func(a, b deck.Card) bool { return a.Value() < b.Value() }) }), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// pick returns the first card for which better holds against every other card
func pick(hand []deck.Card, better func(a, b deck.Card) bool) deck.Card {
	best := hand[0]
	for _, c := range hand[1:] {
		if better(c, best) {
			best = c
		}
	}
	return best
}
