package game

import (
	"github.com/lox/cardwar/internal/deck"
)

// StackedDeck returns a full 52-card deck whose first cards are the given
// player hand, bot hand and reserve front, in that order. Any card not named
// follows in canonical order. Hands shorter than HandSize are padded from
// the remaining cards, so callers only need to name the cards that matter.
//
// Used with WithDeck to script deterministic games.
func StackedDeck(player, bot, reserve []deck.Card) []deck.Card {
	used := make(map[string]bool)
	for _, group := range [][]deck.Card{player, bot, reserve} {
		for _, c := range group {
			if used[c.ID()] {
				panic("stacked deck repeats " + c.ID())
			}
			used[c.ID()] = true
		}
	}

	var rest []deck.Card
	for _, c := range deck.New() {
		if !used[c.ID()] {
			rest = append(rest, c)
		}
	}
	take := func(n int) []deck.Card {
		out := rest[:n]
		rest = rest[n:]
		return out
	}

	if len(player) > HandSize || len(bot) > HandSize {
		panic("stacked hand larger than HandSize")
	}

	out := make([]deck.Card, 0, deck.Size)
	out = append(out, player...)
	out = append(out, take(HandSize-len(player))...)
	out = append(out, bot...)
	out = append(out, take(HandSize-len(bot))...)
	out = append(out, reserve...)
	out = append(out, rest...)
	return out
}
