package deck

import rand "math/rand/v2"

// Size is the number of cards in a standard deck
const Size = 52

// New returns a standard 52-card deck in canonical order: suits ♥ ♦ ♣ ♠,
// and within each suit ranks from King down to Ace.
func New() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Shuffle returns a Fisher-Yates permutation of cards. The input is left untouched.
func Shuffle(cards []Card, rng *rand.Rand) []Card {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// IndexOf returns the position of the card with the same ID, or -1
func IndexOf(cards []Card, card Card) int {
	for i, c := range cards {
		if c.ID() == card.ID() {
			return i
		}
	}
	return -1
}

// Contains reports whether cards holds a card with the same ID
func Contains(cards []Card, card Card) bool {
	return IndexOf(cards, card) >= 0
}

// Remove returns a copy of cards without the card with the same ID.
// The second result is false when the card was not present.
func Remove(cards []Card, card Card) ([]Card, bool) {
	idx := IndexOf(cards, card)
	if idx < 0 {
		return cards, false
	}

	out := make([]Card, 0, len(cards)-1)
	out = append(out, cards[:idx]...)
	out = append(out, cards[idx+1:]...)
	return out, true
}
