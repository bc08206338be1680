package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in canonical deck order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Color returns the display color of the suit
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Color is the display attribute derived from a suit
type Color int

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Rank represents a card rank. The numeric value is the rank's
// comparison value: Ace is low (1) and King is high (13).
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists every rank in canonical deck order (King down to Ace)
var Ranks = []Rank{King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two, Ace}

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		if r >= Two && r <= Nine {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// ID returns the card identity, its rank followed by its suit (e.g. "10♥").
// IDs are unique within a standard deck.
func (c Card) ID() string {
	return c.Rank.String() + c.Suit.String()
}

// String returns the string representation of a card (e.g., "K♠")
func (c Card) String() string {
	return c.ID()
}

// Value returns the numeric value of the card for comparison
func (c Card) Value() int {
	return int(c.Rank)
}

// Color returns the display color of the card
func (c Card) Color() Color {
	return c.Suit.Color()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Color() == Red
}

// ParseCard parses a card such as "K♠", "10h", "Td" or "as".
// Suits may be given as symbols or as one of the letters h, d, c, s.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("empty card")
	}

	runes := []rune(s)
	suitPart := string(runes[len(runes)-1])
	rankPart := strings.ToUpper(string(runes[:len(runes)-1]))

	suit, ok := parseSuit(suitPart)
	if !ok {
		return Card{}, fmt.Errorf("invalid suit %q in card %q", suitPart, s)
	}
	rank, ok := parseRank(rankPart)
	if !ok {
		return Card{}, fmt.Errorf("invalid rank %q in card %q", rankPart, s)
	}

	return NewCard(suit, rank), nil
}

// ParseCards parses a space or comma separated list of cards
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ','
	})

	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		card, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseSuit(s string) (Suit, bool) {
	switch strings.ToLower(s) {
	case "♥", "h":
		return Hearts, true
	case "♦", "d":
		return Diamonds, true
	case "♣", "c":
		return Clubs, true
	case "♠", "s":
		return Spades, true
	}
	return 0, false
}

func parseRank(s string) (Rank, bool) {
	switch s {
	case "A", "1":
		return Ace, true
	case "T", "10":
		return Ten, true
	case "J":
		return Jack, true
	case "Q":
		return Queen, true
	case "K":
		return King, true
	}
	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return Rank(s[0] - '0'), true
	}
	return 0, false
}
