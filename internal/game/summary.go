package game

import "time"

// IsOver reports whether both hands are empty
func (g *Game) IsOver() bool {
	return len(g.playerHand) == 0 && len(g.botHand) == 0
}

// Winner returns the side with the higher score. A tied score goes to the bot.
// The result is only meaningful once IsOver is true.
func (g *Game) Winner() Side {
	if g.playerScore > g.botScore {
		return Player
	}
	return Bot
}

// Summary describes a finished (or in-progress) game
type Summary struct {
	ID          string
	Seed        int64
	PlayerScore int
	BotScore    int
	Winner      Side
	Tied        bool
	Rounds      int
	Draws       int
	// Refills counts draws that dealt new cards from the reserve
	Refills  int
	Over     bool
	Duration time.Duration
}

// Summary returns the current totals
func (g *Game) Summary() Summary {
	s := Summary{
		ID:          g.id,
		Seed:        g.seed,
		PlayerScore: g.playerScore,
		BotScore:    g.botScore,
		Winner:      g.Winner(),
		Tied:        g.playerScore == g.botScore,
		Rounds:      len(g.rounds),
		Over:        g.IsOver(),
	}
	for _, r := range g.rounds {
		if r.Outcome == Draw {
			s.Draws++
			if r.Drawn {
				s.Refills++
			}
		}
	}

	end := g.finishedAt
	if end.IsZero() {
		end = g.clock.Now()
	}
	if !g.startedAt.IsZero() {
		s.Duration = end.Sub(g.startedAt)
	}
	return s
}
