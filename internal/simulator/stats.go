package simulator

import (
	"fmt"
	"math"

	"github.com/lox/cardwar/internal/game"
)

// Stats aggregates the outcome of many simulated games
type Stats struct {
	Strategy   string `json:"strategy"`
	Seed       int64  `json:"seed"`
	Games      int    `json:"games"`
	PlayerWins int    `json:"player_wins"`
	BotWins    int    `json:"bot_wins"`
	// TiedScores are games that ended level; they are included in BotWins
	TiedScores int `json:"tied_scores"`
	Rounds     int `json:"rounds"`
	Draws      int `json:"draws"`
	Refills    int `json:"refills"`
	MaxRounds  int `json:"max_rounds"`
}

// Add records one finished game
func (s *Stats) Add(summary game.Summary) {
	s.Games++
	if summary.Winner == game.Player {
		s.PlayerWins++
	} else {
		s.BotWins++
	}
	if summary.Tied {
		s.TiedScores++
	}
	s.Rounds += summary.Rounds
	s.Draws += summary.Draws
	s.Refills += summary.Refills
	if summary.Rounds > s.MaxRounds {
		s.MaxRounds = summary.Rounds
	}
}

// PlayerWinRate returns the fraction of games won by the player
func (s *Stats) PlayerWinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.PlayerWins) / float64(s.Games)
}

// MeanRounds returns the average number of rounds per game
func (s *Stats) MeanRounds() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Rounds) / float64(s.Games)
}

// StdError returns the standard error of the player win rate
func (s *Stats) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	p := s.PlayerWinRate()
	return math.Sqrt(p * (1 - p) / float64(s.Games))
}

// Validate checks the totals are internally consistent
func (s *Stats) Validate() error {
	if s.PlayerWins+s.BotWins != s.Games {
		return fmt.Errorf("wins (%d+%d) do not sum to games (%d)", s.PlayerWins, s.BotWins, s.Games)
	}
	if s.TiedScores > s.BotWins {
		return fmt.Errorf("tied scores (%d) exceed bot wins (%d)", s.TiedScores, s.BotWins)
	}
	if s.Refills > s.Draws {
		return fmt.Errorf("refills (%d) exceed draws (%d)", s.Refills, s.Draws)
	}
	// Each game lasts seven rounds plus one per refill
	if s.Rounds != s.Games*game.HandSize+s.Refills {
		return fmt.Errorf("rounds (%d) inconsistent with %d games and %d refills", s.Rounds, s.Games, s.Refills)
	}
	return nil
}
