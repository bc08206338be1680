package game

import (
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/cardwar/internal/deck"
	"github.com/lox/cardwar/internal/gameid"
	"github.com/lox/cardwar/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newStackedGame(t *testing.T, player, bot, reserve string) *Game {
	t.Helper()
	g := New(
		WithDeck(StackedDeck(deck.MustParseCards(player), deck.MustParseCards(bot), deck.MustParseCards(reserve))),
		WithLogger(quietLogger()),
		WithClock(quartz.NewMock(t)),
	)
	g.StartNewGame()
	return g
}

// assertConservation checks that every card of the deck is in exactly one zone
func assertConservation(t *testing.T, g *Game) {
	t.Helper()

	var all []deck.Card
	all = append(all, g.Deck()...)
	all = append(all, g.PlayerHand()...)
	all = append(all, g.BotHand()...)
	all = append(all, g.Discard()...)
	center := g.CenterCards()
	if center.Player != nil {
		all = append(all, *center.Player)
	}
	if center.Bot != nil {
		all = append(all, *center.Bot)
	}

	require.Equal(t, deck.Size, g.CardsAccounted())
	require.ElementsMatch(t, deck.New(), all)
}

func TestStartNewGame(t *testing.T) {
	g := New(WithSeed(42), WithLogger(quietLogger()))
	g.StartNewGame()

	assert.Len(t, g.PlayerHand(), 7)
	assert.Len(t, g.BotHand(), 7)
	assert.Len(t, g.Deck(), 38)
	assert.Equal(t, 0, g.PlayerScore())
	assert.Equal(t, 0, g.BotScore())
	assert.Empty(t, g.GameLog())
	assert.Empty(t, g.Rounds())
	assert.Nil(t, g.CenterCards().Player)
	assert.Nil(t, g.CenterCards().Bot)
	assert.False(t, g.IsOver())
	assert.NoError(t, gameid.Validate(g.ID()))

	var all []deck.Card
	all = append(all, g.PlayerHand()...)
	all = append(all, g.BotHand()...)
	all = append(all, g.Deck()...)
	assert.ElementsMatch(t, deck.New(), all)
}

func TestStartNewGameResets(t *testing.T) {
	g := newStackedGame(t, "K♠", "2♥", "")
	firstID := g.ID()

	_, err := g.PlayCard(deck.NewCard(deck.Spades, deck.King))
	require.NoError(t, err)
	require.Equal(t, 1, g.PlayerScore())

	g.StartNewGame()
	assert.Equal(t, 0, g.PlayerScore())
	assert.Equal(t, 0, g.BotScore())
	assert.Empty(t, g.GameLog())
	assert.Empty(t, g.Discard())
	assert.Equal(t, Center{}, g.CenterCards())
	assert.Len(t, g.PlayerHand(), 7)
	assert.NotEqual(t, firstID, g.ID())
}

func TestSeededGamesAreReproducible(t *testing.T) {
	a := New(WithSeed(9), WithLogger(quietLogger()))
	b := New(WithSeed(9), WithLogger(quietLogger()))
	a.StartNewGame()
	b.StartNewGame()

	assert.Equal(t, a.PlayerHand(), b.PlayerHand())
	assert.Equal(t, a.BotHand(), b.BotHand())
	assert.Equal(t, a.Deck(), b.Deck())
	assert.Equal(t, int64(9), a.Seed())
}

func TestPlayCardPlayerWins(t *testing.T) {
	g := newStackedGame(t, "K♠", "2♥", "")
	deckBefore := g.Deck()

	round, err := g.PlayCard(deck.NewCard(deck.Spades, deck.King))
	require.NoError(t, err)
	require.NotNil(t, round)

	assert.Equal(t, PlayerWin, round.Outcome)
	assert.Equal(t, 1, g.PlayerScore())
	assert.Equal(t, 0, g.BotScore())
	require.Len(t, g.GameLog(), 1)
	assert.Equal(t, "Player wins with K♠ vs 2♥", g.GameLog()[0])

	assert.Len(t, g.PlayerHand(), 6)
	assert.Len(t, g.BotHand(), 6)
	assert.False(t, deck.Contains(g.PlayerHand(), deck.NewCard(deck.Spades, deck.King)))
	assert.False(t, deck.Contains(g.BotHand(), deck.NewCard(deck.Hearts, deck.Two)))
	assert.Equal(t, deckBefore, g.Deck(), "no cards drawn on a win")

	center := g.CenterCards()
	require.NotNil(t, center.Player)
	require.NotNil(t, center.Bot)
	assert.Equal(t, "K♠", center.Player.ID())
	assert.Equal(t, "2♥", center.Bot.ID())
}

func TestPlayCardBotWins(t *testing.T) {
	g := newStackedGame(t, "3♣", "Q♦", "")

	round, err := g.PlayCard(deck.NewCard(deck.Clubs, deck.Three))
	require.NoError(t, err)

	assert.Equal(t, BotWin, round.Outcome)
	assert.Equal(t, 0, g.PlayerScore())
	assert.Equal(t, 1, g.BotScore())
	assert.Equal(t, "Bot wins with Q♦ vs 3♣", g.GameLog()[0])
}

func TestPlayCardRemovesByIdentity(t *testing.T) {
	// The bot always plays its first card; the player may pick any position.
	g := newStackedGame(t, "A♣ 5♦ 9♥", "4♠ K♣", "")
	nine := deck.NewCard(deck.Hearts, deck.Nine)

	_, err := g.PlayCard(nine)
	require.NoError(t, err)

	hand := g.PlayerHand()
	assert.Equal(t, "A♣", hand[0].ID())
	assert.Equal(t, "5♦", hand[1].ID())
	assert.False(t, deck.Contains(hand, nine))
	assert.Equal(t, "K♣", g.BotHand()[0].ID())
	assert.Equal(t, "4♠", g.CenterCards().Bot.ID())
}

func TestPlayCardDrawRefillsFromReserve(t *testing.T) {
	g := newStackedGame(t, "7♠", "7♥", "Q♣ 3♦")
	playerBefore := len(g.PlayerHand())
	botBefore := len(g.BotHand())
	reserveBefore := len(g.Deck())

	round, err := g.PlayCard(deck.NewCard(deck.Spades, deck.Seven))
	require.NoError(t, err)

	assert.Equal(t, Draw, round.Outcome)
	assert.True(t, round.Drawn)
	assert.Equal(t, 0, g.PlayerScore())
	assert.Equal(t, 0, g.BotScore())
	assert.Equal(t, "Draw with 7♠, Draw 1 card", g.GameLog()[0])

	player := g.PlayerHand()
	bot := g.BotHand()
	assert.Len(t, player, playerBefore)
	assert.Len(t, bot, botBefore)
	assert.Equal(t, "Q♣", player[len(player)-1].ID(), "player draws the reserve front")
	assert.Equal(t, "3♦", bot[len(bot)-1].ID(), "bot draws the second card")
	assert.Len(t, g.Deck(), reserveBefore-2)
	assertConservation(t, g)
}

func TestPlayCardDrawWithShortReserve(t *testing.T) {
	for _, remaining := range []int{0, 1} {
		t.Run(fmt.Sprintf("reserve_%d", remaining), func(t *testing.T) {
			g := newStackedGame(t, "7♠", "7♥", "")
			// Move all but `remaining` reserve cards out of play
			g.discard = append(g.discard, g.reserve[remaining:]...)
			g.reserve = g.reserve[:remaining]

			round, err := g.PlayCard(deck.NewCard(deck.Spades, deck.Seven))
			require.NoError(t, err)

			assert.Equal(t, Draw, round.Outcome)
			assert.False(t, round.Drawn)
			assert.Len(t, g.PlayerHand(), 6)
			assert.Len(t, g.BotHand(), 6)
			assert.Len(t, g.Deck(), remaining)
			assert.Equal(t, "Draw with 7♠, Draw 1 card", g.GameLog()[0])
		})
	}
}

func TestPlayCardNotInHand(t *testing.T) {
	g := newStackedGame(t, "K♠", "2♥", "")
	before := g.Snapshot()

	round, err := g.PlayCard(deck.NewCard(deck.Hearts, deck.Two))
	assert.Nil(t, round)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCardNotInHand))
	assert.Equal(t, before, g.Snapshot(), "state must be untouched")
}

func TestGameLogIsNewestFirst(t *testing.T) {
	g := newStackedGame(t, "K♠ 3♣", "2♥ Q♦", "")

	_, err := g.PlayCard(deck.NewCard(deck.Spades, deck.King))
	require.NoError(t, err)
	_, err = g.PlayCard(deck.NewCard(deck.Clubs, deck.Three))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Bot wins with Q♦ vs 3♣",
		"Player wins with K♠ vs 2♥",
	}, g.GameLog())

	rounds := g.Rounds()
	require.Len(t, rounds, 2)
	assert.Equal(t, 1, rounds[0].Number)
	assert.Equal(t, 2, rounds[1].Number)

	// The first pair moved to the discard pile when the second was played
	assert.ElementsMatch(t, deck.MustParseCards("K♠ 2♥"), g.Discard())
	assertConservation(t, g)
}

func TestAccessorsReturnCopies(t *testing.T) {
	g := newStackedGame(t, "K♠", "2♥", "")
	_, err := g.PlayCard(deck.NewCard(deck.Spades, deck.King))
	require.NoError(t, err)

	hand := g.PlayerHand()
	hand[0] = deck.NewCard(deck.Clubs, deck.Ace)
	assert.NotEqual(t, hand[0], g.PlayerHand()[0])

	logLines := g.GameLog()
	logLines[0] = "tampered"
	assert.Equal(t, "Player wins with K♠ vs 2♥", g.GameLog()[0])

	center := g.CenterCards()
	*center.Player = deck.NewCard(deck.Clubs, deck.Ace)
	assert.Equal(t, "K♠", g.CenterCards().Player.ID())
}

func TestGameOverTieGoesToBot(t *testing.T) {
	// Win, loss, then a draw with no reserve left leaves the score 1-1.
	g := newStackedGame(t, "K♠ 3♣ 7♠", "2♥ Q♦ 7♥", "")
	g.discard = append(g.discard, g.playerHand[3:]...)
	g.discard = append(g.discard, g.botHand[3:]...)
	g.playerHand = g.playerHand[:3]
	g.botHand = g.botHand[:3]
	g.discard = append(g.discard, g.reserve...)
	g.reserve = nil

	for _, c := range deck.MustParseCards("K♠ 3♣ 7♠") {
		_, err := g.PlayCard(c)
		require.NoError(t, err)
	}

	require.True(t, g.IsOver())
	assert.Equal(t, 1, g.PlayerScore())
	assert.Equal(t, 1, g.BotScore())
	assert.Equal(t, Bot, g.Winner())

	s := g.Summary()
	assert.True(t, s.Over)
	assert.True(t, s.Tied)
	assert.Equal(t, Bot, s.Winner)
	assert.Equal(t, 3, s.Rounds)
	assert.Equal(t, 1, s.Draws)
	assert.Equal(t, 0, s.Refills)
}

func TestPlayCardAfterGameOverIsNoop(t *testing.T) {
	g := newStackedGame(t, "K♠", "2♥", "")
	g.discard = append(g.discard, g.playerHand[1:]...)
	g.discard = append(g.discard, g.botHand[1:]...)
	g.playerHand = g.playerHand[:1]
	g.botHand = g.botHand[:1]

	_, err := g.PlayCard(deck.NewCard(deck.Spades, deck.King))
	require.NoError(t, err)
	require.True(t, g.IsOver())
	assert.Equal(t, Player, g.Winner())

	before := g.Snapshot()
	round, err := g.PlayCard(deck.NewCard(deck.Spades, deck.King))
	assert.NoError(t, err)
	assert.Nil(t, round)
	assert.Equal(t, before, g.Snapshot())
}

func TestSummaryDuration(t *testing.T) {
	clock := quartz.NewMock(t)
	start := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	clock.Set(start)

	g := New(WithSeed(3), WithClock(clock), WithLogger(quietLogger()))
	g.StartNewGame()

	clock.Set(start.Add(90 * time.Second))
	assert.Equal(t, 90*time.Second, g.Summary().Duration)

	playOut(t, g, func(hand []deck.Card) deck.Card { return hand[0] })
	clock.Set(start.Add(10 * time.Minute))
	assert.Equal(t, 90*time.Second, g.Summary().Duration, "duration stops when the game ends")
}

// playOut plays the game to completion, checking conservation after every round
func playOut(t *testing.T, g *Game, choose func([]deck.Card) deck.Card) {
	t.Helper()
	for i := 0; !g.IsOver(); i++ {
		require.Less(t, i, 200, "game did not terminate")
		_, err := g.PlayCard(choose(g.PlayerHand()))
		require.NoError(t, err)
		assertConservation(t, g)
		require.Equal(t, len(g.PlayerHand()), len(g.BotHand()))
	}
}

func TestRandomGamesConserveCards(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		rng := randutil.New(seed * 31)
		g := New(WithSeed(seed), WithLogger(quietLogger()))
		g.StartNewGame()
		assertConservation(t, g)

		playOut(t, g, func(hand []deck.Card) deck.Card {
			return hand[rng.IntN(len(hand))]
		})

		s := g.Summary()
		assert.Equal(t, s.PlayerScore+s.BotScore+s.Draws, s.Rounds)
		assert.Equal(t, 7+s.Refills, s.Rounds, "each refill adds exactly one round")
		if s.PlayerScore > s.BotScore {
			assert.Equal(t, Player, g.Winner())
		} else {
			assert.Equal(t, Bot, g.Winner())
		}
	}
}
