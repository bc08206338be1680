package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/cardwar/internal/deck"
	"github.com/lox/cardwar/internal/game"
)

const (
	handPane = iota
	logPane
)

const sidebarWidth = 34

// Model is the Bubble Tea model for a War session. It owns the engine for
// the lifetime of the program; all mutations happen inside Update.
type Model struct {
	game   *game.Game
	logger *log.Logger

	// UI components
	logViewport viewport.Model
	help        help.Model
	keys        keyMap

	// State
	cursor      int
	focusedPane int
	status      string
	quitting    bool

	// Dimensions
	width  int
	height int
}

// NewModel creates the model and starts the first game
func NewModel(g *game.Game, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	m := &Model{
		game:        g,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		help:        help.New(),
		keys:        defaultKeyMap(),
		focusedPane: handPane,
	}
	m.newGame()
	return m
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("cardwar")
}

// Game returns the engine driven by this model
func (m *Model) Game() *game.Game {
	return m.game
}

// Cursor returns the index of the selected card in the player's hand
func (m *Model) Cursor() int {
	return m.cursor
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		m.resize()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.logger.Info("Player quit", "game", m.game.ID())
			return m, tea.Quit

		case key.Matches(msg, m.keys.Focus):
			if m.focusedPane == handPane {
				m.focusedPane = logPane
			} else {
				m.focusedPane = handPane
			}
			m.help.ShowAll = m.focusedPane == logPane

		case key.Matches(msg, m.keys.NewGame):
			m.newGame()

		case m.focusedPane == logPane:
			var cmd tea.Cmd
			switch {
			case key.Matches(msg, m.keys.PageUp):
				m.logViewport.HalfPageUp()
			case key.Matches(msg, m.keys.PageDn):
				m.logViewport.HalfPageDown()
			default:
				m.logViewport, cmd = m.logViewport.Update(msg)
			}
			cmds = append(cmds, cmd)

		case key.Matches(msg, m.keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Right):
			if m.cursor < len(m.game.PlayerHand())-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Pick):
			idx := int(msg.String()[0] - '1')
			if idx < len(m.game.PlayerHand()) {
				m.cursor = idx
				m.play()
			}

		case key.Matches(msg, m.keys.Play):
			m.play()
		}
	}

	return m, tea.Batch(cmds...)
}

// newGame resets the engine and the view state
func (m *Model) newGame() {
	m.game.StartNewGame()
	m.cursor = 0
	m.status = ""
	m.refreshLog()
	m.logViewport.GotoTop()
}

// play plays the selected card
func (m *Model) play() {
	hand := m.game.PlayerHand()
	if len(hand) == 0 {
		return
	}
	if m.cursor >= len(hand) {
		m.cursor = len(hand) - 1
	}

	card := hand[m.cursor]
	round, err := m.game.PlayCard(card)
	switch {
	case errors.Is(err, game.ErrCardNotInHand):
		m.logger.Error("Selected card not in hand", "card", card, "error", err)
		m.status = err.Error()
		return
	case err != nil:
		m.logger.Error("Play failed", "error", err)
		m.status = err.Error()
		return
	case round == nil:
		return
	}

	m.logger.Info("Round played", "round", round.Number, "result", round.Message())
	m.status = ""

	if n := len(m.game.PlayerHand()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	m.refreshLog()
	// Newest entries are at the top
	m.logViewport.GotoTop()
}

// refreshLog copies the engine's game log into the viewport
func (m *Model) refreshLog() {
	m.logViewport.SetContent(strings.Join(m.game.GameLog(), "\n"))
}

// resize lays out the log viewport inside the sidebar
func (m *Model) resize() {
	// Sidebar: border (2) + scores block + log title
	height := m.height - 2 - lipgloss.Height(m.renderScores()) - 2
	m.logViewport.Width = max(sidebarWidth-2, 1)
	m.logViewport.Height = max(height, 1)
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	tableWidth := max(m.width-sidebarWidth-4, 1)
	tableHeight := max(m.height-2, 1)

	table := TableStyle.
		Width(tableWidth).
		Height(tableHeight).
		Render(m.renderTable())

	sidebarBorder := PaneBorderColor
	if m.focusedPane == logPane {
		sidebarBorder = FocusBorderColor
	}
	sidebar := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(sidebarBorder).
		Width(sidebarWidth).
		Height(tableHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			m.renderScores(),
			LabelStyle.Render("Game Log"),
			m.logViewport.View(),
		))

	return lipgloss.JoinHorizontal(lipgloss.Top, table, sidebar)
}

// renderTable draws the bot hand, center cards, player hand and footer
func (m *Model) renderTable() string {
	snap := m.game.Snapshot()

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" ♠ ♥ War ♦ ♣ "))
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render(fmt.Sprintf("Bot (%d)", len(snap.BotHand))))
	b.WriteString("\n")
	b.WriteString(m.renderBacks(len(snap.BotHand)))
	b.WriteString("\n\n")

	b.WriteString(m.renderCenter(snap.Center))
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render(fmt.Sprintf("You (%d)", len(snap.PlayerHand))))
	b.WriteString("\n")
	b.WriteString(m.renderHand(snap.PlayerHand))
	b.WriteString("\n\n")

	if snap.Over {
		b.WriteString(BannerStyle.Render(gameOverText(snap.Winner)))
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("Press n to play again"))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(ErrorStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderScores renders the score block at the top of the sidebar
func (m *Model) renderScores() string {
	var b strings.Builder
	b.WriteString(LabelStyle.Render("Scores"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Bot: %s\n", ScoreStyle.Render(fmt.Sprint(m.game.BotScore()))))
	b.WriteString(fmt.Sprintf("You: %s\n", ScoreStyle.Render(fmt.Sprint(m.game.PlayerScore()))))
	b.WriteString(InfoStyle.Render(fmt.Sprintf("Reserve: %d", len(m.game.Deck()))))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("Game " + shortID(m.game.ID())))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderBacks(n int) string {
	if n == 0 {
		return InfoStyle.Render("(empty)")
	}
	backs := make([]string, n)
	for i := range backs {
		backs[i] = CardBackStyle.Render("░░")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, backs...)
}

func (m *Model) renderCenter(center game.Center) string {
	if center.Player == nil && center.Bot == nil {
		return InfoStyle.Render("Pick a card to play")
	}
	var parts []string
	if center.Bot != nil {
		parts = append(parts, lipgloss.JoinVertical(lipgloss.Center, InfoStyle.Render("Bot"), CardStyle.Render(formatCard(*center.Bot))))
	}
	if center.Player != nil {
		parts = append(parts, lipgloss.JoinVertical(lipgloss.Center, InfoStyle.Render("You"), CardStyle.Render(formatCard(*center.Player))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
}

func (m *Model) renderHand(hand []deck.Card) string {
	if len(hand) == 0 {
		return InfoStyle.Render("(empty)")
	}
	cards := make([]string, len(hand))
	for i, c := range hand {
		style := CardStyle
		if i == m.cursor && m.focusedPane == handPane {
			style = SelectedCardStyle
		}
		cards[i] = style.Render(formatCard(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// formatCard renders a card face in its suit colour
func formatCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

func gameOverText(winner game.Side) string {
	if winner == game.Player {
		return "Game Over! You Win!"
	}
	return "Game Over! Bot Wins!"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}

// Run starts the interactive program and blocks until the player quits
func Run(g *game.Game, logger *log.Logger, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(NewModel(g, logger), opts...).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
