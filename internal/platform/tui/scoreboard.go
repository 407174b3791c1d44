package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

const maxScores = 100 // Rounds loaded per mode

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle  = tabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
	statsStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "close")),
	}
}

// ScoreboardModel shows the best rounds of one mode at a time.
type ScoreboardModel struct {
	modes  []registry.GameInfo
	cursor int
	store  *storage.Store
	rounds []storage.Round
	stats  *storage.ModeStats
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
	closed bool
}

// NewScoreboardModel creates a scoreboard over store. The given mode is
// selected first when registered; a nil store shows empty boards.
func NewScoreboardModel(store *storage.Store, mode string, width, height int) ScoreboardModel {
	modes := registry.List()

	cursor := 0
	for i, g := range modes {
		if g.ID == mode {
			cursor = i
		}
	}

	m := ScoreboardModel{
		modes:  modes,
		cursor: cursor,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

// newTable sizes the rounds table to the window. The player column takes
// whatever width the fixed columns leave.
func (m *ScoreboardModel) newTable() table.Model {
	const fixed = 6 + 8 + 8 + 14
	player := core.Max(12, core.Min(m.width-fixed-12, 24))

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Player", Width: player},
			{Title: "Ticks", Width: 8},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the rounds and stats of the selected mode. Ledger errors leave
// the board empty.
func (m *ScoreboardModel) load() {
	m.rounds, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		mode := m.modes[m.cursor].ID
		if rounds, err := m.store.TopScores(mode, maxScores); err == nil {
			m.rounds = rounds
		}
		if stats, err := m.store.Stats(mode); err == nil && stats.Rounds > 0 {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(r.Score),
			player,
			strconv.Itoa(r.Ticks),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.closed = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// step moves the mode selection by delta, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.modes)) % len(m.modes)
	m.load()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.closed {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.modes) > 0 {
		title += " - " + m.modes[m.cursor].Title
	}

	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(g.ID)
		} else {
			tabs[i] = tabStyle.Render(g.ID)
		}
	}

	body := emptyStyle.Render("No rounds recorded yet.\nPlay a round to set a high score!")
	if len(m.rounds) > 0 {
		body = m.table.View()
	}

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardTitleStyle.Render(title)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, strings.Join(tabs, " ")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardStyle.Render(body)))
	b.WriteString("\n")
	if m.stats != nil {
		line := fmt.Sprintf("Rounds: %d  Best: %d  Average: %.1f  Ticks played: %d",
			m.stats.Rounds, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalTicks)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, statsStyle.Render(line)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunScoreboard runs the scoreboard screen until it is closed.
func RunScoreboard(store *storage.Store, mode string, width, height int) error {
	_, err := tea.NewProgram(
		NewScoreboardModel(store, mode, width, height),
		tea.WithAltScreen(),
	).Run()
	return err
}
