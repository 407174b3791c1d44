package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Model is the Bubble Tea model for one game session.
//
// Every clock tick and key press is stepped through the game as soon as it
// arrives, so events are never coalesced or reordered.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	logger    *log.Logger
	player    string
	keys      KeyMap
	help      help.Model
	hold      Hold
	repeat    time.Duration
	now       func() time.Time
	elapsed   int // Next clock counter to deliver
	gameState core.GameState
	quitting  bool
	saved     bool // Whether the current round has been recorded
	best      int  // Highest recorded score for this mode
}

// NewModel creates a new Bubble Tea model for the given game.
// The store may be nil, in which case rounds are not recorded.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.ShowAll = false

	best := 0
	if store != nil {
		// A failed lookup only hides the best score.
		best, _ = store.HighScore(game.ID())
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		store:  store,
		config: cfg,
		logger: log.New(io.Discard),
		keys:   DefaultKeyMap(),
		help:   h,
		hold:   NewHold(DefaultReleaseWindow),
		repeat: DefaultRepeatInterval,
		now:    time.Now,
		best:   best,
	}
}

// WithLogger returns a copy of the model that logs session events to l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// WithPlayer returns a copy of the model that records rounds under name.
func (m Model) WithPlayer(name string) Model {
	m.player = name
	return m
}

// Init starts the game and the clock.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "mode", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case repeatMsg:
		return m.handleRepeat(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		m.step(core.ActionInput(core.ActionEnd))
		m.quitting = true
		return m, tea.Quit
	}

	action := m.keys.Action(msg)
	if dir := direction(action); dir != 0 {
		// Auto-repeat presses of a held key only refresh the hold.
		if !m.hold.Press(dir, m.now()) {
			return m, nil
		}
		cmd := m.step(core.ActionInput(action))
		return m, tea.Batch(cmd, repeatCmd(m.repeat, m.hold.Generation()))
	}

	if action == core.ActionNone {
		return m, nil
	}
	cmd := m.step(core.ActionInput(action))
	return m, cmd
}

// handleRepeat moves the ship again while its direction key is held.
func (m Model) handleRepeat(msg repeatMsg) (tea.Model, tea.Cmd) {
	dir, ok := m.hold.Repeat(msg.gen, msg.at)
	if !ok || m.quitting {
		return m, nil
	}

	action := core.ActionRight
	if dir < 0 {
		action = core.ActionLeft
	}
	cmd := m.step(core.ActionInput(action))
	return m, tea.Batch(cmd, repeatCmd(m.repeat, msg.gen))
}

// handleResize processes window resize events.
// The simulation works in canvas units, so only the screen changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick delivers the next clock counter to the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	in := core.TickInput(m.elapsed)
	m.elapsed++
	if cmd := m.step(in); cmd != nil {
		return m, cmd
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// step runs one input through the game and reacts to the resulting state.
// It returns tea.Quit once the game has ended.
func (m *Model) step(in core.Input) tea.Cmd {
	prev := m.gameState
	m.gameState = m.game.Step(in).State
	st := m.gameState

	if st.Restarting {
		m.logger.Info("round restarted", "mode", m.game.ID())
	}

	switch {
	case st.RoundOver && !prev.RoundOver && !m.saved:
		m.logger.Info("round over", "mode", m.game.ID(), "score", st.Score, "ticks", st.Tick)
		m.recordRound(st)
		m.saved = true
	case !st.RoundOver:
		m.saved = false
	}

	if st.Terminated {
		m.hold.Release()
		m.logger.Info("game ended", "mode", m.game.ID(), "score", st.Score)
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// recordRound saves the finished round. Saving is best-effort.
func (m *Model) recordRound(st core.GameState) {
	if m.store == nil || st.Score <= 0 {
		return
	}
	_, err := m.store.SaveRound(storage.Round{
		Mode:   m.game.ID(),
		Player: m.player,
		Score:  st.Score,
		Ticks:  st.Tick,
	})
	if err != nil {
		m.logger.Warn("could not save round", "error", err)
		return
	}
	if st.Score > m.best {
		m.best = st.Score
		m.logger.Info("new best score", "mode", m.game.ID(), "score", st.Score)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

var (
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	bestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	if m.store != nil {
		b.WriteString(bestStyle.Render(fmt.Sprintf("Best: %d", m.best)))
		b.WriteString("  ")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Best returns the highest recorded score for the session's mode.
func (m Model) Best() int {
	return m.best
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
