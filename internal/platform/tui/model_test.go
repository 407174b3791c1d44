package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// stubGame records every input and lets a test script the resulting state.
type stubGame struct {
	inputs []core.Input
	state  core.GameState
	onStep func(in core.Input, st *core.GameState)
}

func (g *stubGame) ID() string { return "stub" }

func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }

func (g *stubGame) Render(dst *core.Screen) { dst.DrawTextColored(0, 0, "stub", core.ColorDefault) }

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) Step(in core.Input) core.StepResult {
	g.inputs = append(g.inputs, in)
	if g.onStep != nil {
		g.onStep(in, &g.state)
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) actions() []core.Action {
	out := make([]core.Action, len(g.inputs))
	for i, in := range g.inputs {
		out[i] = in.Action
	}
	return out
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestModel(g *stubGame, store *storage.Store) (Model, *fakeClock) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 100, Seed: 1})
	m.now = clock.now
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelClockCountsFromZero(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(g, nil)

	for i := 0; i < 3; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg(time.Now()))
		if cmd == nil {
			t.Fatal("tick should schedule the next tick")
		}
	}

	for i, in := range g.inputs {
		if in.Action != core.ActionTick || in.Elapsed != i {
			t.Errorf("input %d = %+v, expected Tick(%d)", i, in, i)
		}
	}
}

func TestModelHeldDirection(t *testing.T) {
	g := &stubGame{}
	m, clock := newTestModel(g, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if cmd == nil {
		t.Fatal("starting a hold should schedule a repeat")
	}
	gen := m.hold.Generation()

	// Native auto-repeat is suppressed.
	clock.t = clock.t.Add(30 * time.Millisecond)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	// Repeat timer keeps moving while the key is held.
	m, cmd = update(t, m, repeatMsg{gen: gen, at: clock.t.Add(10 * time.Millisecond)})
	if cmd == nil {
		t.Error("repeat should reschedule itself while held")
	}

	// After the release window the timer stops.
	m, cmd = update(t, m, repeatMsg{gen: gen, at: clock.t.Add(time.Second)})
	if cmd != nil {
		t.Error("lapsed hold should not reschedule")
	}

	expected := []core.Action{core.ActionLeft, core.ActionLeft}
	got := g.actions()
	if len(got) != len(expected) {
		t.Fatalf("actions = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("action %d = %s, expected %s", i, got[i], expected[i])
		}
	}
}

func TestModelFireIsPerPress(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(g, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, runeKey('r'))
	update(t, m, runeKey('x'))

	got := g.actions()
	expected := []core.Action{core.ActionFire, core.ActionFire, core.ActionRestart}
	if len(got) != len(expected) {
		t.Fatalf("actions = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("action %d = %s, expected %s", i, got[i], expected[i])
		}
	}
}

func TestModelRecordsRoundOnce(t *testing.T) {
	store, err := storage.Open("")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{onStep: func(in core.Input, st *core.GameState) {
		switch in.Action {
		case core.ActionTick:
			st.Tick = in.Elapsed
			if in.Elapsed >= 2 {
				st.RoundOver = true
				st.Score = 7
			}
		case core.ActionRestart:
			*st = core.GameState{Restarting: true}
		}
	}}
	m, _ := newTestModel(g, store)
	m = m.WithPlayer("ann")

	for i := 0; i < 5; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}

	rounds, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("expected 1 recorded round, got %d", len(rounds))
	}
	if rounds[0].Score != 7 || rounds[0].Player != "ann" || rounds[0].Ticks != 2 {
		t.Errorf("unexpected round %+v", rounds[0])
	}

	// A new round that ends again is recorded again.
	m, _ = update(t, m, runeKey('r'))
	update(t, m, TickMsg(time.Now()))

	rounds, _ = store.TopScores("stub", 10)
	if len(rounds) != 2 {
		t.Errorf("expected 2 recorded rounds, got %d", len(rounds))
	}
}

func TestModelTracksBestScore(t *testing.T) {
	store, err := storage.Open("")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRound(storage.Round{Mode: "stub", Score: 5}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	score := 3
	g := &stubGame{onStep: func(in core.Input, st *core.GameState) {
		switch in.Action {
		case core.ActionTick:
			st.RoundOver = true
			st.Score = score
		case core.ActionRestart:
			*st = core.GameState{Restarting: true}
		}
	}}
	m, _ := newTestModel(g, store)
	if m.Best() != 5 {
		t.Fatalf("Best() = %d, expected the stored 5", m.Best())
	}

	// A lower round is recorded but keeps the best.
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.Best() != 5 {
		t.Errorf("Best() = %d after a lower round, expected 5", m.Best())
	}

	score = 9
	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.Best() != 9 {
		t.Errorf("Best() = %d, expected 9", m.Best())
	}
	if !strings.Contains(m.View(), "Best: 9") {
		t.Error("view should show the best score")
	}
}

func TestModelQuitsOnEnd(t *testing.T) {
	g := &stubGame{onStep: func(in core.Input, st *core.GameState) {
		if in.Action == core.ActionEnd {
			st.Terminated = true
		}
	}}
	m, _ := newTestModel(g, nil)

	m, cmd := update(t, m, runeKey('n'))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit after the game ended")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	// Ticks after the end are not delivered.
	update(t, m, TickMsg(time.Now()))
	if n := len(g.inputs); n != 1 {
		t.Errorf("expected 1 input, got %d", n)
	}
}

func TestModelQuitKeyEndsGame(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(g, nil)

	_, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if got := g.actions(); len(got) != 1 || got[0] != core.ActionEnd {
		t.Errorf("actions = %v, expected [End]", got)
	}
}

func TestModelView(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(g, nil)

	if m.View() == "" {
		t.Error("view should render the game")
	}
}
