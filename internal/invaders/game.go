package invaders

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Registered mode ids.
const (
	ModeClassic = "invaders"
	ModeBoss    = "invaders_boss"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the engine to the platform: it owns the current state for the
// lifetime of a session and feeds every state to its Scene.
type Game struct {
	id     string
	title  string
	boss   bool
	engine *Engine
	state  State
	scene  *Scene
}

// New creates a classic game instance.
func New() *Game {
	return &Game{id: ModeClassic, title: "Space Invaders"}
}

// NewBoss creates a game instance with the boss stage enabled.
func NewBoss() *Game {
	return &Game{id: ModeBoss, title: "Space Invaders: Boss Stage", boss: true}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the configuration and builds the initial state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	if g.boss {
		cfg = config.WithBoss(cfg)
	}
	g.ResetWith(cfg, runtime.Seed)
}

// ResetWith builds the initial state from an explicit configuration.
func (g *Game) ResetWith(cfg config.InvadersConfig, seed int64) {
	g.engine = NewEngine(cfg, rand.New(rand.NewSource(seed)))
	g.state = g.engine.Initial()
	g.scene = NewScene(cfg.Canvas.Size)
	g.scene.Apply(g.state, g.engine.Score(g.state))
}

// Step translates one platform input into an event and reduces it.
func (g *Game) Step(in core.Input) core.StepResult {
	if ev, ok := EventFor(in); ok {
		g.Apply(ev)
	}
	return core.StepResult{State: g.State()}
}

// Apply reduces a single event and hands the new state to the scene.
func (g *Game) Apply(ev Event) State {
	g.state = g.engine.Reduce(g.state, ev)
	g.scene.Apply(g.state, g.engine.Score(g.state))
	return g.state
}

// EventFor maps a platform input to an event.
// ActionNone and unknown actions produce no event.
func EventFor(in core.Input) (Event, bool) {
	switch in.Action {
	case core.ActionTick:
		return Tick{Elapsed: in.Elapsed}, true
	case core.ActionLeft:
		return Move{Direction: -1}, true
	case core.ActionRight:
		return Move{Direction: 1}, true
	case core.ActionFire:
		return Shoot{}, true
	case core.ActionRestart:
		return Restart{}, true
	case core.ActionEnd:
		return EndGame{}, true
	}
	return nil, false
}

// Render draws the current scene.
func (g *Game) Render(dst *core.Screen) {
	g.scene.Draw(dst)
}

// State returns the platform-level status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.engine.Score(g.state),
		RoundOver:  g.state.GameOverPending,
		Terminated: g.state.GameOver,
		Restarting: g.state.Restarting,
		Tick:       g.state.Time,
	}
}

// World returns the current snapshot.
func (g *Game) World() State {
	return g.state
}

// Scene returns the render-side view.
func (g *Game) Scene() *Scene {
	return g.scene
}

func init() {
	registry.Register(ModeClassic, func() registry.Game {
		return New()
	})
	registry.Register(ModeBoss, func() registry.Game {
		return NewBoss()
	})
}
