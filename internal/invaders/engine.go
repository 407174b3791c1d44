// Package invaders implements the space invaders simulation.
//
// The world is a sequence of immutable State snapshots. An Engine folds input
// events into the next snapshot: clock ticks move and collide entities,
// while key events move the ship, fire, restart the round, or end the game.
// The Scene type consumes snapshots on the render side.
package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// Rand is the randomness used by the shooting rule.
// *rand.Rand satisfies it; a fixed seed makes a run reproducible.
type Rand interface {
	Intn(n int) int
}

// Engine holds the immutable rules of a game: configuration and randomness.
// It carries no world state of its own.
type Engine struct {
	cfg config.InvadersConfig
	rng Rand
}

// NewEngine creates an engine for the given configuration.
func NewEngine(cfg config.InvadersConfig, rng Rand) *Engine {
	return &Engine{cfg: cfg, rng: rng}
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.InvadersConfig {
	return e.cfg
}

// Initial returns the state at process start: ship, shields and the full
// invader grid, no bullets and no boss.
func (e *Engine) Initial() State {
	return State{
		Ship:     e.newShip(),
		Shields:  e.newShields(),
		Invaders: e.newInvaders(),
	}
}

func (e *Engine) newShip() Entity {
	return Create(EntitySpec{
		Category: CategoryShip,
		Radius:   e.cfg.Ship.Radius,
		X:        e.cfg.Ship.X,
		Y:        e.cfg.Ship.Y,
	})
}

// newShields stacks the shields concentrically around the ship spawn point,
// each one RadiusStep larger than the previous.
func (e *Engine) newShields() []Entity {
	shields := make([]Entity, e.cfg.Shields.Count)
	for i := range shields {
		shields[i] = Create(EntitySpec{
			Category:  CategoryShield,
			NumericID: i,
			Radius:    e.cfg.Shields.Radius + float64(i)*e.cfg.Shields.RadiusStep,
			X:         e.cfg.Ship.X,
			Y:         e.cfg.Ship.Y,
		})
	}
	return shields
}

// newInvaders lays out the grid row by row, Columns invaders per row.
func (e *Engine) newInvaders() []Entity {
	inv := e.cfg.Invaders
	invaders := make([]Entity, inv.Count)
	for i := range invaders {
		col := i % inv.Columns
		row := i / inv.Columns
		invaders[i] = Create(EntitySpec{
			Category:  CategoryInvader,
			NumericID: i,
			Radius:    inv.Radius,
			X:         math.Mod(inv.SpawnX+float64(col)*inv.Gap, e.cfg.Canvas.Size),
			Y:         inv.SpawnY + float64(row)*inv.Gap,
		})
	}
	return invaders
}

func (e *Engine) newBoss(now int) Entity {
	return Create(EntitySpec{
		Category:  CategoryBoss,
		CreatedAt: now,
		Radius:    e.cfg.Boss.Radius,
		X:         e.cfg.Invaders.SpawnX,
		Y:         e.cfg.Invaders.SpawnY,
	})
}

// Score is the number of invaders destroyed, plus the boss bonus once the
// boss stage has been cleared.
func (e *Engine) Score(s State) int {
	score := e.cfg.Invaders.Count - len(s.Invaders)
	if s.BossStageActive && len(s.Boss) == 0 {
		score += e.cfg.Boss.Bonus
	}
	return score
}
