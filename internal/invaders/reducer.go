package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Reduce returns the state that follows s after ev.
// Exactly one rule applies per event; s itself is never modified.
func (e *Engine) Reduce(s State, ev Event) State {
	// Restarting marks only the transition produced by Restart.
	s.Restarting = false

	switch ev := ev.(type) {
	case Tick:
		return e.tick(s, ev.Elapsed)
	case Move:
		return e.move(s, ev.Direction)
	case Shoot:
		return e.shoot(s)
	case Restart:
		return e.restart(s)
	case EndGame:
		s.GameOver = true
		return s
	default:
		// Event is sealed; reaching here means a new event type lacks a rule.
		panic(fmt.Sprintf("invaders: no rule for event %T", ev))
	}
}

// Fold reduces a sequence of events left to right starting from s and
// returns every intermediate state.
func (e *Engine) Fold(s State, events []Event) []State {
	states := make([]State, 0, len(events))
	for _, ev := range events {
		s = e.Reduce(s, ev)
		states = append(states, s)
	}
	return states
}

// move shifts the ship and wraps it at the canvas edges.
// It is allowed while a round is over; only the ship changes.
func (e *Engine) move(s State, direction int) State {
	s.Ship = MoveBy(float64(direction), 0, s.Ship)
	s.Ship.X = core.Wrap(s.Ship.X, e.cfg.Ship.WrapOffset, e.cfg.Canvas.Size)
	return s
}

// shoot fires a ship bullet just above the ship. Shooting is allowed even
// while a round is over.
func (e *Engine) shoot(s State) State {
	bullet := e.newBullet(s, s.Ship.X, s.Ship.Y-e.cfg.Bullets.FiringAdjustment-5)
	s.ShipBullets = appendCopy(s.ShipBullets, bullet)
	s.SpawnCounter++
	return s
}

// restart builds a fresh round. Bullets and bosses of the old round are
// handed to Exited so their visuals get removed. SpawnCounter carries over so
// that no new bullet reuses the id of one still pending removal.
func (e *Engine) restart(s State) State {
	next := e.Initial()
	exited := appendCopy(s.Exited, s.InvaderBullets...)
	exited = appendCopy(exited, s.ShipBullets...)
	exited = appendCopy(exited, s.BossBullets...)
	exited = appendCopy(exited, s.Boss...)
	next.Exited = withoutLive(exited, next)
	next.SpawnCounter = s.SpawnCounter
	next.Restarting = true
	next.RestartTime = s.Time
	return next
}

// withoutLive drops entities whose id is live in s. Fresh invaders and
// shields reuse the ids of the previous round.
func withoutLive(exited []Entity, s State) []Entity {
	live := make(map[string]bool)
	for _, e := range s.Live() {
		live[e.ID] = true
	}
	out := make([]Entity, 0, len(exited))
	for _, e := range exited {
		if !live[e.ID] {
			out = append(out, e)
		}
	}
	return out
}
