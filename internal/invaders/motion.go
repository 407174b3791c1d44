package invaders

import "github.com/vovakirdan/tui-invaders/internal/config"

// MoveBy translates an entity. No bounds are enforced.
func MoveBy(dx, dy float64, e Entity) Entity {
	e.X += dx
	e.Y += dy
	return e
}

// Frozen returns the entity unchanged. It is the motion rule for every
// entity while a round is over.
func Frozen(e Entity) Entity {
	return e
}

// PatrolDirection returns the unit direction of the scripted patrol at the
// given number of ticks since the phase anchor.
//
// One cycle sweeps right, steps down, sweeps back left, steps down again and
// sweeps right until the cycle ends; later ticks repeat the cycle.
func PatrolDirection(p config.PatrolConfig, elapsed int) (dx, dy float64) {
	if elapsed > p.Cycle {
		// Fold into (0, Cycle]: tick Cycle+1 behaves like tick 1.
		elapsed = (elapsed-1)%p.Cycle + 1
	}

	switch {
	case elapsed <= p.RightUntil:
		return 1, 0
	case elapsed <= p.DownUntil:
		return 0, 1
	case elapsed <= p.LeftUntil:
		return -1, 0
	case elapsed <= p.SecondDownUntil:
		return 0, 1
	default:
		return 1, 0
	}
}

// Patrol moves an enemy one tick along the patrol at the given speed.
func Patrol(p config.PatrolConfig, elapsed int, speed float64, e Entity) Entity {
	dx, dy := PatrolDirection(p, elapsed)
	return MoveBy(dx*speed, dy*speed, e)
}

// Escort snaps a shield horizontally onto the ship. The shield keeps its row.
func Escort(ship Entity, shield Entity) Entity {
	shield.X = ship.X
	return shield
}
