package invaders

// tick advances the world to the clock counter elapsed.
//
// While GameOverPending is set the world is frozen: time holds, nothing
// moves and no bullet expires. Otherwise bullets older than the expiration
// threshold are dropped into Exited, survivors fly one step, enemies follow
// the patrol anchored at RestartTime and shields follow the ship.
func (e *Engine) tick(s State, elapsed int) State {
	next := s
	next.Exited = nil

	if s.GameOverPending {
		return e.resolve(next)
	}

	expired := func(b Entity) bool {
		return elapsed-b.CreatedAt > e.cfg.Bullets.ExpirationTicks
	}
	speed := e.cfg.Bullets.Speed

	var exited []Entity
	next.ShipBullets, exited = fly(s.ShipBullets, -speed, expired, exited)
	next.InvaderBullets, exited = fly(s.InvaderBullets, speed, expired, exited)
	next.BossBullets, exited = fly(s.BossBullets, speed, expired, exited)
	next.Exited = exited

	phase := elapsed - s.RestartTime
	next.Invaders = mapEntities(s.Invaders, func(inv Entity) Entity {
		return Patrol(e.cfg.Patrol, phase, e.cfg.Invaders.Speed, inv)
	})
	next.Boss = mapEntities(s.Boss, func(b Entity) Entity {
		return Patrol(e.cfg.Patrol, phase, e.cfg.Boss.Speed, b)
	})
	next.Shields = mapEntities(s.Shields, func(sh Entity) Entity {
		return Escort(s.Ship, sh)
	})

	next.Time = elapsed
	return e.resolve(next)
}

// fly drops expired bullets into exited and moves the rest vertically by dy.
func fly(bullets []Entity, dy float64, expired func(Entity) bool, exited []Entity) ([]Entity, []Entity) {
	live := make([]Entity, 0, len(bullets))
	for _, b := range bullets {
		if expired(b) {
			exited = append(exited, b)
			continue
		}
		live = append(live, MoveBy(0, dy, b))
	}
	return live, exited
}
