package invaders

// enemyFire spawns enemy bullets on fire-period ticks while the round runs.
//
// The invader bullet takes its x and its y from two independent random
// invaders, so the bullet need not start at any single invader.
func (e *Engine) enemyFire(s State) State {
	if s.GameOverPending {
		return s
	}

	if n := len(s.Invaders); n > 0 && s.Time%e.cfg.Invaders.FirePeriod == 0 {
		x := s.Invaders[e.rng.Intn(n)].X
		y := s.Invaders[e.rng.Intn(n)].Y + e.cfg.Invaders.Radius - 5
		s.InvaderBullets = appendCopy(s.InvaderBullets, e.newBullet(s, x, y))
		s.SpawnCounter++
	}

	if n := len(s.Boss); n > 0 && e.cfg.Boss.Enabled && s.Time%e.cfg.Boss.FirePeriod == 0 {
		boss := s.Boss[e.rng.Intn(n)]
		s.BossBullets = appendCopy(s.BossBullets, e.newBullet(s, boss.X, boss.Y+boss.Radius-5))
		s.SpawnCounter++
	}

	return s
}

// newBullet creates a bullet at (x, y) with the next spawn id.
func (e *Engine) newBullet(s State, x, y float64) Entity {
	return Create(EntitySpec{
		Category:  CategoryBullet,
		NumericID: s.SpawnCounter,
		CreatedAt: s.Time,
		Radius:    e.cfg.Bullets.Radius,
		X:         x,
		Y:         y,
	})
}
