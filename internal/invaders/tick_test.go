package invaders

import "testing"

func TestBulletExpiry(t *testing.T) {
	tests := []struct {
		name string
		put  func(s *State, b Entity)
		get  func(s State) []Entity
	}{
		{
			name: "ship",
			put:  func(s *State, b Entity) { s.ShipBullets = []Entity{b} },
			get:  func(s State) []Entity { return s.ShipBullets },
		},
		{
			name: "invader",
			put:  func(s *State, b Entity) { s.InvaderBullets = []Entity{b} },
			get:  func(s State) []Entity { return s.InvaderBullets },
		},
		{
			name: "boss",
			put:  func(s *State, b Entity) { s.BossBullets = []Entity{b} },
			get:  func(s State) []Entity { return s.BossBullets },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			s := sparseState(e)
			// Ids from enemy fire stay far below 9000 within 701 ticks.
			b := entity(CategoryBullet, 9000, 450, 300, 3)
			tt.put(&s, b)

			for tick := 1; tick <= 701; tick++ {
				s = e.Reduce(s, Tick{Elapsed: tick})
				checkInvariants(t, s)

				switch {
				case tick <= 700:
					if !containsID(tt.get(s), b.ID) {
						t.Fatalf("bullet expired early at tick %d", tick)
					}
				default:
					if containsID(tt.get(s), b.ID) {
						t.Fatalf("bullet still live at tick %d", tick)
					}
					if !containsID(s.Exited, b.ID) {
						t.Fatalf("expired bullet missing from exited at tick %d", tick)
					}
				}
			}
		})
	}
}

func TestBulletsFly(t *testing.T) {
	e := newTestEngine()
	s := sparseState(e)
	s.ShipBullets = []Entity{entity(CategoryBullet, 0, 300, 400, 3)}
	s.InvaderBullets = []Entity{entity(CategoryBullet, 1, 200, 100, 3)}
	s.SpawnCounter = 2

	next := e.Reduce(s, Tick{Elapsed: 1})

	if next.ShipBullets[0].Y != 399 {
		t.Errorf("ship bullet y = %v, expected 399", next.ShipBullets[0].Y)
	}
	if next.InvaderBullets[0].Y != 101 {
		t.Errorf("invader bullet y = %v, expected 101", next.InvaderBullets[0].Y)
	}
	if next.Time != 1 {
		t.Errorf("time = %d, expected 1", next.Time)
	}
}

func TestTickMovesInvadersAndShields(t *testing.T) {
	e := newTestEngine()
	s := e.Initial()
	s.Ship.X = 250

	next := e.Reduce(s, Tick{Elapsed: 1})

	for i, inv := range next.Invaders {
		if inv.X != s.Invaders[i].X+0.5 || inv.Y != s.Invaders[i].Y {
			t.Fatalf("invader %d at (%v, %v), expected a half step right", i, inv.X, inv.Y)
		}
	}
	for _, sh := range next.Shields {
		if sh.X != 250 {
			t.Errorf("shield %s x = %v, expected to follow ship to 250", sh.ID, sh.X)
		}
	}
}

func TestPatrolAnchoredAtRestart(t *testing.T) {
	e := newTestEngine()
	s := e.Initial()
	s.RestartTime = 1000

	// Phase 181 is the first downward step.
	next := e.Reduce(s, Tick{Elapsed: 1181})
	if next.Invaders[0].Y != s.Invaders[0].Y+0.5 || next.Invaders[0].X != s.Invaders[0].X {
		t.Errorf("expected a downward step, got (%v, %v)", next.Invaders[0].X, next.Invaders[0].Y)
	}
}

func TestPausedWorldIsFrozen(t *testing.T) {
	e := newTestEngine()
	s := e.Initial()
	s.Time = 300
	s.GameOverPending = true
	// Old enough to expire if the world were running.
	s.ShipBullets = []Entity{entity(CategoryBullet, 0, 300, 100, 3)}
	s.SpawnCounter = 1

	next := e.Reduce(s, Tick{Elapsed: 5000})

	if next.Time != 300 {
		t.Errorf("time = %d, expected to hold at 300", next.Time)
	}
	if len(next.ShipBullets) != 1 || next.ShipBullets[0] != s.ShipBullets[0] {
		t.Errorf("bullets must not move or expire while paused: %v", next.ShipBullets)
	}
	for i := range next.Invaders {
		if next.Invaders[i] != s.Invaders[i] {
			t.Fatalf("invader %d moved while paused", i)
		}
	}
	if len(next.InvaderBullets) != 0 {
		t.Error("invaders must not fire while paused")
	}
	if !next.GameOverPending {
		t.Error("pending flag must stay set")
	}
}

func TestClearingInvadersPausesRound(t *testing.T) {
	e := newTestEngine()
	s := e.Initial()
	s.Shields = nil
	s.Invaders = []Entity{entity(CategoryInvader, 0, 100, 100, 12)}
	// After one tick the invader steps right and the bullet steps up onto it.
	s.ShipBullets = []Entity{entity(CategoryBullet, 0, 100.5, 101, 3)}
	s.SpawnCounter = 1

	next := e.Reduce(s, Tick{Elapsed: 1})

	if len(next.Invaders) != 0 {
		t.Fatalf("expected the last invader destroyed, got %v", next.Invaders)
	}
	if !next.GameOverPending {
		t.Fatal("expected the round to end")
	}
	if next.Time != 1 {
		t.Errorf("time = %d, expected 1", next.Time)
	}

	after := e.Reduce(next, Tick{Elapsed: 2})
	if after.Time != 1 {
		t.Errorf("time advanced to %d while paused", after.Time)
	}
	if len(after.Exited) != 0 {
		t.Errorf("exited should be reset each tick, got %v", after.Exited)
	}
}

func TestLongRunKeepsInvariants(t *testing.T) {
	e := newTestEngine()
	s := e.Initial()

	for tick := 1; tick <= 3000; tick++ {
		s = e.Reduce(s, Tick{Elapsed: tick})
		switch tick % 37 {
		case 0:
			s = e.Reduce(s, Shoot{})
		case 11:
			s = e.Reduce(s, Move{Direction: -1})
		case 23:
			s = e.Reduce(s, Move{Direction: 1})
		}
		if s.GameOverPending && tick%500 == 0 {
			s = e.Reduce(s, Restart{})
		}
		checkInvariants(t, s)

		if s.GameOverPending && s.Time > tick {
			t.Fatalf("time %d ahead of clock %d", s.Time, tick)
		}
	}
}
