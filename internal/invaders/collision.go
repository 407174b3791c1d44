package invaders

// Overlaps reports whether two entities collide. Touching circles do not.
func Overlaps(a, b Entity) bool {
	return a.Circle().Overlaps(b.Circle())
}

// Pair is a colliding pair of entities.
type Pair struct {
	A, B Entity
}

// Pairs returns every colliding (a, b) with a from as and b from bs,
// ordered by as first and bs second.
func Pairs(as, bs []Entity) []Pair {
	var pairs []Pair
	for _, a := range as {
		for _, b := range bs {
			if Overlaps(a, b) {
				pairs = append(pairs, Pair{A: a, B: b})
			}
		}
	}
	return pairs
}

// hitsAny reports whether e overlaps any entity in xs.
func hitsAny(e Entity, xs []Entity) bool {
	for _, x := range xs {
		if Overlaps(e, x) {
			return true
		}
	}
	return false
}

// hitSet accumulates the entities matched during one resolution.
// It keeps first-seen order and ignores repeated ids.
type hitSet struct {
	ids     map[string]bool
	ordered []Entity
}

func newHitSet() *hitSet {
	return &hitSet{ids: make(map[string]bool)}
}

func (h *hitSet) add(e Entity) {
	if h.ids[e.ID] {
		return
	}
	h.ids[e.ID] = true
	h.ordered = append(h.ordered, e)
}

func (h *hitSet) addPairs(pairs []Pair) {
	for _, p := range pairs {
		h.add(p.A)
	}
	for _, p := range pairs {
		h.add(p.B)
	}
}

// cut returns xs without the entities in h.
func (h *hitSet) cut(xs []Entity) []Entity {
	out := make([]Entity, 0, len(xs))
	for _, x := range xs {
		if !h.ids[x.ID] {
			out = append(out, x)
		}
	}
	return out
}

// resolve removes every entity hit this tick, moves them to Exited,
// updates GameOverPending and finally applies the shooting rule.
func (e *Engine) resolve(s State) State {
	shipHit := hitsAny(s.Ship, s.InvaderBullets) ||
		hitsAny(s.Ship, s.Invaders) ||
		hitsAny(s.Ship, s.BossBullets) ||
		hitsAny(s.Ship, s.Boss)

	hits := newHitSet()
	hits.addPairs(Pairs(s.ShipBullets, s.Invaders))
	hits.addPairs(Pairs(s.ShipBullets, s.Boss))
	hits.addPairs(Pairs(s.InvaderBullets, s.Shields))
	hits.addPairs(Pairs(s.BossBullets, s.Shields))

	next := s
	if len(hits.ordered) > 0 {
		next.ShipBullets = hits.cut(s.ShipBullets)
		next.InvaderBullets = hits.cut(s.InvaderBullets)
		next.BossBullets = hits.cut(s.BossBullets)
		next.Invaders = hits.cut(s.Invaders)
		next.Boss = hits.cut(s.Boss)
		next.Shields = hits.cut(s.Shields)
		next.Exited = appendCopy(s.Exited, hits.ordered...)
	}

	cleared := len(next.Invaders) == 0
	if cleared && e.cfg.Boss.Enabled {
		if !next.BossStageActive {
			next.BossStageActive = true
			next.Boss = []Entity{e.newBoss(next.Time)}
		}
		cleared = len(next.Boss) == 0
	}

	next.GameOverPending = s.GameOverPending || shipHit || cleared
	return e.enemyFire(next)
}
