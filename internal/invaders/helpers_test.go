package invaders

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// seqRand returns a fixed sequence of picks, each reduced modulo n.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func newTestEngine() *Engine {
	return NewEngine(config.DefaultInvadersConfig(), rand.New(rand.NewSource(1)))
}

func newBossEngine() *Engine {
	return NewEngine(config.WithBoss(config.DefaultInvadersConfig()), rand.New(rand.NewSource(1)))
}

func entity(c Category, id int, x, y, r float64) Entity {
	return Create(EntitySpec{Category: c, NumericID: id, Radius: r, X: x, Y: y})
}

// sparseState has a ship, no shields and a single invader far from the
// ship's column, so ship bullets fly without hitting anything.
func sparseState(e *Engine) State {
	s := e.Initial()
	s.Shields = nil
	s.Invaders = []Entity{entity(CategoryInvader, 0, 10, 10, 12)}
	return s
}

func containsID(xs []Entity, id string) bool {
	for _, x := range xs {
		if x.ID == id {
			return true
		}
	}
	return false
}

// checkInvariants verifies id uniqueness across live collections and that
// no exited entity is still live.
func checkInvariants(t *testing.T, s State) {
	t.Helper()
	seen := make(map[string]bool)
	for _, e := range s.Live() {
		if seen[e.ID] {
			t.Fatalf("duplicate live id %q at time %d", e.ID, s.Time)
		}
		seen[e.ID] = true
	}
	for _, e := range s.Exited {
		if seen[e.ID] {
			t.Fatalf("exited entity %q still live at time %d", e.ID, s.Time)
		}
	}
}
