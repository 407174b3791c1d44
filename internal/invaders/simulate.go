package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Autopilot produces a pseudo-random input stream for headless runs.
// It restarts every round as soon as the round is over.
type Autopilot struct {
	rng Rand
}

// NewAutopilot creates an autopilot drawing from rng.
func NewAutopilot(rng Rand) *Autopilot {
	return &Autopilot{rng: rng}
}

// Inputs returns the inputs delivered for clock counter elapsed, given the
// state observed after the previous input.
func (a *Autopilot) Inputs(elapsed int, st core.GameState) []core.Input {
	inputs := []core.Input{core.TickInput(elapsed)}
	if st.RoundOver {
		return append(inputs, core.ActionInput(core.ActionRestart))
	}

	switch n := a.rng.Intn(10); {
	case n < 3:
		inputs = append(inputs, core.ActionInput(core.ActionLeft))
	case n < 6:
		inputs = append(inputs, core.ActionInput(core.ActionRight))
	case n == 6:
		inputs = append(inputs, core.ActionInput(core.ActionFire))
	}
	return inputs
}

// Summary describes a headless run.
type Summary struct {
	Ticks     int
	Inputs    int
	Rounds    int // Rounds that reached the round-over prompt
	BestScore int
	Shots     int
}

// Simulate steps g through ticks clock counters fed by the autopilot.
// The game must have been reset.
func Simulate(g *Game, ticks int, pilot *Autopilot) Summary {
	var sum Summary
	st := g.State()

	for elapsed := 0; elapsed < ticks; elapsed++ {
		for _, in := range pilot.Inputs(elapsed, st) {
			prev := st
			st = g.Step(in).State
			sum.Inputs++

			if in.Action == core.ActionFire {
				sum.Shots++
			}
			if st.RoundOver && !prev.RoundOver {
				sum.Rounds++
				sum.BestScore = core.Max(sum.BestScore, st.Score)
			}
		}
		sum.Ticks++
	}
	return sum
}
