package invaders

import "fmt"

// Event is an input to the reducer. The set of events is closed:
// Tick, Move, Shoot, Restart and EndGame are the only implementations.
type Event interface {
	isEvent()
}

// Tick advances the simulation to the clock counter Elapsed.
type Tick struct {
	Elapsed int
}

// Move shifts the ship horizontally by Direction (-1 or +1), wrapping at the
// canvas edges.
type Move struct {
	Direction int
}

// Shoot fires a ship bullet.
type Shoot struct{}

// Restart resets the round.
type Restart struct{}

// EndGame terminates the game.
type EndGame struct{}

func (Tick) isEvent()    {}
func (Move) isEvent()    {}
func (Shoot) isEvent()   {}
func (Restart) isEvent() {}
func (EndGame) isEvent() {}

func (t Tick) String() string  { return fmt.Sprintf("Tick(%d)", t.Elapsed) }
func (m Move) String() string  { return fmt.Sprintf("Move(%+d)", m.Direction) }
func (Shoot) String() string   { return "Shoot" }
func (Restart) String() string { return "Restart" }
func (EndGame) String() string { return "EndGame" }
