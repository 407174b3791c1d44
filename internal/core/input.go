package core

// Action represents a semantic game action, abstracted from physical key presses
// and timers. This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionTick           // Clock source fired
	ActionLeft           // Left arrow, A, H - move ship left by one unit
	ActionRight          // Right arrow, D, L - move ship right by one unit
	ActionFire           // Space - fire a ship bullet
	ActionRestart        // R - restart the round
	ActionEnd            // N - end the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTick:
		return "Tick"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionRestart:
		return "Restart"
	case ActionEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Input is a single discrete input delivered to a game.
// Inputs are never batched: every key edge and every clock tick is its own Input,
// delivered in arrival order.
type Input struct {
	Action  Action
	Elapsed int // Clock counter, meaningful for ActionTick only
}

// TickInput returns the input produced by the clock source.
func TickInput(elapsed int) Input {
	return Input{Action: ActionTick, Elapsed: elapsed}
}

// ActionInput returns an input for a non-clock action.
func ActionInput(a Action) Input {
	return Input{Action: a}
}
