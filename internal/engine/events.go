package engine

// EventKind identifies an outbound simulation event.
type EventKind int

const (
	// EventStateChanged fires on every game-state transition.
	EventStateChanged EventKind = iota

	// EventScoreChanged fires when the score changes; Value is the new score.
	EventScoreChanged

	// EventHeartsChanged fires when the heart count changes; Value is the
	// new count. Always precedes a same-step EventGameOver.
	EventHeartsChanged

	// EventGameOver fires once when hearts reach zero; Value is the final
	// score, frozen at the moment of transition.
	EventGameOver

	// EventJumped is an audio/feedback intent: a jump was performed.
	EventJumped

	// EventHitTaken is an audio/feedback intent: the player took a hit.
	EventHitTaken

	// EventHeartCollected is an audio/feedback intent: a heart was picked up.
	EventHeartCollected
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStateChanged:
		return "StateChanged"
	case EventScoreChanged:
		return "ScoreChanged"
	case EventHeartsChanged:
		return "HeartsChanged"
	case EventGameOver:
		return "GameOver"
	case EventJumped:
		return "Jumped"
	case EventHitTaken:
		return "HitTaken"
	case EventHeartCollected:
		return "HeartCollected"
	default:
		return "Unknown"
	}
}

// Event is an outbound message enqueued by the engine during a step and
// drained by the presentation layer afterwards. The engine never blocks on
// delivery; actual sound/UI handling is entirely external.
type Event struct {
	Kind  EventKind
	Value int   // Score or heart count, depending on Kind
	State State // New state for EventStateChanged
}

// StepResult is returned by Sim.Step after each fixed simulation tick.
type StepResult struct {
	State  State
	Score  int
	Hearts int

	// Events that occurred during this step, in emission order. The slice
	// is reused between steps; callers must drain it before stepping again.
	Events []Event
}
