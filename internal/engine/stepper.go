package engine

import (
	"time"

	"github.com/JStanoeva/glimmerwood-dash/internal/core"
)

// maxFrameSeconds clamps the elapsed real time per frame callback. After a
// stall (terminal suspended, SSH hiccup) the simulation catches up by at
// most this much instead of spiraling through thousands of steps.
const maxFrameSeconds = 0.05

// Stepper converts wall-clock frame callbacks into a deterministic number
// of fixed simulation steps. Every Sim.Step call uses the exact same dt
// regardless of the real frame rate; the platform draws once per frame
// after zero or more steps have run.
type Stepper struct {
	sim     *Sim
	dt      float64
	acc     float64
	last    time.Time
	started bool

	// pending collects input between frames and across frames too fast to
	// produce a step, so an edge-triggered press is never dropped.
	pending core.InputFrame
}

// NewStepper creates a stepper driving the given simulation at its fixed
// tick rate.
func NewStepper(sim *Sim, tickRate int) *Stepper {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Stepper{
		sim:     sim,
		dt:      1.0 / float64(tickRate),
		pending: core.NewInputFrame(),
	}
}

// Advance feeds one frame callback at the given wall-clock time, draining
// the accumulator in fixed steps. The input frame applies to the first step
// executed; later catch-up steps within the same frame see no input.
// Returns all events emitted, in order.
func (st *Stepper) Advance(now time.Time, in core.InputFrame) []Event {
	if !st.started {
		st.started = true
		st.last = now
	}

	elapsed := now.Sub(st.last).Seconds()
	st.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxFrameSeconds {
		elapsed = maxFrameSeconds
	}
	st.acc += elapsed

	for a := range in.Actions {
		if in.Actions[a] {
			st.pending.Set(a)
		}
	}

	var events []Event
	for st.acc >= st.dt {
		st.acc -= st.dt
		res := st.sim.Step(st.pending)
		st.pending.Clear()
		if len(res.Events) > 0 {
			events = append(events, res.Events...)
		}
	}
	return events
}
