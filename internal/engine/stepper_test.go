package engine

import (
	"testing"
	"time"

	"github.com/JStanoeva/glimmerwood-dash/internal/core"
)

func TestStepperFirstFrameRunsNoSteps(t *testing.T) {
	s := newTestSim(1)
	st := NewStepper(s, 60)

	// The first frame only initializes the clock; no time has elapsed yet.
	events := st.Advance(time.Unix(100, 0), core.NewInputFrame())
	if len(events) != 0 {
		t.Errorf("first frame emitted %d events, expected none", len(events))
	}
	if s.State() != StateTitle {
		t.Errorf("state after first frame = %v, expected Title", s.State())
	}
}

func TestStepperFixedStepRate(t *testing.T) {
	s := newTestSim(1)
	st := NewStepper(s, 60)

	t0 := time.Unix(100, 0)
	st.Advance(t0, core.NewInputFrame())

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	st.Advance(t0.Add(17*time.Millisecond), start)
	if s.State() != StatePlaying {
		t.Fatalf("expected Playing after one frame of 17ms, got %v", s.State())
	}

	// One second of 60fps frames advances the world clock by one second of
	// fixed steps, give or take one step of accumulator remainder.
	now := t0.Add(17 * time.Millisecond)
	for i := 0; i < 60; i++ {
		now = now.Add(time.Second / 60)
		st.Advance(now, core.NewInputFrame())
	}

	lo := 1.0 - 2*s.dt
	hi := 1.0 + 2*s.dt
	if s.t < lo || s.t > hi {
		t.Errorf("world clock after ~1s of frames = %v, expected about 1.0", s.t)
	}
}

func TestStepperClampsStalledFrames(t *testing.T) {
	s := newTestSim(1)
	st := NewStepper(s, 60)

	t0 := time.Unix(100, 0)
	st.Advance(t0, core.NewInputFrame())

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	st.Advance(t0.Add(17*time.Millisecond), start)
	base := s.t

	// A 2-second stall catches up by at most the clamp: 50ms = 3 steps.
	st.Advance(t0.Add(17*time.Millisecond).Add(2*time.Second), core.NewInputFrame())

	caught := s.t - base
	maxCatchup := maxFrameSeconds + s.dt
	if caught > maxCatchup {
		t.Errorf("stalled frame advanced the world by %v, clamp allows at most %v", caught, maxCatchup)
	}
	if caught < 2*s.dt {
		t.Errorf("stalled frame advanced the world by only %v, expected a clamped catch-up", caught)
	}
}

func TestStepperIgnoresClockGoingBackwards(t *testing.T) {
	s := newTestSim(1)
	st := NewStepper(s, 60)

	t0 := time.Unix(100, 0)
	st.Advance(t0, core.NewInputFrame())

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	st.Advance(t0.Add(17*time.Millisecond), start)
	base := s.t

	st.Advance(t0, core.NewInputFrame())
	if s.t != base {
		t.Errorf("backwards clock advanced the world: %v -> %v", base, s.t)
	}
}

func TestStepperRetainsInputAcrossFastFrames(t *testing.T) {
	// A press arriving on a frame too fast to produce a step must still be
	// applied to the next step instead of being dropped.
	s := newTestSim(1)
	st := NewStepper(s, 60)

	t0 := time.Unix(100, 0)
	st.Advance(t0, core.NewInputFrame())

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	st.Advance(t0.Add(20*time.Millisecond), start)
	if s.State() != StatePlaying {
		t.Fatal("expected Playing")
	}

	// 5ms frame carrying the jump: zero steps run.
	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	st.Advance(t0.Add(25*time.Millisecond), jump)
	if !s.player.OnGround {
		t.Fatal("no step should have run yet on the 5ms frame")
	}

	// The next frame crosses the step boundary; the retained jump applies.
	st.Advance(t0.Add(40*time.Millisecond), core.NewInputFrame())
	if s.player.OnGround {
		t.Error("retained jump press was dropped")
	}
}

func TestStepperInputAppliesOnceNotPerCatchUpStep(t *testing.T) {
	// An edge-triggered press held through a multi-step catch-up frame must
	// fire exactly once: catch-up steps after the first see cleared input.
	s := newTestSim(1)
	st := NewStepper(s, 60)

	t0 := time.Unix(100, 0)
	st.Advance(t0, core.NewInputFrame())

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	st.Advance(t0.Add(20*time.Millisecond), start)

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	events := st.Advance(t0.Add(70*time.Millisecond), jump)

	jumps := 0
	for _, e := range events {
		if e.Kind == EventJumped {
			jumps++
		}
	}
	if jumps != 1 {
		t.Errorf("jump fired %d times across one catch-up frame, expected once", jumps)
	}
	if s.player.JumpsRemaining != s.cfg.Player.MaxJumps-1 {
		t.Errorf("JumpsRemaining = %d, expected one jump spent", s.player.JumpsRemaining)
	}
}

func TestStepperCollectsEventsAcrossSteps(t *testing.T) {
	s := newTestSim(1)
	st := NewStepper(s, 60)

	t0 := time.Unix(100, 0)
	st.Advance(t0, core.NewInputFrame())

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	events := st.Advance(t0.Add(20*time.Millisecond), start)

	// The start step emits score, hearts, and the state change.
	var kinds []EventKind
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	has := func(k EventKind) bool {
		for _, got := range kinds {
			if got == k {
				return true
			}
		}
		return false
	}
	if !has(EventScoreChanged) || !has(EventHeartsChanged) || !has(EventStateChanged) {
		t.Errorf("start frame events = %v, expected score/hearts/state changes", kinds)
	}
}

func TestStepperDefaultsInvalidTickRate(t *testing.T) {
	s := newTestSim(1)
	st := NewStepper(s, 0)
	if st.dt != 1.0/60.0 {
		t.Errorf("dt = %v, expected 1/60 fallback", st.dt)
	}
}
