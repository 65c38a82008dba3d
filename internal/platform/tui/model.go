package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JStanoeva/glimmerwood-dash/internal/config"
	"github.com/JStanoeva/glimmerwood-dash/internal/core"
	"github.com/JStanoeva/glimmerwood-dash/internal/engine"
	"github.com/JStanoeva/glimmerwood-dash/internal/storage"
)

// Model is the Bubble Tea model running one game session. It owns the frame
// loop: each FrameMsg feeds the fixed-step accumulator with real elapsed
// time, then the snapshot is drawn once.
type Model struct {
	sim     *engine.Sim
	stepper *engine.Stepper
	screen  *core.Screen
	store   *storage.Store
	keys    *KeyMapper

	rc         core.RuntimeConfig
	inputFrame core.InputFrame

	highScore int
	muted     bool
	quitting  bool
}

// NewModel creates a game model for the given configuration.
func NewModel(game config.Game, store *storage.Store, rc core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	sim := engine.New(game, rc)

	m := Model{
		sim:        sim,
		stepper:    engine.NewStepper(sim, rc.TickRate),
		screen:     core.NewScreen(rc.ViewW, rc.ViewH),
		store:      store,
		keys:       NewKeyMapper(),
		rc:         rc,
		inputFrame: core.NewInputFrame(),
	}

	if store != nil {
		if high, err := store.HighScore(); err == nil {
			m.highScore = high
		}
		if sound, err := store.SoundEnabled(); err == nil {
			m.muted = !sound
		}
	}

	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.rc.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keyboard input into the pending input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Mute is platform state, not simulation state.
	if action == core.ActionMute {
		m.muted = !m.muted
		if m.store != nil {
			//nolint:errcheck // Best-effort persist, game continues regardless
			m.store.SetSoundEnabled(!m.muted)
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize applies new terminal dimensions to both the screen buffer and
// the simulation viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.rc.ViewW = msg.Width
	m.rc.ViewH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.sim.SetViewport(msg.Width, msg.Height)
	return m, nil
}

// handleFrame advances the simulation by the elapsed real time and reacts to
// the events it produced.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	events := m.stepper.Advance(now, m.inputFrame)
	m.inputFrame.Clear()

	for _, e := range events {
		if e.Kind != engine.EventGameOver {
			continue
		}
		if m.store != nil && e.Value > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(e.Value)
			if high, err := m.store.HighScore(); err == nil {
				m.highScore = high
			}
		} else if e.Value > m.highScore {
			m.highScore = e.Value
		}
	}

	return m, frameCmd(m.rc.TickRate)
}

// View renders the current snapshot to a styled string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawScene(m.screen, m.sim.Snapshot(), HUD{
		HighScore: m.highScore,
		Muted:     m.muted,
	})

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game config.Game, store *storage.Store, rc core.RuntimeConfig) error {
	model := NewModel(game, store, rc)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
