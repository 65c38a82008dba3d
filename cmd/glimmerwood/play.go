package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/JStanoeva/glimmerwood-dash/internal/config"
	"github.com/JStanoeva/glimmerwood-dash/internal/core"
	"github.com/JStanoeva/glimmerwood-dash/internal/platform/tui"
	"github.com/JStanoeva/glimmerwood-dash/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Glimmerwood Dash",
	Long: `Start a run.

Controls:
  Space/Up/W - Jump (press again mid-air for a double jump)
  Enter      - Start / restart
  P/Esc      - Pause
  M          - Mute
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  glimmerwood play
  glimmerwood play --difficulty hard
  glimmerwood play --config ./my-tuning.yaml
  glimmerwood play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runPlay(_ *cobra.Command, _ []string) {
	game, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		config.ApplyPreset(&game, config.Preset(flagDifficulty))
	}

	// Terminal size, with sane defaults if stdout is not a terminal.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ViewW:    width,
		ViewH:    height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	if flagMute && store != nil {
		//nolint:errcheck // Best-effort persist
		store.SetSoundEnabled(false)
	}

	runErr := tui.Run(game, store, rc)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
