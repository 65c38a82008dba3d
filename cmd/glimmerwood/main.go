// glimmerwood is an endless-runner arcade game for the terminal.
//
// Usage:
//
//	glimmerwood play          - Play the game
//	glimmerwood scores        - Show high scores
//	glimmerwood serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.glimmerwood/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glimmerwood",
	Short: "Glimmerwood Dash - an endless forest run in your terminal",
	Long: `Glimmerwood Dash is a terminal endless runner: leap over stumps and
brambles, collect hearts, and chase a high score through a firefly-lit
forest that scrolls faster the longer you survive.

Available commands:
  play     - Play the game
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  glimmerwood play
  glimmerwood play --difficulty hard
  glimmerwood scores
  glimmerwood serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.glimmerwood/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
