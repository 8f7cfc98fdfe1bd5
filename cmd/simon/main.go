// simon is a Simon-style color memory game for the terminal.
//
// Usage:
//
//	simon                  - Play the game
//	simon scores           - Show the top 3 scores
//	simon scores --clear   - Forget all high scores
//	simon history          - Browse recorded games (sqlite backend)
//	simon config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible games
//	--config <path>     - Load configuration from a YAML file
//	--scores <path>     - Override the score file or database path
//	--backend <name>    - Score backend: json, sqlite or memory
//	--log <path>        - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagScores   string
	flagBackend  string
	flagLog      string
	flagLogLevel string
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

var rootCmd = &cobra.Command{
	Use:   "simon",
	Short: "Simon Says - a color memory game for your terminal",
	Long: `Simon Says shows a growing sequence of lit tiles on a 3x3 board.
Repeat the sequence by clicking the tiles or pressing 1-9. Each completed
round adds one tile; one wrong tile ends the game.

Controls:
  1-9/Click   - Select a tile
  Space/R     - Restart after losing
  ?           - Toggle help
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Examples:
  simon
  simon --seed 42
  simon --backend sqlite
  simon scores
  simon config > ~/.simon/simon.yaml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.StringVar(&flagScores, "scores", "", "Path to the score file or database")
	flags.StringVar(&flagBackend, "backend", "", "Score backend: json, sqlite, memory")
	flags.StringVar(&flagLog, "log", "", "Write logs to this file")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
