// arkterm is a terminal Arkanoid with a classic mode and a timed campaign.
//
// Usage:
//
//	arkterm list               - List available variants
//	arkterm play <variant>     - Play a variant
//	arkterm serve              - Start SSH server for remote play
//	arkterm scores <variant>   - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arkterm/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/arkterm/arkterm/internal/games/arkanoid"
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
	Use:   "arkterm",
	Short: "Arkterm - Arkanoid in your terminal",
	Long: `Arkterm is a terminal Arkanoid. Knock out the brick wall with the
ball, keep it off the floor, and in campaign mode beat the clock
through successive stages.

Available commands:
  list     - Show all available variants
  play     - Play a variant directly
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arkterm list
  arkterm play classic
  arkterm play campaign --difficulty hard
  arkterm serve --ssh :2222
  arkterm scores campaign`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arkterm/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
