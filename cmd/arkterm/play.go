package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arkterm/arkterm/internal/audio"
	"github.com/arkterm/arkterm/internal/core"
	"github.com/arkterm/arkterm/internal/games/arkanoid"
	"github.com/arkterm/arkterm/internal/platform/tui"
	"github.com/arkterm/arkterm/internal/registry"
	"github.com/arkterm/arkterm/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagAutopilot  bool
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  A/D, Left/Right - Move the paddle
  Space           - Serve the ball
  F               - Fire a bullet (campaign only)
  P / R           - Pause / Resume
  Enter           - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - Default settings
  hard   - Fewer lives, narrower paddle, faster ball

Examples:
  arkterm play classic
  arkterm play campaign --difficulty hard
  arkterm play classic --autopilot
  arkterm play campaign --config ./my-arkanoid.yaml --mute`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the paddle play itself")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arkterm list' to see available variants.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the game before creation
	arkanoid.SetConfigPath(flagConfig)
	arkanoid.SetDifficultyPreset(flagDifficulty)
	arkanoid.SetAutopilot(flagAutopilot)

	player := audio.NewPlayer()
	if err := player.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound unavailable: %v\n", err)
		// Continue silent - game still works
	}
	player.SetMuted(flagMute)
	arkanoid.SetSounds(player)
	defer player.Close()

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
