package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/beast-arcade/internal/config"
	"github.com/vovakirdan/beast-arcade/internal/core"
	"github.com/vovakirdan/beast-arcade/internal/games/beast"
	"github.com/vovakirdan/beast-arcade/internal/platform/tui"
	"github.com/vovakirdan/beast-arcade/internal/registry"
	"github.com/vovakirdan/beast-arcade/internal/storage"
)

var (
	flagDifficulty string
	flagStartLevel int
	flagSaveReplay string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: beast).

Controls:
  WASD/Arrows - Move, push blocks
  Space       - Start, next level, restart
  H           - Help (A/D to page)
  N           - Save your score (end screen)
  C           - Copy the replay (end screen)
  B/Esc       - Leave (when paused or over)
  Q/Ctrl+C    - Quit

Difficulty and start level only apply to the classic mode. Ranked games
always start at level 1 with the plain level set so they can be verified.

Examples:
  beast play
  beast play --difficulty easy --start-level 3
  beast play beast_ranked --save-replay run.json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagStartLevel, "start-level", 0, "Level to start from (classic mode)")
	playCmd.Flags().StringVar(&flagSaveReplay, "save-replay", "", "Write the replay of each finished run to this file")
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameFlags hands the difficulty and start level to new games.
func applyGameFlags() error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if flagStartLevel < 0 || flagStartLevel > len(beast.Levels().Levels) {
		return fmt.Errorf("--start-level must be between 1 and %d", len(beast.Levels().Levels))
	}
	beast.SetDifficultyPreset(preset)
	beast.SetStartLevel(flagStartLevel)
	return nil
}

// openStore opens the score database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "beast"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'beast list' to see available modes.")
		os.Exit(1)
	}
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, terminalConfig(), tui.Options{
		Store:      store,
		User:       os.Getenv("USER"),
		ReplayPath: flagSaveReplay,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
