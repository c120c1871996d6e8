// beast is a terminal game about squishing beasts between blocks.
//
// Usage:
//
//	beast list                 - List game modes
//	beast levels               - Show the level table
//	beast play [mode]          - Play a mode (default: beast)
//	beast menu                 - Pick a mode interactively
//	beast scores [mode]        - Show high scores
//	beast serve                - Start the SSH server
//	beast verify <replay.json> - Verify a saved replay
//
// Global flags:
//
//	--fps <rate>        - Poll rate (default: 20)
//	--seed <value>      - RNG seed for reproducible boards
//	--db <dsn>          - SQLite path or postgres:// DSN (default: ~/.beast/scores.db)
//	--levels <path>     - Level config YAML
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/beast-arcade/internal/config"
	"github.com/vovakirdan/beast-arcade/internal/games/beast"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLevels   string
	flagLogLevel string
)

// logger is configured from --log-level before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "beast",
	Short: "Beast - squish the beasts before they get you",
	Long: `Beast is a terminal game. You push blocks around a 50x30 board and
squish the beasts hunting you between them.

Available commands:
  list     - Show the game modes
  levels   - Show the level table
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View high scores
  serve    - Start SSH server for remote play
  verify   - Check a saved ranked replay

Examples:
  beast play
  beast play beast_ranked --save-replay run.json
  beast verify run.json
  beast serve --ssh :2222 --spectate :8080`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 20, "Poll rate (polls per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.beast/scores.db", "Scores database: SQLite path or postgres:// DSN")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to a level config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(verifyCmd)
}

// setup applies the log level and loads the level set shared by all modes.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	set, err := config.LoadLevels(flagLevels)
	if err != nil {
		return err
	}
	beast.SetLevels(set)
	logger.Debug("levels loaded", "count", len(set.Levels), "lives", set.Lives)
	return nil
}
