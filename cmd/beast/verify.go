package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beast-arcade/internal/games/beast"
	"github.com/vovakirdan/beast-arcade/internal/games/beast/replay"
	"github.com/vovakirdan/beast-arcade/internal/storage"
)

var flagVerifyStore bool

var verifyCmd = &cobra.Command{
	Use:   "verify <replay.json>",
	Short: "Verify a saved replay",
	Long: `Re-runs a replay against the level set and checks its claimed score.

Only ranked replays can be verified: classic games respawn the player at
random. The level set must be the one the replay was played with, so pass
the same --levels file if it was not the default.

Examples:
  beast verify run.json
  beast verify run.json --store`,
	Args: cobra.ExactArgs(1),
	Run:  runVerify,
}

func init() {
	verifyCmd.Flags().BoolVar(&flagVerifyStore, "store", false, "Save the verified replay to the database")
}

func runVerify(_ *cobra.Command, args []string) {
	log := logger.WithPrefix("beast-verify")

	rec, err := replay.Load(args[0])
	if err != nil {
		log.Error("cannot load replay", "file", args[0], "error", err)
		os.Exit(1)
	}

	res, err := rec.Verify(beast.Levels())
	if err != nil {
		log.Error("replay rejected", "id", rec.ID, "error", err)
		os.Exit(1)
	}
	log.Info("replay verified",
		"id", rec.ID,
		"mode", rec.Mode,
		"name", rec.Name,
		"claimed", rec.Score,
		"verified", res.Score,
		"levels", res.LevelsCleared,
		"completed", res.Completed,
	)

	fmt.Printf("Score:          %d (%d from the log, up to %d time bonus)\n", rec.Score, res.Score, res.MaxTimeBonus)
	fmt.Printf("Levels cleared: %d\n", res.LevelsCleared)
	fmt.Printf("Beasts killed:  %d\n", res.BeastsKilled)
	fmt.Printf("Lives left:     %d\n", res.Lives)

	if !flagVerifyStore {
		return
	}
	data, err := rec.Encode()
	if err != nil {
		log.Error("cannot encode replay", "error", err)
		os.Exit(1)
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Error("cannot open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	err = store.SaveReplay(storage.ReplayEntry{
		ID:       rec.ID,
		GameID:   rec.Mode,
		Name:     rec.Name,
		Score:    rec.Score,
		Verified: true,
		Data:     data,
	})
	if err != nil {
		log.Error("cannot store replay", "error", err)
		os.Exit(1)
	}
	log.Info("replay stored", "id", rec.ID)
}
