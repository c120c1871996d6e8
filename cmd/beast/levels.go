package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/beast-arcade/internal/config"
	"github.com/vovakirdan/beast-arcade/internal/games/beast"
)

var flagLevelsDifficulty string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long: `Prints the levels loaded from --levels (or the default search path),
adjusted for a difficulty preset.

Examples:
  beast levels
  beast levels --difficulty hard
  beast levels --levels ./my-levels.yaml`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runLevels(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagLevelsDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	set := config.ApplyPreset(beast.Levels(), preset)

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Level", "Blocks", "Static", "Common", "Super", "Eggs", "Hatch", "Distance", "Time", "Bonus").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for i, l := range set.Levels {
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(l.Blocks),
			strconv.Itoa(l.StaticBlocks),
			strconv.Itoa(l.CommonBeasts),
			strconv.Itoa(l.SuperBeasts),
			strconv.Itoa(l.Eggs),
			l.HatchTime().String(),
			strconv.Itoa(l.BeastStartingDistance),
			l.TimeLimit().String(),
			strconv.Itoa(l.CompletionScore),
		)
	}

	fmt.Printf("Levels (%s, %d lives)\n", preset, set.Lives)
	fmt.Println(t.Render())
}
