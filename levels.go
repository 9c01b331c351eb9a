package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the maps of the level world",
	Long: `Shows every map in the level world in play order. Touching a finish
line moves on to the next map; the last map wraps to the first.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	levels, err := loadLevels(logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if levels.Len() == 0 {
		fmt.Fprintln(out, "No levels found.")
		return nil
	}

	// Calculate column widths
	nameWidth := len("Name")
	for _, pos := range levels.Positions() {
		if l, ok := levels.Level(pos); ok {
			nameWidth = max(nameWidth, len(l.Name))
		}
	}

	header := lipgloss.NewStyle().Bold(true)
	fmt.Fprintln(out, header.Render(fmt.Sprintf("  %-8s  %-*s  %-7s  %s", "Position", nameWidth, "Name", "Size", "Objects")))
	for i, pos := range levels.Positions() {
		l, ok := levels.Level(pos)
		if !ok {
			continue
		}
		fmt.Fprintf(out, "%d %-8s  %-*s  %-7s  %d platforms, %d finish lines\n",
			i+1,
			fmt.Sprintf("%d,%d", pos.X, pos.Y),
			nameWidth, l.Name,
			fmt.Sprintf("%dx%d", l.Width, l.Height),
			len(l.Platforms), len(l.FinishLines),
		)
	}
	return nil
}
