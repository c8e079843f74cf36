package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all registered game variants.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	maxTitleLen := 5 // "Title" header
	for _, g := range games {
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Rules")
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")

	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, g.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'dodge play <id>' to play a game.")
}
