package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default configuration of a game",
	Long: `Print the embedded default YAML for a game (default: dodge).

Save the output to ~/.arcade/configs/<game>.yaml or ./configs/<game>.yaml,
or pass it with --config, to customize a game.

Examples:
  dodge config > my-dodge.yaml
  dodge config dodge_classic`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := config.GameDodge
	if len(args) == 1 {
		gameID = args[0]
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("%w %q, run 'dodge list' to see available games", registry.ErrUnknownGame, gameID)
	}

	_, err := cmd.OutOrStdout().Write(data)
	return err
}
