package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game and then a
difficulty. After a game ends, press B to return to the menu.
Tab opens the session scoreboard; scores last until you quit.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Session scoreboard
  Q            - Quit

Examples:
  dodge menu
  dodge menu --fps 30 --mute`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := openSession(io.Discard)
	if err != nil {
		return err
	}
	defer s.close()

	cfg := runtimeConfig()
	preset := config.ParsePreset(flagDifficulty)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(s.store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(s.store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return err
		}

		choice, err := tui.RunDifficultySelector(game.Title(), preset, cfg)
		if err != nil {
			return err
		}
		if choice.Quit {
			return nil
		}
		if choice.Back {
			continue
		}
		preset = choice.Preset
		flagDifficulty = string(preset)

		if err := configureGame(s.logger, menuResult.GameID); err != nil {
			return err
		}

		goBack, err := tui.Run(game, cfg, s.options())
		if err != nil {
			return err
		}
		if !goBack {
			return nil
		}
	}
}
