package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/audio"
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// Master volume for speaker playback
const masterVolume = 1.0

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: dodge).

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Jump
  F                - Dash in the held direction
  E                - Shield
  P                - Pause
  R or Space       - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower, sparser bullets
  normal - Default bullets, ramps up with level
  hard   - Faster, denser bullets
  fixed  - No ramp, bullets stay at the base speed and rate

Examples:
  dodge play
  dodge play dodge_classic
  dodge play --difficulty hard
  dodge play --config ./my-dodge.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	for _, fs := range []*cobra.Command{playCmd, menuCmd} {
		fs.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		fs.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

// session bundles the collaborators shared by every run in the process.
type session struct {
	logger *log.Logger
	store  *storage.Store
	player audio.Player
	close  func()
}

// openSession opens the logger, the in-memory scoreboard and the audio
// device. Only logger errors are fatal.
func openSession(logFallback io.Writer) (*session, error) {
	logger, closeLog, err := newLogger(logFallback)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open()
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open session scoreboard", "error", err)
		store = nil
	}

	player := audio.Open(flagMute, masterVolume, logger)

	return &session{
		logger: logger,
		store:  store,
		player: player,
		close: func() {
			player.Close()
			if store != nil {
				store.Close()
			}
			closeLog()
		},
	}, nil
}

func (s *session) options() tui.Options {
	return tui.Options{Store: s.store, Player: s.player, Logger: s.logger}
}

// configureGame applies --config and --difficulty and reports where the
// configuration of gameID comes from. An unreadable --config is an error.
func configureGame(logger *log.Logger, gameID string) error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", flagDifficulty)
	}
	dodge.SetConfigPath(flagConfig)
	dodge.SetDifficultyPreset(flagDifficulty)

	_, source, err := config.LoadWithSource(gameID, flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "game", gameID, "source", source)
	return nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := config.GameDodge
	if len(args) == 1 {
		gameID = args[0]
	}

	info, err := registry.Lookup(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'dodge list' to see available games", err)
	}

	s, err := openSession(io.Discard)
	if err != nil {
		return err
	}
	defer s.close()

	if err := configureGame(s.logger, gameID); err != nil {
		return err
	}
	s.logger.Debug("starting game", "game", info.ID, "title", info.Title)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if _, err := tui.Run(game, runtimeConfig(), s.options()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
