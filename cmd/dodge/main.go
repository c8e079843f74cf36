// dodge is a terminal arcade game: dodge bullets on a platform, chain
// combos and manage the dash and shield abilities.
//
// Usage:
//
//	dodge play [game]        - Play a game (default: dodge)
//	dodge menu               - Start menu to pick games interactively
//	dodge list               - List available games
//	dodge sim                - Run a headless game with the autopilot
//	dodge config [game]      - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--mute              - Disable sound
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagMute     bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - an arcade avoidance game for your terminal",
	Long: `Dodge is a real-time arcade game played in the terminal. Keep your
character on the platform, dodge the bullets, grab power-ups and chain
combos. Dash and shield abilities recharge over time.

Available commands:
  play     - Play a game directly
  menu     - Interactive game picker with a session scoreboard
  list     - Show all available games
  sim      - Headless run with a scripted player
  config   - Print the default YAML configuration

Examples:
  dodge play
  dodge play dodge_classic --difficulty hard
  dodge menu --mute
  dodge sim --seed 42 --ticks 5000`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. The TUI owns the terminal, so logs
// go to --log-file or fallback. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodge",
		Level:           level,
	})
	return logger, closeFn, nil
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// resolveSeed returns the seed flag, or a time-based seed when it is 0.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
