// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play      - Play in a full-screen terminal UI
//	t2048 console   - Play by typing one move per line
//	t2048 scores    - Show high scores
//	t2048 serve     - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible spawns
//	--db <path>          - Set database path (default: ~/.t2048/scores.db)
//	--config <path>      - Use a specific config file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagPlayer   string

	// Set in PersistentPreRun
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 puzzle for the terminal. Slide the tiles of a 4x4
board; equal neighbours merge and add their value to your marks. The game
ends when the board is full and nothing can merge.

Available commands:
  play     - Full-screen terminal UI
  console  - Line-by-line text game
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 console
  t2048 scores --tui
  t2048 serve --ssh :2222`,
	PersistentPreRun: setup,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config, then "+storage.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name recorded with your scores")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", cfg.Log.Level)
		os.Exit(1)
	}

	appConfig = cfg
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
}

// openStore opens the scores database. Failures are logged and the game
// continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// seed returns the --seed value, or a time-based seed when it is 0.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(seed()))
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
