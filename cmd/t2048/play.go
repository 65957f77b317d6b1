package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 in the terminal UI",
	Long: `Start a full-screen game of 2048.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a text screenshot to ~/.t2048/screenshots
  Q/Ctrl+C          - Quit

The score is saved when the game ends.

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: appConfig.Game.TickRate,
		Seed:     seed(),
	}

	game := t2048.New()
	game.SetSpawn4Prob(appConfig.Game.Spawn4Probability)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	err := tui.Run(game, cfg, tui.Session{
		Store:  store,
		Logger: logger,
		Player: flagPlayer,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
