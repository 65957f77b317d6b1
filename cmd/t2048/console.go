package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/console"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Play 2048 by typing moves",
	Long: `Play 2048 as a plain text game. After each move the board is printed
with your marks. Type one move per line:

  Up, Down, Left, Right  (any case)
  w, a, s, d
  quit                   - give up

Examples:
  t2048 console
  t2048 console --seed 7
  printf 'up\nleft\n' | t2048 console`,
	Args: cobra.NoArgs,
	Run:  runConsole,
}

func runConsole(_ *cobra.Command, _ []string) {
	board := t2048.NewBoard(newRand())
	board.SetSpawn4Prob(appConfig.Game.Spawn4Probability)

	if err := console.Run(os.Stdin, os.Stdout, board); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if board.Status() {
		return // abandoned games are not recorded
	}

	store := openStore()
	if store == nil {
		return
	}
	defer store.Close()

	_, err := store.SaveScore(storage.Result{
		Player:  flagPlayer,
		Score:   board.Score(),
		MaxTile: board.MaxTile(),
		Moves:   board.Moves(),
	})
	if err != nil {
		logger.Warn("could not save score", "error", err)
	}
}
