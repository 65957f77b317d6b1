// Package console plays 2048 as a line-oriented text game: one direction
// per line in, the whole board printed after every turn.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

const rule = "-------------------------------------------------"

// Run plays board to completion, reading moves from in and writing to out.
// The board must be empty; Run places the opening tiles. Reading "quit" or
// hitting end of input abandons the game without an error.
func Run(in io.Reader, out io.Writer, board *t2048.Board) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	printWelcome(w)
	if err := board.StartBoard(); err != nil {
		return fmt.Errorf("console: cannot start board: %w", err)
	}
	printBoard(w, board)

	scanner := bufio.NewScanner(in)
	for board.Status() {
		fmt.Fprintln(w, "Enter a move:")
		if err := w.Flush(); err != nil {
			return err
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("console: read move: %w", err)
			}
			printAbandoned(w, board)
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "quit") || strings.EqualFold(line, "q") {
			printAbandoned(w, board)
			return nil
		}

		dir, err := t2048.ParseDirection(line)
		if err != nil {
			fmt.Fprintf(w, "Invalid move %q. Use Up, Down, Left or Right.\n", line)
			continue
		}

		err = board.Turn(dir)
		switch {
		case errors.Is(err, t2048.ErrNoValidMove):
			fmt.Fprintf(w, "Cannot move %s: no tiles merge that way.\n", dir)
			continue
		case err != nil:
			return err
		}

		printBoard(w, board)
	}

	printEnding(w, board)
	return nil
}

func printWelcome(w io.Writer) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "                 Welcome to 2048                 ")
	fmt.Fprintln(w, "               ---> NEW GAME <---                ")
	fmt.Fprintln(w, rule)
}

// printBoard writes the marks header and one line per row, each value
// left-aligned in a seven column cell.
func printBoard(w io.Writer, board *t2048.Board) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Marks: %d\n", board.Score())
	fmt.Fprintln(w, rule)

	grid := board.Grid()
	for _, row := range grid {
		var sb strings.Builder
		for _, v := range row {
			fmt.Fprintf(&sb, "%-7d", v)
		}
		fmt.Fprintln(w, sb.String())
	}
}

func printEnding(w io.Writer, board *t2048.Board) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "                    GAME OVER                    ")
	fmt.Fprintf(w, "Marks: %d\n", board.Score())
	fmt.Fprintln(w, "             Thank You For Playing !!!           ")
	fmt.Fprintln(w, rule)
}

func printAbandoned(w io.Writer, board *t2048.Board) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Game abandoned. Marks: %d\n", board.Score())
	fmt.Fprintln(w, rule)
}
