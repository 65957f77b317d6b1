package console

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func TestRunAbandonOnEOF(t *testing.T) {
	var out bytes.Buffer
	board := t2048.NewBoard(rand.New(rand.NewSource(1)))

	if err := Run(strings.NewReader("north\n\nLeft\n"), &out, board); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Welcome to 2048",
		"Marks: 0",
		"Enter a move:",
		`Invalid move "north"`,
		"Game abandoned.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
	if board.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", board.Moves())
	}
	if strings.Contains(got, "GAME OVER") {
		t.Error("abandoned game must not print the ending banner")
	}
}

func TestRunQuit(t *testing.T) {
	var out bytes.Buffer
	board := t2048.NewBoard(rand.New(rand.NewSource(1)))

	if err := Run(strings.NewReader("quit\nup\n"), &out, board); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if board.Moves() != 0 {
		t.Error("input after quit must be ignored")
	}
}

func TestRunToGameOver(t *testing.T) {
	var in strings.Builder
	for range 20000 {
		in.WriteString("Up\nLeft\nDown\nRight\n")
	}

	var out bytes.Buffer
	board := t2048.NewBoard(rand.New(rand.NewSource(42)))

	if err := Run(strings.NewReader(in.String()), &out, board); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if board.Status() {
		t.Fatal("game should be over")
	}

	got := out.String()
	tail := got[strings.LastIndex(got, "Enter a move:"):]
	for _, want := range []string{"GAME OVER", "Thank You For Playing !!!"} {
		if !strings.Contains(tail, want) {
			t.Errorf("ending banner missing %q, output tail:\n%s", want, tail)
		}
	}
}

func TestPrintBoard(t *testing.T) {
	board := t2048.FromGrid(t2048.Grid{
		{2, 16, 128, 2048},
		{0, 0, 0, 0},
		{4, 32, 256, 1024},
		{8, 64, 512, 4},
	}, nil)

	var out bytes.Buffer
	printBoard(&out, board)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d:\n%s", len(lines), out.String())
	}
	if lines[1] != "Marks: 0" {
		t.Errorf("header = %q, want %q", lines[1], "Marks: 0")
	}

	want := []string{
		"2      16     128    2048   ",
		"0      0      0      0      ",
		"4      32     256    1024   ",
		"8      64     512    4      ",
	}
	for i, w := range want {
		if lines[3+i] != w {
			t.Errorf("row %d = %q, want %q", i, lines[3+i], w)
		}
	}
}
