// Package t2048 implements the 2048 sliding-tile puzzle: the board engine
// and a tick-driven game wrapper for the terminal platform.
package t2048

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// GameID identifies 2048 in score storage and screenshot names.
const GameID = "2048"

// Game drives a Board from platform input frames.
type Game struct {
	board      *Board
	rng        *rand.Rand
	tick       uint64
	spawn4Prob float64

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	paused   bool
	tooSmall bool
	notice   string // Feedback for the last rejected move
}

// New creates a new 2048 game with the default spawn probability.
func New() *Game {
	return &Game{
		spawn4Prob: DefaultSpawn4Prob,
	}
}

// SetSpawn4Prob sets the probability of spawning a 4, applied on the next Reset.
func (g *Game) SetSpawn4Prob(p float64) {
	g.spawn4Prob = p
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Board exposes the underlying engine.
func (g *Game) Board() *Board {
	return g.board
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.notice = ""

	g.board = NewBoard(g.rng)
	g.board.SetSpawn4Prob(g.spawn4Prob)
	//nolint:errcheck // An empty board always has room for the opening tiles
	g.board.StartBoard()

	g.checkScreenSize()
}

// Resize updates screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Minimum size: board (29 wide, 13 tall) + HUD (4 lines) + notice
	minW := 31
	minH := 19
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || !g.board.Status() {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := directionFromInput(in); ok {
		g.processMove(dir)
	}

	return core.StepResult{State: g.State()}
}

// directionFromInput picks the first move action present in the frame.
func directionFromInput(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// processMove runs one turn and records why it was rejected, if it was.
func (g *Game) processMove(dir Direction) {
	err := g.board.Turn(dir)
	switch {
	case err == nil:
		g.notice = ""
	case errors.Is(err, ErrNoValidMove):
		axis := "horizontally"
		if dir.Vertical() {
			axis = "vertically"
		}
		g.notice = fmt.Sprintf("Nothing merges %s", axis)
	default:
		g.notice = err.Error()
	}
}

// Notice returns the feedback for the last rejected move, if any.
func (g *Game) Notice() string {
	return g.notice
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.board.Score(),
		GameOver: !g.board.Status(),
		Paused:   g.paused || g.tooSmall,
	}
}
