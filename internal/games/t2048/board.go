package t2048

import (
	"fmt"
	"math/rand"
	"time"
)

// DefaultSpawn4Prob is the chance that a spawned tile is a 4 instead of a 2.
const DefaultSpawn4Prob = 0.10

// Grid is the 4x4 cell matrix. Zero means empty.
type Grid [Size][Size]int

// Rand is the random source used for spawning.
// *rand.Rand satisfies it; tests inject a seeded one.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Board owns the grid, the score and the playable status of one game.
// A Board is not safe for concurrent use.
type Board struct {
	grid       Grid
	score      int
	status     bool
	moves      int
	rng        Rand
	spawn4Prob float64
}

// NewBoard creates an empty playable board.
// A nil rng falls back to a time-seeded source.
func NewBoard(rng Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Board{
		status:     true,
		rng:        rng,
		spawn4Prob: DefaultSpawn4Prob,
	}
}

// FromGrid creates a playable board with the given cells and zero score.
func FromGrid(grid Grid, rng Rand) *Board {
	b := NewBoard(rng)
	b.grid = grid
	return b
}

// SetSpawn4Prob sets the probability (0.0-1.0) of spawning a 4.
func (b *Board) SetSpawn4Prob(p float64) {
	b.spawn4Prob = p
}

// Score returns the accumulated merge value.
func (b *Board) Score() int {
	return b.score
}

// Status returns false once the game is over.
func (b *Board) Status() bool {
	return b.status
}

// Moves returns the number of successful moves.
func (b *Board) Moves() int {
	return b.moves
}

// Grid returns a copy of the cells.
func (b *Board) Grid() Grid {
	return b.grid
}

// StartBoard places the two opening tiles: a 2 and a regular spawn.
func (b *Board) StartBoard() error {
	if err := b.AddCell(2); err != nil {
		return err
	}
	return b.AddCell(b.SpawnValue())
}

// SpawnValue draws the value of the next spawned tile.
func (b *Board) SpawnValue() int {
	if b.rng.Float64() < b.spawn4Prob {
		return 4
	}
	return 2
}

// AddCell places value in an empty cell chosen uniformly at random.
func (b *Board) AddCell(value int) error {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return ErrBoardFull
	}

	p := empty[b.rng.Intn(len(empty))]
	b.grid[p.Row][p.Col] = value
	return nil
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (b *Board) EmptyCells() []Pos {
	var cells []Pos
	for r := range Size {
		for c := range Size {
			if b.grid[r][c] == 0 {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}

func checkRange(r, c int) error {
	if r < 0 || r >= Size || c < 0 || c >= Size {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, r, c)
	}
	return nil
}

// Cell returns the value at row r, column c.
func (b *Board) Cell(r, c int) (int, error) {
	if err := checkRange(r, c); err != nil {
		return 0, err
	}
	return b.grid[r][c], nil
}

// SetCell stores v at row r, column c.
func (b *Board) SetCell(r, c, v int) error {
	if err := checkRange(r, c); err != nil {
		return err
	}
	b.grid[r][c] = v
	return nil
}

// IsEmpty reports whether the cell at row r, column c holds no tile.
func (b *Board) IsEmpty(r, c int) (bool, error) {
	v, err := b.Cell(r, c)
	if err != nil {
		return false, err
	}
	return v == 0, nil
}

// IsFull reports whether no cell is empty.
func (b *Board) IsFull() bool {
	for r := range Size {
		for c := range Size {
			if b.grid[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// HorizontalCheck reports whether two horizontally adjacent cells are equal.
func (b *Board) HorizontalCheck() bool {
	for r := range Size {
		for c := range Size - 1 {
			if b.grid[r][c] == b.grid[r][c+1] {
				return true
			}
		}
	}
	return false
}

// VerticalCheck reports whether two vertically adjacent cells are equal.
func (b *Board) VerticalCheck() bool {
	for r := range Size - 1 {
		for c := range Size {
			if b.grid[r][c] == b.grid[r+1][c] {
				return true
			}
		}
	}
	return false
}

// IsOver reports whether the board is full with no possible merge.
// When it is, the status flips to false for good.
func (b *Board) IsOver() bool {
	if !b.IsFull() {
		return false
	}
	if b.HorizontalCheck() || b.VerticalCheck() {
		return false
	}
	b.status = false
	return true
}

// MaxTile returns the highest tile on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			maxVal = max(maxVal, b.grid[r][c])
		}
	}
	return maxVal
}

// Move slides the board in the given direction.
func (b *Board) Move(dir Direction) error {
	switch dir {
	case DirUp:
		return b.Up()
	case DirDown:
		return b.Down()
	case DirLeft:
		return b.Left()
	case DirRight:
		return b.Right()
	default:
		return fmt.Errorf("t2048: invalid direction %d", dir)
	}
}

// Up slides all tiles toward row 0.
func (b *Board) Up() error { return b.slide(DirUp) }

// Down slides all tiles toward row 3.
func (b *Board) Down() error { return b.slide(DirDown) }

// Left slides all tiles toward column 0.
func (b *Board) Left() error { return b.slide(DirLeft) }

// Right slides all tiles toward column 3.
func (b *Board) Right() error { return b.slide(DirRight) }

// slide checks axis legality and applies the move.
// A full board only moves along an axis that has an equal adjacent pair.
func (b *Board) slide(dir Direction) error {
	if b.IsFull() {
		canMerge := b.HorizontalCheck()
		if dir.Vertical() {
			canMerge = b.VerticalCheck()
		}
		if !canMerge {
			return fmt.Errorf("%w: %s", ErrNoValidMove, dir)
		}
	}

	grid, gained := slideGrid(b.grid, dir)
	b.grid = grid
	b.score += gained
	b.moves++
	return nil
}

// Turn runs one play cycle: move, spawn a tile, then check for game over.
func (b *Board) Turn(dir Direction) error {
	if !b.status {
		return ErrGameOver
	}
	if err := b.Move(dir); err != nil {
		return err
	}
	if err := b.AddCell(b.SpawnValue()); err != nil {
		return err
	}
	b.IsOver()
	return nil
}
