package t2048

import "errors"

var (
	// ErrOutOfRange is returned when a cell is addressed outside the board.
	ErrOutOfRange = errors.New("t2048: cell out of range")

	// ErrBoardFull is returned when a tile is spawned on a board with no empty cell.
	ErrBoardFull = errors.New("t2048: board is full")

	// ErrNoValidMove is returned when the board is full and no merge exists
	// along the axis of the requested move.
	ErrNoValidMove = errors.New("t2048: no valid move")

	// ErrGameOver is returned by Turn once the board status is false.
	ErrGameOver = errors.New("t2048: game is over")
)
