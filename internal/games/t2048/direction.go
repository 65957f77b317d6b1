package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all directions in dispatch order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Vertical reports whether the direction moves tiles along columns.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// ParseDirection maps user text to a direction.
// Accepts full names in any case and WASD keys.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "w":
		return DirUp, nil
	case "down", "s":
		return DirDown, nil
	case "left", "a":
		return DirLeft, nil
	case "right", "d":
		return DirRight, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
