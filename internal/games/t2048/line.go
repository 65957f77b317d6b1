package t2048

// Size is the board dimension.
const Size = 4

// Line is one row or column read from its leading edge toward its trailing edge.
type Line [Size]int

// Pos is a (row, col) coordinate on the board.
type Pos struct {
	Row, Col int
}

// slideLine compacts a line toward index 0 and merges equal neighbours.
// The pair nearest the leading edge merges first, and a merged tile never
// merges again in the same pass.
// Returns the resulting line and the score gained from merges.
func slideLine(line Line) (result Line, score int) {
	writePos := 0
	merged := false // result[writePos-1] came from a merge

	for _, v := range line {
		if v == 0 {
			continue
		}

		if writePos > 0 && !merged && result[writePos-1] == v {
			result[writePos-1] *= 2
			score += result[writePos-1]
			merged = true
			continue
		}

		result[writePos] = v
		writePos++
		merged = false
	}

	return result, score
}

// linePositions returns the board coordinates of line i for a direction,
// ordered from the leading edge to the trailing edge.
func linePositions(dir Direction, i int) [Size]Pos {
	var ps [Size]Pos
	for k := range Size {
		switch dir {
		case DirUp:
			ps[k] = Pos{Row: k, Col: i}
		case DirDown:
			ps[k] = Pos{Row: Size - 1 - k, Col: i}
		case DirLeft:
			ps[k] = Pos{Row: i, Col: k}
		case DirRight:
			ps[k] = Pos{Row: i, Col: Size - 1 - k}
		}
	}
	return ps
}

// slideGrid applies slideLine to every line of the grid for a direction.
// Returns the new grid and the total score gained.
func slideGrid(g Grid, dir Direction) (Grid, int) {
	out := g
	total := 0

	for i := range Size {
		ps := linePositions(dir, i)

		var line Line
		for k, p := range ps {
			line[k] = g[p.Row][p.Col]
		}

		slid, score := slideLine(line)
		total += score

		for k, p := range ps {
			out[p.Row][p.Col] = slid[k]
		}
	}

	return out, total
}
