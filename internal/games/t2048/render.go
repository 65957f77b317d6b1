package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 3 // Height of each cell (including top border)
)

// tileColor picks a foreground color for a tile value.
func tileColor(v int) core.Color {
	switch {
	case v <= 4:
		return core.ColorWhite
	case v <= 16:
		return core.ColorYellow
	case v <= 64:
		return core.ColorOrange
	case v <= 256:
		return core.ColorRed
	case v <= 1024:
		return core.ColorMagenta
	case v <= 2048:
		return core.ColorBrightYellow
	default:
		return core.ColorCyan
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := Size*cellWidth + 1
	boardH := Size*cellHeight + 1
	hudHeight := 3

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)

	if g.notice != "" {
		dst.DrawTextColored(boardX, boardY+boardH+1, g.notice, core.ColorGray)
	}

	if controlsY := dst.Height() - 1; controlsY > boardY+boardH+1 {
		controls := g.Controls()
		dst.DrawTextColored(max(0, (g.screenW-len(controls))/2), controlsY, controls, core.ColorGray)
	}

	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and progress line.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.board.Score()))

	info := fmt.Sprintf("Max: %d", g.board.MaxTile())
	dst.DrawText(max(boardX, boardX+boardW-len(info)), 1, info)

	moves := fmt.Sprintf("Moves: %d", g.board.Moves())
	dst.DrawTextColored(boardX+(boardW-len(moves))/2, 2, moves, core.ColorGray)
}

// renderBoard draws the grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range Size + 1 {
		for x := range Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == Size:
				corner = '┐'
			case y == Size && x == 0:
				corner = '└'
			case y == Size && x == Size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == Size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == Size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < Size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < Size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	grid := g.board.Grid()
	for r := range Size {
		for c := range Size {
			val := grid[r][c]
			if val == 0 {
				continue
			}

			cellX := boardX + c*cellWidth + 1
			cellY := boardY + r*cellHeight + 1 + (cellHeight-1)/2

			valStr := strconv.Itoa(val)
			padLeft := max(0, (cellWidth-1-len(valStr))/2)
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if !g.board.Status() {
		g.drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Marks: %d", g.board.Score()),
			"Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
