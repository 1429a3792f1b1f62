package ghostmaze

import (
	"fmt"

	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/engine"
	"github.com/vovakirdan/ghostmaze/internal/entity"
	"github.com/vovakirdan/ghostmaze/internal/maze"
)

const (
	hudHeight = 2
	cellWidth = 2 // Terminal cells are about twice as tall as wide
)

// RequiredSize returns the screen size needed to draw a board.
func RequiredSize(boardW, boardH int) (int, int) {
	return boardW * cellWidth, boardH + hudHeight
}

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2, "Cannot start: "+g.err.Error())
		return
	}
	if g.mgr == nil {
		return
	}

	s := g.mgr.Snapshot()
	needW, needH := RequiredSize(s.Width, s.Height)
	if dst.Width() < needW || dst.Height() < needH {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Terminal too small: need %dx%d", needW, needH))
		return
	}

	offsetX := (dst.Width() - needW) / 2
	g.renderHUD(dst, s, offsetX)
	renderBoard(dst, s, offsetX, hudHeight)

	switch {
	case s.Status == engine.StatusWon:
		drawOverlay(dst, "ALL TOKENS COLLECTED", fmt.Sprintf("Score: %d", s.Score), "R restart  Q quit")
	case s.Status == engine.StatusLost:
		drawOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d", s.Score), "R restart  Q quit")
	case g.paused:
		drawOverlay(dst, "PAUSED", "", "P resume")
	}
}

func (g *Game) renderHUD(dst *core.Screen, s engine.Snapshot, x int) {
	dst.DrawTextColored(x, 0, fmt.Sprintf("Score %d", s.Score), core.ColorBrightWhite)
	dst.DrawTextColored(x+14, 0, fmt.Sprintf("Lives %d", s.Lives), core.ColorBrightRed)
	dst.DrawTextColored(x+24, 0, fmt.Sprintf("Tokens %d", s.RemainingTokens), core.ColorBrightCyan)

	status := fmt.Sprintf("Board %d", g.boards)
	switch s.PlayerState {
	case entity.PlayerSuper:
		dst.DrawTextColored(x+14, 1, fmt.Sprintf("SUPER %d", s.EventTimer), core.ColorOrange)
	case entity.PlayerInvisible:
		dst.DrawTextColored(x+14, 1, fmt.Sprintf("INVISIBLE %d", s.EventTimer), core.ColorMagenta)
	}
	dst.DrawTextColored(x, 1, status, core.ColorGray)
}

func renderBoard(dst *core.Screen, s engine.Snapshot, offsetX, offsetY int) {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			r, c := glyph(s.At(core.Pos{X: x, Y: y}), s.PlayerState)
			sx := offsetX + x*cellWidth
			dst.SetColored(sx, offsetY+y, r, c)
			if r == '█' {
				dst.SetColored(sx+1, offsetY+y, r, c)
			}
		}
	}
}

// glyph picks what to draw for a cell: player over ghosts over tokens over
// terrain.
func glyph(v engine.CellView, ps entity.PlayerState) (rune, core.Color) {
	switch {
	case v.Player:
		switch ps {
		case entity.PlayerSuper:
			return 'C', core.ColorOrange
		case entity.PlayerInvisible:
			return 'C', core.ColorGray
		default:
			return 'C', core.ColorBrightYellow
		}
	case v.Ghosts > 0:
		if v.Afraid {
			return 'M', core.ColorBrightBlue
		}
		return 'M', core.ColorBrightRed
	}

	switch v.Token {
	case entity.TokenBlue:
		return '·', core.ColorBrightCyan
	case entity.TokenViolet:
		return '◆', core.ColorBrightMagenta
	case entity.TokenOrange:
		return '●', core.ColorOrange
	case entity.TokenGreen:
		return '♣', core.ColorBrightGreen
	}

	if v.Tile == maze.Wall {
		return '█', core.ColorBlue
	}
	return ' ', core.ColorDefault
}

func drawOverlay(dst *core.Screen, title, line, hint string) {
	w := core.Max(len(title), core.Max(len(line), len(hint))) + 6
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(box.X+(w-len(title))/2, box.Y+1, title, core.ColorBrightYellow)
	if line != "" {
		dst.DrawText(box.X+(w-len(line))/2, box.Y+2, line)
	}
	dst.DrawTextColored(box.X+(w-len(hint))/2, box.Y+3, hint, core.ColorGray)
}
