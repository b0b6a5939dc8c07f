package game

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

const hudRows = 2

// Render draws the current phase into the screen buffer. The world is
// projected from world units onto terminal cells through the camera
// offset; the simulation itself never sees cell coordinates.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()

	if screen.Width() < 24 || screen.Height() < 10 {
		screen.DrawTextCentered(screen.Height()/2, "Terminal too small", core.ColorYellow)
		return
	}

	switch g.machine.Phase() {
	case PhaseMenu:
		g.renderMenu(screen)
	case PhasePlaying:
		g.renderWorld(screen)
		g.renderHUD(screen)
	case PhaseGameOver:
		g.renderWorld(screen)
		g.renderHUD(screen)
		g.renderOverlay(screen, "GAME OVER", core.ColorRed, []string{
			fmt.Sprintf("Score: %d", g.level.Score),
			"Enter: menu   Esc: quit",
		})
	case PhaseWin:
		g.renderWorld(screen)
		g.renderHUD(screen)
		g.renderOverlay(screen, "LEVEL COMPLETE!", core.ColorGreen, []string{
			fmt.Sprintf("Final score: %d", g.level.Score),
			"Enter: menu   Esc: quit",
		})
	}
}

func (g *Game) renderMenu(screen *core.Screen) {
	mid := screen.Height() / 2
	screen.DrawTextCentered(mid-3, "P L A T F O R M E R", core.ColorBrightCyan)
	screen.DrawTextCentered(mid-1, g.levelName, core.ColorWhite)
	screen.DrawTextCentered(mid+1, "Enter: start", core.ColorGreen)
	screen.DrawTextCentered(mid+2, "Esc: quit", core.ColorBrightBlack)
	screen.DrawTextCentered(mid+4, "Move: arrows / A,D    Jump: space / W / up", core.ColorBrightBlack)
}

// project maps a world rect onto screen cells, applying the camera
// offset. Anything visible keeps at least one cell in each dimension.
func (g *Game) project(screen *core.Screen, r core.Rect) (x, y, w, h int) {
	playW := float64(screen.Width())
	playH := float64(screen.Height() - hudRows)
	scaleX := playW / g.tuning.World.ViewportW
	scaleY := playH / g.tuning.World.ViewportH

	x = int((r.X + g.level.Camera.Offset) * scaleX)
	y = hudRows + int(r.Y*scaleY)
	w = int(r.W * scaleX)
	h = int(r.H * scaleY)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return x, y, w, h
}

func (g *Game) renderWorld(screen *core.Screen) {
	for i := range g.level.Colliders {
		c := &g.level.Colliders[i]
		x, y, w, h := g.project(screen, c.Box)
		glyph := '█'
		color := c.Color
		if c.Tag == TagGoal {
			glyph = '▓'
			color = core.ColorRed
		}
		screen.FillRect(x, y, w, h, glyph, color)
	}

	for i := range g.level.Coins {
		if g.level.Coins[i].Collected {
			continue
		}
		box := g.level.Coins[i].Box
		x, y, w, h := g.project(screen, box)
		screen.SetCell(x+w/2, y+h/2, '●', core.ColorBrightYellow)
	}

	p := g.level.Player
	x, y, w, h := g.project(screen, p.Bounds())
	screen.FillRect(x, y, w, h, '█', core.ColorBrightBlue)
	// Facing indicator on the actor's head row.
	if p.FacingRight {
		screen.SetCell(x+w-1, y, '▶', core.ColorBrightWhite)
	} else {
		screen.SetCell(x, y, '◀', core.ColorBrightWhite)
	}
}

func (g *Game) renderHUD(screen *core.Screen) {
	screen.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.level.Score), core.ColorBrightYellow)
	coins := fmt.Sprintf("Coins left: %d", g.level.CoinsRemaining())
	screen.DrawTextColored(screen.Width()/2-len(coins)/2, 0, coins, core.ColorYellow)
	name := g.levelName
	screen.DrawTextColored(screen.Width()-len(name)-1, 0, name, core.ColorBrightCyan)
	screen.DrawHLine(0, 1, screen.Width(), '─', core.ColorBrightBlack)
}

func (g *Game) renderOverlay(screen *core.Screen, title string, titleColor core.Color, lines []string) {
	boxW := len(title) + 8
	for _, line := range lines {
		if len(line)+6 > boxW {
			boxW = len(line) + 6
		}
	}
	boxH := len(lines) + 4
	x := (screen.Width() - boxW) / 2
	y := (screen.Height() - boxH) / 2

	screen.FillRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	screen.DrawBox(x, y, boxW, boxH, titleColor)
	screen.DrawTextColored(x+(boxW-len(title))/2, y+1, title, titleColor)
	for i, line := range lines {
		screen.DrawTextColored(x+(boxW-len(line))/2, y+3+i, line, core.ColorWhite)
	}
}
