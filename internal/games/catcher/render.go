package catcher

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bottle-catcher/internal/core"
)

// Visual characters for rendering
const (
	BottleBodyChar = '█'
	BottleNeckChar = '▄'
	BowlLeftChar   = '╰'
	BowlMidChar    = '─'
	BowlRightChar  = '╯'
)

// Headlines shown when the session ends.
const (
	LoseTitle = "LOSER"
	WinTitle  = "SIGMA"
)

// Render draws the current game state to the screen.
// While playing it shows the bowl, bottles and score; once the game is over
// only the result screen is drawn.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.session.Phase() {
	case PhaseLost:
		g.drawResult(dst, LoseTitle)
		return
	case PhaseWon:
		g.drawResult(dst, WinTitle)
		return
	}

	for _, b := range g.session.bottles.items {
		if b.Active {
			g.drawBottle(dst, b)
		}
	}
	g.drawBowl(dst)

	// Draw HUD
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.session.Score()), core.ColorBrightWhite)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	}
}

// drawBottle renders one bottle as a body cell with a neck above it.
func (g *Game) drawBottle(dst *core.Screen, b Bottle) {
	x := core.WorldToCol(b.X, dst.Width())
	y := core.WorldToRow(b.Y+g.cfg.Bottle.Width*bottleCenterFactor, dst.Height())
	dst.SetColored(x, y, BottleBodyChar, core.ColorGreen)
	dst.SetColored(x, y-1, BottleNeckChar, core.ColorBrightGreen)
}

// drawBowl renders the catcher centered on its collision circle.
func (g *Game) drawBowl(dst *core.Screen) {
	c := g.session.CatcherCircle()
	cells := core.Max(3, int(math.Round(g.cfg.Player.Width/2*float64(dst.Width()-1))))
	left := core.WorldToCol(c.X, dst.Width()) - cells/2
	y := core.WorldToRow(c.Y, dst.Height())

	dst.SetColored(left, y, BowlLeftChar, core.ColorRed)
	dst.DrawHLine(left+1, y, cells-2, BowlMidChar, core.ColorRed)
	dst.SetColored(left+cells-1, y, BowlRightChar, core.ColorRed)
}

// drawResult draws the game over screen.
func (g *Game) drawResult(dst *core.Screen, title string) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, title, core.ColorBrightWhite)
	dst.DrawTextCentered(mid, fmt.Sprintf("Final Score: %d", g.session.Score()), core.ColorWhite)
	dst.DrawTextCentered(mid+2, "Press 'r' to Restart", core.ColorGreen)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, c)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
