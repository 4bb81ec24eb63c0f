package mazequest

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/mazequest/internal/core"
	"github.com/vovakirdan/mazequest/internal/questions"
)

const hudHeight = 2

// Render draws the current game state. World coordinates are scaled
// down to the character grid, so the same maze renders on any terminal
// size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	viewW := dst.Width()
	viewH := dst.Height() - hudHeight
	if viewW < 20 || viewH < 10 {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderWorld(dst, viewW, viewH)

	if g.encounter != nil && g.encounter.Active() {
		g.renderCombat(dst)
	}

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	name := ""
	if g.level != nil {
		name = g.level.Def.Name
	}
	hud := fmt.Sprintf(" MazeQuest  HP: %d/%d  Score: %d  %s",
		g.hero.Health, g.hero.MaxHealth, g.score, name)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	if g.feedbackLeft > 0 && g.feedback != "" {
		msg := " " + g.feedback
		x := dst.Width() - len(msg)
		if x < len(hud)+2 {
			x = len(hud) + 2
		}
		dst.DrawTextColored(x, 0, msg, core.ColorYellow)
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// worldToView maps a world rect into view cells, keeping at least one
// cell so thin walls stay visible.
func (g *Game) worldToView(r core.Rect, viewW, viewH int) core.Rect {
	x := r.X * viewW / g.cfg.World.Width
	y := r.Y * viewH / g.cfg.World.Height
	x2 := r.Right() * viewW / g.cfg.World.Width
	y2 := r.Bottom() * viewH / g.cfg.World.Height
	return core.NewRect(x, y+hudHeight, core.Max(1, x2-x), core.Max(1, y2-y))
}

func (g *Game) renderWorld(dst *core.Screen, viewW, viewH int) {
	for _, wall := range g.level.Walls() {
		dst.DrawRect(g.worldToView(wall, viewW, viewH), '█', g.level.Def.WallColor)
	}

	doorColor := core.ColorRed
	switch g.level.Door.State {
	case DoorOpening:
		doorColor = core.ColorYellow
	case DoorOpen:
		doorColor = core.ColorBrightGreen
	}
	dst.DrawRect(g.worldToView(g.level.Door.Rect, viewW, viewH), 'D', doorColor)

	for _, m := range g.level.Medkits {
		if m.Used {
			continue
		}
		dst.DrawRect(g.worldToView(m.Rect, viewW, viewH), '+', core.ColorBrightRed)
	}

	for _, e := range g.enemies {
		if !e.Alive() {
			continue
		}
		dst.DrawRect(g.worldToView(e.Rect, viewW, viewH), 'z', core.ColorMagenta)
	}

	dst.DrawRect(g.worldToView(g.hero.Rect, viewW, viewH), '@', core.ColorBrightCyan)
}

// renderCombat draws the question modal over the world.
func (g *Game) renderCombat(dst *core.Screen) {
	w := core.Min(dst.Width()-4, 64)
	h := 12
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	box := core.NewRect(x, y, w, h)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextColored(x+2, y, " "+g.encounter.Modality.Title()+" ", core.ColorBrightYellow)

	entry := g.encounter.Current()
	inner := w - 4
	line := y + 2

	switch g.encounter.Modality {
	case questions.WordOrdering:
		dst.DrawText(x+2, line, clip("Order the words:", inner))
		line += 2
		var parts []string
		for i, word := range g.prompt.words {
			switch {
			case g.prompt.used[i]:
				parts = append(parts, strings.Repeat("·", len(word)))
			case i == g.prompt.cursor:
				parts = append(parts, "["+word+"]")
			default:
				parts = append(parts, word)
			}
		}
		dst.DrawTextColored(x+2, line, clip(strings.Join(parts, " / "), inner), core.ColorBrightWhite)
		line += 2
		dst.DrawTextColored(x+2, line, clip("> "+g.prompt.answer(), inner), core.ColorCyan)
	case questions.MultipleChoice:
		dst.DrawText(x+2, line, clip(entry.Prompt, inner))
		line += 2
		for i, opt := range g.prompt.options {
			prefix := "  "
			color := core.ColorDefault
			if i == g.prompt.cursor {
				prefix = "> "
				color = core.ColorBrightWhite
			}
			dst.DrawTextColored(x+2, line, clip(prefix+opt, inner), color)
			line++
		}
	default:
		dst.DrawText(x+2, line, clip(entry.Prompt, inner))
		line += 2
		dst.DrawTextColored(x+2, line, clip("> "+string(g.prompt.typed)+"_", inner), core.ColorCyan)
	}

	if g.prompt.result != "" {
		dst.DrawTextColored(x+2, y+h-3, clip(g.prompt.result, inner), core.ColorYellow)
	}
	dst.DrawTextColored(x+2, y+h-2, clip("Enter: confirm  Backspace: undo", inner), core.ColorGray)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	w := core.Max(len(title), len(subtitle)) + 6
	h := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	box := core.NewRect(x, y, w, h)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextColored(x+(w-len(title))/2, y+1, title, core.ColorBrightWhite)
	dst.DrawTextColored(x+(w-len(subtitle))/2, y+3, subtitle, core.ColorGray)
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return ""
	}
	return string(r[:max-1]) + "…"
}
