package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JStanoeva/glimmerwood-dash/internal/core"
	"github.com/JStanoeva/glimmerwood-dash/internal/engine"
)

// HUD carries presentation-only state drawn alongside the simulation.
type HUD struct {
	HighScore int
	Muted     bool
}

// DrawScene renders a simulation snapshot into the screen buffer: forest
// backdrop, entities, HUD, and the overlay for the current state.
func DrawScene(s *core.Screen, snap engine.Snapshot, hud HUD) {
	s.Clear()

	drawBackdrop(s, snap)
	drawGround(s, snap)

	for _, o := range snap.Obstacles {
		drawObstacle(s, o)
	}
	for _, h := range snap.Pickups {
		drawHeart(s, h)
	}
	drawPlayer(s, snap.Player)

	drawHUD(s, snap, hud)

	switch snap.State {
	case engine.StateTitle:
		drawTitleOverlay(s)
	case engine.StatePaused:
		drawPausedOverlay(s)
	case engine.StateGameOver:
		drawGameOverOverlay(s, snap, hud)
	}
}

// drawBackdrop draws the twinkling fireflies and a slow parallax layer of
// distant trees driven by the background scroll offset.
func drawBackdrop(s *core.Screen, snap engine.Snapshot) {
	w := s.Width()
	if w <= 0 {
		return
	}

	// Distant trees repeat on a fixed world grid and drift at a fraction of
	// the scroll speed.
	treeRow := int(snap.GroundY) - 1
	shift := int(snap.BGOffset * 0.25)
	for x := 0; x < w; x++ {
		world := x + shift
		if world%13 == 0 {
			s.SetCell(x, treeRow, '↟', core.ColorGreen)
		}
	}

	for _, f := range snap.Fireflies {
		glow := math.Sin(f.Phase)
		x, y := int(f.X), int(f.Y)
		switch {
		case glow > 0.4:
			s.SetCell(x, y, '✦', core.ColorBrightYellow)
		case glow > -0.4:
			s.SetCell(x, y, '·', core.ColorYellow)
		default:
			// Dark part of the twinkle: invisible.
		}
	}
}

// drawGround draws the ground line and the soil beneath it.
func drawGround(s *core.Screen, snap engine.Snapshot) {
	groundY := int(snap.GroundY)
	s.DrawHLine(0, groundY, s.Width(), '▔', core.ColorGreen)

	// Mossy texture below the line, scrolling with the world.
	shift := int(snap.BGOffset)
	for y := groundY + 1; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if (x+shift+y*3)%5 == 0 {
				s.SetCell(x, y, '░', core.ColorGray)
			}
		}
	}
}

func drawObstacle(s *core.Screen, o engine.Obstacle) {
	x, y := int(o.X), int(o.Y)
	w, h := cellSpan(o.W), cellSpan(o.H)

	switch o.Kind {
	case engine.KindSmall:
		// Stump
		s.DrawRect(x, y, w, h, '▓', core.ColorOrange)
	case engine.KindLarge:
		// Bramble
		s.DrawRect(x, y, w, h, '▒', core.ColorGreen)
		s.SetCell(x, y, '✶', core.ColorBrightGreen)
		s.SetCell(x+w-1, y, '✶', core.ColorBrightGreen)
	}
}

func drawHeart(s *core.Screen, h engine.Heart) {
	bob := int(math.Round(math.Sin(h.BobPhase) * 0.5))
	x, y := int(h.X), int(h.Y)+bob
	for i := 0; i < cellSpan(h.W); i++ {
		s.SetCell(x+i, y, '♥', core.ColorBrightRed)
	}
}

func drawPlayer(s *core.Screen, p engine.Player) {
	x, y := int(p.X), int(p.Y)
	w, h := cellSpan(p.W), cellSpan(p.H)

	s.DrawRect(x, y, w, h, '█', core.ColorBrightCyan)
	// Face on the leading edge.
	s.SetCell(x+w-1, y, '●', core.ColorBrightWhite)
}

// cellSpan converts a fractional extent to the number of character cells it
// covers, at least one.
func cellSpan(extent float64) int {
	n := int(math.Round(extent))
	if n < 1 {
		n = 1
	}
	return n
}

func drawHUD(s *core.Screen, snap engine.Snapshot, hud HUD) {
	s.DrawTextColored(2, 0, fmt.Sprintf("SCORE %d", snap.Score), core.ColorBrightWhite)

	hearts := strings.Repeat("♥", snap.Hearts) + strings.Repeat("♡", snap.HeartCap-snap.Hearts)
	s.DrawTextColored((s.Width()-len([]rune(hearts)))/2, 0, hearts, core.ColorBrightRed)

	right := fmt.Sprintf("BEST %d", hud.HighScore)
	if hud.Muted {
		right += "  [muted]"
	}
	s.DrawTextColored(s.Width()-len(right)-2, 0, right, core.ColorGray)
}

// overlayBox draws a centered bordered box and returns the y of its first
// inner row.
func overlayBox(s *core.Screen, w, h int) (x, y int) {
	x = (s.Width() - w) / 2
	y = (s.Height() - h) / 2
	// Clear the interior so the scene doesn't bleed through.
	s.DrawRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h)
	return x, y + 1
}

func drawTitleOverlay(s *core.Screen) {
	_, y := overlayBox(s, 40, 7)
	s.DrawTextCentered(y, "G L I M M E R W O O D   D A S H")
	s.DrawTextCentered(y+2, "enter - start    space - jump")
	s.DrawTextCentered(y+3, "p - pause   m - mute   q - quit")
}

func drawPausedOverlay(s *core.Screen) {
	_, y := overlayBox(s, 26, 5)
	s.DrawTextCentered(y+1, "P A U S E D")
}

func drawGameOverOverlay(s *core.Screen, snap engine.Snapshot, hud HUD) {
	_, y := overlayBox(s, 34, 7)
	s.DrawTextCentered(y, "G A M E   O V E R")
	s.DrawTextCentered(y+2, fmt.Sprintf("score %d   best %d", snap.Score, hud.HighScore))
	s.DrawTextCentered(y+4, "enter - again    q - quit")
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
