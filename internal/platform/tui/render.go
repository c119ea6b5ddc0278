package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcadeworks/tui-pinball/internal/core"
	"github.com/arcadeworks/tui-pinball/internal/pin"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences. With mono set, the palette collapses to the default style.
func RenderScreen(s *core.Screen, mono bool) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

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
			if !ok || mono {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Fixed panel rows above the playfield window.
const (
	dmRows    = 4 // dot-matrix panel, 160x16 pixels sampled 2x4
	statusRow = dmRows
	fieldTop  = dmRows + 1
)

// DrawSnapshot paints one simulation frame into the screen buffer: the
// dot-matrix panel, a status line, and the scrolled playfield window below.
func DrawSnapshot(s *core.Screen, snap pin.Snapshot, layout *pin.Layout) {
	s.Clear()
	drawDM(s, snap)
	drawStatus(s, snap)
	drawPlayfield(s, snap, layout)
	drawCurtain(s, snap)
}

// drawDM samples the 160x16 dot-matrix into 2x4 pixel blocks.
func drawDM(s *core.Screen, snap pin.Snapshot) {
	if !snap.DMOn {
		return
	}
	for cy := 0; cy < dmRows; cy++ {
		for cx := 0; cx < pin.DMWidth/2 && cx < s.Width(); cx++ {
			lit := false
			for dy := 0; dy < 4 && !lit; dy++ {
				for dx := 0; dx < 2 && !lit; dx++ {
					lit = snap.DMPixels[cy*4+dy][cx*2+dx]
				}
			}
			if lit {
				s.SetColored(cx, cy, '█', core.ColorOrange)
			}
		}
	}
}

func drawStatus(s *core.Screen, snap pin.Snapshot) {
	status := fmt.Sprintf("%s  SCORE %s", snap.TableName, snap.Score)
	if snap.Players > 0 {
		status = fmt.Sprintf("%s  P%d/%d  BALL %d/%d  SCORE %s",
			snap.TableName, snap.Player, snap.Players, snap.Ball, snap.Balls, snap.Score)
	}
	if snap.ModeSeconds > 0 {
		status += fmt.Sprintf("  MODE %ds", snap.ModeSeconds)
	}
	if snap.Tilted {
		status += "  ** TILT **"
	}
	if snap.State == pin.StatePaused {
		status += "  [PAUSED]"
	}
	s.DrawTextColored(0, statusRow, status, core.ColorWhite)
}

// drawPlayfield samples the visible scroll window of the ball's layer into
// character cells and overlays the fixtures on top.
func drawPlayfield(s *core.Screen, snap pin.Snapshot, layout *pin.Layout) {
	availW := s.Width()
	availH := s.Height() - fieldTop
	if availW <= 0 || availH <= 0 {
		return
	}
	pxPerCol := (pin.PlayfieldW + availW - 1) / availW
	if pxPerCol < 1 {
		pxPerCol = 1
	}
	pxPerRow := (snap.ViewHeight + availH - 1) / availH
	if pxPerRow < 1 {
		pxPerRow = 1
	}

	layer := layout.Layers[snap.BallLayer]

	for cy := 0; cy < availH; cy++ {
		py := snap.ScrollPos + cy*pxPerRow + pxPerRow/2
		if py >= snap.ScrollPos+snap.ViewHeight || py >= pin.PlayfieldH {
			break
		}
		for cx := 0; cx < availW; cx++ {
			px := cx*pxPerCol + pxPerCol/2
			if px >= pin.PlayfieldW {
				break
			}
			switch code := layer.At(px, py); {
			case code == pin.CellFree:
			case code&pin.CellLayerBase != 0:
				s.SetColored(cx, cy+fieldTop, '^', core.ColorCyan)
			case code == pin.SolidCell(2):
				s.SetColored(cx, cy+fieldTop, '▒', core.ColorRed)
			default:
				s.SetColored(cx, cy+fieldTop, '▓', core.ColorGray)
			}
		}
	}

	toCell := func(px, py int) (int, int, bool) {
		if py < snap.ScrollPos || py >= snap.ScrollPos+snap.ViewHeight {
			return 0, 0, false
		}
		cx := px / pxPerCol
		cy := (py - snap.ScrollPos) / pxPerRow
		if cx >= availW || cy >= availH {
			return 0, 0, false
		}
		return cx, cy + fieldTop, true
	}

	// Lights.
	for i, def := range snap.LightPos {
		if x, y, ok := toCell(def.X, def.Y); ok {
			if i < len(snap.Lights) && snap.Lights[i] {
				s.SetColored(x, y, '●', core.ColorYellow)
			} else {
				s.SetColored(x, y, '·', core.ColorGray)
			}
		}
	}

	// Bumpers and kickers on the visible layer.
	for _, b := range layout.Bumpers {
		if b.Layer != snap.BallLayer {
			continue
		}
		if x, y, ok := toCell(b.X, b.Y); ok {
			r := 'O'
			if b.Kicker {
				r = 'U'
			}
			s.SetColored(x, y, r, core.ColorMagenta)
		}
	}

	// Flippers: flat when resting, angled while swinging or held.
	for _, f := range snap.Flippers {
		r := '─'
		if f.Quantum > f.Quanta/2 {
			if f.Side == pin.SideLeft {
				r = '/'
			} else {
				r = '\\'
			}
		}
		for px := f.Rect.X; px < f.Rect.Right(); px += pxPerCol {
			if x, y, ok := toCell(px, f.Rect.Y); ok {
				s.SetColored(x, y, r, core.ColorWhite)
			}
		}
	}

	// Spring: compressed from the top as it charges.
	if snap.SpringMax > 0 {
		r := layout.SpringRect
		compress := (r.H / 2) * snap.SpringPos / snap.SpringMax
		for py := r.Y + compress; py < r.Bottom(); py += pxPerRow {
			if x, y, ok := toCell(r.X+r.W/2, py); ok {
				s.SetColored(x, y, '‖', core.ColorGreen)
			}
		}
	}

	// The ball paints last, on top of everything.
	if snap.BallVisible {
		if x, y, ok := toCell(snap.BallX, snap.BallY); ok {
			s.SetColored(x, y, '●', core.ColorWhite)
		}
	}
}

// drawCurtain blanks rows from the bottom up while the quit fade runs.
func drawCurtain(s *core.Screen, snap pin.Snapshot) {
	if snap.Fade >= 0x100 {
		return
	}
	blank := s.Height() * (0x100 - snap.Fade) / 0x100
	for y := s.Height() - blank; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			s.Set(x, y, ' ')
		}
	}
}
