package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

var (
	stylesMu sync.Mutex
	styles   = map[core.Color]lipgloss.Style{}
)

// styleFor returns the cached lipgloss style for c. SSH sessions render
// concurrently, hence the lock.
func styleFor(c core.Color) lipgloss.Style {
	stylesMu.Lock()
	defer stylesMu.Unlock()

	if st, ok := styles[c]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if code := c.ANSI(); code != "" {
		st = st.Foreground(lipgloss.Color(code))
	}
	styles[c] = st
	return st
}

// RenderScreen converts a Screen to a styled string. Cells of one color on
// a row are emitted as a single run; uncolored runs are written raw.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
