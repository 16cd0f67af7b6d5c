package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FitBadges renders items as badges on a single line no wider than width.
// Items that do not fit are dropped from the end and counted in a trailing
// "+N" marker. hidden is the number of dropped items.
func FitBadges(items []string, width int, badge, more lipgloss.Style) (line string, hidden int) {
	rendered := make([]string, len(items))
	for i, item := range items {
		rendered[i] = badge.Render(item)
	}

	for visible := len(items); visible >= 0; visible-- {
		parts := append([]string(nil), rendered[:visible]...)
		if hidden = len(items) - visible; hidden > 0 {
			parts = append(parts, more.Render(fmt.Sprintf("+%d", hidden)))
		}
		line = strings.Join(parts, " ")
		if width <= 0 || lipgloss.Width(line) <= width {
			return line, hidden
		}
	}
	return line, hidden
}
