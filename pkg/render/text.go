package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/counter/pkg/layout"
)

var (
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	disabledButtonStyle = buttonStyle.Faint(true)
)

// Text renders root as terminal text. Buttons are drawn boxed.
func Text(root layout.RenderObject) string {
	return renderText(Snapshot(root))
}

func renderText(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Type {
	case "text":
		return n.Text
	case "button":
		if n.Disabled {
			return disabledButtonStyle.Render(n.Label)
		}
		return buttonStyle.Render(n.Label)
	case "flex":
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			parts = append(parts, renderText(c))
		}
		if len(parts) == 0 {
			return ""
		}
		if n.Direction == layout.AxisHorizontal.String() {
			gap := strings.Repeat(" ", n.Spacing)
			spaced := make([]string, 0, 2*len(parts)-1)
			for i, p := range parts {
				if i > 0 && gap != "" {
					spaced = append(spaced, gap)
				}
				spaced = append(spaced, p)
			}
			return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
		}
		if n.Spacing > 0 {
			sep := strings.Repeat("\n", n.Spacing)
			return strings.Join(parts, "\n"+sep)
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	default:
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			parts = append(parts, renderText(c))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
}
