package display

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
)

// PanelInfo is the state shown in the TTY status panel.
type PanelInfo struct {
	SceneName    string
	FPS          float64
	LightingMode string
	ShadowMode   string
	GI           bool
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	panelLabelStyle = lipgloss.NewStyle().Faint(true).Width(10)
)

// RenderPanel renders the status panel as a bordered block of styled lines.
// The caller positions it over the frame.
func RenderPanel(info PanelInfo) string {
	row := func(label, value string) string {
		return panelLabelStyle.Render(label) + value
	}

	lines := []string{
		row("Scene", info.SceneName),
		row("FPS", fmt.Sprintf("%.1f", info.FPS)),
		row("Mode", info.LightingMode),
		row("Shadows", info.ShadowMode),
		row("GI", fmt.Sprintf("%v", info.GI)),
	}

	return panelStyle.Render(strings.Join(lines, "\n"))
}
