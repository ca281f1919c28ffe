package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/smarthome-tui/internal/models"
	"github.com/angristan/smarthome-tui/internal/tui/styles"
)

// RenderBrightnessBar renders a brightness bar of width cells
func RenderBrightnessBar(st styles.Styles, brightness int, on bool, width int) string {
	if !on {
		return st.BarEmpty.Render(strings.Repeat("─", width))
	}

	segments := (brightness * width) / 100
	if brightness > 0 && segments == 0 {
		segments = 1
	}

	var b strings.Builder
	for i := 1; i <= width; i++ {
		if i > segments {
			b.WriteString(st.BarEmpty.Render("─"))
			continue
		}
		// Map the cell to the 1-10 gradient
		segment := (i * 10) / width
		if segment < 1 {
			segment = 1
		}
		color := st.BrightnessColor(segment, brightness)
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render("█"))
	}
	return b.String()
}

// RenderTempBar renders the warm to cool range with a marker at kelvin
func RenderTempBar(st styles.Styles, kelvin int, width int) string {
	if width < 2 {
		width = 2
	}
	span := models.MaxColorTemp - models.MinColorTemp
	pos := (models.ClampColorTemp(kelvin) - models.MinColorTemp) * (width - 1) / span

	var b strings.Builder
	for i := 0; i < width; i++ {
		k := models.MinColorTemp + i*span/(width-1)
		c := models.KelvinToRGB(k)
		char := "━"
		if i == pos {
			char = "┃"
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(char))
	}
	return b.String()
}

// RenderSpeedBar renders fan speed as filled dots
func RenderSpeedBar(st styles.Styles, speed int, on bool) string {
	var b strings.Builder
	for i := 1; i <= models.MaxSpeed; i++ {
		if on && i <= speed {
			b.WriteString(st.StatusOn.Render("●"))
		} else {
			b.WriteString(st.StatusOff.Render("○"))
		}
	}
	return b.String()
}
