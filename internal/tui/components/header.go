package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/smarthome-tui/internal/models"
	"github.com/angristan/smarthome-tui/internal/tui/styles"
)

// ThemeGlyph returns the icon shown for the active theme
func ThemeGlyph(theme models.Theme) string {
	if theme == models.ThemeDark {
		return "☾"
	}
	return "☀"
}

// RenderHeader renders the title bar with the search field and theme glyph.
// search is the already rendered search field, or empty.
func RenderHeader(st styles.Styles, width int, search string, theme models.Theme) string {
	left := st.Title.Render("SmartHomePro") + st.Subtitle.Render("Control center")

	right := st.Muted.Render("[t] ") + st.Primary.Render(ThemeGlyph(theme)) + " "
	if search != "" {
		right = search + "  " + right
	}

	// Narrow terminals lose the subtitle first
	if lipgloss.Width(left)+lipgloss.Width(right) >= width {
		left = st.Title.Render("SmartHomePro")
	}

	spacing := width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return st.Header.Width(width).Render(left + strings.Repeat(" ", spacing) + right)
}
