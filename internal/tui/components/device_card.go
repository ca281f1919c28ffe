package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/smarthome-tui/internal/models"
	"github.com/angristan/smarthome-tui/internal/tui/styles"
)

const (
	// CardWidth is the outer width of a card including its margin
	CardWidth = 34
	// CardHeight is the outer height of a card
	CardHeight = 7

	cardLines = 5
	barWidth  = 10
)

// DeviceCard is what a card shows for one device
type DeviceCard struct {
	Device   models.Device
	Selected bool
	// Zero when the device has no recorded activity
	LastUpdated time.Time
}

// FormatLastUpdated renders an activity time for a card footer
func FormatLastUpdated(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Local().Format("15:04")
}

// RenderDeviceCard renders a single device card
func RenderDeviceCard(st styles.Styles, card DeviceCard) string {
	d := card.Device

	statusIcon := "○"
	statusStyle := st.StatusOff
	nameStyle := st.NameDim
	if d.State.Power {
		statusIcon = "●"
		statusStyle = st.StatusOn
		nameStyle = st.Name
	}

	swatch := ""
	if c := d.Swatch(); c != nil {
		swatch = " " + lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("◆")
	}

	inner := CardWidth - 5
	lines := []string{
		fmt.Sprintf("%s %s %s%s", statusStyle.Render(statusIcon), d.Icon, nameStyle.Render(truncate(d.Name, inner-6)), swatch),
		st.Muted.Render(truncate(d.Room+" • "+string(d.Type), inner)),
	}
	lines = append(lines, controlLines(st, d)...)

	for len(lines) < cardLines-1 {
		lines = append(lines, "")
	}
	lines = append(lines, st.Help.Render(fmt.Sprintf("%s • Updated %s",
		pluralize(len(d.Schedules), "schedule"), FormatLastUpdated(card.LastUpdated))))

	style := st.Card
	if card.Selected {
		style = st.CardSelected
	}
	return style.Width(CardWidth - 3).Render(strings.Join(lines, "\n"))
}

func controlLines(st styles.Styles, d models.Device) []string {
	switch d.Type {
	case models.DeviceLight:
		return []string{
			fmt.Sprintf("%s %3d%%", RenderBrightnessBar(st, d.Brightness(), d.State.Power, barWidth), d.Brightness()),
			fmt.Sprintf("%s %dK", RenderTempBar(st, d.ColorTemp(), barWidth), d.ColorTemp()),
		}
	case models.DeviceFan:
		return []string{
			fmt.Sprintf("%s speed %d", RenderSpeedBar(st, d.Speed(), d.State.Power), d.Speed()),
		}
	default:
		label := "off"
		if d.State.Power {
			label = "on"
		}
		return []string{st.Muted.Render("power " + label)}
	}
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen < 2 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-1]) + "…"
}
