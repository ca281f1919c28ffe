package components

import (
	"strings"

	"github.com/angristan/smarthome-tui/internal/models"
	"github.com/angristan/smarthome-tui/internal/tui/styles"
)

// SidebarWidth is the outer width of the sidebar
const SidebarWidth = 28

// Sidebar is the room navigation, quick actions and settings panel
type Sidebar struct {
	// Room filters in display order, starting with "All"
	Rooms      []string
	ActiveRoom string
	Settings   models.Settings
}

// RenderSidebar renders the side panel at the given outer height
func RenderSidebar(st styles.Styles, sb Sidebar, height int) string {
	var b strings.Builder
	inner := SidebarWidth - 4

	b.WriteString(st.SidebarTitle.Render("Rooms"))
	b.WriteString("\n")
	for _, room := range sb.Rooms {
		label := truncate(room, inner-2)
		if room == sb.ActiveRoom {
			b.WriteString(st.RoomActive.Render("> " + label))
		} else {
			b.WriteString(st.Room.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString(st.Help.Render("tab/shift+tab"))
	b.WriteString("\n\n")

	b.WriteString(st.SidebarTitle.Render("Quick actions"))
	b.WriteString("\n")
	b.WriteString(st.HelpKey.Render("[a]") + " All On\n")
	b.WriteString(st.HelpKey.Render("[x]") + " All Off\n\n")

	b.WriteString(st.SidebarTitle.Render("Settings"))
	b.WriteString("\n")
	b.WriteString(renderSwitch(st, "[H]", "Save history", sb.Settings.SaveHistory))
	b.WriteString(renderSwitch(st, "[A]", "Automations", sb.Settings.AutomationsEnabled))
	b.WriteString(st.HelpKey.Render("[t]") + " Theme " + st.Muted.Render(string(sb.Settings.Theme)))

	style := st.Sidebar.Width(SidebarWidth - 2)
	if height > 2 {
		style = style.Height(height - 2)
	}
	return style.Render(b.String())
}

func renderSwitch(st styles.Styles, key, label string, on bool) string {
	state := st.StatusOff.Render("off")
	if on {
		state = st.Success.Render("on")
	}
	return st.HelpKey.Render(key) + " " + label + " " + state + "\n"
}
