package screens

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/smarthome-tui/internal/catalog"
	"github.com/angristan/smarthome-tui/internal/models"
	"github.com/angristan/smarthome-tui/internal/tui/components"
	"github.com/angristan/smarthome-tui/internal/tui/messages"
	"github.com/angristan/smarthome-tui/internal/tui/styles"
)

// Size used before the first WindowSizeMsg arrives
const (
	defaultWidth  = 100
	defaultHeight = 30
)

// DashboardModel is the device grid screen
type DashboardModel struct {
	devices  []models.Device
	settings models.Settings
	updated  map[string]time.Time
	styles   styles.Styles

	rooms      []string
	activeRoom string
	visible    []models.Device

	selectedIndex int
	scrollRow     int // First visible grid row

	searchMode  bool
	searchInput textinput.Model
	searchQuery string

	width  int
	height int
}

// NewDashboardModel creates a new dashboard screen model
func NewDashboardModel() DashboardModel {
	ti := textinput.New()
	ti.Placeholder = "Search devices..."
	ti.CharLimit = 50
	ti.Width = 24

	return DashboardModel{
		settings:    models.DefaultSettings(),
		styles:      styles.New(models.ThemeLight),
		activeRoom:  catalog.AllRooms,
		rooms:       append([]string(nil), catalog.RoomsOrder...),
		updated:     make(map[string]time.Time),
		searchInput: ti,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

func (m *DashboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// SetData replaces the catalog, settings and activity times shown.
// The selection follows the selected device when it is still visible.
func (m *DashboardModel) SetData(devices []models.Device, settings models.Settings, updated map[string]time.Time) {
	selectedID := ""
	if d, ok := m.Selected(); ok {
		selectedID = d.ID
	}

	m.devices = devices
	m.settings = settings
	m.updated = updated
	m.styles = styles.New(settings.Theme)

	m.rooms = catalog.Rooms(devices)
	if !containsRoom(m.rooms, m.activeRoom) {
		m.activeRoom = catalog.AllRooms
	}
	m.refilter()

	for i, d := range m.visible {
		if d.ID == selectedID {
			m.selectedIndex = i
			break
		}
	}
	m.ensureVisible()
}

// Selected returns the device under the cursor
func (m DashboardModel) Selected() (models.Device, bool) {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.visible) {
		return m.visible[m.selectedIndex], true
	}
	return models.Device{}, false
}

// ActiveRoom returns the room filter
func (m DashboardModel) ActiveRoom() string {
	return m.activeRoom
}

// Query returns the search filter
func (m DashboardModel) Query() string {
	return m.searchQuery
}

// Visible returns the devices passing the current filters
func (m DashboardModel) Visible() []models.Device {
	return m.visible
}

func (m *DashboardModel) refilter() {
	m.visible = catalog.Filter(m.devices, m.activeRoom, m.searchQuery)
	if m.selectedIndex >= len(m.visible) {
		m.selectedIndex = max(0, len(m.visible)-1)
	}
	m.ensureVisible()
}

func (m DashboardModel) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m DashboardModel) showSidebar() bool {
	w, _ := m.size()
	return w >= 80
}

// columns returns how many cards fit side by side
func (m DashboardModel) columns() int {
	w, _ := m.size()
	if m.showSidebar() {
		w -= components.SidebarWidth + 1
	}
	return max(1, w/components.CardWidth)
}

// contentHeight is the height left for the grid
func (m DashboardModel) contentHeight() int {
	_, h := m.size()
	// header, blank line, status bar, help bar
	return max(components.CardHeight, h-4)
}

// visibleRows returns how many card rows fit in the viewport
func (m DashboardModel) visibleRows() int {
	return max(1, m.contentHeight()/components.CardHeight)
}

// ensureVisible adjusts scrollRow so the selected card is on screen
func (m *DashboardModel) ensureVisible() {
	cols := m.columns()
	rows := m.visibleRows()
	row := m.selectedIndex / cols

	if row < m.scrollRow {
		m.scrollRow = row
	}
	if row >= m.scrollRow+rows {
		m.scrollRow = row - rows + 1
	}

	totalRows := (len(m.visible) + cols - 1) / cols
	maxScroll := max(0, totalRows-rows)
	if m.scrollRow > maxScroll {
		m.scrollRow = maxScroll
	}
	if m.scrollRow < 0 {
		m.scrollRow = 0
	}
}

func (m *DashboardModel) moveSelection(delta int) {
	next := m.selectedIndex + delta
	if next < 0 || next >= len(m.visible) {
		return
	}
	m.selectedIndex = next
	m.ensureVisible()
}

func (m *DashboardModel) cycleRoom(delta int) {
	idx := 0
	for i, room := range m.rooms {
		if room == m.activeRoom {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(m.rooms)) % len(m.rooms)
	m.activeRoom = m.rooms[idx]
	m.selectedIndex = 0
	m.scrollRow = 0
	m.refilter()
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searchMode {
		switch keyMsg.String() {
		case "esc":
			m.searchMode = false
			m.searchQuery = ""
			m.searchInput.SetValue("")
			m.searchInput.Blur()
			m.refilter()
			return m, nil
		case "enter":
			m.searchMode = false
			m.searchQuery = m.searchInput.Value()
			m.searchInput.Blur()
			m.refilter()
			return m, nil
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(keyMsg)
			m.searchQuery = m.searchInput.Value()
			m.refilter()
			return m, cmd
		}
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		m.searchMode = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "esc":
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.searchInput.SetValue("")
			m.refilter()
		}

	case "tab":
		m.cycleRoom(1)

	case "shift+tab":
		m.cycleRoom(-1)

	case "left", "h":
		m.moveSelection(-1)

	case "right", "l":
		m.moveSelection(1)

	case "up", "k":
		m.moveSelection(-m.columns())

	case "down", "j":
		m.moveSelection(m.columns())

	case "pgup":
		m.selectedIndex = max(0, m.selectedIndex-m.columns()*m.visibleRows())
		m.ensureVisible()

	case "pgdown":
		m.selectedIndex = max(0, min(len(m.visible)-1, m.selectedIndex+m.columns()*m.visibleRows()))
		m.ensureVisible()

	case "home":
		m.selectedIndex = 0
		m.ensureVisible()

	case "end":
		m.selectedIndex = max(0, len(m.visible)-1)
		m.ensureVisible()

	case " ", "enter":
		if d, ok := m.Selected(); ok {
			return m, send(messages.ToggleDeviceMsg{ID: d.ID})
		}

	case "+", "=":
		return m, m.stepCmd(1)

	case "-":
		return m, m.stepCmd(-1)

	case "w":
		return m, m.colorTempCmd(-models.ColorTempStep)

	case "c":
		return m, m.colorTempCmd(models.ColorTempStep)

	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return m, m.levelCmd(keyMsg.String())

	case "e":
		if d, ok := m.Selected(); ok {
			return m, send(messages.OpenEditorMsg{Device: d})
		}

	case "a":
		return m, send(messages.QuickAllMsg{On: true})

	case "x":
		return m, send(messages.QuickAllMsg{On: false})

	case "t":
		s := m.settings
		s.Theme = s.Theme.Toggle()
		return m, send(messages.SettingsChangedMsg{Settings: s})

	case "H":
		s := m.settings
		s.SaveHistory = !s.SaveHistory
		return m, send(messages.SettingsChangedMsg{Settings: s})

	case "A":
		s := m.settings
		s.AutomationsEnabled = !s.AutomationsEnabled
		return m, send(messages.SettingsChangedMsg{Settings: s})
	}

	return m, nil
}

// stepCmd nudges brightness for lights or speed for fans
func (m DashboardModel) stepCmd(dir int) tea.Cmd {
	d, ok := m.Selected()
	if !ok {
		return nil
	}
	switch d.Type {
	case models.DeviceLight:
		v := models.ClampBrightness(d.Brightness() + dir*10)
		return change(d.ID, models.StatePatch{Brightness: models.Int(v)})
	case models.DeviceFan:
		v := models.ClampSpeed(d.Speed() + dir)
		return change(d.ID, models.StatePatch{Speed: models.Int(v)})
	}
	return nil
}

func (m DashboardModel) colorTempCmd(delta int) tea.Cmd {
	d, ok := m.Selected()
	if !ok || d.Type != models.DeviceLight {
		return nil
	}
	current := models.IntValue(d.State.ColorTemp, models.DefaultEditorColorTemp)
	v := models.ClampColorTemp(current + delta)
	return change(d.ID, models.StatePatch{ColorTemp: models.Int(v)})
}

// levelCmd maps a digit to brightness for lights (1-9 → 10-90%, 0 → 100%)
// and to speed for fans (0-3)
func (m DashboardModel) levelCmd(key string) tea.Cmd {
	d, ok := m.Selected()
	if !ok {
		return nil
	}
	digit := int(key[0] - '0')
	switch d.Type {
	case models.DeviceLight:
		v := digit * 10
		if digit == 0 {
			v = models.MaxBrightness
		}
		return change(d.ID, models.StatePatch{Brightness: models.Int(v)})
	case models.DeviceFan:
		if digit > models.MaxSpeed {
			return nil
		}
		return change(d.ID, models.StatePatch{Speed: models.Int(digit)})
	}
	return nil
}

func (m DashboardModel) View() string {
	width, _ := m.size()
	st := m.styles
	var b strings.Builder

	// Header with search field
	search := ""
	if m.searchMode {
		search = st.Search.Render("/ ") + m.searchInput.View()
	} else if m.searchQuery != "" {
		search = st.Search.Render("/ "+m.searchQuery) + st.Muted.Render(" (esc to clear)")
	} else {
		search = st.Muted.Render("/ search")
	}
	b.WriteString(components.RenderHeader(st, width, search, m.settings.Theme))
	b.WriteString("\n\n")

	// Grid
	contentHeight := m.contentHeight()
	var content strings.Builder
	cols := m.columns()
	rows := m.visibleRows()

	if len(m.visible) == 0 {
		content.WriteString(st.Muted.Render("  No devices found"))
	}

	start := m.scrollRow * cols
	end := min(len(m.visible), start+rows*cols)
	var gridRows []string
	for i := start; i < end; i += cols {
		var cards []string
		for j := i; j < min(i+cols, end); j++ {
			d := m.visible[j]
			cards = append(cards, components.RenderDeviceCard(st, components.DeviceCard{
				Device:      d,
				Selected:    j == m.selectedIndex,
				LastUpdated: m.updated[d.ID],
			}))
		}
		gridRows = append(gridRows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	content.WriteString(lipgloss.JoinVertical(lipgloss.Left, gridRows...))

	contentStyle := lipgloss.NewStyle().Height(contentHeight).MaxHeight(contentHeight)

	if m.showSidebar() {
		sidebar := components.RenderSidebar(st, components.Sidebar{
			Rooms:      m.rooms,
			ActiveRoom: m.activeRoom,
			Settings:   m.settings,
		}, contentHeight)
		gridWidth := width - components.SidebarWidth - 1
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", contentStyle.Width(gridWidth).Render(content.String())))
	} else {
		b.WriteString(st.Primary.Render(m.activeRoom))
		b.WriteString("\n")
		b.WriteString(contentStyle.Height(contentHeight - 1).MaxHeight(contentHeight - 1).Render(content.String()))
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m DashboardModel) renderStatusBar() string {
	sum := catalog.Summarize(m.devices)
	status := fmt.Sprintf("%d/%d devices on • %d/%d rooms active", sum.DevicesOn, sum.Devices, sum.RoomsActive, sum.Rooms)

	cols := m.columns()
	totalRows := (len(m.visible) + cols - 1) / cols
	if hidden := totalRows - m.scrollRow - m.visibleRows(); m.scrollRow > 0 || hidden > 0 {
		status += fmt.Sprintf(" • rows %d-%d of %d", m.scrollRow+1, min(totalRows, m.scrollRow+m.visibleRows()), totalRows)
	}
	return m.styles.Muted.Render(status)
}

func (m DashboardModel) renderHelp() string {
	st := m.styles
	keys := []string{
		st.HelpKey.Render("←↑↓→") + " nav",
		st.HelpKey.Render("space") + " toggle",
		st.HelpKey.Render("+/-") + " level",
		st.HelpKey.Render("w/c") + " temp",
		st.HelpKey.Render("e") + " edit",
		st.HelpKey.Render("/") + " search",
		st.HelpKey.Render("tab") + " room",
		st.HelpKey.Render("q") + " quit",
	}

	// For narrow terminals, show fewer keys
	width, _ := m.size()
	if width < 60 {
		keys = []string{
			st.HelpKey.Render("←↑↓→") + " nav",
			st.HelpKey.Render("space") + " toggle",
			st.HelpKey.Render("q") + " quit",
		}
	}

	return st.Help.Render(strings.Join(keys, "  "))
}

func change(id string, patch models.StatePatch) tea.Cmd {
	return send(messages.ChangeDeviceMsg{ID: id, Patch: patch})
}

// send wraps a message in a command
func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func containsRoom(rooms []string, room string) bool {
	for _, r := range rooms {
		if r == room {
			return true
		}
	}
	return false
}
