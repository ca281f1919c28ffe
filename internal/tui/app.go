package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/angristan/smarthome-tui/internal/home"
	"github.com/angristan/smarthome-tui/internal/tui/messages"
	"github.com/angristan/smarthome-tui/internal/tui/screens"
	"github.com/angristan/smarthome-tui/internal/tui/styles"
)

// Screen represents the current screen state
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenEditor
)

// Model is the main application model
type Model struct {
	home *home.Home
	log  logr.Logger

	// Current screen
	screen Screen

	// Screen models
	dashboard screens.DashboardModel
	editor    screens.EditorModel

	// Window size
	width  int
	height int
}

// NewModel creates a new application model over h
func NewModel(h *home.Home, log logr.Logger) Model {
	m := Model{
		home:      h,
		log:       log.WithName("tui"),
		screen:    ScreenDashboard,
		dashboard: screens.NewDashboardModel(),
		editor:    screens.NewEditorModel(),
	}
	m.sync()
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("SmartHomePro")
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dashboard.SetSize(msg.Width, msg.Height)
		m.editor.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// Global key handlers
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case messages.ToggleDeviceMsg:
		m.apply(m.home.Toggle(msg.ID))
		return m, nil

	case messages.ChangeDeviceMsg:
		m.apply(m.home.Change(msg.ID, msg.Patch))
		return m, nil

	case messages.SaveDeviceMsg:
		m.editor.Close()
		m.screen = ScreenDashboard
		m.apply(m.home.Save(msg.Patch))
		return m, nil

	case messages.QuickAllMsg:
		if msg.On {
			m.home.AllOn()
		} else {
			m.home.AllOff()
		}
		m.sync()
		return m, nil

	case messages.SettingsChangedMsg:
		m.home.UpdateSettings(msg.Settings)
		m.sync()
		return m, nil

	case messages.OpenEditorMsg:
		m.screen = ScreenEditor
		return m, m.editor.Open(msg.Device)

	case messages.CloseEditorMsg:
		m.editor.Close()
		m.screen = ScreenDashboard
		return m, nil
	}

	// Route to current screen
	var cmd tea.Cmd
	switch m.screen {
	case ScreenDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ScreenEditor:
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

// View renders the current screen
func (m Model) View() string {
	switch m.screen {
	case ScreenDashboard:
		return m.dashboard.View()
	case ScreenEditor:
		return m.editor.View()
	default:
		return "Unknown screen"
	}
}

// apply logs a rejected intent and refreshes the screens
func (m *Model) apply(err error) {
	if err != nil {
		m.log.V(1).Info("Intent ignored", "error", err.Error())
	}
	m.sync()
}

// sync pushes the current state to the screens
func (m *Model) sync() {
	devices := m.home.Devices()
	updated := make(map[string]time.Time, len(devices))
	for _, d := range devices {
		if at, ok := m.home.LastUpdated(d.ID); ok {
			updated[d.ID] = at
		}
	}

	settings := m.home.Settings()
	m.dashboard.SetData(devices, settings, updated)
	m.editor.SetStyles(styles.New(settings.Theme))
}
