package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/smarthome-tui/internal/models"
	"github.com/angristan/smarthome-tui/internal/tui/components"
	"github.com/angristan/smarthome-tui/internal/tui/messages"
	"github.com/angristan/smarthome-tui/internal/tui/styles"
)

type editorField int

const (
	fieldName editorField = iota
	fieldRoom
	fieldBrightness
	fieldColorTemp
)

const (
	brightnessStep = 5
	sliderWidth    = 20
)

// EditorModel is the device editor modal. It works on a scratch copy of one
// device that is dropped whenever the editor opens or closes.
type EditorModel struct {
	draft models.Device
	open  bool

	nameInput textinput.Model
	roomInput textinput.Model
	focus     editorField

	styles styles.Styles

	// Window size
	width  int
	height int
}

// NewEditorModel creates a closed editor
func NewEditorModel() EditorModel {
	return EditorModel{
		nameInput: newEditorInput("Name"),
		roomInput: newEditorInput("Room"),
		styles:    styles.New(models.ThemeLight),
	}
}

func newEditorInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 40
	ti.Width = 24
	ti.Prompt = ""
	return ti
}

// SetSize sets the terminal size
func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetStyles switches the theme
func (m *EditorModel) SetStyles(st styles.Styles) {
	m.styles = st
}

// Open starts a session on a copy of d
func (m *EditorModel) Open(d models.Device) tea.Cmd {
	m.draft = d.Clone()
	m.open = true
	m.nameInput.SetValue(d.Name)
	m.roomInput.SetValue(d.Room)
	m.setFocus(fieldName)
	return textinput.Blink
}

// Close drops the scratch copy
func (m *EditorModel) Close() {
	m.draft = models.Device{}
	m.open = false
	m.nameInput.SetValue("")
	m.roomInput.SetValue("")
	m.nameInput.Blur()
	m.roomInput.Blur()
	m.focus = fieldName
}

// IsOpen reports whether a session is active
func (m EditorModel) IsOpen() bool {
	return m.open
}

// Draft returns the scratch copy with the text inputs applied
func (m EditorModel) Draft() models.Device {
	d := m.draft.Clone()
	d.Name = m.nameInput.Value()
	d.Room = m.roomInput.Value()
	return d
}

// Patch returns the record to merge on save
func (m EditorModel) Patch() models.DevicePatch {
	d := m.Draft()
	return models.DevicePatch{
		ID:    d.ID,
		Name:  models.String(d.Name),
		Room:  models.String(d.Room),
		State: &d.State,
	}
}

func (m EditorModel) fields() []editorField {
	if m.draft.Type == models.DeviceLight {
		return []editorField{fieldName, fieldRoom, fieldBrightness, fieldColorTemp}
	}
	return []editorField{fieldName, fieldRoom}
}

func (m *EditorModel) setFocus(f editorField) {
	m.focus = f
	m.nameInput.Blur()
	m.roomInput.Blur()
	switch f {
	case fieldName:
		m.nameInput.Focus()
	case fieldRoom:
		m.roomInput.Focus()
	}
}

func (m *EditorModel) moveFocus(delta int) {
	fields := m.fields()
	idx := 0
	for i, f := range fields {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	m.setFocus(fields[idx])
}

// adjust moves the focused slider by dir steps
func (m *EditorModel) adjust(dir int) {
	switch m.focus {
	case fieldBrightness:
		v := models.IntValue(m.draft.State.Brightness, models.DefaultEditorBrightness)
		m.draft.State.Brightness = models.Int(models.ClampBrightness(v + dir*brightnessStep))
	case fieldColorTemp:
		v := models.IntValue(m.draft.State.ColorTemp, models.DefaultEditorColorTemp)
		m.draft.State.ColorTemp = models.Int(models.ClampColorTemp(v + dir*models.ColorTempStep))
	}
}

func (m EditorModel) onSlider() bool {
	return m.focus == fieldBrightness || m.focus == fieldColorTemp
}

// Update handles messages
func (m EditorModel) Update(msg tea.Msg) (EditorModel, tea.Cmd) {
	if !m.open {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, send(messages.CloseEditorMsg{})

	case "enter":
		return m, send(messages.SaveDeviceMsg{Patch: m.Patch()})

	case "tab", "down":
		m.moveFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil
	}

	if m.onSlider() {
		switch keyMsg.String() {
		case "left", "h", "-":
			m.adjust(-1)
		case "right", "l", "+", "=":
			m.adjust(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.nameInput, cmd = m.nameInput.Update(keyMsg)
	case fieldRoom:
		m.roomInput, cmd = m.roomInput.Update(keyMsg)
	}
	return m, cmd
}

// View renders the editor modal
func (m EditorModel) View() string {
	st := m.styles
	var b strings.Builder

	b.WriteString(st.ModalTitle.Render(fmt.Sprintf("Edit %s %s", m.draft.Icon, m.draft.Name)))
	b.WriteString("\n\n")

	b.WriteString(m.label(fieldName, "Name"))
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	b.WriteString(m.label(fieldRoom, "Room"))
	b.WriteString(m.roomInput.View())
	b.WriteString("\n")

	if m.draft.Type == models.DeviceLight {
		brightness := models.IntValue(m.draft.State.Brightness, models.DefaultEditorBrightness)
		colorTemp := models.IntValue(m.draft.State.ColorTemp, models.DefaultEditorColorTemp)

		b.WriteString("\n")
		b.WriteString(m.label(fieldBrightness, "Brightness"))
		b.WriteString(fmt.Sprintf("%s %3d%%", components.RenderBrightnessBar(st, brightness, true, sliderWidth), brightness))
		b.WriteString("\n")
		b.WriteString(m.label(fieldColorTemp, "Color"))
		b.WriteString(fmt.Sprintf("%s %dK", components.RenderTempBar(st, colorTemp, sliderWidth), colorTemp))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(st.Help.Render("tab field • ←/→ adjust • enter save • esc cancel"))

	// Responsive width (70% of screen, 44-60 chars)
	modalWidth := m.width * 70 / 100
	if modalWidth < 44 {
		modalWidth = 44
	}
	if modalWidth > 60 {
		modalWidth = 60
	}
	modal := st.Modal.Width(modalWidth).Render(b.String())

	if m.width == 0 || m.height == 0 {
		return modal
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m EditorModel) label(f editorField, text string) string {
	cursor := "  "
	style := m.styles.Label
	if m.focus == f {
		cursor = "> "
		style = m.styles.LabelFocus
	}
	return style.Render(fmt.Sprintf("%s%-11s", cursor, text))
}
