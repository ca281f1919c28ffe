package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/smarthome-tui/internal/models"
)

// Palette is the set of colors a theme is built from
type Palette struct {
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Surface    lipgloss.Color
	SurfaceAlt lipgloss.Color

	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	TextDim     lipgloss.Color
	TextInverse lipgloss.Color

	Success lipgloss.Color

	// Device states
	On  lipgloss.Color
	Off lipgloss.Color

	// Brightness bar gradient, dim to bright
	Brightness [10]lipgloss.Color
}

// Dark is the lavender night palette
var Dark = Palette{
	Primary:     lipgloss.Color("#B794F4"),
	Accent:      lipgloss.Color("#E9D8FD"),
	Surface:     lipgloss.Color("#2D2D44"),
	SurfaceAlt:  lipgloss.Color("#3D3D5C"),
	Text:        lipgloss.Color("#FAFAFA"),
	TextMuted:   lipgloss.Color("#A0A0B0"),
	TextDim:     lipgloss.Color("#6B6B80"),
	TextInverse: lipgloss.Color("#1A1A2E"),
	Success:     lipgloss.Color("#68D391"),
	On:          lipgloss.Color("#FBBF24"),
	Off:         lipgloss.Color("#4A4A5A"),
	Brightness: [10]lipgloss.Color{
		"#3D3D5C", "#4A4A6A", "#5A5A7A", "#6A6A8A", "#7A7A9A",
		"#8A8AAA", "#9A9ABA", "#AAAACA", "#BABADA", "#FBBF24",
	},
}

// Light is the daytime palette
var Light = Palette{
	Primary:     lipgloss.Color("#6B46C1"),
	Accent:      lipgloss.Color("#44337A"),
	Surface:     lipgloss.Color("#EDE9F6"),
	SurfaceAlt:  lipgloss.Color("#CBC3E3"),
	Text:        lipgloss.Color("#1A1A2E"),
	TextMuted:   lipgloss.Color("#5A5A70"),
	TextDim:     lipgloss.Color("#8A8AA0"),
	TextInverse: lipgloss.Color("#FAFAFA"),
	Success:     lipgloss.Color("#2F855A"),
	On:          lipgloss.Color("#D69E2E"),
	Off:         lipgloss.Color("#A0A0B0"),
	Brightness: [10]lipgloss.Color{
		"#E2DCF0", "#D6CDEB", "#C9BEE5", "#BCAEDF", "#AF9FD9",
		"#A290D3", "#9581CD", "#8872C7", "#7B63C1", "#D69E2E",
	},
}

// PaletteFor returns the palette of a theme
func PaletteFor(theme models.Theme) Palette {
	if theme == models.ThemeDark {
		return Dark
	}
	return Light
}

// Styles holds the rendered styles of one theme
type Styles struct {
	Palette Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Name         lipgloss.Style
	NameDim      lipgloss.Style
	StatusOn     lipgloss.Style
	StatusOff    lipgloss.Style
	BarEmpty     lipgloss.Style

	Sidebar      lipgloss.Style
	SidebarTitle lipgloss.Style
	Room         lipgloss.Style
	RoomActive   lipgloss.Style

	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	Label      lipgloss.Style
	LabelFocus lipgloss.Style

	Search  lipgloss.Style
	Help    lipgloss.Style
	HelpKey lipgloss.Style
	Muted   lipgloss.Style
	Primary lipgloss.Style
	Success lipgloss.Style
}

// New builds the styles for a theme
func New(theme models.Theme) Styles {
	p := PaletteFor(theme)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.SurfaceAlt).
		Padding(0, 1).
		MarginRight(1)

	return Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.TextInverse).
			Background(p.Primary).
			Padding(0, 1),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.TextMuted).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Background(p.Surface),

		Card:         card,
		CardSelected: card.BorderForeground(p.Primary),
		Name: lipgloss.NewStyle().
			Foreground(p.Text),
		NameDim: lipgloss.NewStyle().
			Foreground(p.TextMuted),
		StatusOn: lipgloss.NewStyle().
			Foreground(p.On).
			Bold(true),
		StatusOff: lipgloss.NewStyle().
			Foreground(p.Off),
		BarEmpty: lipgloss.NewStyle().
			Foreground(p.SurfaceAlt),

		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),
		SidebarTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Room: lipgloss.NewStyle().
			Foreground(p.Text),
		RoomActive: lipgloss.NewStyle().
			Foreground(p.TextInverse).
			Background(p.Primary).
			Bold(true),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Primary).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Label: lipgloss.NewStyle().
			Foreground(p.TextMuted),
		LabelFocus: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Search: lipgloss.NewStyle().
			Foreground(p.Primary),
		Help: lipgloss.NewStyle().
			Foreground(p.TextDim),
		HelpKey: lipgloss.NewStyle().
			Foreground(p.Primary),
		Muted: lipgloss.NewStyle().
			Foreground(p.TextMuted),
		Primary: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),
	}
}

// BrightnessColor returns the color of a 1-10 bar segment, or the empty
// track color when brightness does not reach it
func (s Styles) BrightnessColor(segment, brightness int) lipgloss.Color {
	if segment < 1 || segment > 10 || brightness < segment*10 {
		return s.Palette.SurfaceAlt
	}
	return s.Palette.Brightness[segment-1]
}
