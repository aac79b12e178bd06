package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRosewater lipgloss.Color = "#f5e0dc"
	colorPink      lipgloss.Color = "#f5c2e7"
	colorMauve     lipgloss.Color = "#cba6f7"
	colorRed       lipgloss.Color = "#f38ba8"
	colorPeach     lipgloss.Color = "#fab387"
	colorYellow    lipgloss.Color = "#f9e2af"
	colorGreen     lipgloss.Color = "#a6e3a1"
	colorTeal      lipgloss.Color = "#94e2d5"
	colorSky       lipgloss.Color = "#89dceb"
	colorBlue      lipgloss.Color = "#89b4fa"
	colorLavender  lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

// Semantic aliases. Green brand, obviously.
const (
	colorBrand   = colorGreen
	colorAccent  = colorTeal
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorOverlay1).
				Background(colorMantle).
				Padding(0, 1)

	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	errorBarStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Background(colorSurface0).
			Padding(0, 2)

	sectionBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	heroHeadingStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	heroTaglineStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	heroCursorStyle  = lipgloss.NewStyle().Foreground(colorBrand).Blink(true)
	heroSubtextStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	featureIconStyle  = lipgloss.NewStyle().Foreground(colorPeach)
	featureTitleStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	featureDescStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)

	statValueStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	statLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	inputLabelStyle   = lipgloss.NewStyle().Foreground(colorSubtext1)
	resultStyle       = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	fieldErrStyle     = lipgloss.NewStyle().Foreground(colorError)
	historyEntryStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	cursorStyle = lipgloss.NewStyle().Foreground(colorFocus)
)
