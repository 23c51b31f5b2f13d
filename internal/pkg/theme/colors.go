package theme

import "github.com/charmbracelet/lipgloss"

// Palette follows the gallery stylesheet: warm neutrals with a moss accent.
var (
	Leaf      = lipgloss.Color("#84CC16")
	White     = lipgloss.Color("#FAFAF9")
	LightGray = lipgloss.Color("#A8A29E")
	DimGray   = lipgloss.Color("#78716C")

	Success = lipgloss.Color("#22C55E")
	Error   = lipgloss.Color("#EF4444")
)
