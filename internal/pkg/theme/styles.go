package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the terminal styles shared by CLI commands.
type Styles struct {
	Header   lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Featured lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
}

var (
	defaultStyles *Styles
	once          sync.Once
)

// Default returns the shared Styles instance.
func Default() *Styles {
	once.Do(func() {
		defaultStyles = newStyles()
	})
	return defaultStyles
}

func newStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(White),

		Body: lipgloss.NewStyle().
			Foreground(LightGray),

		Muted: lipgloss.NewStyle().
			Foreground(DimGray),

		Featured: lipgloss.NewStyle().
			Foreground(Leaf).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Error).
			Bold(true),
	}
}
