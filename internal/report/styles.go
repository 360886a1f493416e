// Package report renders run progress and results: styled console lines
// while a run is in flight, the end-of-run summary, and the JSON report.
package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles are the console styles bound to one output stream. Colors are
// dropped automatically when the stream is not a terminal.
type Styles struct {
	Progress lipgloss.Style
	Heading  lipgloss.Style
	Success  lipgloss.Style
	Warn     lipgloss.Style
	Error    lipgloss.Style
}

// NewStyles builds the styles for w. noColor forces plain output.
func NewStyles(w io.Writer, noColor bool) Styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Progress: r.NewStyle().Foreground(lipgloss.Color("6")),
		Heading:  r.NewStyle().Foreground(lipgloss.Color("4")),
		Success:  r.NewStyle().Foreground(lipgloss.Color("2")),
		Warn:     r.NewStyle().Foreground(lipgloss.Color("3")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}
