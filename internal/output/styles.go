package output

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// RenderError formats a fatal error for stderr.
func RenderError(err error) string {
	return styleError.Render("error:") + " " + err.Error()
}
