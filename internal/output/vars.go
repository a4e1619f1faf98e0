package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Out receives every console line. Tests swap it for a buffer.
var Out io.Writer = os.Stdout

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("37"))  // dark green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))   // red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))  // yellow
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))  // blue
	debugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250")) // light grey
)

var StyleSymbols = map[string]string{
	"pass":    "✓",
	"fail":    "✗",
	"warning": "!",
	"pending": "◉",
	"arrow":   "→",
}

func PrintSuccess(text string) {
	fmt.Fprintln(Out, successStyle.Render(text))
}
func PrintError(text string) {
	fmt.Fprintln(Out, errorStyle.Render(text))
}
func PrintWarning(text string) {
	fmt.Fprintln(Out, warningStyle.Render(text))
}
func PrintPending(text string) {
	fmt.Fprintln(Out, pendingStyle.Render(text))
}
func FDebug(text string) string {
	return debugStyle.Render(text)
}
