// Package console provides styled terminal output for eolint.
//
// Validation logic reports plain text; this package is the single place where
// styling is applied, so error content stays testable and reusable while CLI
// output remains consistent.
package console

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	verboseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// styled reports whether output should carry ANSI styling.
// NO_COLOR disables styling even on a TTY.
func styled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

func render(style lipgloss.Style, prefix, message string) string {
	line := prefix + message
	if !styled() {
		return line
	}
	return style.Render(line)
}

// FormatErrorMessage formats an error message for console output
func FormatErrorMessage(message string) string {
	return render(errorStyle, "✗ ", message)
}

// FormatWarningMessage formats a warning message for console output
func FormatWarningMessage(message string) string {
	return render(warningStyle, "! ", message)
}

// FormatInfoMessage formats an informational message for console output
func FormatInfoMessage(message string) string {
	return render(infoStyle, "ℹ ", message)
}

// FormatSuccessMessage formats a success message for console output
func FormatSuccessMessage(message string) string {
	return render(successStyle, "✓ ", message)
}

// FormatVerboseMessage formats a verbose/progress message for console output
func FormatVerboseMessage(message string) string {
	return render(verboseStyle, "  ", message)
}

// PrintError writes a styled error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintln(os.Stderr, FormatErrorMessage(fmt.Sprintf(format, args...)))
}

// PrintWarning writes a styled warning message to stderr.
func PrintWarning(format string, args ...any) {
	fmt.Fprintln(os.Stderr, FormatWarningMessage(fmt.Sprintf(format, args...)))
}

// PrintInfo writes a styled informational message to stderr.
func PrintInfo(format string, args ...any) {
	fmt.Fprintln(os.Stderr, FormatInfoMessage(fmt.Sprintf(format, args...)))
}

// PrintSuccess writes a styled success message to stderr.
func PrintSuccess(format string, args ...any) {
	fmt.Fprintln(os.Stderr, FormatSuccessMessage(fmt.Sprintf(format, args...)))
}
