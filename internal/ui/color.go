// Package ui provides terminal output utilities for lazyopencode.
package ui

import (
	"os"

	"github.com/fatih/color"
)

// Color function types for styled output.
var (
	// Success is used for valid entries (green).
	Success = color.New(color.FgGreen).SprintFunc()
	// Error is used for errors and failures (red).
	Error = color.New(color.FgRed).SprintFunc()
	// Warning is used for degraded entries and diagnostics (yellow).
	Warning = color.New(color.FgYellow).SprintFunc()
	// Info is used for informational messages (cyan).
	Info = color.New(color.FgCyan).SprintFunc()
	// Bold is used for emphasis.
	Bold = color.New(color.Bold).SprintFunc()
	// Dim is used for secondary information (faint).
	Dim = color.New(color.Faint).SprintFunc()
	// Header is used for table headers (bold cyan).
	Header = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Status symbols.
const (
	SymbolValid    = "✓"
	SymbolDegraded = "⚠"
	SymbolError    = "✗"
)

func init() {
	// Honor the NO_COLOR convention in addition to fatih/color's own
	// tty detection.
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
}

// DisableColors turns off all colored output.
func DisableColors() {
	color.NoColor = true
}

// EnableColors forces colored output regardless of tty detection.
func EnableColors() {
	color.NoColor = false
}

// ColorsEnabled reports whether colored output is active.
func ColorsEnabled() bool {
	return !color.NoColor
}

// StatusValid returns a green checkmark with optional message.
func StatusValid(msg string) string {
	if msg == "" {
		return Success(SymbolValid)
	}
	return Success(SymbolValid) + " " + msg
}

// StatusDegraded returns a yellow warning symbol with optional message.
func StatusDegraded(msg string) string {
	if msg == "" {
		return Warning(SymbolDegraded)
	}
	return Warning(SymbolDegraded) + " " + msg
}
