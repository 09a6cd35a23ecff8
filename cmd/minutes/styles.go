package main

import "github.com/charmbracelet/lipgloss"

// Centralized style definitions for the CLI.
var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")) // magenta
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // gray
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red

	// Provider table.
	headerStyle      = lipgloss.NewStyle().Bold(true)
	recommendedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	freeStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // cyan
)
