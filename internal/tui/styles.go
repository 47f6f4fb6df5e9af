package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func buttonStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
}

// focusedButtonStyle matches the highlight used for active items (bold blue)
func focusedButtonStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
}

func hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

func helpBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(lipgloss.Color("6")).
		Padding(1, 2)
}
