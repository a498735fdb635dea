// Package tui provides the terminal chat screen.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/chatscreen/internal/render"
)

// styles holds every lipgloss style of the screen, built from one palette.
type styles struct {
	palette render.Palette

	header   lipgloss.Style
	title    lipgloss.Style
	subtitle lipgloss.Style
	hint     lipgloss.Style

	messagesArea lipgloss.Style

	userBubble   lipgloss.Style
	userLabel    lipgloss.Style
	systemBubble lipgloss.Style
	systemLabel  lipgloss.Style

	inputPanel lipgloss.Style
	inputLabel lipgloss.Style
	textarea   lipgloss.Style
	loading    lipgloss.Style

	statusBar  lipgloss.Style
	statusKey  lipgloss.Style
	statusDesc lipgloss.Style

	notice lipgloss.Style
	err    lipgloss.Style

	welcome      lipgloss.Style
	welcomeTitle lipgloss.Style
	welcomeIcon  lipgloss.Style
}

func newStyles(p render.Palette) styles {
	return styles{
		palette: p,

		header: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 2).
			MarginBottom(1),

		title: lipgloss.NewStyle().
			Foreground(p.System).
			Bold(true),

		subtitle: lipgloss.NewStyle().
			Foreground(p.TextDim),

		hint: lipgloss.NewStyle().
			Foreground(p.TextMute).
			Italic(true),

		messagesArea: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1),

		userBubble: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.User).
			Foreground(p.Text).
			Padding(0, 1).
			MarginLeft(4),

		userLabel: lipgloss.NewStyle().
			Foreground(p.User).
			Bold(true).
			MarginLeft(4),

		systemBubble: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.System).
			Foreground(p.Text).
			Padding(0, 1).
			MarginRight(4),

		systemLabel: lipgloss.NewStyle().
			Foreground(p.System).
			Bold(true),

		inputPanel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1).
			MarginTop(1),

		inputLabel: lipgloss.NewStyle().
			Foreground(p.System).
			Bold(true).
			MarginRight(1),

		textarea: lipgloss.NewStyle().
			Foreground(p.Text),

		loading: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		statusBar: lipgloss.NewStyle().
			Foreground(p.TextMute).
			MarginTop(1),

		statusKey: lipgloss.NewStyle().
			Foreground(p.TextDim).
			Bold(true),

		statusDesc: lipgloss.NewStyle().
			Foreground(p.TextMute),

		notice: lipgloss.NewStyle().
			Foreground(p.TextDim).
			Italic(true),

		err: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		welcome: lipgloss.NewStyle().
			Foreground(p.TextDim).
			Align(lipgloss.Center),

		welcomeTitle: lipgloss.NewStyle().
			Foreground(p.System).
			Bold(true).
			Align(lipgloss.Center),

		welcomeIcon: lipgloss.NewStyle().
			Foreground(p.Accent).
			Align(lipgloss.Center),
	}
}
