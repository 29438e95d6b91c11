package style

import (
	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/infrastructure/config"
)

var (
	ListStyle         lipgloss.Style
	ListTitleStyle    lipgloss.Style
	TaskStyle         lipgloss.Style
	SelectedTaskStyle lipgloss.Style
	HelpStyle         lipgloss.Style
	DialogStyle       lipgloss.Style
	DialogTitleStyle  lipgloss.Style
	FieldLabelStyle   lipgloss.Style
	FocusedLabelStyle lipgloss.Style
	FieldErrorStyle   lipgloss.Style
	DoneStyle         lipgloss.Style

	priorityColors config.PriorityColors
)

// InitStyles initializes the styles from config
func InitStyles(cfg *config.Config) {
	styles := cfg.TUI.Styles

	ListStyle = lipgloss.NewStyle().
		Padding(styles.List.PaddingVertical, styles.List.PaddingHorizontal).
		Border(getBorder(styles.List.BorderStyle)).
		BorderForeground(lipgloss.Color(styles.List.BorderColor))

	ListTitleStyle = textStyle(styles.ListTitle)
	TaskStyle = textStyle(styles.Task)
	SelectedTaskStyle = textStyle(styles.SelectedTask)
	HelpStyle = textStyle(styles.Help)

	DialogStyle = lipgloss.NewStyle().
		Padding(styles.Dialog.PaddingVertical, styles.Dialog.PaddingHorizontal).
		Border(getBorder(styles.Dialog.BorderStyle)).
		BorderForeground(lipgloss.Color(styles.Dialog.BorderColor))

	DialogTitleStyle = textStyle(styles.DialogTitle)
	FieldLabelStyle = textStyle(styles.FieldLabel)
	FocusedLabelStyle = textStyle(styles.FocusedLabel)
	FieldErrorStyle = textStyle(styles.FieldError)
	DoneStyle = textStyle(styles.Done)

	priorityColors = styles.Priority
}

// PriorityColor returns the configured color for a priority value
func PriorityColor(priority string) lipgloss.Color {
	switch priority {
	case "high":
		return lipgloss.Color(priorityColors.High)
	case "medium":
		return lipgloss.Color(priorityColors.Medium)
	case "low":
		return lipgloss.Color(priorityColors.Low)
	default:
		return lipgloss.Color(priorityColors.Default)
	}
}

// textStyle builds a lipgloss style from a config text style
func textStyle(ts config.TextStyle) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(ts.PaddingVertical, ts.PaddingHorizontal)
	if ts.Foreground != "" {
		s = s.Foreground(lipgloss.Color(ts.Foreground))
	}
	if ts.Background != "" {
		s = s.Background(lipgloss.Color(ts.Background))
	}
	if ts.Bold {
		s = s.Bold(true)
	}
	if ts.Italic {
		s = s.Italic(true)
	}
	if ts.Align != "" {
		s = s.Align(getAlign(ts.Align))
	}
	return s
}

// getBorder returns the border style based on the name
func getBorder(name string) lipgloss.Border {
	switch name {
	case "rounded":
		return lipgloss.RoundedBorder()
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// getAlign returns the alignment based on the name
func getAlign(name string) lipgloss.Position {
	switch name {
	case "left":
		return lipgloss.Left
	case "center":
		return lipgloss.Center
	case "right":
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}
