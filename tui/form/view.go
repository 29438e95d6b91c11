package form

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/domain/valueobject"
	"taskdeck/tui/style"
)

// View renders the dialog
func (m Model) View() string {
	if !m.open {
		return ""
	}

	title := "New Task"
	if m.editing {
		title = "Edit Task"
	}

	var b strings.Builder
	b.WriteString(style.DialogTitleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.renderInput("Title", fieldTitle, m.title.View()))
	if m.duplicateTitle {
		b.WriteString(style.FieldErrorStyle.Render(errDuplicateTitle))
		b.WriteString("\n")
	}

	b.WriteString(m.renderInput("Revenue", fieldRevenue, m.revenue.View()))
	if m.revenueErr != "" {
		b.WriteString(style.FieldErrorStyle.Render(m.revenueErr))
		b.WriteString("\n")
	}

	b.WriteString(m.renderInput("Time taken", fieldTimeTaken, m.timeTaken.View()))
	if m.timeErr != "" {
		b.WriteString(style.FieldErrorStyle.Render(m.timeErr))
		b.WriteString("\n")
	}

	b.WriteString(m.renderSelector("Priority", fieldPriority, m.priorityOptions()))
	b.WriteString(m.renderSelector("Status", fieldStatus, m.statusOptions()))
	b.WriteString(m.renderInput("Notes", fieldNotes, m.notes.View()))

	b.WriteString("\n")
	if m.canSubmit() {
		b.WriteString(style.HelpStyle.Render("enter save  •  esc cancel  •  tab next field"))
	} else {
		b.WriteString(style.HelpStyle.Render("esc cancel  •  tab next field  •  fill all fields to save"))
	}

	dialog := style.DialogStyle
	if m.width > 0 {
		dialog = dialog.MaxWidth(m.width - 2)
	}
	return dialog.Render(b.String())
}

// renderInput renders a labeled text input line
func (m Model) renderInput(label string, f field, input string) string {
	return m.renderLabel(label, f) + "\n" + input + "\n"
}

// renderSelector renders a labeled option row
func (m Model) renderSelector(label string, f field, options string) string {
	return m.renderLabel(label, f) + "\n" + options + "\n"
}

func (m Model) renderLabel(label string, f field) string {
	if m.focused == f {
		return style.FocusedLabelStyle.Render("> " + label)
	}
	return style.FieldLabelStyle.Render("  " + label)
}

// priorityOptions renders the priority selector row
func (m Model) priorityOptions() string {
	parts := make([]string, 0, 3)
	for i, p := range valueobject.AllPriorities() {
		label := p.Display()
		if i == m.priorityIdx {
			label = style.SelectedTaskStyle.Render("[" + label + "]")
		} else {
			label = style.TaskStyle.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// statusOptions renders the status selector row
func (m Model) statusOptions() string {
	parts := make([]string, 0, 3)
	for i, s := range valueobject.AllStatuses() {
		label := s.Display()
		if i == m.statusIdx {
			label = style.SelectedTaskStyle.Render("[" + label + "]")
		} else {
			label = style.TaskStyle.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
