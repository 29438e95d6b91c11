package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/application/dto"
	"taskdeck/tui/style"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.dialog.IsOpen() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.dialog.View())
	}

	// Subtract: borders (2), title (1), spacing (1), help (3)
	viewportHeight := m.height - 7
	m.updateScroll(viewportHeight)

	title := style.ListTitleStyle.Width(m.width - 6).Render("Tasks")

	var rows []string
	if len(m.tasks) == 0 {
		rows = append(rows, style.TaskStyle.Render("(no tasks — press a to add one)"))
	} else {
		endIdx := m.scrollOffset + viewportHeight
		if endIdx > len(m.tasks) {
			endIdx = len(m.tasks)
		}
		for i := m.scrollOffset; i < endIdx; i++ {
			rows = append(rows, m.renderTaskRow(m.tasks[i], i == m.focusedTask))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", strings.Join(rows, "\n"))
	list := style.ListStyle.Width(m.width - 4).Height(m.height - 5).Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, list, m.renderHelp())
}

// renderTaskRow renders one task line
func (m Model) renderTaskRow(task dto.TaskDTO, selected bool) string {
	badge := lipgloss.NewStyle().
		Foreground(style.PriorityColor(task.Priority)).
		Render("●")

	line := fmt.Sprintf("%s %-9s %-30s %10.2f %7.1fh  %s",
		badge, task.ShortID, truncate(task.Title, 30), task.Revenue, task.TimeTaken, statusLabel(task))

	if selected {
		return style.SelectedTaskStyle.Render(line)
	}
	if task.Status == "done" {
		return style.DoneStyle.Render(line)
	}
	return style.TaskStyle.Render(line)
}

// statusLabel renders the status with the completion date when done
func statusLabel(task dto.TaskDTO) string {
	if task.Status == "done" && task.CompletedAt != nil {
		return "Done " + task.CompletedAt.Format("2006-01-02")
	}
	switch task.Status {
	case "in-progress":
		return "In Progress"
	case "todo":
		return "Todo"
	}
	return task.Status
}

// renderHelp renders the help text at the bottom
func (m Model) renderHelp() string {
	helpText := []string{
		"↑/k,↓/j (move)",
		"a (add)  e/enter (edit)  d (delete)  q (quit)",
	}
	if m.statusLine != "" {
		return style.HelpStyle.Render(strings.Join(helpText, "  •  ")) + "\n" +
			style.FieldErrorStyle.Render(m.statusLine)
	}
	return style.HelpStyle.Render(strings.Join(helpText, "  •  "))
}

// truncate shortens a string to width runes with an ellipsis
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
