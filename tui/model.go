package tui

import (
	"taskdeck/internal/application/dto"
	"taskdeck/internal/di"
	"taskdeck/tui/form"

	tea "github.com/charmbracelet/bubbletea"
)

// Model represents the TUI state: the task list plus the form dialog that
// overlays it while a task is being created or edited.
type Model struct {
	container *di.Container

	tasks        []dto.TaskDTO
	focusedTask  int
	scrollOffset int

	dialog form.Model

	watcher *storageWatcher

	statusLine string
	width      int
	height     int
}

// NewModel creates a new TUI model
func NewModel(tasks []dto.TaskDTO, container *di.Container) Model {
	return Model{
		container: container,
		tasks:     tasks,
		dialog:    form.New(),
		watcher:   newStorageWatcher(container.Config.Storage.TasksPath),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	// Start watching the tasks directory for external changes
	return m.watcher.start()
}

// currentTask returns the focused task, or nil when the list is empty
func (m Model) currentTask() *dto.TaskDTO {
	if len(m.tasks) == 0 || m.focusedTask < 0 || m.focusedTask >= len(m.tasks) {
		return nil
	}
	return &m.tasks[m.focusedTask]
}

// existingTitles collects the titles fed into the dialog's duplicate check
func (m Model) existingTitles() []string {
	titles := make([]string, 0, len(m.tasks))
	for _, task := range m.tasks {
		titles = append(titles, task.Title)
	}
	return titles
}

// clampTaskFocus ensures the task focus is within valid bounds
func (m *Model) clampTaskFocus() {
	if len(m.tasks) == 0 {
		m.focusedTask = 0
	} else if m.focusedTask >= len(m.tasks) {
		m.focusedTask = len(m.tasks) - 1
	}
	if m.focusedTask < 0 {
		m.focusedTask = 0
	}
}

// updateScroll keeps the focused task visible in the viewport
func (m *Model) updateScroll(viewportHeight int) {
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	if m.focusedTask < m.scrollOffset {
		m.scrollOffset = m.focusedTask
	} else if m.focusedTask >= m.scrollOffset+viewportHeight {
		m.scrollOffset = m.focusedTask - viewportHeight + 1
	}

	maxScroll := len(m.tasks) - viewportHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scrollOffset > maxScroll {
		m.scrollOffset = maxScroll
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}
