package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/application/dto"
	"taskdeck/tui/form"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dialog.SetWidth(msg.Width)
		return m, nil

	case tasksChangedMsg:
		m.reloadTasks()
		return m, m.watcher.waitForChange()

	case watchErrMsg:
		m.statusLine = "watch error: " + msg.err.Error()
		return m, nil

	case form.SubmittedMsg:
		m.handleSubmit(msg.Payload)
		return m, nil

	case form.CancelledMsg:
		return m, nil

	case tea.KeyMsg:
		if m.dialog.IsOpen() {
			var cmd tea.Cmd
			m.dialog, cmd = m.dialog.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, keys.Quit):
			m.watcher.close()
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			m.moveUp()

		case key.Matches(msg, keys.Down):
			m.moveDown()

		case key.Matches(msg, keys.Add):
			m.statusLine = ""
			m.dialog.Open(nil, m.existingTitles())

		case key.Matches(msg, keys.Edit):
			if task := m.currentTask(); task != nil {
				m.statusLine = ""
				m.dialog.Open(task, m.existingTitles())
			}

		case key.Matches(msg, keys.Delete):
			m.deleteTask()
		}
	}

	return m, nil
}

// moveUp moves focus to the task above
func (m *Model) moveUp() {
	if m.focusedTask > 0 {
		m.focusedTask--
	}
}

// moveDown moves focus to the task below
func (m *Model) moveDown() {
	if m.focusedTask < len(m.tasks)-1 {
		m.focusedTask++
	}
}

// handleSubmit persists a confirmed dialog payload. The payload carries an
// ID only when it edits an existing task.
func (m *Model) handleSubmit(payload dto.TaskPayload) {
	ctx := context.Background()

	var err error
	if payload.IsEdit() {
		_, err = m.container.UpdateTaskUseCase.Execute(ctx, payload)
	} else {
		_, err = m.container.CreateTaskUseCase.Execute(ctx, payload)
	}
	if err != nil {
		m.statusLine = err.Error()
		return
	}

	m.reloadTasks()
}

// deleteTask removes the currently focused task
func (m *Model) deleteTask() {
	task := m.currentTask()
	if task == nil {
		return
	}

	ctx := context.Background()
	if err := m.container.DeleteTaskUseCase.Execute(ctx, task.ShortID); err != nil {
		m.statusLine = err.Error()
		return
	}

	m.reloadTasks()
}

// reloadTasks refreshes the list from storage
func (m *Model) reloadTasks() {
	ctx := context.Background()

	tasks, err := m.container.ListTasksUseCase.Execute(ctx)
	if err != nil {
		m.statusLine = err.Error()
		return
	}

	m.tasks = tasks
	m.clampTaskFocus()
}
