package form

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/application/dto"
	"taskdeck/internal/domain/valueobject"
)

// SubmittedMsg is emitted when the dialog is confirmed. The payload is a
// complete task record: without an ID for creation, with the original ID
// for an edit. The receiver owns persistence.
type SubmittedMsg struct {
	Payload dto.TaskPayload
}

// CancelledMsg is emitted when the dialog is dismissed without submitting
type CancelledMsg struct{}

// field identifies one editable field of the dialog
type field int

const (
	fieldTitle field = iota
	fieldRevenue
	fieldTimeTaken
	fieldPriority
	fieldStatus
	fieldNotes
	fieldCount
)

const (
	errValueRequired   = "enter a number"
	errNotANumber      = "not a number"
	errNegativeRevenue = "revenue must be 0 or more"
	errNonPositiveTime = "time taken must be more than 0"
	errDuplicateTitle  = "a task with this title already exists"
	unselectedOption   = -1
)

// Model is the task form dialog. It holds the transient draft state while
// open; the draft is discarded on cancel and emitted as a payload only on
// a confirmed submit.
type Model struct {
	open    bool
	editing bool

	initial        *dto.TaskDTO
	existingTitles []string

	title     textinput.Model
	revenue   textinput.Model
	timeTaken textinput.Model
	notes     textinput.Model

	priorityIdx int // index into valueobject.AllPriorities, -1 when unselected
	statusIdx   int // index into valueobject.AllStatuses, -1 when unselected

	focused field

	duplicateTitle bool
	revenueErr     string
	timeErr        string

	width int
}

// New creates a closed task form dialog
func New() Model {
	title := textinput.New()
	title.Placeholder = "Task title"
	title.CharLimit = 120
	title.Width = 40

	revenue := textinput.New()
	revenue.Placeholder = "0.00"
	revenue.CharLimit = 16
	revenue.Width = 16

	timeTaken := textinput.New()
	timeTaken.Placeholder = "hours"
	timeTaken.CharLimit = 16
	timeTaken.Width = 16

	notes := textinput.New()
	notes.Placeholder = "optional notes"
	notes.CharLimit = 500
	notes.Width = 40

	return Model{
		title:       title,
		revenue:     revenue,
		timeTaken:   timeTaken,
		notes:       notes,
		priorityIdx: unselectedOption,
		statusIdx:   unselectedOption,
	}
}

// Open resets the dialog and shows it. In edit mode every field is
// initialized from the initial task; in create mode all fields start blank.
// Error state from a previous session is cleared either way.
func (m *Model) Open(initial *dto.TaskDTO, existingTitles []string) {
	m.open = true
	m.initial = initial
	m.editing = initial != nil
	m.existingTitles = existingTitles

	m.duplicateTitle = false
	m.revenueErr = ""
	m.timeErr = ""

	if m.editing {
		m.title.SetValue(initial.Title)
		m.revenue.SetValue(strconv.FormatFloat(initial.Revenue, 'f', -1, 64))
		m.timeTaken.SetValue(strconv.FormatFloat(initial.TimeTaken, 'f', -1, 64))
		m.notes.SetValue(initial.Notes)
		m.priorityIdx = priorityIndex(initial.Priority)
		m.statusIdx = statusIndex(initial.Status)
	} else {
		m.title.SetValue("")
		m.revenue.SetValue("")
		m.timeTaken.SetValue("")
		m.notes.SetValue("")
		m.priorityIdx = unselectedOption
		m.statusIdx = unselectedOption
	}

	m.setFocus(fieldTitle)
	m.refreshDuplicateFlag()
}

// Close hides the dialog and discards the draft
func (m *Model) Close() {
	m.open = false
	m.title.Blur()
	m.revenue.Blur()
	m.timeTaken.Blur()
	m.notes.Blur()
}

// IsOpen reports whether the dialog is visible
func (m Model) IsOpen() bool {
	return m.open
}

// SetWidth sets the rendering width
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Update handles messages while the dialog is open
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.open {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Cancel):
		m.Close()
		return m, func() tea.Msg { return CancelledMsg{} }

	case key.Matches(keyMsg, keys.Submit):
		return m.submit()

	case key.Matches(keyMsg, keys.NextField):
		m.setFocus((m.focused + 1) % fieldCount)
		return m, nil

	case key.Matches(keyMsg, keys.PrevField):
		m.setFocus((m.focused + fieldCount - 1) % fieldCount)
		return m, nil
	}

	switch m.focused {
	case fieldPriority:
		m.priorityIdx = cycleOption(keyMsg, m.priorityIdx, len(valueobject.AllPriorities()))
		return m, nil
	case fieldStatus:
		m.statusIdx = cycleOption(keyMsg, m.statusIdx, len(valueobject.AllStatuses()))
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focused {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
		m.refreshDuplicateFlag()
	case fieldRevenue:
		m.revenue, cmd = m.revenue.Update(msg)
		m.revenueErr = validateRevenue(m.revenue.Value())
	case fieldTimeTaken:
		m.timeTaken, cmd = m.timeTaken.Update(msg)
		m.timeErr = validateTimeTaken(m.timeTaken.Value())
	case fieldNotes:
		m.notes, cmd = m.notes.Update(msg)
	}

	return m, cmd
}

// submit re-validates, builds the payload, and emits it. Invalid state
// aborts silently; validation feedback is already on screen.
func (m Model) submit() (Model, tea.Cmd) {
	if !m.canSubmit() {
		return m, nil
	}

	payload := m.buildPayload()
	m.Close()
	return m, func() tea.Msg { return SubmittedMsg{Payload: payload} }
}

// canSubmit is the submit-enablement predicate: non-empty unique title,
// valid numeric fields, and both selectors chosen.
func (m Model) canSubmit() bool {
	if strings.TrimSpace(m.title.Value()) == "" {
		return false
	}
	if m.duplicateTitle {
		return false
	}
	if validateRevenue(m.revenue.Value()) != "" {
		return false
	}
	if validateTimeTaken(m.timeTaken.Value()) != "" {
		return false
	}
	if m.priorityIdx == unselectedOption || m.statusIdx == unselectedOption {
		return false
	}
	return true
}

// buildPayload shapes the confirmed draft into a task record
func (m Model) buildPayload() dto.TaskPayload {
	now := time.Now()

	revenue, _ := strconv.ParseFloat(strings.TrimSpace(m.revenue.Value()), 64)
	if math.IsNaN(revenue) || math.IsInf(revenue, 0) {
		revenue = 0
	}

	timeTaken, _ := strconv.ParseFloat(strings.TrimSpace(m.timeTaken.Value()), 64)
	if math.IsNaN(timeTaken) || math.IsInf(timeTaken, 0) || timeTaken <= 0 {
		timeTaken = 1
	}

	priority := valueobject.PriorityMedium
	if m.priorityIdx != unselectedOption {
		priority = valueobject.AllPriorities()[m.priorityIdx]
	}

	status := valueobject.StatusTodo
	if m.statusIdx != unselectedOption {
		status = valueobject.AllStatuses()[m.statusIdx]
	}

	payload := dto.TaskPayload{
		Title:     strings.TrimSpace(m.title.Value()),
		Revenue:   revenue,
		TimeTaken: timeTaken,
		Priority:  priority.String(),
		Status:    status.String(),
		Notes:     strings.TrimSpace(m.notes.Value()),
		CreatedAt: now,
	}

	if m.editing {
		payload.ID = m.initial.ShortID
		payload.CreatedAt = m.initial.CreatedAt
	}

	if status == valueobject.StatusDone {
		if m.editing && m.initial.CompletedAt != nil {
			payload.CompletedAt = m.initial.CompletedAt
		} else {
			completed := now
			payload.CompletedAt = &completed
		}
	}

	return payload
}

// refreshDuplicateFlag recomputes the duplicate-title flag against the
// existing titles, case-insensitively. In edit mode the task's own
// original title is not a duplicate.
func (m *Model) refreshDuplicateFlag() {
	entered := strings.ToLower(strings.TrimSpace(m.title.Value()))
	if entered == "" {
		m.duplicateTitle = false
		return
	}

	var own string
	if m.editing {
		own = strings.ToLower(strings.TrimSpace(m.initial.Title))
	}

	for _, existing := range m.existingTitles {
		normalized := strings.ToLower(strings.TrimSpace(existing))
		if m.editing && normalized == own {
			continue
		}
		if normalized == entered {
			m.duplicateTitle = true
			return
		}
	}

	m.duplicateTitle = false
}

// setFocus moves keyboard focus to the given field
func (m *Model) setFocus(f field) {
	m.focused = f

	m.title.Blur()
	m.revenue.Blur()
	m.timeTaken.Blur()
	m.notes.Blur()

	switch f {
	case fieldTitle:
		m.title.Focus()
	case fieldRevenue:
		m.revenue.Focus()
	case fieldTimeTaken:
		m.timeTaken.Focus()
	case fieldNotes:
		m.notes.Focus()
	}
}

// validateRevenue returns the inline error for a revenue input, or ""
func validateRevenue(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errValueRequired
	}
	revenue, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(revenue) || math.IsInf(revenue, 0) {
		return errNotANumber
	}
	if revenue < 0 {
		return errNegativeRevenue
	}
	return ""
}

// validateTimeTaken returns the inline error for a time-taken input, or ""
func validateTimeTaken(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errValueRequired
	}
	timeTaken, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(timeTaken) || math.IsInf(timeTaken, 0) {
		return errNotANumber
	}
	if timeTaken <= 0 {
		return errNonPositiveTime
	}
	return ""
}

// cycleOption moves a selector index with the left/right keys. An
// unselected selector snaps to the first option on any movement.
func cycleOption(msg tea.KeyMsg, current, count int) int {
	var delta int
	switch {
	case key.Matches(msg, keys.CycleRight):
		delta = 1
	case key.Matches(msg, keys.CycleLeft):
		delta = -1
	default:
		return current
	}

	if current == unselectedOption {
		return 0
	}
	return (current + delta + count) % count
}

// priorityIndex maps a stored priority string to its selector index
func priorityIndex(s string) int {
	priority, err := valueobject.ParsePriority(s)
	if err != nil || !priority.IsSet() {
		return unselectedOption
	}
	for i, p := range valueobject.AllPriorities() {
		if p == priority {
			return i
		}
	}
	return unselectedOption
}

// statusIndex maps a stored status string to its selector index
func statusIndex(s string) int {
	status, err := valueobject.ParseStatus(s)
	if err != nil || !status.IsSet() {
		return unselectedOption
	}
	for i, st := range valueobject.AllStatuses() {
		if st == status {
			return i
		}
	}
	return unselectedOption
}
