package tui

import (
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type ModalType int

const (
	ModalNone ModalType = iota
	ModalTaskForm
	ModalCategory
	ModalConfirmDelete
)

type ModalState interface {
	Type() ModalType
}

// Task form fields, in tab order.
const (
	fieldName = iota
	fieldCategory
	fieldPriority
	fieldCount
)

// TaskFormState backs both the add and the edit form. Options lists the
// offered categories, plus the edited task's own category when it is unlisted.
type TaskFormState struct {
	EditingID string
	Name      textinput.Model
	Options   []string
	Category  int
	Priority  int
	Field     int
}

func (s *TaskFormState) Type() ModalType { return ModalTaskForm }

type CategoryInputState struct {
	Input textinput.Model
}

func (s *CategoryInputState) Type() ModalType { return ModalCategory }

type ConfirmDeleteState struct {
	TaskID string
	Name   string
}

func (s *ConfirmDeleteState) Type() ModalType { return ModalConfirmDelete }

func newTaskForm(task *models.Task, categories []string) *TaskFormState {
	ti := textinput.New()
	ti.Placeholder = "Task"
	ti.CharLimit = config.MaxTaskNameLength
	ti.Width = 40
	ti.Focus()
	form := &TaskFormState{
		Name:     ti,
		Options:  append([]string(nil), categories...),
		Priority: priorityIndex(models.PriorityMedium),
	}
	if task != nil {
		form.EditingID = task.ID
		form.Name.SetValue(task.Name)
		form.Priority = priorityIndex(task.Priority)
		form.Category = categoryIndex(form.Options, task.Category)
		if form.Category < 0 && strings.TrimSpace(task.Category) != "" {
			form.Options = append(form.Options, task.Category)
			form.Category = len(form.Options) - 1
		}
		if form.Category < 0 {
			form.Category = 0
		}
	}
	return form
}

// SelectedCategory returns the selected option, or "" when none exist.
func (s *TaskFormState) SelectedCategory() string {
	if s.Category >= 0 && s.Category < len(s.Options) {
		return s.Options[s.Category]
	}
	return ""
}

func categoryIndex(options []string, category string) int {
	for i, c := range options {
		if c == category {
			return i
		}
	}
	for i, c := range options {
		if strings.EqualFold(c, category) {
			return i
		}
	}
	return -1
}

func newCategoryInput() *CategoryInputState {
	ti := textinput.New()
	ti.CharLimit = config.MaxCategoryLength
	ti.Width = config.MaxCategoryLength + 2
	ti.Focus()
	return &CategoryInputState{Input: ti}
}

func priorityIndex(p models.Priority) int {
	for i, v := range models.Priorities {
		if v == p {
			return i
		}
	}
	return 1
}

// ModalManager tracks the open dialog, if any.
type ModalManager struct {
	current ModalState
}

func (m *ModalManager) IsOpen() bool {
	return m.current != nil
}

func (m *ModalManager) ActiveModal() ModalType {
	if m.current == nil {
		return ModalNone
	}
	return m.current.Type()
}

func (m *ModalManager) Open(state ModalState) {
	m.current = state
}

func (m *ModalManager) Close() {
	m.current = nil
}

func (m *ModalManager) TaskFormState() (*TaskFormState, bool) {
	state, ok := m.current.(*TaskFormState)
	return state, ok
}

func (m *ModalManager) CategoryState() (*CategoryInputState, bool) {
	state, ok := m.current.(*CategoryInputState)
	return state, ok
}

func (m *ModalManager) ConfirmDeleteState() (*ConfirmDeleteState, bool) {
	state, ok := m.current.(*ConfirmDeleteState)
	return state, ok
}

// UpdateInput forwards non-key messages such as cursor blink to the focused input.
func (m *ModalManager) UpdateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch state := m.current.(type) {
	case *TaskFormState:
		state.Name, cmd = state.Name.Update(msg)
	case *CategoryInputState:
		state.Input, cmd = state.Input.Update(msg)
	}
	return cmd
}
