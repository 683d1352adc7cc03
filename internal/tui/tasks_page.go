package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/i18n"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// TaskListState is the cursor and scroll position of the task list.
type TaskListState struct {
	Cursor int
	Offset int
}

func (s *TaskListState) clamp(n int) {
	s.Cursor = util.Clamp(s.Cursor, 0, n-1)
	if n == 0 {
		s.Cursor = 0
	}
	if s.Cursor < s.Offset {
		s.Offset = s.Cursor
	}
	if s.Cursor >= s.Offset+config.MaxVisibleTasks {
		s.Offset = s.Cursor - config.MaxVisibleTasks + 1
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
}

func (m MainModel) visibleTasks() []models.Task {
	q := m.search.Query()
	if q.Empty() {
		return m.tasks
	}
	var out []models.Task
	for _, t := range m.tasks {
		if q.Match(t.Name, t.Category, string(t.Priority)) || q.Match(t.Name, m.categoryLabel(t.Category), string(t.Priority)) {
			out = append(out, t)
		}
	}
	return out
}

func (m MainModel) selectedTask() (models.Task, bool) {
	visible := m.visibleTasks()
	if m.taskList.Cursor < 0 || m.taskList.Cursor >= len(visible) {
		return models.Task{}, false
	}
	return visible[m.taskList.Cursor], true
}

func (m *MainModel) reloadTasks() error {
	tasks, err := m.store.LoadTasks(m.ctx)
	if err != nil {
		return err
	}
	m.tasks = tasks
	if m.currentID != "" && m.currentTask() == nil {
		m.currentID = ""
	}
	m.taskList.clamp(len(m.visibleTasks()))
	return nil
}

func handleTaskCursor(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	switch key {
	case "up", "k":
		m.taskList.Cursor--
	case "down", "j":
		m.taskList.Cursor++
	}
	m.taskList.clamp(len(m.visibleTasks()))
	return m, nil, true
}

func handleAddTask(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.modal.Open(newTaskForm(nil, m.categories))
	return m, nil, true
}

func handleEditTask(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil, true
	}
	m.modal.Open(newTaskForm(&task, m.categories))
	return m, nil, true
}

func handleDeleteTask(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil, true
	}
	m.modal.Open(&ConfirmDeleteState{TaskID: task.ID, Name: task.Name})
	return m, nil, true
}

func handleSelectTask(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil, true
	}
	m.currentID = task.ID
	cmd := m.showToast(m.lang.Tf(i18n.MsgTaskSelected, map[string]interface{}{"Name": task.Name}))
	return m, cmd, true
}

func handleNewCategory(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.modal.Open(newCategoryInput())
	return m, nil, true
}

func (m MainModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch state := m.modal.current.(type) {
	case *TaskFormState:
		return m.updateTaskForm(state, msg)
	case *CategoryInputState:
		switch key {
		case "esc":
			m.modal.Close()
			return m, nil
		case "enter":
			return m.saveCategory(state.Input.Value())
		}
		var cmd tea.Cmd
		state.Input, cmd = state.Input.Update(msg)
		return m, cmd
	case *ConfirmDeleteState:
		switch key {
		case "y", "Y":
			m.modal.Close()
			if err := m.store.DeleteTask(m.ctx, state.TaskID); err != nil {
				cmd := m.saveFailed("Delete task", err)
				return m, cmd
			}
			if err := m.reloadTasks(); err != nil {
				util.LogError("Reload tasks", err)
			}
			cmd := m.showToast(m.lang.T(i18n.MsgTaskDeleted))
			return m, cmd
		case "n", "N", "esc":
			m.modal.Close()
		}
	}
	return m, nil
}

func (m MainModel) updateTaskForm(form *TaskFormState, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal.Close()
		return m, nil
	case "enter":
		return m.saveTaskForm(form)
	case "tab", "down":
		form.Field = (form.Field + 1) % fieldCount
	case "shift+tab", "up":
		form.Field = (form.Field + fieldCount - 1) % fieldCount
	case "left", "right":
		if form.Field == fieldName {
			var cmd tea.Cmd
			form.Name, cmd = form.Name.Update(msg)
			return m, cmd
		}
		step := 1
		if msg.String() == "left" {
			step = -1
		}
		if n := len(form.Options); form.Field == fieldCategory && n > 0 {
			form.Category = (form.Category + step + n) % n
		}
		if form.Field == fieldPriority {
			form.Priority = (form.Priority + step + len(models.Priorities)) % len(models.Priorities)
		}
		return m, nil
	default:
		if form.Field != fieldName {
			return m, nil
		}
		var cmd tea.Cmd
		form.Name, cmd = form.Name.Update(msg)
		return m, cmd
	}
	if form.Field == fieldName {
		return m, form.Name.Focus()
	}
	form.Name.Blur()
	return m, nil
}

func (m MainModel) saveTaskForm(form *TaskFormState) (tea.Model, tea.Cmd) {
	category := form.SelectedCategory()
	priority := models.Priorities[util.Clamp(form.Priority, 0, len(models.Priorities)-1)]

	var err error
	msgID := i18n.MsgTaskAdded
	if form.EditingID == "" {
		err = m.store.AddTask(m.ctx, models.NewTask(form.Name.Value(), category, priority))
	} else {
		msgID = i18n.MsgTaskUpdated
		task := models.Task{ID: form.EditingID, CreatedAt: m.now()}
		for _, t := range m.tasks {
			if t.ID == form.EditingID {
				task = t
			}
		}
		task.Name = strings.TrimSpace(form.Name.Value())
		task.Category = category
		task.Priority = priority
		err = m.store.UpdateTask(m.ctx, task)
	}
	if err != nil {
		cmd := m.saveFailed("Save task", err)
		return m, cmd
	}
	m.modal.Close()
	if err := m.reloadTasks(); err != nil {
		util.LogError("Reload tasks", err)
	}
	cmd := m.showToast(m.lang.T(msgID))
	return m, cmd
}

func (m MainModel) saveCategory(name string) (tea.Model, tea.Cmd) {
	name = util.NormalizeLabel(name)
	if name == "" {
		return m, nil
	}
	added, err := m.store.AddCategory(m.ctx, name)
	if err != nil {
		cmd := m.saveFailed("Add category", err)
		return m, cmd
	}
	m.modal.Close()
	if !added {
		cmd := m.showToast(m.lang.T(i18n.MsgCategoryExists))
		return m, cmd
	}
	if cats, err := m.store.LoadCategories(m.ctx); err == nil {
		m.categories = cats
	} else {
		util.LogError("Reload categories", err)
	}
	cmd := m.showToast(m.lang.T(i18n.MsgCategoryAdded))
	return m, cmd
}

// categoryLabel localizes the built in categories; user categories show as typed.
func (m MainModel) categoryLabel(name string) string {
	switch name {
	case "Work":
		return m.lang.T(i18n.MsgCategoryWork)
	case "Study":
		return m.lang.T(i18n.MsgCategoryStudy)
	case "Life":
		return m.lang.T(i18n.MsgCategoryLife)
	}
	return name
}

func (m MainModel) priorityLabel(p models.Priority) string {
	label := m.lang.T(string(p))
	if style, ok := m.theme.Priority[p]; ok {
		return style.Render(label)
	}
	return label
}

func (m MainModel) renderTasks(width int) string {
	var b strings.Builder
	if m.search.Active || m.search.Input.Value() != "" {
		b.WriteString(m.theme.Dim.Render(m.lang.T(i18n.MsgSearch)+": ") + m.search.Input.View())
		b.WriteString("\n\n")
	}

	visible := m.visibleTasks()
	if len(visible) == 0 {
		b.WriteString(m.theme.Dim.Render(m.lang.T(i18n.MsgNoTasks)))
		b.WriteString("\n")
	}
	end := util.Clamp(m.taskList.Offset+config.MaxVisibleTasks, 0, len(visible))
	for i := m.taskList.Offset; i < end; i++ {
		t := visible[i]
		marker := "  "
		if t.ID == m.currentID {
			marker = m.theme.Focused.Render("● ")
		}
		name := truncateLabel(t.Name, util.Clamp(width-24, 10, config.MaxTaskNameLength))
		line := fmt.Sprintf("%s%s  %s", marker, name, m.theme.Dim.Render(m.categoryLabel(t.Category)))
		line = fmt.Sprintf("%s  %s", line, m.priorityLabel(t.Priority))
		if i == m.taskList.Cursor {
			line = m.theme.Highlight.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(visible) > end {
		b.WriteString(m.theme.Dim.Render(fmt.Sprintf("  … %d more", len(visible)-end)))
		b.WriteString("\n")
	}

	switch state := m.modal.current.(type) {
	case *TaskFormState:
		b.WriteString("\n")
		b.WriteString(m.renderTaskForm(state))
	case *CategoryInputState:
		b.WriteString("\n")
		b.WriteString(m.theme.Input.Render(m.lang.T(i18n.MsgNewCategory) + ": " + state.Input.View()))
	case *ConfirmDeleteState:
		b.WriteString("\n")
		b.WriteString(m.theme.Focused.Render(m.lang.Tf(i18n.MsgConfirmDelete, map[string]interface{}{"Name": state.Name})))
	}
	return b.String()
}

func (m MainModel) renderTaskForm(form *TaskFormState) string {
	field := func(idx int, label, value string) string {
		prefix := "  "
		if form.Field == idx {
			prefix = m.theme.Focused.Render("> ")
		}
		return fmt.Sprintf("%s%s: %s", prefix, label, value)
	}
	category := m.categoryLabel(form.SelectedCategory())
	priority := models.Priorities[util.Clamp(form.Priority, 0, len(models.Priorities)-1)]
	rows := []string{
		field(fieldName, m.lang.T(i18n.MsgName), form.Name.View()),
		field(fieldCategory, m.lang.T(i18n.MsgCategory), "‹ "+category+" ›"),
		field(fieldPriority, m.lang.T(i18n.MsgPriority), "‹ "+m.priorityLabel(priority)+" ›"),
	}
	return m.theme.Input.Render(strings.Join(rows, "\n"))
}
