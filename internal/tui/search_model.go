package tui

import (
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchManager holds the task filter box.
type SearchManager struct {
	Active bool
	Input  textinput.Model
}

func NewSearchManager() SearchManager {
	ti := textinput.New()
	ti.Placeholder = "name, category:work, priority:high"
	ti.CharLimit = 80
	ti.Width = 40
	return SearchManager{Input: ti}
}

func (s SearchManager) Query() util.SearchQuery {
	return util.ParseSearchQuery(s.Input.Value())
}

func handleOpenSearch(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.search.Active = true
	cmd := m.search.Input.Focus()
	return m, cmd, true
}

// handleClearSearch drops a filter left in place after the box was closed.
func handleClearSearch(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.search.Input.Value() == "" {
		return m, nil, false
	}
	m.search.Input.Reset()
	m.taskList.clamp(len(m.visibleTasks()))
	return m, nil, true
}

func (m MainModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.Active = false
		m.search.Input.Blur()
		m.search.Input.Reset()
	case "enter":
		m.search.Active = false
		m.search.Input.Blur()
	default:
		var cmd tea.Cmd
		m.search.Input, cmd = m.search.Input.Update(msg)
		m.taskList.Cursor = 0
		m.taskList.Offset = 0
		return m, cmd
	}
	m.taskList.clamp(len(m.visibleTasks()))
	return m, nil
}
