package tui

import (
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/i18n"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/charmbracelet/lipgloss"
)

func (m MainModel) View() string {
	contentWidth := m.width - 4
	if m.menu.Open {
		contentWidth -= config.MenuWidth + 2
	}

	var body string
	switch m.page {
	case PageTasks:
		body = m.renderTasks(contentWidth)
	case PageStats:
		body = m.renderStats(contentWidth)
	case PageSettings:
		body = m.renderSettings()
	default:
		body = m.renderHome(contentWidth)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		body,
		"",
		m.renderFooter(),
	)
	if toast := m.renderToast(); toast != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", toast)
	}
	if m.menu.Open {
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.renderMenu(), "  ", content)
	}
	return m.theme.Base.Render(content)
}

func (m MainModel) renderHeader() string {
	title := m.theme.Header.Render(m.lang.T(m.page.titleID()))
	if m.page == PageHome {
		return title
	}
	state := m.timer.State()
	clock := m.theme.PhaseStyle(state.Phase == timer.PhaseBreak).Render(timer.Format(state.SecondsRemaining))
	if !state.Running {
		clock = m.theme.Dim.Render(timer.Format(state.SecondsRemaining))
	}
	return title + "  " + clock
}

func (m MainModel) renderFooter() string {
	var id string
	switch {
	case m.menu.Open:
		id = i18n.MsgHelpMenu
	case m.modal.ActiveModal() == ModalTaskForm:
		id = i18n.MsgHelpForm
	case m.page == PageTasks:
		id = i18n.MsgHelpTasks
	case m.page == PageStats:
		id = i18n.MsgHelpStats
	case m.page == PageSettings:
		id = i18n.MsgHelpSettings
	default:
		id = i18n.MsgHelpHome
	}
	return m.theme.Dim.Render(m.lang.T(id))
}

func (m MainModel) renderHome(width int) string {
	state := m.timer.State()
	isBreak := state.Phase == timer.PhaseBreak
	style := m.theme.PhaseStyle(isBreak)

	phase := m.lang.T(i18n.MsgWork)
	if isBreak {
		phase = m.lang.T(i18n.MsgBreak)
	}
	status := m.lang.T(i18n.MsgStart)
	if state.Running {
		status = m.lang.T(i18n.MsgPause)
	}

	display := timer.Format(state.SecondsRemaining)
	clock := bigClock(display)
	if width > 0 && width < config.CompactModeThreshold {
		clock = display
	}

	bar := m.timer.progress
	bar.FullColor = string(m.theme.Bar)
	if isBreak {
		bar.FullColor = string(green)
	}

	taskLine := m.theme.Dim.Render(m.lang.T(i18n.MsgNoTask))
	if task := m.currentTask(); task != nil {
		taskLine = m.theme.Text.Render(truncateLabel(task.Name, maxInt(width-16, 10))) +
			"  " + m.theme.Dim.Render(m.categoryLabel(task.Category))
	}

	lines := []string{
		style.Render(phase),
		"",
		style.Render(clock),
		"",
		bar.ViewAs(m.timer.ctrl.Progress()),
		"",
		taskLine,
		m.theme.Dim.Render("[space] " + status + "  [r] " + m.lang.T(i18n.MsgReset)),
	}
	return strings.Join(lines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
