package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/i18n"
	tea "github.com/charmbracelet/bubbletea"
)

// Page is one top level screen.
type Page int

const (
	PageHome Page = iota
	PageTasks
	PageStats
	PageSettings
)

// Pages lists the screens in menu order.
var Pages = []Page{PageHome, PageTasks, PageStats, PageSettings}

func (p Page) titleID() string {
	switch p {
	case PageTasks:
		return i18n.MsgTasks
	case PageStats:
		return i18n.MsgStats
	case PageSettings:
		return i18n.MsgSettings
	default:
		return i18n.MsgHome
	}
}

// MenuState is the side menu.
type MenuState struct {
	Open   bool
	Cursor int
}

func handleOpenMenu(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.menu.Open = true
	m.menu.Cursor = int(m.page)
	return m, nil, true
}

func handleJump(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	idx := int(key[0] - '1')
	if idx < 0 || idx >= len(Pages) {
		return m, nil, false
	}
	return m.navigate(Pages[idx])
}

func (m MainModel) navigate(p Page) (MainModel, tea.Cmd, bool) {
	m.page = p
	m.menu.Open = false
	if p == PageStats {
		m.refreshStats()
	}
	return m, nil, true
}

func (m MainModel) updateMenu(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "tab":
		m.menu.Open = false
	case "up", "k":
		if m.menu.Cursor > 0 {
			m.menu.Cursor--
		}
	case "down", "j":
		if m.menu.Cursor < len(Pages)-1 {
			m.menu.Cursor++
		}
	case "enter":
		next, cmd, _ := m.navigate(Pages[m.menu.Cursor])
		return next, cmd
	case "q", "T", "1", "2", "3", "4":
		next, cmd, _ := m.keys.Handle(m, key)
		return next, cmd
	}
	return m, nil
}

func (m MainModel) renderMenu() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("🍅 " + config.AppName))
	b.WriteString("\n\n")
	for i, p := range Pages {
		label := fmt.Sprintf("%d  %s", i+1, m.lang.T(p.titleID()))
		label = padRight(truncateLabel(label, config.MenuWidth-4), config.MenuWidth-4)
		switch {
		case i == m.menu.Cursor:
			b.WriteString(m.theme.Highlight.Render(label))
		case p == m.page:
			b.WriteString(m.theme.Focused.Render(label))
		default:
			b.WriteString(m.theme.Text.Render(label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Dim.Render(truncateLabel("v"+versionLabel(), config.MenuWidth-4)))
	return m.theme.Menu.Width(config.MenuWidth).Render(b.String())
}
