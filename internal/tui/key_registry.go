package tui

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a key press. It reports false to let other bindings try.
type KeyHandler func(m MainModel, key string) (MainModel, tea.Cmd, bool)

type KeyBinding struct {
	Key      string
	Handler  KeyHandler
	Pages    []Page
	Priority int
}

func (b KeyBinding) AppliesToPage(p Page) bool {
	if len(b.Pages) == 0 {
		return true
	}
	for _, v := range b.Pages {
		if v == p {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesToPage(m.page) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	global := []KeyBinding{
		{Key: "q", Handler: handleQuit},
		{Key: "T", Handler: handleToggleTheme},
		{Key: "tab", Handler: handleOpenMenu},
		{Key: "1", Handler: handleJump},
		{Key: "2", Handler: handleJump},
		{Key: "3", Handler: handleJump},
		{Key: "4", Handler: handleJump},
	}
	for _, b := range global {
		r.Register(b)
	}

	home := []Page{PageHome}
	r.Register(KeyBinding{Key: " ", Handler: handleStartPause, Pages: home, Priority: 1})
	r.Register(KeyBinding{Key: "r", Handler: handleReset, Pages: home, Priority: 1})

	tasks := []Page{PageTasks}
	for _, k := range []string{"up", "k", "down", "j"} {
		r.Register(KeyBinding{Key: k, Handler: handleTaskCursor, Pages: tasks, Priority: 1})
	}
	r.Register(KeyBinding{Key: "/", Handler: handleOpenSearch, Pages: tasks, Priority: 1})
	r.Register(KeyBinding{Key: "esc", Handler: handleClearSearch, Pages: tasks, Priority: 1})
	r.Register(KeyBinding{Key: "a", Handler: handleAddTask, Pages: tasks, Priority: 1})
	r.Register(KeyBinding{Key: "e", Handler: handleEditTask, Pages: tasks, Priority: 1})
	r.Register(KeyBinding{Key: "d", Handler: handleDeleteTask, Pages: tasks, Priority: 1})
	r.Register(KeyBinding{Key: "enter", Handler: handleSelectTask, Pages: tasks, Priority: 1})
	r.Register(KeyBinding{Key: "n", Handler: handleNewCategory, Pages: tasks, Priority: 1})

	st := []Page{PageStats}
	for _, k := range []string{"d", "w", "m"} {
		r.Register(KeyBinding{Key: k, Handler: handleStatsRange, Pages: st, Priority: 1})
	}
	r.Register(KeyBinding{Key: "c", Handler: handleStatsCategory, Pages: st, Priority: 1})
	r.Register(KeyBinding{Key: "p", Handler: handleStatsPDF, Pages: st, Priority: 1})

	settings := []Page{PageSettings}
	r.Register(KeyBinding{Key: "s", Handler: handleCycleSound, Pages: settings, Priority: 1})
	r.Register(KeyBinding{Key: "v", Handler: handleToggleVibration, Pages: settings, Priority: 1})
	r.Register(KeyBinding{Key: "x", Handler: handleExport, Pages: settings, Priority: 1})
	r.Register(KeyBinding{Key: "i", Handler: handleImport, Pages: settings, Priority: 1})
	return r
}
