package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/database"
	"github.com/akyairhashvil/pomo/internal/i18n"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/notify"
	"github.com/akyairhashvil/pomo/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the root model.
type Options struct {
	Notifier   notify.Notifier
	Lang       *i18n.Localizer
	ToastTTL   time.Duration
	ReportsDir string
	Now        func() time.Time
}

// MainModel is the root bubbletea model. It owns the timer, the loaded data
// and the UI state of every page; pages are rendered from it.
type MainModel struct {
	ctx      context.Context
	store    Store
	notifier notify.Notifier
	lang     *i18n.Localizer
	keys     *HandlerRegistry
	now      func() time.Time

	reportsDir string
	toastTTL   time.Duration

	page      Page
	menu      MenuState
	themeName models.ThemeName
	theme     Theme

	timer      TimerModel
	settings   models.Settings
	tasks      []models.Task
	categories []string
	currentID  string

	taskList TaskListState
	search   SearchManager
	modal    ModalManager
	stats    StatsState
	toast    ToastState

	width, height int
}

func NewMainModel(ctx context.Context, store Store, opts Options) MainModel {
	if opts.Notifier == nil {
		opts.Notifier = &notify.Recorder{}
	}
	if opts.Lang == nil {
		opts.Lang = i18n.New("en")
	}
	if opts.ToastTTL <= 0 {
		opts.ToastTTL = config.DefaultToastDuration
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ReportsDir == "" {
		opts.ReportsDir = util.ReportsDir(config.AppName)
	}
	m := MainModel{
		ctx:        ctx,
		store:      store,
		notifier:   opts.Notifier,
		lang:       opts.Lang,
		keys:       newKeyRegistry(),
		now:        opts.Now,
		reportsDir: opts.ReportsDir,
		toastTTL:   opts.ToastTTL,
		page:       PageHome,
		timer:      NewTimerModel(),
		search:     NewSearchManager(),
		stats:      NewStatsState(),
	}
	m.setTheme(models.ThemeLight)
	m.loadAll()
	return m
}

// loadAll reads everything the pages show. Malformed stored values fall back
// to defaults and leave a toast; the stored value is kept until overwritten.
func (m *MainModel) loadAll() {
	var problems []string
	settings, err := m.store.LoadSettings(m.ctx)
	m.settings = settings
	if err != nil {
		util.LogError("Load settings", err)
		problems = append(problems, m.lang.T(i18n.MsgSettings))
	}
	theme, err := m.store.LoadTheme(m.ctx)
	util.LogError("Load theme", err)
	m.setTheme(theme)
	tasks, err := m.store.LoadTasks(m.ctx)
	if err != nil {
		util.LogError("Load tasks", err)
		problems = append(problems, m.lang.T(i18n.MsgTasks))
		tasks = nil
	}
	m.tasks = tasks
	cats, err := m.store.LoadCategories(m.ctx)
	if err != nil {
		util.LogError("Load categories", err)
	}
	m.categories = cats
	if m.currentID != "" && m.currentTask() == nil {
		m.currentID = ""
	}
	m.taskList.clamp(len(m.visibleTasks()))
	m.refreshStats()
	if len(problems) > 0 {
		m.toast.pending = m.lang.Tf(i18n.MsgMalformedStorage, map[string]interface{}{"What": strings.Join(problems, ", ")})
	}
}

func (m *MainModel) setTheme(name models.ThemeName) {
	m.themeName = name
	m.theme = ThemeFor(name)
}

func (m MainModel) Init() tea.Cmd {
	if m.toast.pending != "" {
		text := m.toast.pending
		return func() tea.Msg { return showToastMsg{text: text, isErr: true} }
	}
	return nil
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.timer.Resize(msg.Width)
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	case phaseNotifiedMsg:
		return m, nil
	case showToastMsg:
		var cmd tea.Cmd
		if msg.isErr {
			cmd = m.showError(msg.text)
		} else {
			cmd = m.showToast(msg.text)
		}
		return m, cmd
	case toastExpiredMsg:
		m.toast.expire(msg.seq)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateInputs(msg)
}

func (m MainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.timer.ctrl.Stop()
		return m, tea.Quit
	}
	if m.modal.IsOpen() {
		return m.updateModal(msg)
	}
	if m.search.Active {
		return m.updateSearch(msg)
	}
	if m.menu.Open {
		return m.updateMenu(key)
	}
	next, cmd, handled := m.keys.Handle(m, key)
	if handled {
		return next, cmd
	}
	return m, nil
}

func (m MainModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.modal.IsOpen():
		cmd = m.modal.UpdateInput(msg)
	case m.search.Active:
		m.search.Input, cmd = m.search.Input.Update(msg)
	}
	return m, cmd
}

func handleQuit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.timer.ctrl.Stop()
	return m, tea.Quit, true
}

func handleToggleTheme(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	next := m.themeName.Toggle()
	if err := m.store.SaveTheme(m.ctx, next); err != nil {
		cmd := m.saveFailed("Save theme", err)
		return m, cmd, true
	}
	m.setTheme(next)
	label := m.lang.T(i18n.MsgLightTheme)
	if next == models.ThemeDark {
		label = m.lang.T(i18n.MsgDarkTheme)
	}
	cmd := m.showToast(m.lang.Tf(i18n.MsgThemeChanged, map[string]interface{}{"Theme": label}))
	return m, cmd, true
}

func (m *MainModel) saveFailed(context string, err error) tea.Cmd {
	util.LogError(context, err)
	return m.showError(m.lang.Tf(i18n.MsgSaveFailed, map[string]interface{}{"Err": errorText(err)}))
}

// errorText strips operation wrappers down to the cause shown to users.
func errorText(err error) string {
	var opErr *database.OpError
	if errors.As(err, &opErr) && opErr.Err != nil {
		return opErr.Err.Error()
	}
	return err.Error()
}

func (m MainModel) currentTask() *models.Task {
	for i := range m.tasks {
		if m.tasks[i].ID == m.currentID {
			return &m.tasks[i]
		}
	}
	return nil
}
