package tui

import (
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/i18n"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the ticket of the tick that produced it.
type TickMsg struct {
	Ticket timer.Ticket
}

type phaseNotifiedMsg struct{}

func tickCmd(t timer.Ticket) tea.Cmd {
	return tea.Tick(config.TickInterval, func(time.Time) tea.Msg { return TickMsg{Ticket: t} })
}

// TimerModel wraps the countdown with its progress bar and the start time of
// the phase in progress.
type TimerModel struct {
	ctrl         timer.Controller
	progress     progress.Model
	phaseStarted time.Time
}

func NewTimerModel() TimerModel {
	return TimerModel{
		ctrl:     timer.NewController(),
		progress: progress.New(progress.WithSolidFill(string(tomato)), progress.WithoutPercentage(), progress.WithWidth(config.ProgressWidth)),
	}
}

func (t *TimerModel) Resize(width int) {
	target := config.ProgressWidth
	if width < config.CompactModeThreshold {
		target = width / 2
	}
	if target < config.MinProgressWidth {
		target = config.MinProgressWidth
	}
	t.progress.Width = target
}

func (t TimerModel) State() timer.State {
	return t.ctrl.State()
}

func handleStartPause(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.timer.ctrl.State().Running {
		m.timer.ctrl.Pause()
		return m, nil, true
	}
	if !m.timer.ctrl.Start() {
		return m, nil, true
	}
	if m.timer.phaseStarted.IsZero() {
		m.timer.phaseStarted = m.now()
	}
	ticket, ok := m.timer.ctrl.Arm()
	if !ok {
		return m, nil, true
	}
	return m, tickCmd(ticket), true
}

func handleReset(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.timer.ctrl.Reset()
	m.timer.phaseStarted = time.Time{}
	return m, nil, true
}

// handleTick acts only on the current ticket. A tea.Tick cannot be cancelled,
// so ticks armed before a pause or reset still arrive and are dropped here.
func (m MainModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.timer.ctrl.Accept(msg.Ticket) {
		return m, nil
	}
	done, completed := m.timer.ctrl.Tick()
	if !completed {
		ticket, ok := m.timer.ctrl.Arm()
		if !ok {
			return m, nil
		}
		return m, tickCmd(ticket)
	}
	cmd := m.completePhase(done)
	return m, cmd
}

// completePhase logs the finished phase, alerts the user and announces it.
func (m *MainModel) completePhase(done timer.PhaseCompleted) tea.Cmd {
	end := m.now()
	started := m.timer.phaseStarted
	if started.IsZero() {
		started = end.Add(-done.Phase.Duration())
	}
	m.timer.phaseStarted = time.Time{}

	rec := models.SessionRecord{
		Kind:      done.Phase.String(),
		StartedAt: started,
		EndedAt:   end,
		Seconds:   done.Phase.Seconds(),
	}
	if done.Phase == timer.PhaseWork {
		if task := m.currentTask(); task != nil {
			rec.TaskID = task.ID
			rec.TaskName = task.Name
			rec.Category = task.Category
		}
	}

	notifier, settings := m.notifier, m.settings
	cmds := []tea.Cmd{func() tea.Msg {
		notifier.Notify(settings, done)
		return phaseNotifiedMsg{}
	}}

	if _, err := m.store.RecordSession(m.ctx, rec); err != nil {
		return tea.Batch(append(cmds, m.saveFailed("Record session", err))...)
	}
	util.Debugf("recorded %s session of %ds", rec.Kind, rec.Seconds)
	m.refreshStats()

	text := m.lang.T(i18n.MsgWorkDone)
	if done.Phase == timer.PhaseBreak {
		text = m.lang.T(i18n.MsgBreakDone)
	}
	return tea.Batch(append(cmds, m.showToast(text))...)
}
