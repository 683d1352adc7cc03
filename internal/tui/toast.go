package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastState is the transient confirmation line.
type ToastState struct {
	text    string
	isErr   bool
	seq     int
	pending string
}

type showToastMsg struct {
	text  string
	isErr bool
}

type toastExpiredMsg struct {
	seq int
}

func (t *ToastState) set(text string, isErr bool) int {
	t.seq++
	t.text = text
	t.isErr = isErr
	t.pending = ""
	return t.seq
}

// expire clears the toast only if no newer one replaced it.
func (t *ToastState) expire(seq int) {
	if seq == t.seq {
		t.text = ""
		t.isErr = false
	}
}

func (m *MainModel) showToast(text string) tea.Cmd {
	return m.toastCmd(m.toast.set(text, false))
}

func (m *MainModel) showError(text string) tea.Cmd {
	return m.toastCmd(m.toast.set(text, true))
}

func (m *MainModel) toastCmd(seq int) tea.Cmd {
	return tea.Tick(m.toastTTL, func(_ time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}

func (m MainModel) renderToast() string {
	if m.toast.text == "" {
		return ""
	}
	if m.toast.isErr {
		return m.theme.ToastError.Render(m.toast.text)
	}
	return m.theme.Toast.Render(m.toast.text)
}
