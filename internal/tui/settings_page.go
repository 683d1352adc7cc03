package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/i18n"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/report"
	"github.com/akyairhashvil/pomo/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) saveSettings(next models.Settings) (MainModel, tea.Cmd, bool) {
	if err := m.store.SaveSettings(m.ctx, next); err != nil {
		cmd := m.saveFailed("Save settings", err)
		return m, cmd, true
	}
	m.settings = next
	cmd := m.showToast(m.lang.T(i18n.MsgSettingsSaved))
	return m, cmd, true
}

func handleCycleSound(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	next := m.settings
	next.Sound = util.Cycle(models.Sounds, m.settings.Sound, 1)
	return m.saveSettings(next)
}

func handleToggleVibration(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	next := m.settings
	next.Vibration = !next.Vibration
	return m.saveSettings(next)
}

func handleExport(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	export, err := m.store.ExportAll(m.ctx)
	if err != nil {
		cmd := m.saveFailed("Export", err)
		return m, cmd, true
	}
	path := filepath.Join(m.reportsDir, report.FileName(config.ExportPrefix, "json", m.now()))
	if err := report.WriteJSON(path, export, ""); err != nil {
		cmd := m.saveFailed("Write export", err)
		return m, cmd, true
	}
	cmd := m.showToast(m.lang.Tf(i18n.MsgExported, map[string]interface{}{"Path": path}))
	return m, cmd, true
}

// handleImport restores the newest plain export in the reports directory.
func handleImport(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	path, ok := util.LatestFile(m.reportsDir, config.ExportPrefix)
	if !ok {
		cmd := m.showError(m.lang.T(i18n.MsgNothingToImport))
		return m, cmd, true
	}
	export, err := report.ReadJSON(path, "")
	if err == nil {
		err = m.store.ImportAll(m.ctx, export)
	}
	if err != nil {
		if errors.Is(err, report.ErrPassphraseRequired) {
			util.Debugf("import %s needs a passphrase; use the import command", path)
		}
		cmd := m.saveFailed("Import", err)
		return m, cmd, true
	}
	m.loadAll()
	cmd := m.showToast(m.lang.Tf(i18n.MsgImported, map[string]interface{}{"Path": path}))
	return m, cmd, true
}

func (m MainModel) soundLabel(s models.Sound) string {
	switch s {
	case models.SoundBell:
		return m.lang.T(i18n.MsgSoundBell)
	case models.SoundChime:
		return m.lang.T(i18n.MsgSoundChime)
	case models.SoundDing:
		return m.lang.T(i18n.MsgSoundDing)
	default:
		return m.lang.T(i18n.MsgSoundNone)
	}
}

func (m MainModel) renderSettings() string {
	var b strings.Builder
	var sounds []string
	for _, s := range models.Sounds {
		label := m.soundLabel(s)
		if s == m.settings.Sound {
			sounds = append(sounds, m.theme.Focused.Render("["+label+"]"))
		} else {
			sounds = append(sounds, m.theme.Dim.Render(" "+label+" "))
		}
	}
	fmt.Fprintf(&b, "%s  %s\n\n", padRight(m.lang.T(i18n.MsgSound), 12), strings.Join(sounds, " "))

	vibration := m.lang.T(i18n.MsgOff)
	if m.settings.Vibration {
		vibration = m.lang.T(i18n.MsgOn)
	}
	fmt.Fprintf(&b, "%s  %s\n\n", padRight(m.lang.T(i18n.MsgVibration), 12), m.theme.Focused.Render(vibration))
	b.WriteString(m.theme.Dim.Render(m.reportsDir))
	b.WriteString("\n")
	return b.String()
}
