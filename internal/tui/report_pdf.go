package tui

import (
	"path/filepath"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/i18n"
	"github.com/akyairhashvil/pomo/internal/report"
	"github.com/akyairhashvil/pomo/internal/stats"
	tea "github.com/charmbracelet/bubbletea"
)

func handleStatsPDF(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	now := m.now()
	path := filepath.Join(m.reportsDir, report.FileName(config.AppName+"-stats", "pdf", now))
	err := report.WriteStatsPDF(path, report.Stats{
		Title:       i18n.New("en").T(i18n.MsgReportTitle),
		Range:       m.stats.Range,
		Category:    m.stats.Category,
		GeneratedAt: now,
		Buckets:     m.statsBuckets(),
		Totals:      stats.CategoryTotals(m.stats.records, m.stats.Range, now, m.stats.Category),
	})
	if err != nil {
		cmd := m.saveFailed("Write PDF report", err)
		return m, cmd, true
	}
	cmd := m.showToast(m.lang.Tf(i18n.MsgExported, map[string]interface{}{"Path": path}))
	return m, cmd, true
}
