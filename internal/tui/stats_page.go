package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/i18n"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/stats"
	"github.com/akyairhashvil/pomo/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// StatsState is the statistics page selection and the data behind it.
type StatsState struct {
	Range    stats.Range
	Category string
	records  []models.SessionRecord
	err      error
}

func NewStatsState() StatsState {
	return StatsState{Range: stats.Week, Category: config.CategoryAll}
}

// refreshStats reloads the session log back to the widest range.
func (m *MainModel) refreshStats() {
	records, err := m.store.ListSessions(m.ctx, stats.Since(stats.Month, m.now()))
	m.stats.err = err
	if err != nil {
		util.LogError("Load sessions", err)
		return
	}
	m.stats.records = records
}

// categoryOptions is "all" followed by every known category.
func (m MainModel) categoryOptions() []string {
	opts := []string{config.CategoryAll}
	for _, c := range m.categories {
		opts, _ = util.AppendUnique(opts, c)
	}
	for _, c := range stats.Categories(m.stats.records) {
		opts, _ = util.AppendUnique(opts, c)
	}
	return opts
}

func (m MainModel) statsBuckets() []stats.Bucket {
	return stats.Aggregate(m.stats.records, m.stats.Range, m.now(), m.stats.Category)
}

func handleStatsRange(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	switch key {
	case "d":
		m.stats.Range = stats.Day
	case "w":
		m.stats.Range = stats.Week
	case "m":
		m.stats.Range = stats.Month
	}
	return m, nil, true
}

func handleStatsCategory(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.stats.Category = util.Cycle(m.categoryOptions(), m.stats.Category, 1)
	return m, nil, true
}

func (m MainModel) rangeLabel(r stats.Range) string {
	switch r {
	case stats.Day:
		return m.lang.T(i18n.MsgDay)
	case stats.Month:
		return m.lang.T(i18n.MsgMonth)
	default:
		return m.lang.T(i18n.MsgWeek)
	}
}

func (m MainModel) renderStats(width int) string {
	var b strings.Builder

	var ranges []string
	for _, r := range stats.Ranges {
		label := m.rangeLabel(r)
		if r == m.stats.Range {
			ranges = append(ranges, m.theme.Focused.Render("["+label+"]"))
		} else {
			ranges = append(ranges, m.theme.Dim.Render(" "+label+" "))
		}
	}
	category := m.lang.T(i18n.MsgAll)
	if m.stats.Category != config.CategoryAll {
		category = m.categoryLabel(m.stats.Category)
	}
	fmt.Fprintf(&b, "%s: %s   %s: %s\n\n",
		m.lang.T(i18n.MsgRange), strings.Join(ranges, " "),
		m.lang.T(i18n.MsgCategory), m.theme.Focused.Render(category))

	if m.stats.err != nil {
		b.WriteString(m.theme.ToastError.Render(errorText(m.stats.err)))
		return b.String()
	}

	buckets := m.statsBuckets()
	count, minutes := stats.Summary(buckets)
	if count == 0 {
		b.WriteString(m.theme.Dim.Render(m.lang.T(i18n.MsgNoSessions)))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderBarChart(buckets, width))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Header.Render(m.lang.T(i18n.MsgTotal) + ": " +
		m.lang.Tf(i18n.MsgSessionsMinutes, map[string]interface{}{"Count": count, "Minutes": minutes})))
	b.WriteString("\n")

	totals := stats.CategoryTotals(m.stats.records, m.stats.Range, m.now(), m.stats.Category)
	if len(totals) > 0 {
		b.WriteString("\n")
		b.WriteString(m.theme.Header.Render(m.lang.T(i18n.MsgDistribution)))
		b.WriteString("\n")
		for _, t := range totals {
			share := float64(t.Count) / float64(count)
			bar := strings.Repeat("■", int(share*float64(config.ChartBarWidth)/2+0.5))
			fmt.Fprintf(&b, "%s %s %s\n",
				padRight(truncateLabel(m.categoryLabel(t.Name), 12), 12),
				m.theme.Break.Render(bar),
				m.theme.Dim.Render(fmt.Sprintf("%d (%.0f%%)", t.Count, share*100)))
		}
	}
	return b.String()
}

func (m MainModel) renderBarChart(buckets []stats.Bucket, width int) string {
	maxCount := 0
	labelWidth := 0
	for _, bk := range buckets {
		if bk.Count > maxCount {
			maxCount = bk.Count
		}
		if len(bk.Label) > labelWidth {
			labelWidth = len(bk.Label)
		}
	}
	barWidth := config.ChartBarWidth
	if width > 0 && width < config.CompactModeThreshold {
		barWidth = util.Clamp(width-labelWidth-12, 5, config.ChartBarWidth)
	}
	var b strings.Builder
	for _, bk := range buckets {
		n := 0
		if maxCount > 0 {
			n = bk.Count * barWidth / maxCount
		}
		if bk.Count > 0 && n == 0 {
			n = 1
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			m.theme.Dim.Render(fmt.Sprintf("%*s", labelWidth, bk.Label)),
			m.theme.Work.Render(strings.Repeat("█", n)),
			m.theme.Dim.Render(fmt.Sprintf("%d", bk.Count)))
	}
	return b.String()
}
