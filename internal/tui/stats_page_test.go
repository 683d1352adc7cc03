package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/i18n"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/stats"
	"github.com/akyairhashvil/pomo/internal/testutil"
)

func seedSessions(t *testing.T, store Store, recs ...models.SessionRecord) {
	t.Helper()
	for _, rec := range recs {
		if _, err := store.RecordSession(context.Background(), rec); err != nil {
			t.Fatalf("RecordSession failed: %v", err)
		}
	}
}

func TestStatsRangeAndCategory(t *testing.T) {
	db := setupModelDB(t)
	m, _, clock := newTestModel(t, db)
	seedSessions(t, db,
		testutil.NewSession().WithCategory("Study").EndedAt(clock.now.Add(-time.Hour)).Build(),
		testutil.NewSession().WithCategory("Work").EndedAt(clock.now.Add(-2*time.Hour)).Build(),
		testutil.NewSession().WithCategory("Work").EndedAt(clock.now.Add(-3*24*time.Hour)).Build(),
		testutil.NewSession().WithKind(models.SessionBreak).EndedAt(clock.now.Add(-time.Hour)).Build(),
	)

	m, _ = press(t, m, keyRunes("3"))
	if m.page != PageStats {
		t.Fatalf("expected stats page, got %v", m.page)
	}
	if len(m.stats.records) != 4 {
		t.Fatalf("expected stats to load on navigation, got %d", len(m.stats.records))
	}

	m, _ = press(t, m, keyRunes("d"))
	if m.stats.Range != stats.Day {
		t.Fatalf("expected day range")
	}
	if count, _ := stats.Summary(m.statsBuckets()); count != 2 {
		t.Fatalf("expected two work sessions today, got %d", count)
	}

	m, _ = press(t, m, keyRunes("m"))
	if count, minutes := stats.Summary(m.statsBuckets()); count != 3 || minutes != 75 {
		t.Fatalf("expected 3 sessions and 75 minutes this month, got %d and %d", count, minutes)
	}

	m, _ = press(t, m, keyRunes("c"))
	if m.stats.Category != "Work" {
		t.Fatalf("expected Work after first cycle, got %q", m.stats.Category)
	}
	if count, _ := stats.Summary(m.statsBuckets()); count != 2 {
		t.Fatalf("expected two Work sessions, got %d", count)
	}
	for i := 0; i < len(m.categoryOptions())-1; i++ {
		m, _ = press(t, m, keyRunes("c"))
	}
	if m.stats.Category != config.CategoryAll {
		t.Fatalf("expected category cycle to wrap to all, got %q", m.stats.Category)
	}

	view := m.renderStats(100)
	if !containsAll(view, "Total", "Study", "Work") {
		t.Fatalf("expected totals and distribution, got %q", view)
	}
}

func TestStatsEmptyView(t *testing.T) {
	db := setupModelDB(t)
	m, _, _ := newTestModel(t, db)
	m, _ = press(t, m, keyRunes("3"))
	if !strings.Contains(m.renderStats(80), m.lang.T(i18n.MsgNoSessions)) {
		t.Fatalf("expected empty state message")
	}
}

func TestStatsPDFWritesReport(t *testing.T) {
	db := setupModelDB(t)
	m, _, clock := newTestModel(t, db)
	seedSessions(t, db, testutil.NewSession().WithCategory("Study").EndedAt(clock.now.Add(-time.Hour)).Build())
	m, _ = press(t, m, keyRunes("3"))
	m, cmd := press(t, m, keyRunes("p"))
	if cmd == nil || m.toast.isErr {
		t.Fatalf("expected success toast, got %q", m.toast.text)
	}
	matches, err := filepath.Glob(filepath.Join(m.reportsDir, config.AppName+"-stats-*.pdf"))
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected one pdf report, got %v", matches)
	}
	info, err := os.Stat(matches[0])
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty pdf")
	}
}
