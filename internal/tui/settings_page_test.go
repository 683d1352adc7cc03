package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/i18n"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/report"
	"github.com/akyairhashvil/pomo/internal/testutil"
)

func TestCycleSoundPersists(t *testing.T) {
	db := setupModelDB(t)
	m, _, _ := newTestModel(t, db)
	m, _ = press(t, m, keyRunes("4"))
	if m.page != PageSettings {
		t.Fatalf("expected settings page, got %v", m.page)
	}
	m, _ = press(t, m, keyRunes("s"))
	if m.settings.Sound != models.SoundChime {
		t.Fatalf("expected chime, got %q", m.settings.Sound)
	}
	stored, err := db.LoadSettings(context.Background())
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if stored.Sound != models.SoundChime {
		t.Fatalf("expected stored chime, got %q", stored.Sound)
	}
	for i := 0; i < len(models.Sounds)-1; i++ {
		m, _ = press(t, m, keyRunes("s"))
	}
	if m.settings.Sound != models.SoundBell {
		t.Fatalf("expected sound cycle to wrap to bell, got %q", m.settings.Sound)
	}
}

func TestToggleVibrationPersists(t *testing.T) {
	db := setupModelDB(t)
	m, _, _ := newTestModel(t, db)
	m, _ = press(t, m, keyRunes("4"))
	m, _ = press(t, m, keyRunes("v"))
	if m.settings.Vibration {
		t.Fatalf("expected vibration off")
	}
	if m.toast.text != m.lang.T(i18n.MsgSettingsSaved) {
		t.Fatalf("expected saved toast, got %q", m.toast.text)
	}
	again, _, _ := newTestModel(t, db)
	if again.settings.Vibration {
		t.Fatalf("expected vibration setting to survive restart")
	}
}

func TestExportThenImportRestoresTasks(t *testing.T) {
	db := setupModelDB(t)
	ctx := context.Background()
	task := testutil.NewTask().WithName("Backed up").Build()
	seedTasks(t, db, task)
	m, _, clock := newTestModel(t, db)
	m, _ = press(t, m, keyRunes("4"))

	m, _ = press(t, m, keyRunes("x"))
	if m.toast.isErr {
		t.Fatalf("export failed: %s", m.toast.text)
	}
	matches, err := filepath.Glob(filepath.Join(m.reportsDir, config.ExportPrefix+"-*.json"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one export file, got %v (%v)", matches, err)
	}
	export, err := report.ReadJSON(matches[0], "")
	if err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if len(export.Tasks) != 1 || export.Tasks[0].ID != task.ID {
		t.Fatalf("unexpected exported tasks %+v", export.Tasks)
	}

	if err := db.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	clock.now = clock.now.Add(time.Minute)
	m, _ = press(t, m, keyRunes("i"))
	if m.toast.isErr {
		t.Fatalf("import failed: %s", m.toast.text)
	}
	if len(m.tasks) != 1 || m.tasks[0].ID != task.ID {
		t.Fatalf("expected task restored in model, got %+v", m.tasks)
	}
	if _, err := db.GetTask(ctx, task.ID); err != nil {
		t.Fatalf("expected task restored in store: %v", err)
	}
}

func TestImportWithoutExportShowsError(t *testing.T) {
	db := setupModelDB(t)
	m, _, _ := newTestModel(t, db)
	m, _ = press(t, m, keyRunes("4"))
	m, _ = press(t, m, keyRunes("i"))
	if !m.toast.isErr || m.toast.text != m.lang.T(i18n.MsgNothingToImport) {
		t.Fatalf("expected nothing to import error, got %q", m.toast.text)
	}
}

func TestImportEncryptedExportNeedsPassphrase(t *testing.T) {
	db := setupModelDB(t)
	m, _, clock := newTestModel(t, db)
	export, err := db.ExportAll(context.Background())
	if err != nil {
		t.Fatalf("ExportAll failed: %v", err)
	}
	path := filepath.Join(m.reportsDir, report.FileName(config.ExportPrefix, "json", clock.now))
	if err := report.WriteJSON(path, export, "correct horse battery"); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	m, _ = press(t, m, keyRunes("4"))
	m, _ = press(t, m, keyRunes("i"))
	if !m.toast.isErr {
		t.Fatalf("expected error toast for encrypted export")
	}
}

func TestRenderSettingsShowsValues(t *testing.T) {
	db := setupModelDB(t)
	m, _, _ := newTestModel(t, db)
	view := m.renderSettings()
	if !containsAll(view, m.lang.T(i18n.MsgSoundBell), m.lang.T(i18n.MsgOn), m.reportsDir) {
		t.Fatalf("unexpected settings view %q", view)
	}
}
