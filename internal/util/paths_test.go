package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDirsHonourXDG(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DOCUMENTS_DIR", "$HOME/Docs")
	t.Setenv("HOME", root)

	if got := DataDir("pomo"); got != filepath.Join(root, "data", "pomo") {
		t.Fatalf("DataDir = %q", got)
	}
	if got := ConfigDir("pomo"); got != filepath.Join(root, "config", "pomo") {
		t.Fatalf("ConfigDir = %q", got)
	}
	if got := ReportsDir("pomo"); got != filepath.Join(root, "Docs", "POMO") {
		t.Fatalf("ReportsDir = %q", got)
	}
}

func TestDocumentsDirReadsUserDirs(t *testing.T) {
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_DOCUMENTS_DIR", "")
	if err := os.MkdirAll(filepath.Join(root, ".config"), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	body := "# written by xdg-user-dirs-update\nXDG_DOCUMENTS_DIR=\"$HOME/Papers\"\n"
	if err := os.WriteFile(filepath.Join(root, ".config", "user-dirs.dirs"), []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if got := DocumentsDir(); got != filepath.Join(root, "Papers") {
		t.Fatalf("DocumentsDir = %q", got)
	}
}

func TestLatestFile(t *testing.T) {
	dir := t.TempDir()
	if _, ok := LatestFile(dir, "pomo-export"); ok {
		t.Fatalf("expected nothing in empty dir")
	}
	old := filepath.Join(dir, "pomo-export-1.json")
	newer := filepath.Join(dir, "pomo-export-2.json")
	other := filepath.Join(dir, "notes.json")
	for _, p := range []string{old, newer, other} {
		if err := os.WriteFile(p, []byte("{}"), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}
	base := time.Now().Add(-time.Hour)
	if err := os.Chtimes(old, base, base); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}
	if err := os.Chtimes(newer, base.Add(time.Minute), base.Add(time.Minute)); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}
	if got, ok := LatestFile(dir, "pomo-export"); !ok || got != newer {
		t.Fatalf("LatestFile = %q, %v", got, ok)
	}
}
