package util

import "testing"

func TestAppendUnique(t *testing.T) {
	list := []string{"Work", "Study"}
	list, changed := AppendUnique(list, "  work ")
	if changed || len(list) != 2 {
		t.Fatalf("expected duplicate to be ignored, got %v", list)
	}
	list, changed = AppendUnique(list, "Side   project")
	if !changed || list[2] != "Side project" {
		t.Fatalf("expected normalized append, got %v", list)
	}
	if _, changed := AppendUnique(list, "   "); changed {
		t.Fatalf("expected blank label to be ignored")
	}
}

func TestCycle(t *testing.T) {
	opts := []string{"a", "b", "c"}
	if got := Cycle(opts, "c", 1); got != "a" {
		t.Fatalf("expected wrap to a, got %q", got)
	}
	if got := Cycle(opts, "a", -1); got != "c" {
		t.Fatalf("expected wrap back to c, got %q", got)
	}
	if got := Cycle(opts, "zzz", 1); got != "a" {
		t.Fatalf("expected unknown to reset, got %q", got)
	}
}
