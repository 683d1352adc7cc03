package models

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Sound != SoundBell || !s.Vibration {
		t.Fatalf("unexpected defaults %+v", s)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if err := (Settings{Sound: "trumpet"}).Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestNewTaskValidates(t *testing.T) {
	task := NewTask("  Write report ", "Work", PriorityHigh)
	if task.ID == "" {
		t.Fatalf("expected generated id")
	}
	if task.Name != "Write report" {
		t.Fatalf("expected trimmed name, got %q", task.Name)
	}
	if task.CreatedAt.IsZero() {
		t.Fatalf("expected creation time")
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if other := NewTask("x", "", PriorityLow); other.ID == task.ID {
		t.Fatalf("expected unique ids")
	}
}

func TestTaskValidateRejects(t *testing.T) {
	cases := map[string]Task{
		"no id":        {Name: "a", Priority: PriorityLow},
		"blank name":   {ID: "1", Name: "  ", Priority: PriorityLow},
		"bad priority": {ID: "1", Name: "a", Priority: "urgent"},
		"long name":    {ID: "1", Name: strings.Repeat("x", 101), Priority: PriorityLow},
	}
	for name, task := range cases {
		if err := task.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
}

func TestThemeToggle(t *testing.T) {
	if ThemeLight.Toggle() != ThemeDark || ThemeDark.Toggle() != ThemeLight {
		t.Fatalf("toggle should flip themes")
	}
	if ThemeName("blue").Valid() {
		t.Fatalf("unknown theme should be invalid")
	}
}
