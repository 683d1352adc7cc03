package config

import "testing"

func TestConstants(t *testing.T) {
	if WorkDuration.Seconds() != 1500 {
		t.Fatalf("WorkDuration must be 1500s, got %v", WorkDuration)
	}
	if BreakDuration.Seconds() != 300 {
		t.Fatalf("BreakDuration must be 300s, got %v", BreakDuration)
	}
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" {
		t.Fatalf("DBFileName should not be empty")
	}
	if KeySettings != "pomodoro-settings" || KeyTasks != "pomodoro-tasks" {
		t.Fatalf("unexpected storage keys %q %q", KeySettings, KeyTasks)
	}
	if DefaultToastDuration <= 0 {
		t.Fatalf("DefaultToastDuration must be positive")
	}
}
