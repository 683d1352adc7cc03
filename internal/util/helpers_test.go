package util

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		v, min, max, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.min, c.max); got != c.want {
			t.Fatalf("Clamp(%d, %d, %d) = %d, want %d", c.v, c.min, c.max, got, c.want)
		}
	}
}

func TestCycleWraps(t *testing.T) {
	opts := []string{"a", "b", "c"}
	if got := Cycle(opts, "c", 1); got != "a" {
		t.Fatalf("expected wrap to a, got %q", got)
	}
	if got := Cycle(opts, "a", -1); got != "c" {
		t.Fatalf("expected wrap back to c, got %q", got)
	}
	if got := Cycle(opts, "zzz", 1); got != "a" {
		t.Fatalf("expected unknown to yield first option, got %q", got)
	}
	if got := Cycle([]string(nil), "a", 1); got != "" {
		t.Fatalf("expected zero value for empty options, got %q", got)
	}
}
