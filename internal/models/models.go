package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/google/uuid"
)

// ErrInvalid marks a value that fails validation.
var ErrInvalid = errors.New("invalid value")

// Sound enumerates the completion alert sounds.
type Sound string

const (
	SoundBell  Sound = "bell"
	SoundChime Sound = "chime"
	SoundDing  Sound = "ding"
	SoundNone  Sound = "none"
)

// Sounds lists the selectable sounds in display order.
var Sounds = []Sound{SoundBell, SoundChime, SoundDing, SoundNone}

func (s Sound) Valid() bool {
	switch s {
	case SoundBell, SoundChime, SoundDing, SoundNone:
		return true
	}
	return false
}

// Priority ranks a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists priorities from most to least urgent.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ThemeName selects the colour scheme.
type ThemeName string

const (
	ThemeLight ThemeName = "light"
	ThemeDark  ThemeName = "dark"
)

func (t ThemeName) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle flips between light and dark.
func (t ThemeName) Toggle() ThemeName {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Settings holds the user's alert preferences.
type Settings struct {
	Sound     Sound `json:"sound"`
	Vibration bool  `json:"vibration"`
}

func DefaultSettings() Settings {
	return Settings{Sound: SoundBell, Vibration: true}
}

func (s Settings) Validate() error {
	if !s.Sound.Valid() {
		return fmt.Errorf("%w: sound %q", ErrInvalid, s.Sound)
	}
	return nil
}

// DefaultCategories seeds the category picker.
var DefaultCategories = []string{"Work", "Study", "Life"}

// Task is a named unit of focused work.
type Task struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Priority  Priority  `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewTask builds a task with a fresh id and creation time.
func NewTask(name, category string, priority Priority) Task {
	return Task{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Category:  strings.TrimSpace(category),
		Priority:  priority,
		CreatedAt: time.Now(),
	}
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: task id is empty", ErrInvalid)
	}
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return fmt.Errorf("%w: task name is empty", ErrInvalid)
	}
	if len([]rune(name)) > config.MaxTaskNameLength {
		return fmt.Errorf("%w: task name longer than %d", ErrInvalid, config.MaxTaskNameLength)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: priority %q", ErrInvalid, t.Priority)
	}
	return nil
}

// Session kinds mirror the timer phases.
const (
	SessionWork  = "work"
	SessionBreak = "break"
)

// SessionRecord is one completed timer phase.
type SessionRecord struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	TaskID    string    `json:"task_id,omitempty"`
	TaskName  string    `json:"task_name,omitempty"`
	Category  string    `json:"category,omitempty"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	Seconds   int       `json:"seconds"`
}
