package config

import "time"

// Timer durations.
const (
	WorkDuration  = 25 * time.Minute
	BreakDuration = 5 * time.Minute
	TickInterval  = time.Second
)

// Persisted keys. The names match the keys the data has always been stored under.
const (
	KeySettings      = "pomodoro-settings"
	KeyTasks         = "pomodoro-tasks"
	KeyCategories    = "pomodoro-categories"
	KeyTheme         = "pomodoro-theme"
	KeySchemaVersion = "schema_version"
)

// Application settings.
const (
	AppName        = "pomo"
	DBFileName     = "pomo.db"
	LogFileName    = "pomo.log"
	ConfigFileName = "config.yaml"
	ExportPrefix   = "pomo-export"
)

// Stats ranges.
const (
	RangeDay   = "day"
	RangeWeek  = "week"
	RangeMonth = "month"
)

// CategoryAll disables the stats category filter.
const CategoryAll = "all"
