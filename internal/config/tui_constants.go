package config

import "time"

// Layout constants.
const (
	// ProgressWidth is the preferred width of the timer progress bar.
	ProgressWidth = 40

	// MinProgressWidth is the narrowest the progress bar gets.
	MinProgressWidth = 10

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// MenuWidth is the width of the side menu.
	MenuWidth = 24

	// ChartBarWidth is the widest a stats bar is drawn.
	ChartBarWidth = 30
)

// Display limits.
const (
	// MaxVisibleTasks limits task rows shown before scrolling.
	MaxVisibleTasks = 12

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."

	// DefaultToastDuration is how long a confirmation stays on screen.
	DefaultToastDuration = 3 * time.Second
)

// Input constraints.
const (
	// MaxTaskNameLength is the maximum task name length.
	MaxTaskNameLength = 100

	// MaxCategoryLength is the maximum category name length.
	MaxCategoryLength = 20
)
