package config

// Layout constants.
const (
	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// TaskInputWidth is the width of the task text input.
	TaskInputWidth = 32

	// MinutesInputWidth is the width of the minutes text input.
	MinutesInputWidth = 4
)

// Display limits.
const (
	// MaxHistoryRows limits cycles shown in the history pane.
	MaxHistoryRows = 8

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxTaskLength is the maximum task label length.
	MaxTaskLength = 100

	// MaxMinutesDigits is the number of characters accepted by the minutes input.
	MaxMinutesDigits = 2
)
