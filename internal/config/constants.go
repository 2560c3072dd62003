package config

import "time"

// Cycle duration bounds, in minutes.
const (
	MinCycleMinutes     = 5
	MaxCycleMinutes     = 60
	MinutesStep         = 5
	DefaultCycleMinutes = 25
)

// TickInterval is how often the tracker re-derives elapsed time.
const TickInterval = time.Second

// Application settings.
const (
	AppName        = "ignite"
	ConfigFileName = "config.toml"
	LogFileName    = "ignite.log"
)

// Log levels accepted in configuration.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// DefaultTaskSuggestions are offered by the task input until configured otherwise.
var DefaultTaskSuggestions = []string{"Project 01", "Project 02", "Project 03"}
