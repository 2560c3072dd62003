package cycle

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/joaopnk/ignite-timer/internal/config"
)

// Request is a creation request coming from the new-cycle form.
type Request struct {
	Task          string
	MinutesAmount int
}

// ValidateRequest checks the task label and duration bounds.
func ValidateRequest(r Request) error {
	task := strings.TrimSpace(r.Task)
	if task == "" {
		return &ValidationError{Field: "task", Value: r.Task, Reason: "inform the task"}
	}
	if utf8.RuneCountInString(task) > config.MaxTaskLength {
		return &ValidationError{
			Field:  "task",
			Value:  r.Task,
			Reason: fmt.Sprintf("must be at most %d characters", config.MaxTaskLength),
		}
	}
	if r.MinutesAmount < config.MinCycleMinutes || r.MinutesAmount > config.MaxCycleMinutes {
		return &ValidationError{
			Field:  "minutesAmount",
			Value:  r.MinutesAmount,
			Reason: fmt.Sprintf("must be between %d and %d minutes", config.MinCycleMinutes, config.MaxCycleMinutes),
		}
	}
	return nil
}
