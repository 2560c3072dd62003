// Package report summarizes cycle history and renders it as a PDF.
package report

import (
	"fmt"
	"time"

	"github.com/joaopnk/ignite-timer/internal/models"
)

// Summary aggregates a cycle history.
type Summary struct {
	Total       int
	Finished    int
	Interrupted int
	Active      int
	Focused     time.Duration
}

// Summarize counts cycles by status. Focused time counts finished cycles at
// their full duration and interrupted cycles up to the interruption.
func Summarize(cycles []models.Cycle) Summary {
	var s Summary
	for _, c := range cycles {
		s.Total++
		switch c.Status() {
		case models.StatusFinished:
			s.Finished++
			s.Focused += time.Duration(c.TotalSeconds()) * time.Second
		case models.StatusInterrupted:
			s.Interrupted++
			if at, ok := c.InterruptedDate(); ok && at.After(c.StartDate) {
				s.Focused += at.Sub(c.StartDate).Truncate(time.Second)
			}
		default:
			s.Active++
		}
	}
	return s
}

// String renders a one-line summary.
func (s Summary) String() string {
	if s.Total == 0 {
		return "No cycles yet"
	}
	return fmt.Sprintf("%d finished · %d interrupted · %s focused",
		s.Finished, s.Interrupted, FormatDuration(s.Focused))
}

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}
