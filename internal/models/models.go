package models

import (
	"errors"
	"time"
)

// ErrCycleEnded is returned when a terminal cycle is asked to transition again.
var ErrCycleEnded = errors.New("cycle already ended")

// CycleID identifies a cycle within a store. IDs grow with creation order.
type CycleID int64

// CycleStatus enumerates the possible states of a work cycle.
type CycleStatus string

const (
	StatusActive      CycleStatus = "active"
	StatusInterrupted CycleStatus = "interrupted"
	StatusFinished    CycleStatus = "finished"
)

// IsTerminal reports whether no further transition is allowed.
func (s CycleStatus) IsTerminal() bool {
	return s == StatusInterrupted || s == StatusFinished
}

// Display returns a human-readable representation of the status.
func (s CycleStatus) Display() string {
	switch s {
	case StatusActive:
		return "In progress"
	case StatusInterrupted:
		return "Interrupted"
	case StatusFinished:
		return "Finished"
	default:
		return string(s)
	}
}

// Cycle represents one timed work session.
//
// Task, MinutesAmount and StartDate are fixed at creation. The status and the
// single end timestamp change once, through Interrupt or Finish.
type Cycle struct {
	ID            CycleID
	Task          string
	MinutesAmount int
	StartDate     time.Time

	status  CycleStatus
	endedAt time.Time
}

// NewCycle returns an active cycle started at start.
func NewCycle(id CycleID, task string, minutes int, start time.Time) Cycle {
	return Cycle{
		ID:            id,
		Task:          task,
		MinutesAmount: minutes,
		StartDate:     start,
		status:        StatusActive,
	}
}

// Status returns the cycle state. The zero Cycle reports active.
func (c Cycle) Status() CycleStatus {
	if c.status == "" {
		return StatusActive
	}
	return c.status
}

// IsActive reports whether the cycle is still counting down.
func (c Cycle) IsActive() bool {
	return c.Status() == StatusActive
}

// TotalSeconds is the target duration in seconds.
func (c Cycle) TotalSeconds() int {
	return c.MinutesAmount * 60
}

// InterruptedDate returns when the cycle was interrupted, if it was.
func (c Cycle) InterruptedDate() (time.Time, bool) {
	if c.status != StatusInterrupted {
		return time.Time{}, false
	}
	return c.endedAt, true
}

// FinishedDate returns when the cycle reached its target, if it did.
func (c Cycle) FinishedDate() (time.Time, bool) {
	if c.status != StatusFinished {
		return time.Time{}, false
	}
	return c.endedAt, true
}

// EndedAt returns the terminal timestamp regardless of how the cycle ended.
func (c Cycle) EndedAt() (time.Time, bool) {
	if !c.Status().IsTerminal() {
		return time.Time{}, false
	}
	return c.endedAt, true
}

// Interrupt returns a copy of c marked interrupted at at.
func (c Cycle) Interrupt(at time.Time) (Cycle, error) {
	return c.end(StatusInterrupted, at)
}

// Finish returns a copy of c marked finished at at.
func (c Cycle) Finish(at time.Time) (Cycle, error) {
	return c.end(StatusFinished, at)
}

func (c Cycle) end(status CycleStatus, at time.Time) (Cycle, error) {
	if c.Status().IsTerminal() {
		return c, ErrCycleEnded
	}
	c.status = status
	c.endedAt = at
	return c, nil
}
