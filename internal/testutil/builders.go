package testutil

import (
	"time"

	"github.com/joaopnk/ignite-timer/internal/models"
)

// CycleBuilder provides fluent API for creating test cycles.
type CycleBuilder struct {
	id        models.CycleID
	task      string
	minutes   int
	start     time.Time
	endStatus models.CycleStatus
	endAfter  time.Duration
}

func NewCycle() *CycleBuilder {
	return &CycleBuilder{
		id:      1,
		task:    "Test Task",
		minutes: 25,
		start:   time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *CycleBuilder) WithID(id models.CycleID) *CycleBuilder {
	b.id = id
	return b
}

func (b *CycleBuilder) WithTask(task string) *CycleBuilder {
	b.task = task
	return b
}

func (b *CycleBuilder) WithMinutes(m int) *CycleBuilder {
	b.minutes = m
	return b
}

func (b *CycleBuilder) StartedAt(t time.Time) *CycleBuilder {
	b.start = t
	return b
}

func (b *CycleBuilder) InterruptedAfter(d time.Duration) *CycleBuilder {
	b.endStatus = models.StatusInterrupted
	b.endAfter = d
	return b
}

func (b *CycleBuilder) FinishedAfter(d time.Duration) *CycleBuilder {
	b.endStatus = models.StatusFinished
	b.endAfter = d
	return b
}

func (b *CycleBuilder) Build() models.Cycle {
	c := models.NewCycle(b.id, b.task, b.minutes, b.start)
	switch b.endStatus {
	case models.StatusInterrupted:
		c, _ = c.Interrupt(b.start.Add(b.endAfter))
	case models.StatusFinished:
		c, _ = c.Finish(b.start.Add(b.endAfter))
	}
	return c
}
