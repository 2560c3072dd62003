package testutil

import (
	"testing"
	"time"

	"github.com/joaopnk/ignite-timer/internal/models"
)

func TestCycleBuilderDefaultsActive(t *testing.T) {
	c := NewCycle().Build()
	if !c.IsActive() || c.Task == "" || c.MinutesAmount != 25 {
		t.Fatalf("unexpected default cycle: %+v", c)
	}
}

func TestCycleBuilderTerminalStates(t *testing.T) {
	start := time.Date(2024, 2, 2, 8, 0, 0, 0, time.UTC)
	c := NewCycle().StartedAt(start).InterruptedAfter(time.Minute).Build()
	if at, ok := c.InterruptedDate(); !ok || !at.Equal(start.Add(time.Minute)) {
		t.Fatalf("InterruptedDate = %v, %v", at, ok)
	}
	c = NewCycle().WithMinutes(5).StartedAt(start).FinishedAfter(5 * time.Minute).Build()
	if c.Status() != models.StatusFinished {
		t.Fatalf("Status = %q", c.Status())
	}
}
