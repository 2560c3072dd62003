package cycle

import (
	"errors"
	"testing"
	"time"

	"github.com/joaopnk/ignite-timer/internal/models"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)}
	return NewStore(WithClock(clock.Now)), clock
}

func TestCreateSetsActiveCycle(t *testing.T) {
	for _, minutes := range []int{5, 25, 60} {
		s, clock := newTestStore(t)
		created, err := s.Create("Write docs", minutes)
		if err != nil {
			t.Fatalf("Create(%d) failed: %v", minutes, err)
		}
		active, ok := s.ActiveCycle()
		if !ok {
			t.Fatalf("expected an active cycle")
		}
		if active.ID != created.ID || active.Task != "Write docs" || active.MinutesAmount != minutes {
			t.Fatalf("unexpected active cycle: %+v", active)
		}
		if !active.StartDate.Equal(clock.Now()) {
			t.Fatalf("StartDate = %v, want %v", active.StartDate, clock.Now())
		}
		if active.Status() != models.StatusActive {
			t.Fatalf("Status = %q", active.Status())
		}
	}
}

func TestCreateTrimsTask(t *testing.T) {
	s, _ := newTestStore(t)
	c, err := s.Create("  Project 01 ", 25)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if c.Task != "Project 01" {
		t.Fatalf("Task = %q", c.Task)
	}
}

func TestCreateWhileActiveFails(t *testing.T) {
	s, _ := newTestStore(t)
	first, err := s.Create("First", 25)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = s.Create("Second", 30)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if !errors.Is(err, ErrCycleActive) {
		t.Fatalf("expected ErrCycleActive cause, got %v", err)
	}
	var stateErr *InvalidStateError
	if !errors.As(err, &stateErr) || stateErr.Op != "create" || stateErr.CycleID != first.ID {
		t.Fatalf("unexpected error detail: %#v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	active, _ := s.ActiveCycle()
	if active.ID != first.ID {
		t.Fatalf("active cycle replaced")
	}
}

func TestCreateRejectsInvalidRequests(t *testing.T) {
	tests := []struct {
		name    string
		task    string
		minutes int
		field   string
	}{
		{"empty task", "", 25, "task"},
		{"blank task", "   ", 25, "task"},
		{"below minimum", "Task", 4, "minutesAmount"},
		{"above maximum", "Task", 61, "minutesAmount"},
		{"zero minutes", "Task", 0, "minutesAmount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore(t)
			_, err := s.Create(tt.task, tt.minutes)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) || vErr.Field != tt.field {
				t.Fatalf("unexpected validation error: %#v", err)
			}
			if s.Len() != 0 {
				t.Fatalf("store mutated on invalid request")
			}
		})
	}
}

func TestInterruptClearsActive(t *testing.T) {
	s, clock := newTestStore(t)
	if _, err := s.Create("Focus", 25); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	clock.Advance(3 * time.Minute)
	if err := s.Interrupt(); err != nil {
		t.Fatalf("Interrupt failed: %v", err)
	}
	if _, ok := s.ActiveCycle(); ok {
		t.Fatalf("expected no active cycle")
	}
	c := s.Cycles()[0]
	at, ok := c.InterruptedDate()
	if !ok || !at.Equal(clock.Now()) {
		t.Fatalf("InterruptedDate = %v, %v", at, ok)
	}
	if _, ok := c.FinishedDate(); ok {
		t.Fatalf("interrupted cycle must not be finished")
	}
}

func TestFinishSetsFinishedDate(t *testing.T) {
	s, clock := newTestStore(t)
	if _, err := s.Create("Focus", 5); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	clock.Advance(5 * time.Minute)
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	c := s.Cycles()[0]
	at, ok := c.FinishedDate()
	if !ok || !at.Equal(clock.Now()) {
		t.Fatalf("FinishedDate = %v, %v", at, ok)
	}
}

func TestInterruptAndFinishWithoutActive(t *testing.T) {
	s, _ := newTestStore(t)
	for name, op := range map[string]func() error{"interrupt": s.Interrupt, "finish": s.Finish} {
		err := op()
		if !errors.Is(err, ErrInvalidState) || !errors.Is(err, ErrNoActiveCycle) {
			t.Fatalf("%s: expected ErrNoActiveCycle, got %v", name, err)
		}
	}
	if s.Len() != 0 {
		t.Fatalf("store mutated")
	}
}

func TestFinishAfterInterruptFails(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.Create("Focus", 5); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := s.Interrupt(); err != nil {
		t.Fatalf("Interrupt failed: %v", err)
	}
	if err := s.Finish(); !errors.Is(err, ErrNoActiveCycle) {
		t.Fatalf("expected ErrNoActiveCycle, got %v", err)
	}
	if _, ok := s.Cycles()[0].FinishedDate(); ok {
		t.Fatalf("interrupted cycle gained a finished date")
	}
}

func TestInterruptThenCreateKeepsHistory(t *testing.T) {
	s, clock := newTestStore(t)
	first, err := s.Create("First", 25)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	clock.Advance(time.Minute)
	if err := s.Interrupt(); err != nil {
		t.Fatalf("Interrupt failed: %v", err)
	}
	interruptedAt := clock.Now()

	clock.Advance(time.Minute)
	second, err := s.Create("Second", 10)
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}
	if second.ID <= first.ID {
		t.Fatalf("expected increasing IDs, got %d then %d", first.ID, second.ID)
	}

	history := s.Cycles()
	if len(history) != 2 {
		t.Fatalf("len(history) = %d", len(history))
	}
	at, ok := history[0].InterruptedDate()
	if !ok || !at.Equal(interruptedAt) {
		t.Fatalf("first cycle interrupted date altered: %v, %v", at, ok)
	}
	if history[0].Task != "First" || history[0].MinutesAmount != 25 || !history[0].StartDate.Equal(first.StartDate) {
		t.Fatalf("first cycle creation fields altered: %+v", history[0])
	}
	active, _ := s.ActiveCycle()
	if active.ID != second.ID {
		t.Fatalf("second cycle not active")
	}
}

func TestCyclesReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.Create("Focus", 25); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	history := s.Cycles()
	history[0].Task = "changed"
	if s.Cycles()[0].Task != "Focus" {
		t.Fatalf("Cycles exposed internal storage")
	}
}

func TestStalePointerReadsAsNone(t *testing.T) {
	s, _ := newTestStore(t)
	s.activeID = 42
	if _, ok := s.ActiveCycle(); ok {
		t.Fatalf("expected stale pointer to read as no active cycle")
	}
	if _, err := s.Create("Focus", 25); err != nil {
		t.Fatalf("Create should succeed over stale pointer: %v", err)
	}
}

func TestSubscribeReceivesEvents(t *testing.T) {
	s, _ := newTestStore(t)
	var kinds []EventKind
	unsubscribe := s.Subscribe(func(ev Event) { kinds = append(kinds, ev.Kind) })

	if _, err := s.Create("Focus", 25); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := s.Interrupt(); err != nil {
		t.Fatalf("Interrupt failed: %v", err)
	}
	if _, err := s.Create("Again", 25); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	want := []EventKind{EventCreated, EventInterrupted, EventCreated, EventFinished}
	if len(kinds) != len(want) {
		t.Fatalf("events = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("events = %v, want %v", kinds, want)
		}
	}

	unsubscribe()
	if _, err := s.Create("Quiet", 25); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(kinds) != len(want) {
		t.Fatalf("unsubscribed handler still called")
	}
}

func TestFailedCallsPublishNothing(t *testing.T) {
	s, _ := newTestStore(t)
	calls := 0
	s.Subscribe(func(Event) { calls++ })
	_ = s.Interrupt()
	_, _ = s.Create("", 25)
	if calls != 0 {
		t.Fatalf("expected no events, got %d", calls)
	}
}

func TestErrorMessages(t *testing.T) {
	err := invalidState("create", 3, ErrCycleActive)
	if got := err.Error(); got != "create cycle 3: a cycle is already active" {
		t.Fatalf("Error() = %q", got)
	}
	err = invalidState("finish", 0, ErrNoActiveCycle)
	if got := err.Error(); got != "finish cycle: no active cycle" {
		t.Fatalf("Error() = %q", got)
	}
	vErr := &ValidationError{Field: "task", Reason: "inform the task"}
	if got := vErr.Error(); got != "task: inform the task" {
		t.Fatalf("Error() = %q", got)
	}
}
