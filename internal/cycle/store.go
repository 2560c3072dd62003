// Package cycle owns the cycle history and the active-cycle pointer.
package cycle

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joaopnk/ignite-timer/internal/models"
	"github.com/joaopnk/ignite-timer/internal/util"
)

// EventKind names a store mutation.
type EventKind int

const (
	EventCreated EventKind = iota
	EventInterrupted
	EventFinished
)

func (k EventKind) String() string {
	switch k {
	case EventCreated:
		return "created"
	case EventInterrupted:
		return "interrupted"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after a mutation has been applied.
type Event struct {
	Kind  EventKind
	Cycle models.Cycle
}

type subscriber struct {
	id int
	fn func(Event)
}

// Store is the single source of truth for cycles.
//
// The store is not safe for concurrent use. It is meant to be driven from one
// goroutine, such as a bubbletea update loop.
type Store struct {
	cycles   []models.Cycle
	activeID models.CycleID
	lastID   models.CycleID

	now    func() time.Time
	logger *slog.Logger

	subs    []subscriber
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used for lifecycle records.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:    time.Now,
		logger: util.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create appends a new active cycle started now.
func (s *Store) Create(task string, minutes int) (models.Cycle, error) {
	if err := ValidateRequest(Request{Task: task, MinutesAmount: minutes}); err != nil {
		return models.Cycle{}, err
	}
	if active, ok := s.ActiveCycle(); ok {
		return models.Cycle{}, invalidState("create", active.ID, ErrCycleActive)
	}

	s.lastID++
	c := models.NewCycle(s.lastID, strings.TrimSpace(task), minutes, s.now())
	s.cycles = append(s.cycles, c)
	s.activeID = c.ID

	s.logger.Info("cycle created", "id", c.ID, "task", c.Task, "minutes", c.MinutesAmount)
	s.publish(Event{Kind: EventCreated, Cycle: c})
	return c, nil
}

// Interrupt ends the active cycle before its target.
func (s *Store) Interrupt() error {
	return s.end("interrupt", EventInterrupted, models.Cycle.Interrupt)
}

// Finish ends the active cycle once its target duration has elapsed.
func (s *Store) Finish() error {
	return s.end("finish", EventFinished, models.Cycle.Finish)
}

func (s *Store) end(op string, kind EventKind, transition func(models.Cycle, time.Time) (models.Cycle, error)) error {
	idx := s.activeIndex()
	if idx < 0 {
		return invalidState(op, 0, ErrNoActiveCycle)
	}
	ended, err := transition(s.cycles[idx], s.now())
	if err != nil {
		return invalidState(op, s.cycles[idx].ID, err)
	}
	s.cycles[idx] = ended
	s.activeID = 0

	s.logger.Info("cycle "+kind.String(), "id", ended.ID, "task", ended.Task)
	s.publish(Event{Kind: kind, Cycle: ended})
	return nil
}

// ActiveCycle returns the cycle the active pointer refers to.
func (s *Store) ActiveCycle() (models.Cycle, bool) {
	idx := s.activeIndex()
	if idx < 0 {
		return models.Cycle{}, false
	}
	return s.cycles[idx], true
}

// activeIndex resolves the pointer against the list; a stale pointer reads as none.
func (s *Store) activeIndex() int {
	if s.activeID == 0 {
		return -1
	}
	for i := len(s.cycles) - 1; i >= 0; i-- {
		if s.cycles[i].ID == s.activeID {
			if !s.cycles[i].IsActive() {
				return -1
			}
			return i
		}
	}
	return -1
}

// Cycles returns a copy of the history in creation order.
func (s *Store) Cycles() []models.Cycle {
	out := make([]models.Cycle, len(s.cycles))
	copy(out, s.cycles)
	return out
}

// Len returns the number of cycles ever created.
func (s *Store) Len() int {
	return len(s.cycles)
}

// Subscribe registers fn for store events. The returned func removes it.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) publish(ev Event) {
	for _, sub := range s.subs {
		sub.fn(ev)
	}
}
