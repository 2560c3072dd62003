// Package session wires the cycle store to the elapsed-time tracker and
// exposes the combined state to the presentation layer.
package session

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joaopnk/ignite-timer/internal/cycle"
	"github.com/joaopnk/ignite-timer/internal/models"
	"github.com/joaopnk/ignite-timer/internal/tracker"
	"github.com/joaopnk/ignite-timer/internal/util"
)

// Snapshot is what the presentation layer renders.
type Snapshot struct {
	Active  *models.Cycle
	Elapsed int
	Total   int
	Display tracker.Display
}

// Remaining returns the seconds left on the active cycle.
func (s Snapshot) Remaining() int {
	return s.Total - s.Elapsed
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// Session is the single coordinator for timer state. It is owned by the
// top-level model and passed down; like the store it is driven from one goroutine.
type Session struct {
	store   *cycle.Store
	tracker *tracker.Tracker
	logger  *slog.Logger
	now     func() time.Time

	elapsed int
	display tracker.Display

	subs    []subscriber
	nextSub int
}

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	logger      *slog.Logger
	now         func() time.Time
	trackerOpts []tracker.Option
}

// WithClock sets the clock used to seed progress on Resume.
func WithClock(now func() time.Time) Option {
	return func(o *sessionOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the session logger; the tracker inherits it.
func WithLogger(logger *slog.Logger) Option {
	return func(o *sessionOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTrackerOptions forwards options to the tracker.
func WithTrackerOptions(opts ...tracker.Option) Option {
	return func(o *sessionOptions) {
		o.trackerOpts = append(o.trackerOpts, opts...)
	}
}

// New returns a session over store.
func New(store *cycle.Store, opts ...Option) *Session {
	o := sessionOptions{logger: util.Discard(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Session{
		store:   store,
		logger:  o.logger,
		now:     o.now,
		display: tracker.Zero,
	}
	trackerOpts := append([]tracker.Option{tracker.WithLogger(o.logger)}, o.trackerOpts...)
	s.tracker = tracker.New(s, trackerOpts...)
	return s
}

// Store returns the underlying cycle store.
func (s *Session) Store() *cycle.Store {
	return s.store
}

// Resume arms the tracker for a cycle that is already active in the store.
// Progress is seeded from the clock so the display is right before the first tick.
func (s *Session) Resume() tea.Cmd {
	active, ok := s.store.ActiveCycle()
	if !ok {
		return nil
	}
	obs := tracker.Observe(active.StartDate, active.MinutesAmount, s.now())
	s.elapsed = obs.Elapsed
	s.display = tracker.NewDisplay(obs.Remaining())
	cmd := s.tracker.Arm(active)
	s.notify()
	return cmd
}

// Start creates a cycle and begins tracking it. On error nothing changes and
// any running cycle keeps its tick.
func (s *Session) Start(task string, minutes int) (tea.Cmd, error) {
	c, err := s.store.Create(task, minutes)
	if err != nil {
		return nil, err
	}
	cmd := s.tracker.Arm(c)
	s.elapsed = 0
	s.display = tracker.NewDisplay(c.TotalSeconds())
	s.notify()
	return cmd, nil
}

// Interrupt cancels the tick and marks the active cycle interrupted.
func (s *Session) Interrupt() error {
	s.tracker.Stop()
	if err := s.store.Interrupt(); err != nil {
		return err
	}
	s.reset()
	s.notify()
	return nil
}

// Update forwards messages to the tracker and returns its next command.
func (s *Session) Update(msg tea.Msg) tea.Cmd {
	return s.tracker.Update(msg)
}

// Elapsed implements tracker.Observer.
func (s *Session) Elapsed(id models.CycleID, elapsed int, d tracker.Display) {
	active, ok := s.store.ActiveCycle()
	if !ok || active.ID != id {
		return
	}
	s.elapsed = elapsed
	s.display = d
	s.notify()
}

// TargetReached implements tracker.Observer by finishing the cycle.
func (s *Session) TargetReached(id models.CycleID) {
	active, ok := s.store.ActiveCycle()
	if !ok || active.ID != id {
		s.logger.Warn("target reached for inactive cycle", "id", id)
		return
	}
	if err := s.store.Finish(); err != nil {
		util.LogError(s.logger, "finish cycle", err)
		return
	}
	s.reset()
	s.notify()
}

// Snapshot returns the current state. Without an active cycle the display is 00:00.
func (s *Session) Snapshot() Snapshot {
	active, ok := s.store.ActiveCycle()
	if !ok {
		return Snapshot{Display: tracker.Zero}
	}
	return Snapshot{
		Active:  util.Ptr(active),
		Elapsed: s.elapsed,
		Total:   active.TotalSeconds(),
		Display: s.display,
	}
}

// Subscribe registers fn to be told about every displayed change.
// Subscribers observe only; the returned func removes fn.
func (s *Session) Subscribe(fn func(Snapshot)) func() {
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

// Close stops the tracker and drops all subscribers. The store is kept.
func (s *Session) Close() {
	s.tracker.Stop()
	s.subs = nil
}

func (s *Session) reset() {
	s.elapsed = 0
	s.display = tracker.Zero
}

func (s *Session) notify() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, sub := range s.subs {
		sub.fn(snap)
	}
}
