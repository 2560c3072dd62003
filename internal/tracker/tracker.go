// Package tracker derives elapsed time for the active cycle from the wall clock
// and signals when the cycle reaches its target duration.
package tracker

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joaopnk/ignite-timer/internal/config"
	"github.com/joaopnk/ignite-timer/internal/models"
	"github.com/joaopnk/ignite-timer/internal/util"
)

// TickMsg is delivered once per interval while a cycle is tracked. Ticks that
// belong to a canceled handle are dropped by Update.
type TickMsg struct {
	CycleID models.CycleID
	Time    time.Time
	gen     uint64
}

// Scheduler arms a single delayed message. tea.Tick satisfies it.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Observer receives tracker signals.
//
//go:generate mockgen -source=tracker.go -destination=mock_observer_test.go -package=tracker
type Observer interface {
	// Elapsed is called whenever the elapsed second count changes.
	Elapsed(id models.CycleID, elapsed int, d Display)
	// TargetReached is called once when the cycle reaches its target.
	TargetReached(id models.CycleID)
}

// handle is the one outstanding scheduled tick. A tick fires into the tracker
// only while its generation matches a live handle.
type handle struct {
	cycleID models.CycleID
	gen     uint64
	live    bool
}

// Tracker owns the scheduled tick for the active cycle.
type Tracker struct {
	observer Observer
	interval time.Duration
	schedule Scheduler
	logger   *slog.Logger

	cycle   models.Cycle
	handle  handle
	gen     uint64
	elapsed int
	emitted bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithInterval overrides config.TickInterval.
func WithInterval(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithScheduler replaces tea.Tick, mainly for tests.
func WithScheduler(s Scheduler) Option {
	return func(t *Tracker) {
		if s != nil {
			t.schedule = s
		}
	}
}

// WithLogger sets the logger used for dropped ticks.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New returns an idle tracker reporting to obs.
func New(obs Observer, opts ...Option) *Tracker {
	t := &Tracker{
		observer: obs,
		interval: config.TickInterval,
		schedule: tea.Tick,
		logger:   util.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Arm cancels any outstanding tick and starts tracking c. It returns the
// command that delivers the first tick, or nil when c is not active.
func (t *Tracker) Arm(c models.Cycle) tea.Cmd {
	t.Stop()
	t.elapsed = 0
	t.emitted = false
	if c.ID == 0 || !c.IsActive() {
		t.cycle = models.Cycle{}
		return nil
	}

	t.cycle = c
	t.gen++
	t.handle = handle{cycleID: c.ID, gen: t.gen, live: true}
	return t.next()
}

// Stop cancels the outstanding tick. It is safe to call repeatedly.
func (t *Tracker) Stop() {
	t.handle.live = false
}

// Armed reports whether a tick is outstanding.
func (t *Tracker) Armed() bool {
	return t.handle.live
}

// CycleID returns the cycle being tracked, or zero.
func (t *Tracker) CycleID() models.CycleID {
	if !t.handle.live {
		return 0
	}
	return t.handle.cycleID
}

// Elapsed returns the last derived elapsed seconds.
func (t *Tracker) Elapsed() int {
	return t.elapsed
}

// Update handles TickMsg values and ignores everything else.
func (t *Tracker) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok {
		return nil
	}
	h := t.handle
	if !h.live || tick.gen != h.gen || tick.CycleID != h.cycleID {
		t.logger.Debug("dropped stale tick", "cycle", tick.CycleID)
		return nil
	}

	obs := Observe(t.cycle.StartDate, t.cycle.MinutesAmount, tick.Time)
	changed := !t.emitted || obs.Elapsed != t.elapsed
	t.elapsed = obs.Elapsed
	t.emitted = true

	if obs.Reached {
		t.Stop()
		if changed {
			t.observer.Elapsed(h.cycleID, obs.Elapsed, NewDisplay(obs.Remaining()))
		}
		t.observer.TargetReached(h.cycleID)
		return nil
	}
	if changed {
		t.observer.Elapsed(h.cycleID, obs.Elapsed, NewDisplay(obs.Remaining()))
	}
	return t.next()
}

func (t *Tracker) next() tea.Cmd {
	h := t.handle
	return t.schedule(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{CycleID: h.cycleID, Time: now, gen: h.gen}
	})
}
