package alerts

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"sightmap/internal/domain"
)

const (
	DefaultDuration     = 5 * time.Second
	DefaultMaxVisible   = 5
	DefaultDedupeWindow = 30 * time.Second
)

// Input is an alert before the scheduler assigns its identity. DedupeKey,
// when set, collapses repeat alerts for the same event inside the dedupe
// window onto the original alert's id.
type Input struct {
	Message         string
	Type            domain.AlertType
	Duration        time.Duration
	SubjectMarkerID *uuid.UUID
	DedupeKey       string
}

// Subscriber receives each alert as it goes live. The map UI attaches one;
// alerts enqueued before that are buffered, not lost.
type Subscriber func(domain.Alert)

type dedupeEntry struct {
	alertID uuid.UUID
	seenAt  time.Time
}

// Scheduler owns the live alert queue: per-alert auto-expiry timers,
// idempotent dismissal, a visibility cap over the rendered list and a
// pending buffer for pre-subscriber enqueues. Each instance is
// self-contained so tests can run isolated schedulers.
type Scheduler struct {
	mu           sync.Mutex
	clock        clockwork.Clock
	logger       *slog.Logger
	maxVisible   int
	dedupeWindow time.Duration

	live       []domain.Alert
	timers     map[uuid.UUID]clockwork.Timer
	history    []domain.Alert
	recent     map[string]dedupeEntry
	subscriber Subscriber
	pending    []domain.Alert
}

type Option func(*Scheduler)

func WithMaxVisible(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.maxVisible = n
		}
	}
}

func WithDedupeWindow(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.dedupeWindow = d
		}
	}
}

func NewScheduler(clock clockwork.Clock, logger *slog.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		clock:        clock,
		logger:       logger,
		maxVisible:   DefaultMaxVisible,
		dedupeWindow: DefaultDedupeWindow,
		timers:       make(map[uuid.UUID]clockwork.Timer),
		recent:       make(map[string]dedupeEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enqueue assigns a fresh id, appends to the live queue and arms the
// expiry timer. Never blocks and never fails; a duplicate inside the
// dedupe window returns the original alert's id without re-enqueueing.
func (s *Scheduler) Enqueue(in Input) uuid.UUID {
	s.mu.Lock()

	now := s.clock.Now()
	for key, entry := range s.recent {
		if now.Sub(entry.seenAt) >= s.dedupeWindow {
			delete(s.recent, key)
		}
	}
	if in.DedupeKey != "" {
		if prev, ok := s.recent[in.DedupeKey]; ok && now.Sub(prev.seenAt) < s.dedupeWindow {
			s.mu.Unlock()
			s.logger.Debug("alert deduplicated",
				slog.String("key", in.DedupeKey),
				slog.String("alert_id", prev.alertID.String()),
			)
			return prev.alertID
		}
	}

	duration := in.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}

	alert := domain.Alert{
		ID:              uuid.New(),
		Message:         in.Message,
		Type:            in.Type,
		Duration:        duration,
		SubjectMarkerID: in.SubjectMarkerID,
		CreatedAt:       now,
	}

	s.live = append(s.live, alert)
	s.history = append(s.history, alert)
	if in.DedupeKey != "" {
		s.recent[in.DedupeKey] = dedupeEntry{alertID: alert.ID, seenAt: now}
	}
	s.timers[alert.ID] = s.clock.AfterFunc(duration, func() {
		s.expire(alert.ID)
	})

	sub := s.subscriber
	if sub == nil {
		s.pending = append(s.pending, alert)
	}
	s.mu.Unlock()

	if sub != nil {
		sub(alert)
	}

	s.logger.Info("alert enqueued",
		slog.String("alert_id", alert.ID.String()),
		slog.String("type", string(alert.Type)),
		slog.Duration("duration", duration),
	)
	return alert.ID
}

// Dismiss removes the alert immediately and clears its timer. Dismissing
// an unknown or already-expired id is a no-op.
func (s *Scheduler) Dismiss(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id, true)
}

func (s *Scheduler) expire(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id, false)
}

func (s *Scheduler) removeLocked(id uuid.UUID, stopTimer bool) {
	if t, ok := s.timers[id]; ok {
		if stopTimer {
			t.Stop()
		}
		delete(s.timers, id)
	}
	for i, a := range s.live {
		if a.ID == id {
			s.live = append(s.live[:i], s.live[i+1:]...)
			break
		}
	}
	for i, a := range s.pending {
		if a.ID == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			break
		}
	}
}

// Subscribe attaches the UI callback. Alerts buffered before the first
// subscriber arrived are flushed in enqueue order; only one subscriber is
// held at a time, later calls replace it.
func (s *Scheduler) Subscribe(sub Subscriber) {
	s.mu.Lock()
	s.subscriber = sub
	flush := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, a := range flush {
		sub(a)
	}
}

// Visible returns the rendered slice of the live queue: the most recent
// maxVisible alerts in insertion order. Older live alerts stay queued but
// are not rendered until newer ones expire.
func (s *Scheduler) Visible() []domain.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := 0
	if len(s.live) > s.maxVisible {
		start = len(s.live) - s.maxVisible
	}
	out := make([]domain.Alert, len(s.live)-start)
	copy(out, s.live[start:])
	return out
}

// Live returns the full live queue, cap ignored.
func (s *Scheduler) Live() []domain.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Alert, len(s.live))
	copy(out, s.live)
	return out
}

// History returns every alert ever enqueued this session, expired or not.
func (s *Scheduler) History() []domain.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Alert, len(s.history))
	copy(out, s.history)
	return out
}
