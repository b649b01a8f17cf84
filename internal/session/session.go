// Package session drives one drill session over a topic's fact pool.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathflow/internal/facts"
	"github.com/abhisek/mathflow/internal/spacedrep"
)

var (
	// ErrNoPool is returned for topics without a fact pool.
	ErrNoPool = errors.New("session: topic has no fact pool")

	// ErrSessionDone is returned by Next once the session has ended.
	ErrSessionDone = errors.New("session: done")

	// ErrNoQuestion is returned by Answer when no question is pending.
	ErrNoQuestion = errors.New("session: no question pending")
)

// Scheduler is the subset of the spaced-repetition scheduler a session uses.
type Scheduler interface {
	SelectNext(ctx context.Context, topicID string, pool []facts.Fact) (facts.Fact, error)
	Record(ctx context.Context, topicID string, fact facts.Fact, correct bool) spacedrep.Card
	Now() time.Time
}

// ActivityRecorder receives the totals of a finished session.
type ActivityRecorder interface {
	Record(ctx context.Context, attempted, correct int)
}

// Session is one run of questions over a single topic. It is not safe for
// concurrent use.
type Session struct {
	// ID is the session UUID, used in log lines.
	ID string

	// Topic is the topic being drilled.
	Topic facts.Topic

	mode     Mode
	limit    int
	duration time.Duration

	pool     []facts.Fact
	sched    Scheduler
	activity ActivityRecorder
	logger   *slog.Logger

	start   time.Time
	current facts.Fact
	pending bool

	stats Stats
	ended bool

	// summary is set once the session is finished.
	summary *Summary
}

// New starts a session over topic.
func New(topic facts.Topic, sched Scheduler, activity ActivityRecorder, opts Options) (*Session, error) {
	if !topic.SRS() {
		return nil, fmt.Errorf("%w: %s", ErrNoPool, topic.ID)
	}
	pool := topic.BuildPool()
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPool, topic.ID)
	}
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:       uuid.New().String(),
		Topic:    topic,
		mode:     opts.Mode,
		limit:    opts.Questions,
		duration: opts.Duration,
		pool:     pool,
		sched:    sched,
		activity: activity,
		logger:   opts.Logger,
		start:    sched.Now(),
	}
	s.logger.Info("session started",
		"session_id", s.ID,
		"topic", topic.ID,
		"mode", s.mode,
		"pool", len(pool),
	)
	return s, nil
}

// Mode returns the session mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Stats returns the running counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// Next returns the next fact to ask. Asking again before answering returns
// the pending fact.
func (s *Session) Next(ctx context.Context) (facts.Fact, error) {
	if s.pending {
		return s.current, nil
	}
	if s.Over() {
		return nil, ErrSessionDone
	}
	f, err := s.sched.SelectNext(ctx, s.Topic.ID, s.pool)
	if err != nil {
		return nil, fmt.Errorf("select next fact: %w", err)
	}
	s.current = f
	s.pending = true
	return f, nil
}

// Answer records the learner's answer to the pending fact.
func (s *Session) Answer(ctx context.Context, correct bool) (Result, error) {
	if !s.pending {
		return Result{}, ErrNoQuestion
	}
	s.pending = false

	card := s.sched.Record(ctx, s.Topic.ID, s.current, correct)
	s.stats.record(correct)

	return Result{
		Fact:    s.current,
		Correct: correct,
		Card:    card,
		Stats:   s.stats,
	}, nil
}

// Over reports whether the session has reached its limit or been ended.
func (s *Session) Over() bool {
	if s.ended {
		return true
	}
	switch s.mode {
	case ModePractice:
		return s.Remaining() <= 0
	default:
		return s.stats.Attempted >= s.limit
	}
}

// Remaining returns the practice time left. In learn mode it is zero.
func (s *Session) Remaining() time.Duration {
	if s.mode != ModePractice {
		return 0
	}
	left := s.duration - s.sched.Now().Sub(s.start)
	if left < 0 {
		return 0
	}
	return left
}

// QuestionsLeft returns how many learn-mode questions remain. In practice
// mode it is zero.
func (s *Session) QuestionsLeft() int {
	if s.mode != ModeLearn {
		return 0
	}
	return max(s.limit-s.stats.Attempted, 0)
}

// Finish ends the session and commits its totals to the activity log. Later
// calls return the same summary without committing again.
func (s *Session) Finish(ctx context.Context) Summary {
	if s.summary != nil {
		return *s.summary
	}
	s.ended = true
	s.pending = false

	sum := s.buildSummary()
	if s.activity != nil {
		s.activity.Record(ctx, s.stats.Attempted, s.stats.Correct)
	}
	s.summary = &sum

	s.logger.Info("session finished",
		"session_id", s.ID,
		"topic", s.Topic.ID,
		"attempted", sum.Attempted,
		"correct", sum.Correct,
		"duration", sum.Duration.Round(time.Second),
	)
	return sum
}

// Abandon ends the session without committing anything to the activity log.
// Answers already given stay recorded in the review store.
func (s *Session) Abandon() {
	if s.ended {
		return
	}
	s.ended = true
	s.pending = false
	s.logger.Info("session abandoned",
		"session_id", s.ID,
		"topic", s.Topic.ID,
		"attempted", s.stats.Attempted,
	)
}
