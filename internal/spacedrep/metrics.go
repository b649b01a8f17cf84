package spacedrep

import (
	"context"
	"math"

	"github.com/abhisek/mathflow/internal/facts"
)

// TopicSummary aggregates a topic's review state for display.
type TopicSummary struct {
	TopicID        string
	PoolSize       int
	Due            int // reviewed before and due now
	Mastered       int
	Fresh          int // never answered
	MasteryPercent int // 0..100
	Started        bool
}

// Summarize computes every metric for a topic from a single deck load.
func (s *Scheduler) Summarize(ctx context.Context, topicID string, pool []facts.Fact) TopicSummary {
	sum := TopicSummary{TopicID: topicID, PoolSize: len(pool)}
	if len(pool) == 0 {
		return sum
	}

	deck := s.deck(ctx)
	now := s.clock.Now()
	for _, f := range pool {
		c := lookup(deck, f.Key(topicID))
		if c.IsDue(now) {
			sum.Due++
		}
		if c.Mastered() {
			sum.Mastered++
		}
		if c.Attempted() {
			sum.Started = true
		} else {
			sum.Fresh++
		}
	}
	sum.MasteryPercent = int(math.Round(100 * float64(sum.Mastered) / float64(len(pool))))
	return sum
}

// DueCount returns how many facts in pool were reviewed before and are due
// now. New cards are excluded.
func (s *Scheduler) DueCount(ctx context.Context, topicID string, pool []facts.Fact) int {
	return s.Summarize(ctx, topicID, pool).Due
}

// MasteryPercent returns the share of pool that is mastered, 0..100. An
// empty pool yields 0.
func (s *Scheduler) MasteryPercent(ctx context.Context, topicID string, pool []facts.Fact) int {
	return s.Summarize(ctx, topicID, pool).MasteryPercent
}

// HasAnyAttempts reports whether any fact in pool has been answered.
func (s *Scheduler) HasAnyAttempts(ctx context.Context, topicID string, pool []facts.Fact) bool {
	return s.Summarize(ctx, topicID, pool).Started
}
