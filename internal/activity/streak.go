package activity

import (
	"context"
	"time"

	"github.com/abhisek/mathflow/internal/store"
)

// Streak returns the current day streak. A streak whose last day is neither
// today nor yesterday has lapsed and reads as 0.
func (l *Log) Streak(ctx context.Context) int {
	s, err := l.repo.LoadStreak(ctx)
	if err != nil {
		l.logger.Warn("streak unreadable", "error", err)
		return 0
	}
	if live(s, l.now()) {
		return s.Count
	}
	return 0
}

func (l *Log) touchStreak(ctx context.Context, now time.Time) {
	s, err := l.repo.LoadStreak(ctx)
	if err != nil {
		l.logger.Warn("streak unreadable, not updated", "error", err)
		return
	}
	next, changed := advanceStreak(s, now)
	if !changed {
		return
	}
	if err := l.repo.SaveStreak(ctx, next); err != nil {
		l.logger.Warn("streak not saved", "count", next.Count, "error", err)
	}
}

// advanceStreak applies a practice day at now. It reports false when now's
// day was already counted.
func advanceStreak(s store.StreakData, now time.Time) (store.StreakData, bool) {
	today := dateKey(now)
	if s.LastDate == today {
		return s, false
	}
	if s.LastDate == dateKey(now.UTC().AddDate(0, 0, -1)) {
		s.Count++
	} else {
		s.Count = 1
	}
	s.LastDate = today
	return s, true
}

func live(s store.StreakData, now time.Time) bool {
	return s.LastDate == dateKey(now) || s.LastDate == dateKey(now.UTC().AddDate(0, 0, -1))
}
