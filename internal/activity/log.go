// Package activity keeps the daily practice log and the day streak.
package activity

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/abhisek/mathflow/internal/store"
)

// RetainDays is how many distinct days the log keeps.
const RetainDays = 30

// dateLayout formats UTC calendar days.
const dateLayout = "2006-01-02"

// Day is one calendar day's activity.
type Day struct {
	Date      string // YYYY-MM-DD, UTC
	Attempted int
	Correct   int
	Sessions  int
}

// Accuracy returns Correct/Attempted, or 0 when nothing was attempted.
func (d Day) Accuracy() float64 {
	if d.Attempted == 0 {
		return 0
	}
	return float64(d.Correct) / float64(d.Attempted)
}

// Log records finished sessions into per-day buckets and maintains the
// streak. Storage failures are logged and otherwise ignored.
type Log struct {
	repo   store.ActivityRepo
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Log.
type Option func(*Log)

// WithNow sets the time source.
func WithNow(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// WithLogger sets the logger used for storage warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Log) { l.logger = logger }
}

// NewLog creates an activity log over repo.
func NewLog(repo store.ActivityRepo, opts ...Option) *Log {
	l := &Log{
		repo:   repo,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Record adds one finished session to today's bucket and updates the streak.
func (l *Log) Record(ctx context.Context, attempted, correct int) {
	now := l.now()
	today := dateKey(now)

	days, err := l.repo.LoadActivity(ctx)
	if err != nil {
		// Writing now would replace history we could not read.
		l.logger.Warn("activity log unreadable, session not logged", "error", err)
	} else {
		d := days[today]
		d.Attempted += attempted
		d.Correct += correct
		d.Sessions++
		days[today] = d
		evictOldest(days, RetainDays)

		if err := l.repo.SaveActivity(ctx, days); err != nil {
			l.logger.Warn("activity log not saved", "date", today, "error", err)
		}
	}

	l.touchStreak(ctx, now)
}

// Days returns the logged days, oldest first.
func (l *Log) Days(ctx context.Context) []Day {
	data, err := l.repo.LoadActivity(ctx)
	if err != nil {
		l.logger.Warn("activity log unreadable", "error", err)
		return nil
	}
	out := make([]Day, 0, len(data))
	for date, d := range data {
		out = append(out, Day{
			Date:      date,
			Attempted: d.Attempted,
			Correct:   d.Correct,
			Sessions:  d.Sessions,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Today returns today's bucket, zero-valued if nothing was logged.
func (l *Log) Today(ctx context.Context) Day {
	today := dateKey(l.now())
	for _, d := range l.Days(ctx) {
		if d.Date == today {
			return d
		}
	}
	return Day{Date: today}
}

// evictOldest drops the oldest dates until at most keep remain. Dates in
// YYYY-MM-DD form order lexically.
func evictOldest(days map[string]store.DayActivityData, keep int) {
	if len(days) <= keep {
		return
	}
	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates[:len(dates)-keep] {
		delete(days, date)
	}
}

func dateKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}
