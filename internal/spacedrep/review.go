package spacedrep

import (
	"math"
	"time"
)

// Card is the scheduling state of one fact.
type Card struct {
	Ease     float64 // >= MinEase
	Interval int     // minutes, >= 1
	Due      int64   // epoch milliseconds; 0 means never reviewed
	Reps     int     // consecutive correct answers
}

// NewCard returns the default card used for facts with no stored state.
func NewCard() Card {
	return Card{Ease: InitialEase, Interval: InitialInterval}
}

// Apply returns the card updated for one answer given at now.
func (c Card) Apply(correct bool, now time.Time) Card {
	if correct {
		c.Reps++
		if c.Reps <= len(BootstrapIntervals) {
			c.Interval = BootstrapIntervals[c.Reps-1]
		} else {
			c.Interval = int(math.Min(math.Round(float64(c.Interval)*c.Ease), MaxInterval))
		}
		c.Ease = math.Max(MinEase, c.Ease+EaseBonus)
	} else {
		c.Reps = 0
		c.Interval = InitialInterval
		c.Ease = math.Max(MinEase, c.Ease-EasePenalty)
	}
	c.Due = now.UnixMilli() + int64(c.Interval)*MinuteMillis
	return c
}

// Score is the selection priority at now. Cards never answered correctly
// since their last reset score exactly 0; others score their overdue amount
// in milliseconds, negative when not yet due.
func (c Card) Score(now time.Time) int64 {
	if c.Reps == 0 {
		return 0
	}
	return now.UnixMilli() - c.Due
}

// IsDue reports whether a previously reviewed card is due at now. Cards with
// Reps == 0 are new, not due, even though they still score 0 for selection.
func (c Card) IsDue(now time.Time) bool {
	return c.Reps > 0 && now.UnixMilli() >= c.Due
}

// Mastered reports whether the card counts toward mastery.
func (c Card) Mastered() bool {
	return c.Reps >= MasteryReps && c.Ease >= MasteryEase
}

// Attempted reports whether the card has ever been answered.
func (c Card) Attempted() bool {
	return c.Due > 0
}

// DueTime returns Due as a time, or the zero time for a never-reviewed card.
func (c Card) DueTime() time.Time {
	if c.Due == 0 {
		return time.Time{}
	}
	return time.UnixMilli(c.Due)
}
