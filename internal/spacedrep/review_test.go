package spacedrep

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

const epsilon = 1e-9

func at(ms int64) time.Time {
	return time.UnixMilli(ms)
}

func assertCard(t *testing.T, got Card, ease float64, interval int, due int64, reps int) {
	t.Helper()
	if math.Abs(got.Ease-ease) > epsilon {
		t.Errorf("Ease = %v, want %v", got.Ease, ease)
	}
	if got.Interval != interval {
		t.Errorf("Interval = %d, want %d", got.Interval, interval)
	}
	if got.Due != due {
		t.Errorf("Due = %d, want %d", got.Due, due)
	}
	if got.Reps != reps {
		t.Errorf("Reps = %d, want %d", got.Reps, reps)
	}
}

func TestNewCard(t *testing.T) {
	assertCard(t, NewCard(), 2.5, 1, 0, 0)
}

func TestApply_ReviewSequence(t *testing.T) {
	c := NewCard()

	// First correct answer at t=1000.
	c = c.Apply(true, at(1000))
	assertCard(t, c, 2.6, 1, 61000, 1)

	// Second consecutive correct at t=70000.
	c = c.Apply(true, at(70000))
	assertCard(t, c, 2.7, 3, 250000, 2)

	// Third: interval = round(3 * 2.7) = 8.
	c = c.Apply(true, at(300000))
	assertCard(t, c, 2.8, 8, 780000, 3)

	// A miss resets reps and interval and costs 0.2 ease.
	c = c.Apply(false, at(900000))
	assertCard(t, c, 2.6, 1, 960000, 0)
}

func TestApply_EaseFloor(t *testing.T) {
	c := Card{Ease: 1.4, Interval: 5, Reps: 4}
	c = c.Apply(false, at(0))
	if c.Ease != MinEase {
		t.Errorf("Ease = %v, want %v", c.Ease, MinEase)
	}
	c = c.Apply(false, at(0))
	if c.Ease != MinEase {
		t.Errorf("Ease = %v after second miss, want %v", c.Ease, MinEase)
	}
}

func TestApply_EaseNeverBelowFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 200; run++ {
		c := NewCard()
		for i := 0; i < 50; i++ {
			c = c.Apply(rng.Intn(3) == 0, at(int64(i)*MinuteMillis))
			if c.Ease < MinEase {
				t.Fatalf("run %d step %d: Ease = %v below floor", run, i, c.Ease)
			}
			if c.Interval < 1 {
				t.Fatalf("run %d step %d: Interval = %d", run, i, c.Interval)
			}
		}
	}
}

func TestApply_MissResetsRegardlessOfState(t *testing.T) {
	states := []Card{
		NewCard(),
		{Ease: 2.9, Interval: 1, Reps: 1, Due: 5},
		{Ease: 3.5, Interval: 240, Reps: 9, Due: 1 << 40},
		{Ease: 1.3, Interval: 2, Reps: 3},
	}
	for _, s := range states {
		c := s.Apply(false, at(100))
		if c.Reps != 0 || c.Interval != 1 {
			t.Errorf("from %+v: Reps=%d Interval=%d, want 0 and 1", s, c.Reps, c.Interval)
		}
	}
}

func TestApply_BootstrapIntervalsIgnoreEase(t *testing.T) {
	for _, ease := range []float64{1.3, 2.0, 2.5, 4.0} {
		c := Card{Ease: ease, Interval: 1}
		c = c.Apply(true, at(0))
		first := c.Interval
		c = c.Apply(true, at(0))
		if first != 1 || c.Interval != 3 {
			t.Errorf("ease %v: intervals [%d %d], want [1 3]", ease, first, c.Interval)
		}
	}
}

func TestApply_IntervalGrowsFromThirdCorrect(t *testing.T) {
	c := Card{Ease: MinEase, Interval: 1}
	prev := 0
	for i := 1; i <= 15; i++ {
		c = c.Apply(true, at(0))
		if i >= 3 && c.Interval < prev {
			t.Fatalf("answer %d: interval %d shrank from %d", i, c.Interval, prev)
		}
		prev = c.Interval
	}
}

func TestApply_DueMatchesInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := NewCard()
	for i := 0; i < 40; i++ {
		now := at(1_700_000_000_000 + int64(i)*12345)
		c = c.Apply(rng.Intn(4) != 0, now)
		if want := now.UnixMilli() + int64(c.Interval)*MinuteMillis; c.Due != want {
			t.Fatalf("step %d: Due = %d, want %d", i, c.Due, want)
		}
	}
}

func TestApply_LongStreakStaysInRange(t *testing.T) {
	c := NewCard()
	for i := 0; i < 100; i++ {
		now := at(1_700_000_000_000 + int64(i)*MinuteMillis)
		c = c.Apply(true, now)
		if c.Interval <= 0 || c.Interval > MaxInterval {
			t.Fatalf("step %d: Interval = %d out of range", i, c.Interval)
		}
		if c.Due <= now.UnixMilli() {
			t.Fatalf("step %d: Due = %d not after %d", i, c.Due, now.UnixMilli())
		}
	}
	if c.Interval != MaxInterval {
		t.Errorf("Interval = %d, want saturated at %d", c.Interval, MaxInterval)
	}
}

func TestScore(t *testing.T) {
	now := at(1_000_000)
	tests := []struct {
		name string
		card Card
		want int64
	}{
		{"fresh", NewCard(), 0},
		{"just missed", Card{Ease: 2.3, Interval: 1, Due: 999_000, Reps: 0}, 0},
		{"overdue 5 min", Card{Ease: 2.6, Interval: 1, Due: 700_000, Reps: 1}, 300_000},
		{"not yet due", Card{Ease: 2.6, Interval: 3, Due: 1_180_000, Reps: 2}, -180_000},
	}
	for _, tt := range tests {
		if got := tt.card.Score(now); got != tt.want {
			t.Errorf("%s: Score() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestIsDue(t *testing.T) {
	now := at(1_000_000)
	tests := []struct {
		name string
		card Card
		want bool
	}{
		{"fresh is new, not due", NewCard(), false},
		{"missed card is not due", Card{Ease: 2.3, Interval: 1, Due: 10, Reps: 0}, false},
		{"due exactly now", Card{Ease: 2.6, Interval: 1, Due: 1_000_000, Reps: 1}, true},
		{"overdue", Card{Ease: 2.6, Interval: 1, Due: 1, Reps: 2}, true},
		{"future", Card{Ease: 2.6, Interval: 1, Due: 1_000_001, Reps: 2}, false},
	}
	for _, tt := range tests {
		if got := tt.card.IsDue(now); got != tt.want {
			t.Errorf("%s: IsDue() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMastered(t *testing.T) {
	tests := []struct {
		card Card
		want bool
	}{
		{Card{Ease: 2.8, Reps: 3}, true},
		{Card{Ease: 2.3, Reps: 5}, true},
		{Card{Ease: 2.29, Reps: 5}, false},
		{Card{Ease: 3.0, Reps: 2}, false},
	}
	for _, tt := range tests {
		if got := tt.card.Mastered(); got != tt.want {
			t.Errorf("%+v: Mastered() = %v, want %v", tt.card, got, tt.want)
		}
	}
}

func TestMastered_AfterOneNetMiss(t *testing.T) {
	// miss, then three correct: ease 2.5-0.2+0.3 = 2.6, reps 3.
	c := NewCard().Apply(false, at(0))
	for i := 0; i < 3; i++ {
		c = c.Apply(true, at(0))
	}
	if !c.Mastered() {
		t.Errorf("expected mastered, got %+v", c)
	}
}

func TestDueTime(t *testing.T) {
	if !NewCard().DueTime().IsZero() {
		t.Error("expected zero time for never-reviewed card")
	}
	c := Card{Due: 61000}
	if !c.DueTime().Equal(at(61000)) {
		t.Errorf("DueTime() = %v", c.DueTime())
	}
}
