package session

import (
	"time"

	"github.com/abhisek/mathflow/internal/facts"
	"github.com/abhisek/mathflow/internal/spacedrep"
)

// Stats are the running counters of a session.
type Stats struct {
	Attempted  int
	Correct    int
	Streak     int // current run of correct answers
	BestStreak int
}

func (st *Stats) record(correct bool) {
	st.Attempted++
	if correct {
		st.Correct++
		st.Streak++
		st.BestStreak = max(st.BestStreak, st.Streak)
	} else {
		st.Streak = 0
	}
}

// Accuracy returns Correct/Attempted, or 0 when nothing was attempted.
func (st Stats) Accuracy() float64 {
	if st.Attempted == 0 {
		return 0
	}
	return float64(st.Correct) / float64(st.Attempted)
}

// Result describes one answered question.
type Result struct {
	Fact    facts.Fact
	Correct bool

	// Card is the fact's review card after the answer.
	Card spacedrep.Card

	// Stats are the session counters including this answer.
	Stats Stats
}

// Summary holds the data shown when a session ends.
type Summary struct {
	SessionID  string
	TopicID    string
	Mode       Mode
	Duration   time.Duration
	Attempted  int
	Correct    int
	BestStreak int
	Accuracy   float64
}

func (s *Session) buildSummary() Summary {
	return Summary{
		SessionID:  s.ID,
		TopicID:    s.Topic.ID,
		Mode:       s.mode,
		Duration:   s.sched.Now().Sub(s.start),
		Attempted:  s.stats.Attempted,
		Correct:    s.stats.Correct,
		BestStreak: s.stats.BestStreak,
		Accuracy:   s.stats.Accuracy(),
	}
}
