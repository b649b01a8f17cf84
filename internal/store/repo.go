package store

import "context"

// KV keys for the persisted aggregates.
const (
	ReviewKey   = "mathflow_srs_v3"
	ActivityKey = "mathflow_activity_v3"
	StreakKey   = "mathflow_streak_v3"
)

// AllKeys returns every key the application writes.
func AllKeys() []string {
	return []string{ReviewKey, ActivityKey, StreakKey}
}

// CardData is the persisted form of one review card.
type CardData struct {
	Ease     float64 `json:"ease"`
	Interval int     `json:"interval"`
	Due      int64   `json:"due"`
	Reps     int     `json:"reps"`
}

// ReviewRepo persists review cards keyed by Card Key.
type ReviewRepo interface {
	// LoadCards returns every stored card. A missing deck is an empty map.
	LoadCards(ctx context.Context) (map[string]CardData, error)

	// SaveCard stores one card, replacing any prior entry under key.
	SaveCard(ctx context.Context, key string, card CardData) error
}

// DayActivityData holds one calendar day's aggregate counters.
type DayActivityData struct {
	Attempted int `json:"attempted"`
	Correct   int `json:"correct"`
	Sessions  int `json:"sessions"`
}

// StreakData is the persisted day streak. LastDate is "YYYY-MM-DD" or empty.
type StreakData struct {
	Count    int    `json:"count"`
	LastDate string `json:"lastDate"`
}

// ActivityRepo persists the daily activity log and the day streak.
type ActivityRepo interface {
	LoadActivity(ctx context.Context) (map[string]DayActivityData, error)
	SaveActivity(ctx context.Context, days map[string]DayActivityData) error
	LoadStreak(ctx context.Context) (StreakData, error)
	SaveStreak(ctx context.Context, s StreakData) error
}
