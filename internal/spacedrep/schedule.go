package spacedrep

// Card defaults and update constants.
const (
	InitialEase     = 2.5
	InitialInterval = 1 // minutes

	// MinEase is the floor below which ease never drops.
	MinEase = 1.3

	EaseBonus   = 0.1
	EasePenalty = 0.2

	// MinuteMillis converts an interval in minutes to milliseconds.
	MinuteMillis = 60_000

	// MaxInterval caps interval growth at roughly 100 years so Due stays
	// far inside int64 milliseconds.
	MaxInterval = 100 * 365 * 24 * 60
)

// BootstrapIntervals are the fixed intervals, in minutes, after the first and
// second consecutive correct answers. Later intervals grow by ease.
var BootstrapIntervals = []int{1, 3}

// Mastery thresholds: three consecutive correct answers and an ease that has
// absorbed at most one net miss.
const (
	MasteryReps = 3
	MasteryEase = 2.3
)

// candidateCount returns how many top-scored facts are eligible for random
// selection: 30% of the pool rounded up, at least one. Integer arithmetic
// keeps the result exact.
func candidateCount(poolSize int) int {
	n := (3*poolSize + 9) / 10
	if n < 1 {
		n = 1
	}
	return n
}
