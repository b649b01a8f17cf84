package session

import (
	"fmt"
	"log/slog"
	"slices"
	"time"
)

// Mode selects how a session ends.
type Mode string

const (
	// ModeLearn ends after a fixed number of questions.
	ModeLearn Mode = "learn"
	// ModePractice ends when the timer runs out.
	ModePractice Mode = "practice"
)

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeLearn, ModePractice:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want %s or %s)", s, ModeLearn, ModePractice)
	}
}

// DefaultLearnQuestions is the length of a learn session.
const DefaultLearnQuestions = 20

// DefaultPracticeDuration is the default practice timer.
const DefaultPracticeDuration = 5 * time.Minute

// PracticeDurations are the timer presets offered for practice mode.
var PracticeDurations = []time.Duration{2 * time.Minute, 5 * time.Minute, 10 * time.Minute}

// Options configures a session.
type Options struct {
	Mode Mode

	// Questions is the learn-mode length. Zero means DefaultLearnQuestions.
	Questions int

	// Duration is the practice-mode timer. Zero means DefaultPracticeDuration.
	Duration time.Duration

	// Logger receives session lifecycle lines. Nil means slog.Default().
	Logger *slog.Logger
}

func (o Options) withDefaults() (Options, error) {
	if o.Mode == "" {
		o.Mode = ModeLearn
	}
	if _, err := ParseMode(string(o.Mode)); err != nil {
		return o, err
	}
	if o.Questions < 0 {
		return o, fmt.Errorf("questions must be positive, got %d", o.Questions)
	}
	if o.Questions == 0 {
		o.Questions = DefaultLearnQuestions
	}
	if o.Duration < 0 {
		return o, fmt.Errorf("duration must be positive, got %s", o.Duration)
	}
	if o.Duration == 0 {
		o.Duration = DefaultPracticeDuration
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o, nil
}

// IsPreset reports whether d is one of the practice timer presets.
func IsPreset(d time.Duration) bool {
	return slices.Contains(PracticeDurations, d)
}
