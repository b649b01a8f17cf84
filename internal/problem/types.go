// Package problem turns drill facts into questions and checks answers.
package problem

import "github.com/abhisek/mathflow/internal/facts"

// Question is one drill question ready for display.
type Question struct {
	// Text is the prompt shown to the learner, e.g. "7 x 8" or "13 x ? = 91".
	// Plain ASCII.
	Text string

	// Answer is the correct integer answer.
	Answer int

	// TopicID and Fact identify the fact the question drills, so the answer
	// can be recorded against it.
	TopicID string
	Fact    facts.Fact
}

// Rand picks uniformly from [0, n). *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}
