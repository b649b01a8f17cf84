package problem

import (
	"strconv"
	"strings"
)

// CheckAnswer compares the learner's input against the question's answer.
// Whitespace is trimmed and leading zeros are ignored ("007" matches 7).
// Anything that does not parse as an integer is wrong.
func CheckAnswer(input string, q Question) bool {
	n, ok := ParseAnswer(input)
	return ok && n == q.Answer
}

// ParseAnswer parses a learner's integer answer.
func ParseAnswer(input string) (int, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, false
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, false
	}
	return n, true
}
