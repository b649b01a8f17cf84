package facts

import "errors"

var (
	// ErrUnknownTopic is returned when a topic ID is not in the catalog.
	ErrUnknownTopic = errors.New("facts: unknown topic")

	// ErrInvalidTopic is returned when a topic definition fails validation.
	ErrInvalidTopic = errors.New("facts: invalid topic")

	// ErrInvalidTopicFile is returned when a custom topic file cannot be parsed
	// or does not match the topic file schema.
	ErrInvalidTopicFile = errors.New("facts: invalid topic file")
)
