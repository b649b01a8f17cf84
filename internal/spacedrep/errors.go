package spacedrep

import "errors"

// ErrEmptyPool is returned when the scheduler is asked to pick from an empty
// pool. Topics without a fact pool must not reach the scheduler.
var ErrEmptyPool = errors.New("spacedrep: empty fact pool")
