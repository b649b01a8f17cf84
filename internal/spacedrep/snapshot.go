package spacedrep

import "github.com/abhisek/mathflow/internal/store"

// cardFromData restores a card from its persisted form, repairing values that
// would break the card invariants.
func cardFromData(d store.CardData) Card {
	c := Card{Ease: d.Ease, Interval: d.Interval, Due: d.Due, Reps: d.Reps}
	if c.Ease < MinEase {
		c.Ease = MinEase
	}
	if c.Interval < 1 {
		c.Interval = InitialInterval
	}
	if c.Interval > MaxInterval {
		c.Interval = MaxInterval
	}
	if c.Due < 0 {
		c.Due = 0
	}
	if c.Reps < 0 {
		c.Reps = 0
	}
	return c
}

// data exports the card for persistence.
func (c Card) data() store.CardData {
	return store.CardData{Ease: c.Ease, Interval: c.Interval, Due: c.Due, Reps: c.Reps}
}
