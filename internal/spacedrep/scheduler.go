package spacedrep

import (
	"context"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/abhisek/mathflow/internal/facts"
	"github.com/abhisek/mathflow/internal/store"
)

// Scheduler picks the next fact to drill and records answers.
//
// Storage failures never reach the caller: a failed read is treated as an
// empty deck, and a card whose write failed is kept in memory so it still
// drives scheduling for the life of the Scheduler.
type Scheduler struct {
	reviews store.ReviewRepo
	clock   Clock
	rng     Rand
	logger  *slog.Logger

	// unsaved holds cards whose last write failed, by Card Key.
	unsaved map[string]Card
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock sets the time source.
func WithClock(c Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

// WithRand sets the random source used to pick among candidates.
func WithRand(r Rand) Option {
	return func(s *Scheduler) { s.rng = r }
}

// WithSeed seeds a private random source, for reproducible sequences.
func WithSeed(seed int64) Option {
	return func(s *Scheduler) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the logger used for storage warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// NewScheduler creates a scheduler over the given review repo.
func NewScheduler(reviews store.ReviewRepo, opts ...Option) *Scheduler {
	s := &Scheduler{
		reviews: reviews,
		clock:   SystemClock,
		logger:  slog.Default(),
		unsaved: make(map[string]Card),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// deck loads every stored card, overlaid with unsaved ones.
func (s *Scheduler) deck(ctx context.Context) map[string]Card {
	data, err := s.reviews.LoadCards(ctx)
	if err != nil {
		s.logger.Warn("review store unreadable, using fresh cards", "error", err)
		data = nil
	}
	cards := make(map[string]Card, len(data)+len(s.unsaved))
	for k, d := range data {
		cards[k] = cardFromData(d)
	}
	for k, c := range s.unsaved {
		cards[k] = c
	}
	return cards
}

// lookup returns the card for key in deck, or a fresh default card. The
// default is not persisted.
func lookup(deck map[string]Card, key string) Card {
	if c, ok := deck[key]; ok {
		return c
	}
	return NewCard()
}

type scoredFact struct {
	fact  facts.Fact
	score int64
}

// Candidates returns the top-scored facts of pool eligible for selection:
// the highest 30% by score, rounded up, at least one. Ties keep pool order.
func (s *Scheduler) Candidates(ctx context.Context, topicID string, pool []facts.Fact) ([]facts.Fact, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	deck := s.deck(ctx)
	now := s.clock.Now()

	scored := make([]scoredFact, len(pool))
	for i, f := range pool {
		scored[i] = scoredFact{fact: f, score: lookup(deck, f.Key(topicID)).Score(now)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	n := candidateCount(len(pool))
	out := make([]facts.Fact, n)
	for i := range out {
		out[i] = scored[i].fact
	}
	return out, nil
}

// SelectNext returns a fact from pool chosen uniformly at random among the
// candidates. It returns ErrEmptyPool, touching no state, for an empty pool.
func (s *Scheduler) SelectNext(ctx context.Context, topicID string, pool []facts.Fact) (facts.Fact, error) {
	candidates, err := s.Candidates(ctx, topicID, pool)
	if err != nil {
		return nil, err
	}
	return candidates[s.rng.Intn(len(candidates))], nil
}

// Record applies one answer to the fact's card and persists it, replacing any
// prior entry. It always succeeds; the updated card is returned.
func (s *Scheduler) Record(ctx context.Context, topicID string, fact facts.Fact, correct bool) Card {
	key := fact.Key(topicID)
	card := lookup(s.deck(ctx), key).Apply(correct, s.clock.Now())

	if err := s.reviews.SaveCard(ctx, key, card.data()); err != nil {
		s.logger.Warn("review not saved, keeping it in memory", "key", key, "error", err)
		s.unsaved[key] = card
		return card
	}
	delete(s.unsaved, key)
	return card
}

// Card returns the current card for a fact, or the default card.
func (s *Scheduler) Card(ctx context.Context, topicID string, fact facts.Fact) Card {
	return lookup(s.deck(ctx), fact.Key(topicID))
}
