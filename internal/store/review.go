package store

import (
	"context"
	"encoding/json"
)

// reviewRepo stores the whole deck as one JSON object under ReviewKey.
type reviewRepo struct {
	kv KV
}

// NewReviewRepo returns a ReviewRepo over kv.
func NewReviewRepo(kv KV) ReviewRepo {
	return &reviewRepo{kv: kv}
}

func (r *reviewRepo) LoadCards(ctx context.Context) (map[string]CardData, error) {
	raw, ok, err := r.kv.Get(ctx, ReviewKey)
	if err != nil {
		return nil, readFailed(err, "load deck")
	}
	if !ok {
		return make(map[string]CardData), nil
	}
	cards := make(map[string]CardData)
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, readFailed(err, "decode deck")
	}
	return cards, nil
}

// SaveCard reads the deck, replaces one entry and writes the deck back. An
// undecodable deck is replaced rather than blocking every future write; an
// unreachable KV fails the write so a transient outage never clobbers data.
func (r *reviewRepo) SaveCard(ctx context.Context, key string, card CardData) error {
	cards := make(map[string]CardData)
	raw, ok, err := r.kv.Get(ctx, ReviewKey)
	if err != nil {
		return writeFailed(err, "load deck")
	}
	if ok {
		if err := json.Unmarshal(raw, &cards); err != nil {
			cards = make(map[string]CardData)
		}
	}

	cards[key] = card
	out, err := json.Marshal(cards)
	if err != nil {
		return writeFailed(err, "encode deck")
	}
	if err := r.kv.Set(ctx, ReviewKey, out); err != nil {
		return writeFailed(err, "save deck")
	}
	return nil
}
