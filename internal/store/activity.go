package store

import (
	"context"
	"encoding/json"
)

type activityRepo struct {
	kv KV
}

// NewActivityRepo returns an ActivityRepo over kv.
func NewActivityRepo(kv KV) ActivityRepo {
	return &activityRepo{kv: kv}
}

func (r *activityRepo) LoadActivity(ctx context.Context) (map[string]DayActivityData, error) {
	days := make(map[string]DayActivityData)
	if err := r.load(ctx, ActivityKey, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (r *activityRepo) SaveActivity(ctx context.Context, days map[string]DayActivityData) error {
	return r.save(ctx, ActivityKey, days)
}

func (r *activityRepo) LoadStreak(ctx context.Context) (StreakData, error) {
	var s StreakData
	if err := r.load(ctx, StreakKey, &s); err != nil {
		return StreakData{}, err
	}
	return s, nil
}

func (r *activityRepo) SaveStreak(ctx context.Context, s StreakData) error {
	return r.save(ctx, StreakKey, s)
}

func (r *activityRepo) load(ctx context.Context, key string, v any) error {
	raw, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return readFailed(err, "load %s", key)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return readFailed(err, "decode %s", key)
	}
	return nil
}

func (r *activityRepo) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return writeFailed(err, "encode %s", key)
	}
	if err := r.kv.Set(ctx, key, raw); err != nil {
		return writeFailed(err, "save %s", key)
	}
	return nil
}
