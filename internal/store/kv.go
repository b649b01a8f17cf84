package store

import (
	"context"
	"database/sql"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/pkg/errors"
)

// KV is the durable key-value substrate. Values are opaque bytes; the typed
// repos store JSON.
type KV interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}

const kvTable = "kv_entries"

// sqliteKV implements KV on a single SQLite table. Statements are built with
// ent's SQL builder so quoting follows the SQLite dialect.
type sqliteKV struct {
	db *sql.DB
}

func newSQLiteKV(ctx context.Context, db *sql.DB) (*sqliteKV, error) {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv_entries (
		name TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at INTEGER NOT NULL
	)`)
	if err != nil {
		return nil, err
	}
	return &sqliteKV{db: db}, nil
}

func (k *sqliteKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("value").
		From(entsql.Table(kvTable)).
		Where(entsql.EQ("name", key)).
		Query()

	var value []byte
	err := k.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "kv get %q", key)
	}
	return value, true, nil
}

func (k *sqliteKV) Set(ctx context.Context, key string, value []byte) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(kvTable).
		Columns("name", "value", "updated_at").
		Values(key, value, time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := k.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "kv set %q", key)
	}
	return nil
}

func (k *sqliteKV) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	args := make([]any, len(keys))
	for i, key := range keys {
		args[i] = key
	}
	query, qargs := entsql.Dialect(dialect.SQLite).
		Delete(kvTable).
		Where(entsql.In("name", args...)).
		Query()

	if _, err := k.db.ExecContext(ctx, query, qargs...); err != nil {
		return errors.Wrap(err, "kv delete")
	}
	return nil
}
