package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestKV_GetMissing(t *testing.T) {
	s := openTestStore(t)
	_, ok, err := s.KV().Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected missing key")
	}
}

func TestKV_SetGetOverwrite(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	if err := kv.Set(ctx, "k", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "k", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(got) != `{"v":2}` {
		t.Errorf("value = %s, want {\"v\":2}", got)
	}
}

func TestKV_Delete(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c"} {
		if err := kv.Set(ctx, k, []byte("1")); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}
	if err := kv.Delete(ctx, "a", "b", "missing"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	for k, want := range map[string]bool{"a": false, "b": false, "c": true} {
		_, ok, err := kv.Get(ctx, k)
		if err != nil {
			t.Fatalf("get %s: %v", k, err)
		}
		if ok != want {
			t.Errorf("key %s present = %v, want %v", k, ok, want)
		}
	}
}

func TestKV_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.ReviewRepo().SaveCard(ctx, "squares_n=7", CardData{Ease: 2.6, Interval: 1, Due: 61000, Reps: 1}); err != nil {
		t.Fatalf("save card: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	cards, err := s.ReviewRepo().LoadCards(ctx)
	if err != nil {
		t.Fatalf("load cards: %v", err)
	}
	if got := cards["squares_n=7"]; got.Reps != 1 || got.Due != 61000 {
		t.Errorf("card = %+v", got)
	}
}

func TestDefaultDBPath_Env(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "x.db")
	t.Setenv("MATHFLOW_DB", want)
	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("DefaultDBPath() = %q, want %q", got, want)
	}
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MATHFLOW_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if want := filepath.Join(dir, "mathflow", "mathflow.db"); got != want {
		t.Errorf("DefaultDBPath() = %q, want %q", got, want)
	}
}

// failingKV fails every operation.
type failingKV struct{}

var errKVDown = errors.New("kv down")

func (failingKV) Get(context.Context, string) ([]byte, bool, error) { return nil, false, errKVDown }
func (failingKV) Set(context.Context, string, []byte) error { return errKVDown }
func (failingKV) Delete(context.Context, ...string) error { return errKVDown }
