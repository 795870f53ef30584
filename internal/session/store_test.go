package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisStoreTest(t *testing.T) (*RedisStore, func()) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(rdb, time.Hour)
	return store, func() {
		rdb.Close()
		mr.Close()
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store, done := newRedisStoreTest(t)
	defer done()
	ctx := context.Background()

	if err := store.Save(ctx, "sid-1", "tok-1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx, "sid-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "tok-1" {
		t.Fatalf("load = %q, want tok-1", got)
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	store, done := newRedisStoreTest(t)
	defer done()
	ctx := context.Background()

	if err := store.Save(ctx, "sid-1", "tok-old"); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := store.Save(ctx, "sid-1", "tok-new"); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err := store.Load(ctx, "sid-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "tok-new" {
		t.Fatalf("load = %q, want tok-new", got)
	}
}

func TestStoreLoadAbsent(t *testing.T) {
	store, done := newRedisStoreTest(t)
	defer done()

	if _, err := store.Load(context.Background(), "missing"); !errors.Is(err, ErrNoCredential) {
		t.Fatalf("load absent = %v, want ErrNoCredential", err)
	}
	if _, err := store.Load(context.Background(), ""); !errors.Is(err, ErrNoCredential) {
		t.Fatalf("load empty id = %v, want ErrNoCredential", err)
	}
}

func TestStoreClearIdempotent(t *testing.T) {
	store, done := newRedisStoreTest(t)
	defer done()
	ctx := context.Background()

	if err := store.Save(ctx, "sid-1", "tok-1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(ctx, "sid-1"); err != nil {
		t.Fatalf("first clear: %v", err)
	}
	if err := store.Clear(ctx, "sid-1"); err != nil {
		t.Fatalf("second clear: %v", err)
	}
	if _, err := store.Load(ctx, "sid-1"); !errors.Is(err, ErrNoCredential) {
		t.Fatalf("load after clear = %v, want ErrNoCredential", err)
	}
}

func TestStoreRejectsEmptyInput(t *testing.T) {
	store, done := newRedisStoreTest(t)
	defer done()
	ctx := context.Background()

	if err := store.Save(ctx, "", "tok"); err == nil {
		t.Fatalf("save with empty session id must fail")
	}
	if err := store.Save(ctx, "sid", ""); err == nil {
		t.Fatalf("save with empty token must fail")
	}
}
