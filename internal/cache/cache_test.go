package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type cachedValue struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client), mr
}

func TestStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "quote:005930", cachedValue{Name: "샘플전자", Price: 70100}, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got cachedValue
	hit, err := store.Get(ctx, "quote:005930", &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if got.Name != "샘플전자" || got.Price != 70100 {
		t.Fatalf("unexpected value: %+v", got)
	}
}

func TestStoreMiss(t *testing.T) {
	store, _ := newTestStore(t)

	var got cachedValue
	hit, err := store.Get(context.Background(), "missing", &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Fatal("expected miss for absent key")
	}
}

func TestStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "k", cachedValue{Name: "x"}, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	var got cachedValue
	hit, err := store.Get(ctx, "k", &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Fatal("expected expired key to miss")
	}
}

func TestStoreDisabled(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	if err := store.Set(ctx, "k", cachedValue{}, time.Minute); err != nil {
		t.Fatalf("Set on disabled store: %v", err)
	}
	var got cachedValue
	hit, err := store.Get(ctx, "k", &got)
	if err != nil || hit {
		t.Fatalf("disabled store should always miss, got hit=%v err=%v", hit, err)
	}
}
