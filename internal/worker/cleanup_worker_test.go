package worker

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"testing"
	"time"

	"LabSite/config"
	"LabSite/internal/storage"

	"golang.org/x/time/rate"
)

type fakeStore struct {
	removed  []string
	failKeys map[string]bool
}

func (f *fakeStore) Exists(ctx context.Context, bucket, key string) (bool, error) {
	return false, nil
}

func (f *fakeStore) PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, opts storage.PutOptions) error {
	return nil
}

func (f *fakeStore) RemoveObject(ctx context.Context, bucket, key string) error {
	if f.failKeys[key] {
		return fmt.Errorf("remove %s: store unavailable", key)
	}
	f.removed = append(f.removed, key)
	return nil
}

func setFakeStore(t *testing.T) *fakeStore {
	t.Helper()
	config.AppConfig.BucketName = "lab-images"
	store := &fakeStore{}
	prev := storage.Default
	storage.Default = store
	t.Cleanup(func() { storage.Default = prev })
	return store
}

func TestRemoveKeysAll(t *testing.T) {
	store := setFakeStore(t)

	remaining, err := removeKeys(context.Background(), nil, []string{"a.png", "b.png"})
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expect nothing remaining, got %v", remaining)
	}
	if !reflect.DeepEqual(store.removed, []string{"a.png", "b.png"}) {
		t.Fatalf("expect both removed, got %v", store.removed)
	}
}

func TestRemoveKeysKeepsFailed(t *testing.T) {
	store := setFakeStore(t)
	store.failKeys = map[string]bool{"b.png": true}

	remaining, err := removeKeys(context.Background(), nil, []string{"a.png", "b.png", "c.png"})
	if err == nil {
		t.Fatal("expect the last error reported")
	}
	if !reflect.DeepEqual(remaining, []string{"b.png"}) {
		t.Fatalf("expect only the failed key remaining, got %v", remaining)
	}
	if !reflect.DeepEqual(store.removed, []string{"a.png", "c.png"}) {
		t.Fatalf("expect other keys still removed, got %v", store.removed)
	}
}

func TestRemoveKeysCancelledContext(t *testing.T) {
	setFakeStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	limiter := rate.NewLimiter(1, 1)
	remaining, err := removeKeys(ctx, limiter, []string{"a.png", "b.png"})
	if err == nil {
		t.Fatal("expect error from cancelled context")
	}
	if !reflect.DeepEqual(remaining, []string{"a.png", "b.png"}) {
		t.Fatalf("expect all keys kept for redelivery, got %v", remaining)
	}
}

func TestPickRetryDelay(t *testing.T) {
	delays := []time.Duration{time.Second, 5 * time.Second, time.Minute}

	cases := []struct {
		attempt  int
		expected time.Duration
	}{
		{1, time.Second},
		{2, 5 * time.Second},
		{3, time.Minute},
		{4, time.Minute},
		{0, time.Second},
	}
	for _, tc := range cases {
		if got := pickRetryDelay(tc.attempt, delays); got != tc.expected {
			t.Errorf("attempt %d: expect %v, got %v", tc.attempt, tc.expected, got)
		}
	}

	if got := pickRetryDelay(1, nil); got != time.Minute {
		t.Errorf("expect default delay, got %v", got)
	}
}
