package service

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"LabSite/config"
	"LabSite/internal/storage"
)

func captureEnqueue(t *testing.T) *[][]string {
	t.Helper()
	var calls [][]string
	prev := enqueueCleanup
	enqueueCleanup = func(ctx context.Context, keys []string) error {
		calls = append(calls, append([]string(nil), keys...))
		return nil
	}
	t.Cleanup(func() { enqueueCleanup = prev })
	return &calls
}

func TestCleanupImagesRemovesReplaced(t *testing.T) {
	store := setupImageTest(t)
	calls := captureEnqueue(t)
	base := config.AppConfig.PublicURLBase

	CleanupImages(context.Background(),
		[]string{base + "old.png", base + "kept.png"},
		[]string{base + "kept.png", base + "new.png"},
	)

	if !reflect.DeepEqual(store.removed, []string{"old.png"}) {
		t.Fatalf("expect only the replaced object removed, got %v", store.removed)
	}
	if len(*calls) != 0 {
		t.Fatalf("expect no retry enqueue, got %v", *calls)
	}
}

func TestCleanupImagesNoChange(t *testing.T) {
	store := setupImageTest(t)
	captureEnqueue(t)
	base := config.AppConfig.PublicURLBase

	refs := []string{base + "a.png", base + "b.png"}
	CleanupImages(context.Background(), refs, refs)

	if len(store.removed) != 0 {
		t.Fatalf("expect nothing removed, got %v", store.removed)
	}
}

func TestCleanupImagesDeleteAll(t *testing.T) {
	store := setupImageTest(t)
	captureEnqueue(t)
	base := config.AppConfig.PublicURLBase

	CleanupImages(context.Background(), []string{base + "a.png", base + "b.png"}, nil)

	if !reflect.DeepEqual(store.removed, []string{"a.png", "b.png"}) {
		t.Fatalf("expect both objects removed, got %v", store.removed)
	}
}

func TestCleanupImagesSkipsForeignURLs(t *testing.T) {
	store := setupImageTest(t)
	calls := captureEnqueue(t)

	CleanupImages(context.Background(), []string{"https://example.com/avatar.png"}, nil)

	if len(store.removed) != 0 {
		t.Fatalf("foreign url must never be removed, got %v", store.removed)
	}
	if len(*calls) != 0 {
		t.Fatalf("foreign url must never be retried, got %v", *calls)
	}
}

func TestCleanupImagesFailureGoesToRetryQueue(t *testing.T) {
	store := setupImageTest(t)
	store.failRemove = true
	calls := captureEnqueue(t)
	base := config.AppConfig.PublicURLBase

	CleanupImages(context.Background(), []string{base + "a.png", base + "b.png"}, nil)

	if len(*calls) != 1 {
		t.Fatalf("expect one retry enqueue, got %d", len(*calls))
	}
	if !reflect.DeepEqual((*calls)[0], []string{"a.png", "b.png"}) {
		t.Fatalf("expect failed keys enqueued, got %v", (*calls)[0])
	}
}

func TestCleanupImagesEnqueueFailureDoesNotPropagate(t *testing.T) {
	store := setupImageTest(t)
	store.failRemove = true
	prev := enqueueCleanup
	enqueueCleanup = func(ctx context.Context, keys []string) error {
		return fmt.Errorf("broker down")
	}
	defer func() { enqueueCleanup = prev }()
	base := config.AppConfig.PublicURLBase

	// must only log, never panic or fail the caller
	CleanupImages(context.Background(), []string{base + "a.png"}, nil)
}

func TestDiffRefs(t *testing.T) {
	cases := []struct {
		name     string
		oldRefs  []string
		newRefs  []string
		expected []string
	}{
		{"replaced", []string{"a", "b"}, []string{"b", "c"}, []string{"a"}},
		{"unchanged", []string{"a"}, []string{"a"}, []string{}},
		{"all removed", []string{"a", "b"}, nil, []string{"a", "b"}},
		{"empty strings ignored", []string{"", "a"}, []string{""}, []string{"a"}},
		{"duplicates collapsed", []string{"a", "a", "b"}, []string{"b"}, []string{"a"}},
		{"both empty", nil, nil, []string{}},
	}
	for _, tc := range cases {
		got := diffRefs(tc.oldRefs, tc.newRefs)
		if !reflect.DeepEqual(got, tc.expected) {
			t.Errorf("%s: expect %v, got %v", tc.name, tc.expected, got)
		}
	}
}

func TestImageRefs(t *testing.T) {
	got := imageRefs("", "a.png", "", "b.png")
	if !reflect.DeepEqual(got, []string{"a.png", "b.png"}) {
		t.Fatalf("expect empty urls dropped, got %v", got)
	}
}

var _ storage.Store = (*memStore)(nil)
