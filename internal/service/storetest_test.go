package service

import (
	"context"
	"fmt"
	"io"
	"sync"

	"LabSite/internal/storage"
)

// memStore backs the image tests with an in-memory object store.
type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	puts    int
	removed []string

	failPut    bool
	failRemove bool
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte)}
}

func (m *memStore) Exists(ctx context.Context, bucket, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[bucket+"/"+key]
	return ok, nil
}

func (m *memStore) PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, opts storage.PutOptions) error {
	if m.failPut {
		return fmt.Errorf("put %s: store unavailable", key)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[bucket+"/"+key] = data
	m.puts++
	return nil
}

func (m *memStore) RemoveObject(ctx context.Context, bucket, key string) error {
	if m.failRemove {
		return fmt.Errorf("remove %s: store unavailable", key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, bucket+"/"+key)
	m.removed = append(m.removed, key)
	return nil
}
