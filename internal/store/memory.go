package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"heavylingam-backend/internal/domain"
)

// MemoryStore is an in-process Store for development and tests. Identifiers
// are generated client-side and every write pushes a fresh snapshot to all
// live subscribers.
type MemoryStore struct {
	mu      sync.Mutex
	data    map[string]map[string]domain.Listing
	subs    map[string]map[int]SnapshotHandler
	nextSub int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]map[string]domain.Listing),
		subs: make(map[string]map[int]SnapshotHandler),
	}
}

func (s *MemoryStore) Subscribe(ctx context.Context, path string, h SnapshotHandler) (func(), error) {
	s.mu.Lock()
	if s.subs[path] == nil {
		s.subs[path] = make(map[int]SnapshotHandler)
	}
	id := s.nextSub
	s.nextSub++
	s.subs[path][id] = h
	snap := s.snapshotLocked(path)
	s.mu.Unlock()

	h(snap, nil)

	cancel := func() {
		s.mu.Lock()
		delete(s.subs[path], id)
		s.mu.Unlock()
	}

	go func() {
		<-ctx.Done()
		cancel()
	}()

	return cancel, nil
}

func (s *MemoryStore) Append(ctx context.Context, path string, l domain.Listing) (string, error) {
	id := uuid.New().String()
	l.ID = ""

	s.mu.Lock()
	if s.data[path] == nil {
		s.data[path] = make(map[string]domain.Listing)
	}
	s.data[path][id] = l
	s.mu.Unlock()

	s.notify(path)
	return id, nil
}

func (s *MemoryStore) Overwrite(ctx context.Context, path, id string, l domain.Listing) error {
	l.ID = ""

	s.mu.Lock()
	if s.data[path] == nil {
		s.data[path] = make(map[string]domain.Listing)
	}
	s.data[path][id] = l
	s.mu.Unlock()

	s.notify(path)
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, path, id string) error {
	s.mu.Lock()
	delete(s.data[path], id)
	s.mu.Unlock()

	s.notify(path)
	return nil
}

func (s *MemoryStore) notify(path string) {
	s.mu.Lock()
	snap := s.snapshotLocked(path)
	handlers := make([]SnapshotHandler, 0, len(s.subs[path]))
	for _, h := range s.subs[path] {
		handlers = append(handlers, h)
	}
	s.mu.Unlock()

	for _, h := range handlers {
		h(snap, nil)
	}
}

func (s *MemoryStore) snapshotLocked(path string) Snapshot {
	snap := make(Snapshot, len(s.data[path]))
	for id, l := range s.data[path] {
		snap[id] = l
	}
	return snap
}
