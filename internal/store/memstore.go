package store

import (
	"context"
	"sync"
	"time"

	"github.com/clearclaim/fnoltriage/internal/model"
)

// memStore implements Store in memory, for tests and ephemeral runs
type memStore struct {
	mu      sync.RWMutex
	records []model.Record
	byID    map[string]int
}

// NewMemStore creates an in-memory decision store
func NewMemStore() Store {
	return &memStore{byID: make(map[string]int)}
}

func (s *memStore) Save(_ context.Context, source string, decision model.Decision) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := model.Record{
		ID:        newRecordID(),
		Source:    source,
		CreatedAt: time.Now().UTC(),
		Decision:  decision,
	}

	s.byID[record.ID] = len(s.records)
	s.records = append(s.records, record)
	return record, nil
}

func (s *memStore) Get(_ context.Context, id string) (model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return model.Record{}, ErrNotFound
	}
	return s.records[idx], nil
}

func (s *memStore) List(_ context.Context, limit int) ([]model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.records)
	if limit <= 0 || limit > n {
		limit = n
	}

	// Newest first.
	out := make([]model.Record, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}

func (s *memStore) Close() error {
	return nil
}
