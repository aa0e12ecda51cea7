// Package store provides concurrency-safe in-memory storage for records.
package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when no record exists for the id.
var ErrNotFound = errors.New("record not found")

// Record is the domain entity: a movie with a stable identity key.
type Record struct {
	ID    string
	Title string
	Genre string
}

// Store is the CRUD contract the record service depends on. Implementations
// must provide per-key linearizability: two concurrent writes to the same id
// resolve in the order their lock acquisitions are granted.
type Store interface {
	// Put inserts or overwrites by id (last-write-wins).
	Put(ctx context.Context, rec Record) error
	// Get returns the stored value, or ErrNotFound.
	Get(ctx context.Context, id string) (Record, error)
	// Replace overwrites an existing record under one lock acquisition
	// and reports whether the id was present. An absent id is left
	// untouched: replace never creates.
	Replace(ctx context.Context, rec Record) (bool, error)
	// List returns a snapshot of all current values in unspecified order.
	List(ctx context.Context) ([]Record, error)
	// Delete removes if present and reports whether anything was removed.
	// Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) (bool, error)
}

// Memory is the reference Store backed by a single map under one lock.
type Memory struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		records: make(map[string]Record),
	}
}

// Put inserts or overwrites the record keyed by its id.
func (m *Memory) Put(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[rec.ID] = rec
	return nil
}

// Replace overwrites the record for rec.ID if one exists. The check and
// the write happen under the same lock, so a concurrent delete cannot
// slip between them and be undone.
func (m *Memory) Replace(_ context.Context, rec Record) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[rec.ID]; !ok {
		return false, nil
	}
	m.records[rec.ID] = rec
	return true, nil
}

// Get returns the stored record for id, or ErrNotFound.
func (m *Memory) Get(_ context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// List returns a copied snapshot of all records. Order follows map
// iteration and callers must not depend on it.
func (m *Memory) List(_ context.Context) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Record, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	return out, nil
}

// Delete removes the record for id and reports whether one was present.
func (m *Memory) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.records[id]
	if ok {
		delete(m.records, id)
	}
	return ok, nil
}

// Len reports the current number of records.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
