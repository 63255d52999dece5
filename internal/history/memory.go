package history

import (
	"sync"
	"time"
)

// MemoryStore is an in-memory calculation store, used in tests and when
// no database path is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	calcs  []*Calculation
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// Record appends a calculation and fills in its ID and timestamp.
func (m *MemoryStore) Record(calc *Calculation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	calc.ID = m.nextID
	m.nextID++
	if calc.CreatedAt.IsZero() {
		calc.CreatedAt = time.Now()
	}

	stored := *calc
	m.calcs = append(m.calcs, &stored)
	return nil
}

// Recent returns up to limit calculations, newest first.
func (m *MemoryStore) Recent(limit int) ([]*Calculation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	var calcs []*Calculation
	for i := len(m.calcs) - 1; i >= 0 && len(calcs) < limit; i-- {
		copied := *m.calcs[i]
		calcs = append(calcs, &copied)
	}

	return calcs, nil
}

// Get returns a single calculation by ID.
func (m *MemoryStore) Get(id int64) (*Calculation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, calc := range m.calcs {
		if calc.ID == id {
			copied := *calc
			return &copied, nil
		}
	}

	return nil, ErrNotFound
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
