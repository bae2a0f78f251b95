package sessions

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the default single-process session store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

type memoryEntry struct {
	state     *OrderState
	expiresAt time.Time
}

// NewMemoryStore builds an in-process store. A non-positive TTL disables
// expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: map[string]memoryEntry{},
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) (*OrderState, error) {
	m.mu.RLock()
	entry, ok := m.entries[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if m.ttl > 0 && m.now().After(entry.expiresAt) {
		// Expired entries are evicted lazily on the next read.
		m.mu.Lock()
		delete(m.entries, sessionID)
		m.mu.Unlock()
		return nil, nil
	}
	return entry.state, nil
}

func (m *MemoryStore) Put(_ context.Context, sessionID string, state *OrderState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[sessionID] = memoryEntry{
		state:     state,
		expiresAt: m.now().Add(m.ttl),
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, sessionID)
	return nil
}
