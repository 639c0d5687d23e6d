package cooldown

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps cooldowns in process. Expired keys are removed lazily and by Sweep.
type MemoryStore struct {
	now func() time.Time

	mu      sync.Mutex
	expires map[string]time.Time
	closed  bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:     time.Now,
		expires: make(map[string]time.Time),
	}
}

func (m *MemoryStore) Acquire(_ context.Context, key string, duration time.Duration) (bool, time.Duration, error) {
	if err := validate(key, duration); err != nil {
		return false, 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return false, 0, ErrStoreClosed
	}

	now := m.now()

	if expires, ok := m.expires[key]; ok && now.Before(expires) {
		return false, expires.Sub(now), nil
	}

	m.expires[key] = now.Add(duration)

	return true, 0, nil
}

func (m *MemoryStore) Reset(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.expires, key)

	return nil
}

// Sweep removes expired keys and returns how many were removed.
func (m *MemoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0

	for key, expires := range m.expires {
		if !now.Before(expires) {
			delete(m.expires, key)
			removed++
		}
	}

	return removed
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.expires = nil

	return nil
}
