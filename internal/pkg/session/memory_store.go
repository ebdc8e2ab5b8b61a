package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type memoryEntry struct {
	token     string
	views     map[string][]byte
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an in-process store; ttl <= 0 disables expiry
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// entry returns the live entry for sid, dropping it when expired.
// Caller must hold the write lock.
func (s *MemoryStore) entry(sid string, create bool) *memoryEntry {
	e, ok := s.entries[sid]
	if ok && !e.expiresAt.IsZero() && s.now().After(e.expiresAt) {
		delete(s.entries, sid)
		ok = false
	}
	if !ok {
		if !create {
			return nil
		}
		e = &memoryEntry{views: make(map[string][]byte)}
		s.entries[sid] = e
	}
	if create && s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	return e
}

func (s *MemoryStore) SetToken(_ context.Context, sid, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(sid, true).token = token
	return nil
}

func (s *MemoryStore) GetToken(_ context.Context, sid string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(sid, false)
	if e == nil || e.token == "" {
		return "", ErrNotFound
	}
	return e.token, nil
}

func (s *MemoryStore) SaveView(_ context.Context, sid, name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal view %s: %w", name, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(sid, true).views[name] = data
	return nil
}

func (s *MemoryStore) LoadView(_ context.Context, sid, name string, v interface{}) error {
	s.mu.Lock()
	e := s.entry(sid, false)
	var data []byte
	if e != nil {
		data = e.views[name]
	}
	s.mu.Unlock()

	if data == nil {
		return ErrNotFound
	}
	return json.Unmarshal(data, v)
}

func (s *MemoryStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sid)
	return nil
}

// Len returns the number of live sessions
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
