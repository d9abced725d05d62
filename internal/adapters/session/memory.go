package session

import (
	"context"
	"sync"
	"time"

	"github.com/csg33k/hrms-lite/internal/domain"
)

type entry struct {
	state   any
	expires time.Time
}

// MemoryStore keeps page state in process memory, one entry per session and
// page. Entries expire ttl after their last save.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *MemoryStore) LoadEmployees(_ context.Context, sessionID string) (*domain.EmployeesPageState, error) {
	return memLoad[domain.EmployeesPageState](m, Key(sessionID, PageEmployees)), nil
}

func (m *MemoryStore) SaveEmployees(_ context.Context, sessionID string, s *domain.EmployeesPageState) error {
	m.save(Key(sessionID, PageEmployees), *s)
	return nil
}

func (m *MemoryStore) LoadAttendance(_ context.Context, sessionID string) (*domain.AttendancePageState, error) {
	return memLoad[domain.AttendancePageState](m, Key(sessionID, PageAttendance)), nil
}

func (m *MemoryStore) SaveAttendance(_ context.Context, sessionID string, s *domain.AttendancePageState) error {
	m.save(Key(sessionID, PageAttendance), *s)
	return nil
}

// memLoad returns a copy of the value stored under key, or the zero value
// for unknown or expired keys.
func memLoad[T any](m *MemoryStore, key string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return new(T)
	}
	if m.ttl > 0 && m.now().After(e.expires) {
		delete(m.entries, key)
		return new(T)
	}
	st, ok := e.state.(T)
	if !ok {
		return new(T)
	}
	return &st
}

func (m *MemoryStore) save(key string, v any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{state: v, expires: m.now().Add(m.ttl)}
	m.sweep()
}

// sweep drops expired entries. Caller holds mu.
func (m *MemoryStore) sweep() {
	if m.ttl <= 0 {
		return
	}
	now := m.now()
	for k, e := range m.entries {
		if now.After(e.expires) {
			delete(m.entries, k)
		}
	}
}
