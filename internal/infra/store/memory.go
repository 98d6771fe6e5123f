package store

import (
	"context"
	"sync"
	"time"

	"rentacar/internal/domain/booking"
	"rentacar/internal/infra"
	"rentacar/internal/pkg/clock"

	"github.com/google/uuid"
)

type memoryEntry[T any] struct {
	value     T
	expiresAt time.Time
}

// MemoryStore is the single-process store used when no Redis address is
// configured. Expired records are dropped lazily on read and swept on
// write.
type MemoryStore struct {
	mu         sync.Mutex
	sessions   map[uuid.UUID]memoryEntry[Session]
	drafts     map[uuid.UUID]memoryEntry[*booking.Draft]
	sessionTTL time.Duration
	draftTTL   time.Duration
	clock      clock.Clock
}

func NewMemoryStore(sessionTTL, draftTTL time.Duration, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		sessions:   make(map[uuid.UUID]memoryEntry[Session]),
		drafts:     make(map[uuid.UUID]memoryEntry[*booking.Draft]),
		sessionTTL: sessionTTL,
		draftTTL:   draftTTL,
		clock:      clk,
	}
}

func (s *MemoryStore) PutSession(_ context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	sweep(s.sessions, now)
	s.sessions[sess.ID] = memoryEntry[Session]{value: sess, expiresAt: now.Add(s.sessionTTL)}
	return nil
}

func (s *MemoryStore) GetSession(_ context.Context, id uuid.UUID) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok || !entry.expiresAt.After(s.clock.Now()) {
		delete(s.sessions, id)
		return Session{}, infra.WrapInfraErr("session not found", nil, infra.KindNotFound)
	}
	return entry.value, nil
}

func (s *MemoryStore) DeleteSession(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) PutDraft(_ context.Context, d *booking.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	sweep(s.drafts, now)
	copied := *d
	s.drafts[d.ID] = memoryEntry[*booking.Draft]{value: &copied, expiresAt: now.Add(s.draftTTL)}
	return nil
}

func (s *MemoryStore) GetDraft(_ context.Context, id uuid.UUID) (*booking.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.drafts[id]
	if !ok || !entry.expiresAt.After(s.clock.Now()) {
		delete(s.drafts, id)
		return nil, infra.WrapInfraErr("draft not found", nil, infra.KindNotFound)
	}
	copied := *entry.value
	return &copied, nil
}

func (s *MemoryStore) DeleteDraft(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}

func sweep[T any](entries map[uuid.UUID]memoryEntry[T], now time.Time) {
	for id, entry := range entries {
		if !entry.expiresAt.After(now) {
			delete(entries, id)
		}
	}
}
