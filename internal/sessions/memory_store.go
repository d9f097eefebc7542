package sessions

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/balkashynov/pokerlog/internal/models"
)

// MemoryStore keeps sessions in process memory.
// Used by `serve --memory` and by tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.PokerSession
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]models.PokerSession)}
}

func (m *MemoryStore) Create(ctx context.Context, session *models.PokerSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	m.sessions[session.ID] = *session
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*models.PokerSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &session, nil
}

func (m *MemoryStore) List(ctx context.Context) ([]models.PokerSession, error) {
	return m.filter(func(models.PokerSession) bool { return true }), nil
}

func (m *MemoryStore) ListActive(ctx context.Context) ([]models.PokerSession, error) {
	return m.filter(func(s models.PokerSession) bool { return s.IsActive }), nil
}

func (m *MemoryStore) Update(ctx context.Context, session *models.PokerSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[session.ID]; !ok {
		return ErrNotFound
	}
	m.sessions[session.ID] = *session
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) (*models.PokerSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(m.sessions, id)
	return &session, nil
}

// End runs finalize and stores the result under a single write lock
func (m *MemoryStore) End(ctx context.Context, id string, finalize func(models.PokerSession) (models.PokerSession, error)) (*models.PokerSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	ended, err := finalize(current)
	if err != nil {
		return nil, err
	}
	m.sessions[id] = ended
	return &ended, nil
}

// filter returns matching sessions ordered by start time, most recent first
func (m *MemoryStore) filter(keep func(models.PokerSession) bool) []models.PokerSession {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.PokerSession, 0, len(m.sessions))
	for _, s := range m.sessions {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})
	return out
}
