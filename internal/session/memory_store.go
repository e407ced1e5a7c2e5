// internal/session/memory_store.go
package session

import (
	"context"
	"sync"

	"movie-catalog-service/internal/domain"
)

// MemoryStore хранит состояние сессий в памяти процесса. Используется в
// тестах и при запуске без Redis. Состояние копируется на входе и выходе,
// чтобы вызывающий код не делил слайсы с хранилищем.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.SessionReviewState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]domain.SessionReviewState),
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (domain.SessionReviewState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		return domain.SessionReviewState{}, nil
	}
	return state.Clone(), nil
}

func (s *MemoryStore) Put(_ context.Context, sessionID string, state domain.SessionReviewState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = state.Clone()
	return nil
}
