package app

import (
	"errors"
	"sync"

	"archsdinos/internal/domain"
)

var ErrSessionExists = errors.New("session already registered")

// GameSessionManager is the registry of live matches. It is safe for
// concurrent use; a session removed while a call still holds it stays valid
// for that call.
type GameSessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*domain.GameSession
}

func NewGameSessionManager() *GameSessionManager {
	return &GameSessionManager{sessions: make(map[string]*domain.GameSession)}
}

// AddSession registers s under its match id.
func (m *GameSessionManager) AddSession(s *domain.GameSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.sessions[s.MatchID]; exists {
		return ErrSessionExists
	}
	m.sessions[s.MatchID] = s
	return nil
}

func (m *GameSessionManager) GetSession(matchID string) (*domain.GameSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[matchID]
	return s, ok
}

// GetPlayer finds a seat in a registered session.
func (m *GameSessionManager) GetPlayer(matchID, userID string) (*domain.Player, bool) {
	s, ok := m.GetSession(matchID)
	if !ok {
		return nil, false
	}
	return s.Player(userID)
}

// RemoveSession drops a session; removing an unknown id is a no-op.
func (m *GameSessionManager) RemoveSession(matchID string) {
	m.mu.Lock()
	delete(m.sessions, matchID)
	m.mu.Unlock()
}

// Sessions returns a snapshot of every live session.
func (m *GameSessionManager) Sessions() []*domain.GameSession {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.GameSession, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out
}

func (m *GameSessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
