package memory

import (
	"sync"

	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"
)

// CopyStore keeps follow relationships and their settings in memory,
// keyed by (userID, traderID).
type CopyStore struct {
	mu      sync.RWMutex
	follows map[string]map[string]domain.CopySettings // userID -> traderID -> settings
}

var _ ports.CopyTradeRepository = (*CopyStore)(nil)

func NewCopyStore() *CopyStore {
	return &CopyStore{follows: make(map[string]map[string]domain.CopySettings)}
}

func (s *CopyStore) Follow(userID string, settings domain.CopySettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.follows[userID]
	if !ok {
		m = make(map[string]domain.CopySettings)
		s.follows[userID] = m
	}
	m[settings.TraderID] = settings
}

func (s *CopyStore) Unfollow(userID, traderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.follows[userID]
	if !ok {
		return false
	}
	if _, ok := m[traderID]; !ok {
		return false
	}
	delete(m, traderID)
	return true
}

func (s *CopyStore) Settings(userID, traderID string) *domain.CopySettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cfg, ok := s.follows[userID][traderID]; ok {
		return &cfg
	}
	return nil
}

func (s *CopyStore) Update(userID string, settings domain.CopySettings) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.follows[userID]
	if !ok {
		return false
	}
	if _, ok := m[settings.TraderID]; !ok {
		return false
	}
	m[settings.TraderID] = settings
	return true
}
