package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"
)

// UserStore is an in-memory account registry keyed by id, with a secondary
// email index. Emails are matched case-insensitively.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string // lowercased email -> id
}

var _ ports.UserRepository = (*UserStore)(nil)

func NewUserStore() *UserStore {
	s := &UserStore{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
	for _, u := range seedUsers() {
		s.byID[u.ID] = u
		s.byEmail[strings.ToLower(u.Email)] = u.ID
	}
	return s
}

func seedUsers() []domain.User {
	created := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	addr := "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"
	return []domain.User{
		{
			ID:            domain.DefaultUserID,
			Email:         "demo@gmgn.ai",
			WalletAddress: &addr,
			DisplayName:   "Demo Trader",
			AvatarURL:     "https://api.dicebear.com/7.x/identicon/svg?seed=user-1",
			CreatedAt:     created,
			UpdatedAt:     created,
		},
		{
			ID:          "user-2",
			Email:       "alice@example.com",
			DisplayName: "Alice",
			AvatarURL:   "https://api.dicebear.com/7.x/identicon/svg?seed=user-2",
			CreatedAt:   created,
			UpdatedAt:   created,
		},
	}
}

func (s *UserStore) FindByID(id string) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.byID[id]; ok {
		return &u
	}
	return nil
}

func (s *UserStore) FindByEmail(email string) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil
	}
	u := s.byID[id]
	return &u
}

func (s *UserStore) Create(u domain.User) bool {
	key := strings.ToLower(u.Email)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byEmail[key]; taken {
		return false
	}
	s.byID[u.ID] = u
	s.byEmail[key] = u.ID
	return true
}
