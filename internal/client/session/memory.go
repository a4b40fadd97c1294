package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/alumnihub/portal-cli/internal/client/models"
)

// MemoryStore is an in-memory Store. It is used by tests and as a fallback
// when no durable storage is wanted (sessions then last only for the
// process lifetime).
type MemoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Save(_ context.Context, token string, user *models.UserProfile) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[keyToken] = []byte(token)
	s.values[keyUser] = data
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, keyToken)
	delete(s.values, keyUser)
	return nil
}

func (s *MemoryStore) Token(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.values[keyToken]), nil
}

func (s *MemoryStore) User(_ context.Context) (*models.UserProfile, error) {
	s.mu.Lock()
	value := s.values[keyUser]
	s.mu.Unlock()

	if len(value) == 0 || string(value) == "null" {
		return nil, nil
	}
	var user models.UserProfile
	if err := json.Unmarshal(value, &user); err != nil {
		return nil, nil
	}
	return &user, nil
}

func (s *MemoryStore) HasToken(ctx context.Context) (bool, error) {
	token, err := s.Token(ctx)
	return token != "", err
}
