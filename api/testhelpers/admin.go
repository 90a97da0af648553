package testhelpers

import (
	"context"
	"fmt"
	"sync"

	"github.com/stadtwache/stadtwache-api/models"
)

// AdminStore is an in-memory databases.AdminDatabase
type AdminStore struct {
	mu     sync.Mutex
	admins map[string]models.AdminUser
}

// NewAdminStore creates an empty admin store
func NewAdminStore() *AdminStore {
	return &AdminStore{admins: map[string]models.AdminUser{}}
}

func (s *AdminStore) FindByUsername(_ context.Context, username string) (*models.AdminUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	admin, ok := s.admins[username]
	if !ok {
		return nil, fmt.Errorf("%w: admin %q", models.ErrNotFound, username)
	}
	return &admin, nil
}

func (s *AdminStore) InsertOne(_ context.Context, admin models.AdminUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.admins[admin.Username]; ok {
		return fmt.Errorf("admin %q already exists", admin.Username)
	}
	s.admins[admin.Username] = admin
	return nil
}
