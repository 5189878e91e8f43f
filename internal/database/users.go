package database

import (
	"errors"
	"permit-portal/internal/models"
	"sort"
	"strings"
	"sync"
)

var ErrEmailTaken = errors.New("email already registered")

type UpdateUserParams struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

type UserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*models.User)}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create inserts or replaces the user with the same ID.
func (s *UserStore) Create(user *models.User) *models.User {
	u := *user
	u.Email = normalizeEmail(u.Email)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = &u

	out := u
	return &out
}

// CreateIfEmailFree inserts user unless another user already owns the email.
func (s *UserStore) CreateIfEmailFree(user *models.User) (*models.User, error) {
	u := *user
	u.Email = normalizeEmail(u.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByEmailLocked(u.Email) != nil {
		return nil, ErrEmailTaken
	}
	s.users[u.ID] = &u

	out := u
	return &out, nil
}

func (s *UserStore) findByEmailLocked(email string) *models.User {
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (s *UserStore) GetByID(id string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil
	}
	out := *u
	return &out
}

// GetByEmail matches case-insensitively.
func (s *UserStore) GetByEmail(email string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.findByEmailLocked(normalizeEmail(email))
	if u == nil {
		return nil
	}
	out := *u
	return &out
}

// Update merges the non-nil fields. It returns nil, nil when the user does
// not exist and ErrEmailTaken when the new email belongs to someone else.
func (s *UserStore) Update(id string, arg UpdateUserParams) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}

	updated := *u
	if arg.Name != nil {
		updated.Name = *arg.Name
	}
	if arg.Email != nil {
		email := normalizeEmail(*arg.Email)
		if other := s.findByEmailLocked(email); other != nil && other.ID != id {
			return nil, ErrEmailTaken
		}
		updated.Email = email
	}
	if arg.PasswordHash != nil {
		updated.PasswordHash = *arg.PasswordHash
	}
	s.users[id] = &updated

	out := updated
	return &out, nil
}

func (s *UserStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	return true
}

// List returns all users, oldest first.
func (s *UserStore) List() []models.User {
	s.mu.RLock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	s.mu.RUnlock()

	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID < users[j].ID
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users
}

func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
