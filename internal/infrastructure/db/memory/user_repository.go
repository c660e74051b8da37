// Package memory provides in-process implementations of the credential store
// and attendance ledger. They back the test suite and STORE_DRIVER=memory.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gctu/attendance-api/internal/core/domain"
	"github.com/gctu/attendance-api/internal/core/ports"
)

// UserRepository keeps users in a map keyed by user_id.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

var _ ports.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) FindByID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	return r.filter(func(*domain.User) bool { return true }), nil
}

func (r *UserRepository) ListByRole(_ context.Context, role domain.Role) ([]*domain.User, error) {
	return r.filter(func(u *domain.User) bool { return u.Role == role }), nil
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.UserID]; exists {
		return domain.ErrUserExists
	}
	r.users[user.UserID] = cloneUser(user)
	return nil
}

func (r *UserRepository) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *UserRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

// filter returns matching users ordered by role partition, then user_id.
func (r *UserRepository) filter(keep func(*domain.User) bool) []*domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		if keep(u) {
			out = append(out, cloneUser(u))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Role != out[j].Role {
			return roleOrder(out[i].Role) < roleOrder(out[j].Role)
		}
		return out[i].UserID < out[j].UserID
	})
	return out
}

func roleOrder(role domain.Role) int {
	for i, r := range domain.Roles() {
		if r == role {
			return i
		}
	}
	return len(domain.Roles())
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Courses = append([]string(nil), u.Courses...)
	clone.Levels = append([]int(nil), u.Levels...)
	return &clone
}
