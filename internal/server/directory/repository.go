package directory

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/userdeck/internal/common"
)

// Repository stores users ordered by id.
type Repository interface {
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, offset, limit int) ([]User, error)
	Get(ctx context.Context, id int) (User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id int) error
}

// MemoryRepository keeps users in a slice sorted by id. Lookups miss with
// common.ErrorNotFound.
type MemoryRepository struct {
	mu    sync.RWMutex
	users []User
}

func NewMemoryRepository(users []User) *MemoryRepository {
	cp := make([]User, len(users))
	copy(cp, users)
	sort.Slice(cp, func(i, j int) bool { return cp[i].ID < cp[j].ID })
	return &MemoryRepository{users: cp}
}

func (r *MemoryRepository) Count(context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

func (r *MemoryRepository) List(_ context.Context, offset, limit int) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset < 0 || offset >= len(r.users) || limit <= 0 {
		return []User{}, nil
	}
	end := offset + min(limit, len(r.users)-offset)

	out := make([]User, end-offset)
	copy(out, r.users[offset:end])
	return out, nil
}

func (r *MemoryRepository) Get(_ context.Context, id int) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.find(id)
	if !ok {
		return User{}, common.ErrorNotFound
	}
	return r.users[i], nil
}

func (r *MemoryRepository) Update(_ context.Context, u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.find(u.ID)
	if !ok {
		return common.ErrorNotFound
	}
	r.users[i] = u
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.find(id)
	if !ok {
		return common.ErrorNotFound
	}
	r.users = append(r.users[:i], r.users[i+1:]...)
	return nil
}

// find must be called with the lock held.
func (r *MemoryRepository) find(id int) (int, bool) {
	i := sort.Search(len(r.users), func(i int) bool { return r.users[i].ID >= id })
	if i < len(r.users) && r.users[i].ID == id {
		return i, true
	}
	return 0, false
}
