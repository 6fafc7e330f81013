package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/userdeck/internal/client/models"
)

// MemoryRepository keeps the credential for the lifetime of the process.
type MemoryRepository struct {
	mu   sync.Mutex
	cred models.Credential
	set  bool
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(context.Context) (models.Credential, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cred, r.set, nil
}

func (r *MemoryRepository) Save(_ context.Context, cred models.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cred, r.set = cred, true
	return nil
}

func (r *MemoryRepository) Clear(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cred, r.set = models.Credential{}, false
	return nil
}
