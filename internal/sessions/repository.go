package sessions

import (
	"context"
	"sync"
	"time"
)

// Repository provides session persistence operations. Lookups of unknown or
// expired sessions return (nil, nil).
type Repository interface {
	Create(ctx context.Context, s *Session) error
	GetByHash(ctx context.Context, hash string) (*Session, error)
	DeleteByHash(ctx context.Context, hash string) error
	Ping(ctx context.Context) error
}

// MemoryRepository keeps sessions in process memory; they do not survive a restart.
type MemoryRepository struct {
	mu    sync.Mutex
	items map[string]*Session
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: map[string]*Session{}, now: time.Now}
}

func (r *MemoryRepository) Create(_ context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.items[s.TokenHash] = &cp
	return nil
}

func (r *MemoryRepository) GetByHash(_ context.Context, hash string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[hash]
	if !ok {
		return nil, nil
	}
	if s.expired(r.now().UTC()) {
		delete(r.items, hash)
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *MemoryRepository) DeleteByHash(_ context.Context, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, hash)
	return nil
}

func (r *MemoryRepository) Ping(context.Context) error { return nil }
