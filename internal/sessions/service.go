package sessions

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/klowq/admin-dashboard/internal/models"
)

// Service wraps repository operations with business logic
type Service struct {
	repo Repository
	ttl  time.Duration
	now  func() time.Time
}

func NewService(r Repository, ttl time.Duration) *Service {
	return &Service{repo: r, ttl: ttl, now: time.Now}
}

func hashToken(refresh string) string {
	sum := sha256.Sum256([]byte(refresh))
	return hex.EncodeToString(sum[:])
}

// CreateSession stores a new refresh session for u and returns the opaque refresh token.
func (s *Service) CreateSession(ctx context.Context, u models.User) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	refresh := base64.RawURLEncoding.EncodeToString(b)
	now := s.now().UTC()
	sess := &Session{
		ID:        uuid.NewString(),
		TokenHash: hashToken(refresh),
		UserID:    u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return refresh, nil
}

// ValidateRefresh returns the session for a live refresh token, or ErrUnauthorized.
func (s *Service) ValidateRefresh(ctx context.Context, refresh string) (*Session, error) {
	if refresh == "" {
		return nil, models.ErrUnauthorized
	}
	h := hashToken(refresh)
	sess, err := s.repo.GetByHash(ctx, h)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess == nil {
		return nil, models.ErrUnauthorized
	}
	if sess.expired(s.now().UTC()) {
		// cleanup expired session
		_ = s.repo.DeleteByHash(ctx, h)
		return nil, models.ErrUnauthorized
	}
	return sess, nil
}

func (s *Service) DeleteRefresh(ctx context.Context, refresh string) error {
	if refresh == "" {
		return nil
	}
	return s.repo.DeleteByHash(ctx, hashToken(refresh))
}

// Ping reports whether the backing store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
