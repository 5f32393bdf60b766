// Package users authenticates the dashboard administrator.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/klowq/admin-dashboard/internal/models"
)

// AdminID is the subject carried in tokens for the single admin account.
const AdminID = "admin"

// Service encapsulates the admin credential check. The plaintext password is
// hashed once at construction and discarded.
type Service struct {
	email string
	name  string
	hash  []byte
}

type Option func(*options)

type options struct{ cost int }

// WithCost sets the bcrypt cost; tests use bcrypt.MinCost.
func WithCost(cost int) Option { return func(o *options) { o.cost = cost } }

func NewService(email, password, name string, opts ...Option) (*Service, error) {
	o := options{cost: bcrypt.DefaultCost}
	for _, fn := range opts {
		fn(&o)
	}
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: admin email and password are required", models.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), o.cost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	if name == "" {
		name = "Admin"
	}
	return &Service{email: email, name: name, hash: hash}, nil
}

// Admin returns the identity of the configured administrator.
func (s *Service) Admin() models.User {
	return models.User{ID: AdminID, Email: s.email, Name: s.name}
}

// Authenticate checks the credentials; the email comparison ignores case.
func (s *Service) Authenticate(_ context.Context, email, password string) (*models.User, error) {
	if !strings.EqualFold(strings.TrimSpace(email), s.email) {
		// keep the timing close to a real comparison
		_ = bcrypt.CompareHashAndPassword(s.hash, []byte(password))
		return nil, models.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, models.ErrUnauthorized
		}
		return nil, fmt.Errorf("compare admin password: %w", err)
	}
	u := s.Admin()
	return &u, nil
}
