// Package sessions keeps refresh sessions and the list of revoked access
// tokens for the dashboard login.
package sessions

import (
	"time"

	"github.com/klowq/admin-dashboard/internal/models"
)

// Session is one refresh session. Only the SHA-256 of the refresh token is stored.
type Session struct {
	ID        string    `bson:"_id" json:"id"`
	TokenHash string    `bson:"tokenHash" json:"tokenHash"`
	UserID    string    `bson:"userId" json:"userId"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name" json:"name"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

func (s *Session) User() models.User {
	return models.User{ID: s.UserID, Email: s.Email, Name: s.Name}
}

func (s *Session) expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
