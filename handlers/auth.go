package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/klowq/admin-dashboard/internal/models"
	"github.com/klowq/admin-dashboard/internal/sessions"
	"github.com/klowq/admin-dashboard/internal/tokens"
	"github.com/klowq/admin-dashboard/pkg/logger"
	"github.com/klowq/admin-dashboard/pkg/metrics"
	"github.com/klowq/admin-dashboard/pkg/middleware"
)

// Authenticator checks admin credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthHandler holds dependencies
type AuthHandler struct {
	users       Authenticator
	sessions    *sessions.Service
	issuer      *tokens.Issuer
	revocations sessions.Revocations
	refreshTTL  time.Duration
	secure      bool
}

// AuthOptions carries cookie settings for the auth endpoints.
type AuthOptions struct {
	RefreshTTL    time.Duration
	SecureCookies bool
}

func NewAuthHandler(u Authenticator, s *sessions.Service, iss *tokens.Issuer, rev sessions.Revocations, opts AuthOptions) *AuthHandler {
	return &AuthHandler{users: u, sessions: s, issuer: iss, revocations: rev, refreshTTL: opts.RefreshTTL, secure: opts.SecureCookies}
}

// Register routes under /auth. loginGuard (typically a rate limiter) runs before Login.
func (h *AuthHandler) Register(rg *gin.RouterGroup, loginGuard ...gin.HandlerFunc) {
	a := rg.Group("/auth")
	a.POST("/login", append(loginGuard, h.Login)...)
	a.POST("/refresh", h.Refresh)
	a.POST("/logout", h.Logout)
}

func (h *AuthHandler) setCookie(c *gin.Context, name, value string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, int(ttl.Seconds()), "/", "", h.secure, true)
}

func (h *AuthHandler) clearCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", h.secure, true)
}

// Login checks the admin credential and starts a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}
	ctx := c.Request.Context()
	u, err := h.users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			metrics.LoginAttempts.WithLabelValues("rejected").Inc()
			logger.Warnf("login rejected for %q from %s", req.Email, c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		fail(c, err, messages{failure: "Login failed"})
		return
	}

	refresh, err := h.sessions.CreateSession(ctx, *u)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		fail(c, err, messages{failure: "Failed to create session"})
		return
	}
	access, _, err := h.issuer.GenerateAccessToken(*u)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		fail(c, err, messages{failure: "Failed to create access token"})
		return
	}
	metrics.LoginAttempts.WithLabelValues("ok").Inc()
	logger.Infof("admin %s signed in", u.Email)

	h.setCookie(c, middleware.SessionCookie, access, h.issuer.TTL())
	h.setCookie(c, middleware.RefreshCookie, refresh, h.refreshTTL)
	c.JSON(http.StatusOK, gin.H{
		"accessToken":  access,
		"refreshToken": refresh,
		"expiresIn":    int(h.issuer.TTL().Seconds()),
		"user":         u,
	})
}

func refreshFrom(c *gin.Context) string {
	var req refreshRequest
	if c.Request.ContentLength != 0 {
		_ = c.ShouldBindJSON(&req)
	}
	if req.RefreshToken != "" {
		return req.RefreshToken
	}
	v, _ := c.Cookie(middleware.RefreshCookie)
	return v
}

// Refresh accepts a refresh token (body or cookie) and returns a new access token
func (h *AuthHandler) Refresh(c *gin.Context) {
	sess, err := h.sessions.ValidateRefresh(c.Request.Context(), refreshFrom(c))
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
			return
		}
		fail(c, err, messages{failure: "Failed to refresh session"})
		return
	}
	access, _, err := h.issuer.GenerateAccessToken(sess.User())
	if err != nil {
		fail(c, err, messages{failure: "Failed to create access token"})
		return
	}
	h.setCookie(c, middleware.SessionCookie, access, h.issuer.TTL())
	c.JSON(http.StatusOK, gin.H{"accessToken": access, "expiresIn": int(h.issuer.TTL().Seconds())})
}

// Logout deletes the refresh session, revokes the presented access token
// until it expires and clears both cookies. It succeeds without a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	if raw := middleware.TokenFromRequest(c); raw != "" && h.revocations != nil {
		if claims, err := h.issuer.Verify(ctx, raw); err == nil {
			if err := h.revocations.Revoke(ctx, claims.ID, claims.Remaining(time.Now())); err != nil {
				fail(c, err, messages{failure: "Failed to revoke access token"})
				return
			}
		}
	}
	if err := h.sessions.DeleteRefresh(ctx, refreshFrom(c)); err != nil {
		fail(c, err, messages{failure: "Failed to remove session"})
		return
	}
	h.clearCookie(c, middleware.SessionCookie)
	h.clearCookie(c, middleware.RefreshCookie)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
