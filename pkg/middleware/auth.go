package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/klowq/admin-dashboard/internal/models"
	"github.com/klowq/admin-dashboard/internal/tokens"
	"github.com/klowq/admin-dashboard/pkg/logger"
)

const (
	SessionCookie = "dashboard_session"
	RefreshCookie = "dashboard_refresh"

	ContextUser   = "user"
	ContextClaims = "claims"
)

// Verifier is the minimal interface the middleware depends on
type Verifier interface {
	Verify(ctx context.Context, raw string) (*tokens.Claims, error)
}

// RevocationChecker reports access tokens that were logged out early. May be nil.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// TokenFromRequest returns the access token from "Authorization: Bearer" or,
// failing that, the session cookie.
func TokenFromRequest(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		if tok, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return strings.TrimSpace(tok)
		}
		return ""
	}
	if v, err := c.Cookie(SessionCookie); err == nil {
		return v
	}
	return ""
}

func authenticate(c *gin.Context, ver Verifier, rev RevocationChecker) (*tokens.Claims, bool) {
	raw := TokenFromRequest(c)
	if raw == "" {
		return nil, false
	}
	claims, err := ver.Verify(c.Request.Context(), raw)
	if err != nil {
		logger.Debugf("auth: rejected token: %v", err)
		return nil, false
	}
	if rev != nil {
		revoked, err := rev.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			logger.Errorf("auth: revocation check failed: %v", err)
			return nil, false
		}
		if revoked {
			return nil, false
		}
	}
	c.Set(ContextClaims, claims)
	c.Set(ContextUser, claims.User())
	return claims, true
}

// AuthMiddleware guards JSON routes: requests without a valid session get 401.
func AuthMiddleware(ver Verifier, rev RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, ver, rev); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// PageAuth guards HTML pages: requests without a valid session are sent to /login.
func PageAuth(ver Verifier, rev RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, ver, rev); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectAuthenticated sends visitors that already hold a session away from the login page.
func RedirectAuthenticated(ver Verifier, rev RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, ver, rev); ok {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity set by the auth middleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}

// CurrentClaims returns the verified token claims set by the auth middleware.
func CurrentClaims(c *gin.Context) (*tokens.Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	cl, ok := v.(*tokens.Claims)
	return cl, ok
}
