package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/klowq/admin-dashboard/internal/models"
	"github.com/klowq/admin-dashboard/internal/sessions"
	"github.com/klowq/admin-dashboard/internal/tokens"
	"github.com/klowq/admin-dashboard/internal/users"
	"github.com/klowq/admin-dashboard/pkg/middleware"
)

const (
	adminEmail    = "admin@klowq.com"
	adminPassword = "admin123"
)

type authEnv struct {
	router   *gin.Engine
	issuer   *tokens.Issuer
	sessions *sessions.Service
	revoked  *sessions.MemoryRevocations
}

func newAuthEnv(t *testing.T) *authEnv {
	t.Helper()
	u, err := users.NewService(adminEmail, adminPassword, "Admin", users.WithCost(bcrypt.MinCost))
	require.NoError(t, err)
	e := &authEnv{
		issuer:   tokens.NewIssuer("handlers-test-secret-xxxxxxxxxxxxxxxx", time.Minute),
		sessions: sessions.NewService(sessions.NewMemoryRepository(), time.Hour),
		revoked:  sessions.NewMemoryRevocations(),
	}
	r := gin.New()
	api := r.Group("/api")
	NewAuthHandler(u, e.sessions, e.issuer, e.revoked, AuthOptions{RefreshTTL: time.Hour}).Register(api)
	protected := api.Group("", middleware.AuthMiddleware(e.issuer, e.revoked))
	s := newStores(t)
	NewDashboardHandler(s.blogs, s.prefs, s.doctors).Register(protected)
	e.router = r
	return e
}

type loginResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	ExpiresIn    int         `json:"expiresIn"`
	User         models.User `json:"user"`
}

func (e *authEnv) login(t *testing.T) (*http.Response, loginResponse) {
	t.Helper()
	w := do(e.router, http.MethodPost, "/api/auth/login", LoginRequest{Email: "Admin@Klowq.com", Password: adminPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return w.Result(), decode[loginResponse](t, w)
}

func bearer(tok string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok) }
}

func cookie(name, value string) func(*http.Request) {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: name, Value: value}) }
}

func TestLogin_Success(t *testing.T) {
	e := newAuthEnv(t)
	res, body := e.login(t)

	assert.NotEmpty(t, body.AccessToken)
	assert.NotEmpty(t, body.RefreshToken)
	assert.Equal(t, 60, body.ExpiresIn)
	assert.Equal(t, users.AdminID, body.User.ID)

	names := map[string]*http.Cookie{}
	for _, c := range res.Cookies() {
		names[c.Name] = c
	}
	require.Contains(t, names, middleware.SessionCookie)
	require.Contains(t, names, middleware.RefreshCookie)
	assert.True(t, names[middleware.SessionCookie].HttpOnly)
	assert.Equal(t, body.AccessToken, names[middleware.SessionCookie].Value)

	w := do(e.router, http.MethodGet, "/api/account", nil, bearer(body.AccessToken))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), adminEmail)

	w = do(e.router, http.MethodGet, "/api/dashboard", nil, cookie(middleware.SessionCookie, body.AccessToken))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_Rejections(t *testing.T) {
	e := newAuthEnv(t)

	w := do(e.router, http.MethodPost, "/api/auth/login", LoginRequest{Email: adminEmail})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Email and password are required", errorOf(t, w))

	w = do(e.router, http.MethodPost, "/api/auth/login", LoginRequest{Email: adminEmail, Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid email or password", errorOf(t, w))

	w = do(e.router, http.MethodPost, "/api/auth/login", LoginRequest{Email: "someone@else.com", Password: adminPassword})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	e := newAuthEnv(t)
	w := do(e.router, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Unauthorized", errorOf(t, w))

	w = do(e.router, http.MethodGet, "/api/dashboard", nil, bearer("not-a-jwt"))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefresh(t *testing.T) {
	e := newAuthEnv(t)
	_, body := e.login(t)

	w := do(e.router, http.MethodPost, "/api/auth/refresh", map[string]string{"refreshToken": body.RefreshToken})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	fresh := decode[map[string]any](t, w)["accessToken"].(string)
	_, err := e.issuer.Verify(t.Context(), fresh)
	require.NoError(t, err)

	w = do(e.router, http.MethodPost, "/api/auth/refresh", nil, cookie(middleware.RefreshCookie, body.RefreshToken))
	require.Equal(t, http.StatusOK, w.Code)

	w = do(e.router, http.MethodPost, "/api/auth/refresh", map[string]string{"refreshToken": "bogus"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid refresh token", errorOf(t, w))

	w = do(e.router, http.MethodPost, "/api/auth/refresh", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_RevokesAccessAndDeletesRefresh(t *testing.T) {
	e := newAuthEnv(t)
	_, body := e.login(t)

	w := do(e.router, http.MethodPost, "/api/auth/logout", nil,
		bearer(body.AccessToken), cookie(middleware.RefreshCookie, body.RefreshToken))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Logged out", decode[map[string]string](t, w)["message"])
	for _, c := range w.Result().Cookies() {
		assert.True(t, c.MaxAge < 0, "cookie %s should be cleared", c.Name)
	}

	w = do(e.router, http.MethodGet, "/api/dashboard", nil, bearer(body.AccessToken))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(e.router, http.MethodPost, "/api/auth/refresh", map[string]string{"refreshToken": body.RefreshToken})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// logging out again without any session still succeeds
	w = do(e.router, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
