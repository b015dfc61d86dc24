package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-backoffice/internal/auth"
	"github.com/BruksfildServices01/salon-backoffice/internal/policy"
)

type countingRecorder struct{ denials []string }

func (r *countingRecorder) PolicyDenied(resource, action, decision string) {
	r.denials = append(r.denials, resource+"/"+action+"/"+decision)
}

type brokenBlacklist struct{}

func (brokenBlacklist) Revoke(context.Context, string, time.Duration) error { return nil }
func (brokenBlacklist) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

type stubAccounts map[uint]struct {
	role   string
	active bool
}

func (s stubAccounts) Account(_ context.Context, id uint) (string, bool, error) {
	a, ok := s[id]
	if !ok {
		return "", false, auth.ErrUnknownAccount
	}
	return a.role, a.active, nil
}

func newRouter(issuer *auth.Issuer, bl auth.Blacklist, rec DenialRecorder) *gin.Engine {
	return newRouterWithAccounts(issuer, bl, rec, nil)
}

func newRouterWithAccounts(issuer *auth.Issuer, bl auth.Blacklist, rec DenialRecorder, accounts AccountLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authenticate(issuer, bl, accounts))
	r.GET("/appointments",
		Authorize(policy.Default, policy.Appointments, policy.ActionList, rec),
		func(c *gin.Context) { c.String(http.StatusOK, string(SubjectFrom(c).Role)) },
	)
	r.GET("/news",
		Authorize(policy.Default, policy.News, policy.ActionList, rec),
		func(c *gin.Context) { c.String(http.StatusOK, string(SubjectFrom(c).Role)) },
	)
	r.GET("/me", RequireAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthorize(t *testing.T) {
	issuer := auth.NewIssuer("secret", time.Hour)
	rec := &countingRecorder{}
	r := newRouter(issuer, auth.NewMemoryBlacklist(), rec)

	clientToken, _, err := issuer.Issue(1, "client")
	require.NoError(t, err)
	adminToken, _, err := issuer.Issue(2, "admin")
	require.NoError(t, err)

	res := get(r, "/news", "")
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "anonymous", res.Body.String())

	assert.Equal(t, http.StatusUnauthorized, get(r, "/appointments", "").Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/appointments", clientToken).Code)
	assert.Equal(t, http.StatusOK, get(r, "/appointments", adminToken).Code)

	assert.Equal(t, []string{
		"appointments/list/unauthenticated",
		"appointments/list/forbidden",
	}, rec.denials)
}

func TestAuthenticate_BadTokens(t *testing.T) {
	issuer := auth.NewIssuer("secret", time.Hour)
	bl := auth.NewMemoryBlacklist()
	r := newRouter(issuer, bl, nil)

	res := get(r, "/news", "garbage")
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Contains(t, res.Body.String(), "invalid_token")

	req := httptest.NewRequest(http.MethodGet, "/news", nil)
	req.Header.Set("Authorization", "Basic abc")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	token, claims, err := issuer.Issue(5, "employee")
	require.NoError(t, err)
	require.NoError(t, bl.Revoke(context.Background(), claims.ID, time.Hour))

	res = get(r, "/news", token)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Contains(t, res.Body.String(), "token_revoked")
}

func TestAuthenticate_BlacklistFailure(t *testing.T) {
	issuer := auth.NewIssuer("secret", time.Hour)
	r := newRouter(issuer, brokenBlacklist{}, nil)

	token, _, err := issuer.Issue(5, "employee")
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, get(r, "/news", token).Code)
}

func TestAuthenticate_ReloadsAccount(t *testing.T) {
	issuer := auth.NewIssuer("secret", time.Hour)
	accounts := stubAccounts{
		1: {role: "client", active: true},
		2: {role: "admin", active: false},
	}
	r := newRouterWithAccounts(issuer, auth.NewMemoryBlacklist(), nil, accounts)

	// Token still says admin, storage says client.
	demoted, _, err := issuer.Issue(1, "admin")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, get(r, "/appointments", demoted).Code)
	assert.Equal(t, "client", get(r, "/news", demoted).Body.String())

	inactive, _, err := issuer.Issue(2, "admin")
	require.NoError(t, err)
	res := get(r, "/news", inactive)
	assert.Equal(t, http.StatusForbidden, res.Code)
	assert.Contains(t, res.Body.String(), "inactive_user")

	gone, _, err := issuer.Issue(3, "admin")
	require.NoError(t, err)
	res = get(r, "/news", gone)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Contains(t, res.Body.String(), "invalid_token")
}

func TestRequireAuth(t *testing.T) {
	issuer := auth.NewIssuer("secret", time.Hour)
	r := newRouter(issuer, auth.NewMemoryBlacklist(), nil)

	token, _, err := issuer.Issue(9, "client")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "").Code)
	assert.Equal(t, http.StatusOK, get(r, "/me", token).Code)
}

func TestCORS_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware(nil))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://salon.example")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://salon.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://salon.example"}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://salon.example")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "https://salon.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/ping", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
