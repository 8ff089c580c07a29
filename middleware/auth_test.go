package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminconsole/models"
)

type fakeVerifier struct {
	principal *models.Principal
	err       error
	calls     int
	lastToken string
}

func (f *fakeVerifier) VerifySession(ctx context.Context, idToken string) (*models.Principal, error) {
	f.calls++
	f.lastToken = idToken
	return f.principal, f.err
}

func principalEcho(t *testing.T, got **models.Principal) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = PrincipalFromContext(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionGateRedirectsWithoutCookie(t *testing.T) {
	SetVerifier(&fakeVerifier{})
	defer SetVerifier(nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)

	var got *models.Principal
	SessionGate(principalEcho(t, &got)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	assert.Nil(t, got)
}

func TestSessionGateAcceptsValidCookie(t *testing.T) {
	fv := &fakeVerifier{principal: &models.Principal{UID: "u1", Email: "u1@example.com"}}
	SetVerifier(fv)
	defer SetVerifier(nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-123"})

	var got *models.Principal
	SessionGate(principalEcho(t, &got)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UID)
	assert.Equal(t, "tok-123", fv.lastToken)
}

func TestSessionGateClearsBadCookie(t *testing.T) {
	SetVerifier(&fakeVerifier{err: errors.New("token expired")})
	defer SetVerifier(nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale"})

	SessionGate(http.NotFoundHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestSessionGateDevBypassWithoutVerifier(t *testing.T) {
	SetVerifier(nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)

	var got *models.Principal
	SessionGate(principalEcho(t, &got)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, got)
	assert.Equal(t, "dev-user-1", got.UID)
}

func TestAPIAuthRejectsMissingToken(t *testing.T) {
	fv := &fakeVerifier{}
	SetVerifier(fv)
	defer SetVerifier(nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)

	APIAuth(http.NotFoundHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, 0, fv.calls)
}

func TestAPIAuthAcceptsBearerToken(t *testing.T) {
	fv := &fakeVerifier{principal: &models.Principal{UID: "u2"}}
	SetVerifier(fv)
	defer SetVerifier(nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set("Authorization", "Bearer tok-456")

	var got *models.Principal
	APIAuth(principalEcho(t, &got)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, got)
	assert.Equal(t, "u2", got.UID)
	assert.Equal(t, "tok-456", fv.lastToken)
}

func TestAPIAuthFallsBackToSessionCookie(t *testing.T) {
	fv := &fakeVerifier{principal: &models.Principal{UID: "u3"}}
	SetVerifier(fv)
	defer SetVerifier(nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-tok"})

	APIAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "cookie-tok", fv.lastToken)
}

func TestAPIAuthRejectsInvalidToken(t *testing.T) {
	SetVerifier(&fakeVerifier{err: errors.New("bad signature")})
	defer SetVerifier(nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set("Authorization", "Bearer forged")

	APIAuth(http.NotFoundHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAPIAuthSkipsPreflight(t *testing.T) {
	fv := &fakeVerifier{}
	SetVerifier(fv)
	defer SetVerifier(nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/posts", nil)

	APIAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 0, fv.calls)
}

func TestExtractToken(t *testing.T) {
	assert.Equal(t, "abc", extractToken("Bearer abc"))
	assert.Equal(t, "", extractToken(""))
	assert.Equal(t, "", extractToken("Basic abc"))
}
