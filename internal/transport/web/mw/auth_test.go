package mw_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vazgensoghoyan/folk-is-love/internal/auth/token"
	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/mw"
)

func testManager(t *testing.T) *token.Manager {
	t.Helper()
	return token.New("MySuperSecretKeyForJwtTesting123456!", "folk-is-love", "folk-is-love-api", time.Hour)
}

func issue(t *testing.T, tm *token.Manager, username string, role domain.Role) string {
	t.Helper()
	tok, err := tm.Issue(domain.Principal{Username: username, Role: role}, time.Now().UTC())
	require.NoError(t, err)
	return string(tok)
}

// echoPrincipal пишет username из контекста, чтобы тест видел,
// что принципал дошёл до хендлера.
func echoPrincipal(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := domain.PrincipalFromCtx(r.Context())
		if !ok {
			_, _ = w.Write([]byte("anonymous"))
			return
		}
		_, _ = w.Write([]byte(p.Username))
	})
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()
	tm := testManager(t)

	t.Run("valid token passes principal", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, tm, "alice", domain.RoleUser))
		rec := httptest.NewRecorder()

		mw.RequireAuth(tm, echoPrincipal(t)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice", rec.Body.String())
	})

	t.Run("missing header is 401", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		mw.RequireAuth(tm, echoPrincipal(t)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":1001`)
	})

	t.Run("non-bearer scheme is 401", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()

		mw.RequireAuth(tm, echoPrincipal(t)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign signature is 401", func(t *testing.T) {
		t.Parallel()
		other := token.New("CompletelyDifferentSecretKey7890123!", "folk-is-love", "folk-is-love-api", time.Hour)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, other, "alice", domain.RoleUser))
		rec := httptest.NewRecorder()

		mw.RequireAuth(tm, echoPrincipal(t)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token is 401", func(t *testing.T) {
		t.Parallel()
		short := token.New("MySuperSecretKeyForJwtTesting123456!", "folk-is-love", "folk-is-love-api", -time.Minute)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, short, "alice", domain.RoleUser))
		rec := httptest.NewRecorder()

		mw.RequireAuth(tm, echoPrincipal(t)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	t.Parallel()
	tm := testManager(t)

	t.Run("no token goes through anonymous", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		mw.OptionalAuth(tm, echoPrincipal(t)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("bad token goes through anonymous", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()

		mw.OptionalAuth(tm, echoPrincipal(t)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("valid token passes principal", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, tm, "bob", domain.RoleAdmin))
		rec := httptest.NewRecorder()

		mw.OptionalAuth(tm, echoPrincipal(t)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "bob", rec.Body.String())
	})
}
