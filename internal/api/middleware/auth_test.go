package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	var gotEmail string
	var gotID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail, _ = SessionEmail(r.Context())
		gotID, _ = r.Context().Value(UserIDKey).(string)
		w.WriteHeader(http.StatusNoContent)
	})
	handler := AuthMiddleware(next)

	claims := jwt.MapClaims{
		"userId": "user-1",
		"email":  "a@b.com",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}

	t.Run("valid cookie passes identity through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, jwtSecret, claims)})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "a@b.com", gotEmail)
		assert.Equal(t, "user-1", gotID)
	})

	t.Run("missing cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, "not-the-secret", claims)})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.MapClaims{
			"userId": "user-1",
			"email":  "a@b.com",
			"exp":    time.Now().Add(-time.Hour).Unix(),
		}
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, jwtSecret, expired)})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("claims without an email", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, jwtSecret, jwt.MapClaims{"userId": "user-1"})})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
