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

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func claimsEcho() (http.Handler, *UserClaims) {
	var got UserClaims
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := GetUserFromContext(r); ok {
			got = claims
		}
		w.WriteHeader(http.StatusOK)
	})
	return h, &got
}

func TestAuthAcceptsValidBearerToken(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "test-secret")
	token := signTestToken(t, "test-secret", jwt.MapClaims{
		"user_id": 7,
		"login":   "mdupont",
		"role":    "chef",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	next, got := claimsEcho()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	Auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, got.UserID)
	assert.Equal(t, "mdupont", got.Login)
	assert.Equal(t, "chef", got.Role)
}

func TestAuthRejectsMissingOrMangledHeader(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "test-secret")
	next, _ := claimsEcho()

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer not.a.token"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		Auth(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthRejectsWrongSignature(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "test-secret")
	token := signTestToken(t, "other-secret", jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	next, _ := claimsEcho()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	Auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClaimsFromTokenRejectsZeroUserID(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "test-secret")
	token := signTestToken(t, "test-secret", jwt.MapClaims{
		"login": "ghost",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	_, ok := ClaimsFromToken(token)
	assert.False(t, ok)
}

func TestRequireRole(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "test-secret")

	cases := []struct {
		role string
		want int
	}{
		{"admin", http.StatusOK},
		{"chef", http.StatusForbidden},
	}
	for _, tc := range cases {
		token := signTestToken(t, "test-secret", jwt.MapClaims{
			"user_id": 2,
			"role":    tc.role,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		next, _ := claimsEcho()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		Auth(RequireRole("admin")(next)).ServeHTTP(rec, req)

		assert.Equal(t, tc.want, rec.Code, "role %s", tc.role)
	}
}
