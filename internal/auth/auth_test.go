package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "Ganpati-Bappa-2025!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("wrong", hash)
	req.NoError(err)
	req.False(match)

	_, err = ComparePassword(password, "$bcrypt$whatever")
	req.ErrorIs(err, ErrInvalidHash)
}

func TestTokenIssuer(t *testing.T) {
	req := require.New(t)
	tokens := NewTokenIssuer(testSecret, time.Hour)

	signed, expiresAt, err := tokens.Issue("admin", RoleAdmin)
	req.NoError(err)
	req.WithinDuration(time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tokens.Validate(signed)
	req.NoError(err)
	req.Equal("admin", claims.Subject)
	req.Equal(RoleAdmin, claims.Role)

	_, err = NewTokenIssuer("another-secret-another-secret-xx", time.Hour).Validate(signed)
	req.Error(err, "foreign signature")

	expired := NewTokenIssuer(testSecret, time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := expired.Issue("admin", RoleAdmin)
	req.NoError(err)
	_, err = tokens.Validate(old)
	req.Error(err, "expired token")
}

func TestAuthenticator_Login(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	a := NewAuthenticator("admin", hash, NewTokenIssuer(testSecret, time.Hour), nil)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		req := require.New(t)
		tok, err := a.Login(ctx, LoginRequest{Username: "admin", Password: "s3cret-pass"})
		req.NoError(err)
		req.NotEmpty(tok.Token)
		req.Equal(RoleAdmin, tok.Role)
	})

	t.Run("wrong password or user", func(t *testing.T) {
		req := require.New(t)
		_, err := a.Login(ctx, LoginRequest{Username: "admin", Password: "nope"})
		req.ErrorIs(err, ErrInvalidCredentials)
		_, err = a.Login(ctx, LoginRequest{Username: "root", Password: "s3cret-pass"})
		req.ErrorIs(err, ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := a.Login(ctx, LoginRequest{Username: "admin"})
		require.ErrorIs(t, err, ErrMissingCredentials)
	})
}

func TestRequireAdmin(t *testing.T) {
	tokens := NewTokenIssuer(testSecret, time.Hour)
	valid, _, err := tokens.Issue("admin", RoleAdmin)
	require.NoError(t, err)
	viewer, _, err := tokens.Issue("someone", "viewer")
	require.NoError(t, err)

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	deny := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusUnauthorized) }
	h := RequireAdmin(tokens, deny)(ok)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"wrong role", "Bearer " + viewer, http.StatusUnauthorized},
		{"admin token", "Bearer " + valid, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/donors", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			require.Equal(t, tt.want, w.Code)
		})
	}
}
