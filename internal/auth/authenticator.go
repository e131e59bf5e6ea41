// Package auth guards mutating API routes behind an admin login when an
// admin password hash is configured.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"festival/internal/log"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingCredentials = errors.New("username and password are required")
)

var validate = validator.New()

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,max=256"`
}

type Token struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Authenticator checks the single admin account and issues tokens.
type Authenticator struct {
	username     string
	passwordHash string
	tokens       *TokenIssuer
	logger       *log.Logger
}

func NewAuthenticator(username, passwordHash string, tokens *TokenIssuer, logger *log.Logger) *Authenticator {
	if logger == nil {
		logger = log.Discard()
	}
	return &Authenticator{
		username:     username,
		passwordHash: passwordHash,
		tokens:       tokens,
		logger:       logger.WithComponent(log.ComponentAuth),
	}
}

func (a *Authenticator) Login(ctx context.Context, req LoginRequest) (Token, error) {
	if err := validate.Struct(req); err != nil {
		return Token{}, ErrMissingCredentials
	}

	ok, err := ComparePassword(req.Password, a.passwordHash)
	if err != nil {
		return Token{}, err
	}
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.username)) == 1
	if !ok || !userOK {
		a.logger.WarnContext(ctx, "Rejected admin login", "username", req.Username)
		return Token{}, ErrInvalidCredentials
	}

	signed, expiresAt, err := a.tokens.Issue(a.username, RoleAdmin)
	if err != nil {
		return Token{}, err
	}
	a.logger.InfoContext(ctx, "Admin logged in", "username", a.username)
	return Token{Token: signed, Role: RoleAdmin, ExpiresAt: expiresAt}, nil
}

// RequireAdmin rejects requests without a valid admin bearer token. unauthorized
// writes the response for rejected requests.
func RequireAdmin(tokens *TokenIssuer, unauthorized http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || raw == "" {
				unauthorized(w, r)
				return
			}
			claims, err := tokens.Validate(strings.TrimSpace(raw))
			if err != nil || claims.Role != RoleAdmin {
				log.FromContext(r.Context()).WithComponent(log.ComponentAuth).
					WarnContext(r.Context(), "Rejected bearer token", log.FieldError, err)
				unauthorized(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
