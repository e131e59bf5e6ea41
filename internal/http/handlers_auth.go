package http

import (
	"errors"
	"net/http"

	"festival/internal/auth"
	"festival/internal/log"
)

// handleLogin exchanges admin credentials for a bearer token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if s.deps.Auth == nil {
		NotFoundError("Authentication is not enabled").Write(w)
		return
	}

	body, err := ParseRequestBody(w, r)
	if err != nil {
		BadRequestError("Invalid request body").Write(w)
		return
	}

	token, err := s.deps.Auth.Login(r.Context(), auth.LoginRequest{
		Username: body.Text("username"),
		Password: body.Text("password"),
	})
	switch {
	case err == nil:
		NewJSONResponse().Data(token).Write(w)
	case errors.Is(err, auth.ErrMissingCredentials):
		BadRequestError("Username and password are required").Write(w)
	case errors.Is(err, auth.ErrInvalidCredentials):
		UnauthorizedError("Invalid username or password").Write(w)
	default:
		log.FromContext(r.Context()).LogError(r.Context(), "Login failed", err, log.ComponentAuth, log.OpValidate, nil)
		InternalServerError().Write(w)
	}
}
