package client

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/wanderlust/travel-client/client/internal/api"
)

// AuthService handles customer login, signup and logout.
type AuthService struct{ c *Client }

// Login exchanges credentials for a session key and stores it as the bearer token.
func (s *AuthService) Login(ctx context.Context, creds Credentials) Result[LoginResponse] {
	res := api.Login(ctx, s.c.rest, creds)
	if !res.Success {
		return res
	}
	if err := s.c.rest.SetToken(res.Data.Key); err != nil {
		log.Warn().Err(err).Msg("session token not persisted")
	}
	return res
}

// Register creates a customer account. It does not log in.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) Result[json.RawMessage] {
	return api.Register(ctx, s.c.rest, req)
}

// Logout ends the session. The token is cleared whatever the backend
// answers, and the result is always successful.
func (s *AuthService) Logout(ctx context.Context) Result[struct{}] {
	if env := api.Logout(ctx, s.c.rest); !env.Success {
		log.Debug().Err(env.Err).Msg("backend logout failed, clearing token anyway")
	}
	if err := s.c.rest.SetToken(""); err != nil {
		log.Warn().Err(err).Msg("session token not removed from store")
	}
	return Result[struct{}]{Success: true}
}

// LoggedIn reports whether a bearer token is held.
func (s *AuthService) LoggedIn() bool { return s.c.rest.Token() != "" }
