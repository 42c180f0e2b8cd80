package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wanderlust/travel-client/client/internal/types"
)

// ErrNoSessionKey is returned when /user/login answers 2xx without a key.
var ErrNoSessionKey = errors.New("login reply carries no session key")

// Login posts the credentials wrapped as {"userDto": ...}. It succeeds only
// when the reply carries a non-empty key; storing it is up to the caller.
func Login(ctx context.Context, r Requester, creds types.Credentials) types.Result[types.LoginResponse] {
	env := r.Request(ctx, http.MethodPost, "/user/login", types.LoginRequest{UserDto: creds})
	if !env.Success {
		return types.Fail[types.LoginResponse]("Invalid credentials", env.Err)
	}
	var resp types.LoginResponse
	if err := env.Decode(&resp); err != nil || resp.Key == "" {
		if err == nil {
			err = ErrNoSessionKey
		}
		return types.Fail[types.LoginResponse]("Invalid credentials", err)
	}
	return types.OK(resp)
}

// Register creates a user account.
func Register(ctx context.Context, r Requester, req types.RegisterRequest) types.Result[json.RawMessage] {
	env := r.Request(ctx, http.MethodPost, "/user/signup", req)
	if !env.Success {
		return types.Fail[json.RawMessage]("Registration failed", env.Err)
	}
	res := types.OK(env.Data)
	res.Message = "Registration successful!"
	return res
}

// Logout tells the backend to drop the session key. The outcome is returned
// for logging only: logging out always succeeds locally.
func Logout(ctx context.Context, r Requester) types.Envelope {
	return r.Request(ctx, http.MethodPost, withQuery("/user/logout", "key", r.Token()), nil)
}
