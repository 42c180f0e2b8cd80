package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo describes a bearer token for display. Nothing here is verified:
// the signature is not checked and the backend stays the authority.
type TokenInfo struct {
	JWT       bool
	Subject   string
	ExpiresAt *time.Time
}

// Expired reports whether the token carries an expiry that lies before now.
func (t TokenInfo) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(now)
}

// DescribeToken decodes JWT claims from token without verifying it. Opaque
// (non-JWT) tokens yield a TokenInfo with JWT=false and no error.
func DescribeToken(token string) (TokenInfo, error) {
	if token == "" {
		return TokenInfo{}, fmt.Errorf("no token")
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenInfo{JWT: false}, nil
	}
	info := TokenInfo{JWT: true}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		info.ExpiresAt = &t
	}
	return info, nil
}
