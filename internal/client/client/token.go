package client

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether the session token is a JWT whose exp claim is
// already in the past. The signature is deliberately not verified — the
// backend does that — this is only a local heuristic to warn the user before
// a doomed request. Tokens that are not parseable JWTs are treated as live.
func TokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
