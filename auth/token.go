package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// TokenExpiry reads the exp claim from an issued access token without
// verifying its signature; the client holds no signing key and only needs
// to know whether the token is worth presenting. The bool is false when the
// token carries no exp claim.
func TokenExpiry(token string) (time.Time, bool, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false, errors.Wrap(err, "parse access token")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, errors.Wrap(err, "read exp claim")
	}
	if exp == nil {
		return time.Time{}, false, nil
	}
	return exp.Time, true, nil
}

// TokenExpired reports whether the token should be treated as stale at the
// given instant. Unreadable tokens count as expired; tokens without an exp
// claim never do.
func TokenExpired(token string, now time.Time) bool {
	exp, ok, err := TokenExpiry(token)
	if err != nil {
		return true
	}
	if !ok {
		return false
	}
	return !exp.After(now)
}
