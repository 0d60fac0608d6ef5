package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestTokenExpiryReadsExpClaim(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"sub": "7", "exp": exp.Unix()})

	got, ok, err := TokenExpiry(token)
	if err != nil {
		t.Fatalf("token expiry: %v", err)
	}
	if !ok {
		t.Fatal("expected an exp claim")
	}
	if !got.Equal(exp) {
		t.Errorf("expiry %v != %v", got, exp)
	}
}

func TestTokenExpiredPastExp(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()})
	if !TokenExpired(token, time.Now()) {
		t.Error("token past its exp must be expired")
	}
}

func TestTokenWithoutExpNeverExpires(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "7"})
	if TokenExpired(token, time.Now()) {
		t.Error("token without exp must not count as expired")
	}
}

func TestUnreadableTokenCountsAsExpired(t *testing.T) {
	if !TokenExpired("garbage", time.Now()) {
		t.Error("unreadable token must be treated as stale")
	}
}
