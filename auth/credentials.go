// Package auth implements credential-based sign-in against the Zentropy
// API: building login and session-check requests, interpreting the server's
// responses into a typed outcome, and inspecting issued access tokens.
package auth

import (
	"net/http"

	"github.com/ApexAZ/zentropy-go/internal/transport"
)

const (
	loginPath        = "/api/v1/auth/login-json"
	sessionCheckPath = "/api/v1/auth/me"
)

// Credentials carry the email and password for a single login call. They
// are transient: never persisted, never normalized. Empty strings and
// special characters pass through to the wire unchanged; rejecting
// malformed credentials is the server's job.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewLoginRequest builds the login request spec. Pure data construction,
// no validation, no side effects.
func NewLoginRequest(creds Credentials) transport.RequestSpec {
	return transport.RequestSpec{
		Method:          http.MethodPost,
		Path:            loginPath,
		Body:            creds,
		WithCredentials: true,
	}
}

// NewSessionCheckRequest builds the session-check request spec.
func NewSessionCheckRequest() transport.RequestSpec {
	return transport.RequestSpec{
		Method:          http.MethodGet,
		Path:            sessionCheckPath,
		WithCredentials: true,
	}
}
