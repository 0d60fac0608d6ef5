package auth

import (
	"encoding/json"

	"github.com/ApexAZ/zentropy-go/internal/transport"
)

// MsgUnableToProcess is the single fallback message for any login response
// body that cannot be decoded, regardless of HTTP status.
const MsgUnableToProcess = "Unable to process server response"

// User is the account object returned by a successful login. Role is an
// open enum (team_member, team_lead, ...); unknown roles must parse fine,
// so it stays a plain string.
type User struct {
	ID        json.Number `json:"id"`
	Email     string      `json:"email"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Role      string      `json:"role"`
}

// AuthUser is the session-level identity produced by a successful login or
// OAuth negotiation. Its lifetime is owned by the caller's session context.
type AuthUser struct {
	Email             string `json:"email"`
	Name              string `json:"name"`
	HasProjectsAccess bool   `json:"has_projects_access"`
	EmailVerified     bool   `json:"email_verified"`
}

// LoginResult is the terminal outcome of a login attempt. Success and
// failure are mutually exclusive by construction: the parse functions below
// are the only producers.
type LoginResult struct {
	Success bool
	Message string
	// ErrorCode and Field are only set on failures, verbatim from the body.
	ErrorCode string
	Field     string
	// User is the raw user object, untransformed, when present.
	User json.RawMessage
	// Extra preserves every top-level field beyond the known schema.
	Extra map[string]json.RawMessage
}

// DecodedUser unmarshals the raw user object. Returns nil when the result
// carried no user.
func (r LoginResult) DecodedUser() (*User, error) {
	if r.User == nil {
		return nil, nil
	}
	var u User
	if err := json.Unmarshal(r.User, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ParseLoginSuccess interprets an already-decoded success body. The message
// defaults to empty when absent, never to a placeholder.
func ParseLoginSuccess(fields map[string]json.RawMessage) LoginResult {
	result := LoginResult{
		Success: true,
		Message: stringField(fields, "message"),
		User:    fields["user"],
		Extra:   extraFields(fields, "message", "user"),
	}
	return result
}

// ParseLoginFailure interprets an already-decoded error body, extracting
// message, error and field verbatim.
func ParseLoginFailure(fields map[string]json.RawMessage) LoginResult {
	return LoginResult{
		Success:   false,
		Message:   stringField(fields, "message"),
		ErrorCode: stringField(fields, "error"),
		Field:     stringField(fields, "field"),
		Extra:     extraFields(fields, "message", "error", "field"),
	}
}

// HandleLoginResponse classifies a raw transport result into a terminal
// LoginResult. Classification branches on the transport's own success flag,
// never on the status code: a 418 and a 400 take the same path.
func HandleLoginResponse(res transport.Result) LoginResult {
	var fields map[string]json.RawMessage
	if err := res.Decode(&fields); err != nil {
		return LoginResult{Success: false, Message: MsgUnableToProcess}
	}
	if res.OK {
		return ParseLoginSuccess(fields)
	}
	return ParseLoginFailure(fields)
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func extraFields(fields map[string]json.RawMessage, known ...string) map[string]json.RawMessage {
	extra := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		extra[k] = v
	}
	for _, k := range known {
		delete(extra, k)
	}
	if len(extra) == 0 {
		return nil
	}
	return extra
}
