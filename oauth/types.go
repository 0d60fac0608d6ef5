package oauth

import (
	"encoding/json"

	"github.com/ApexAZ/zentropy-go/auth"
)

// Action values on terminal and pending negotiation responses.
const (
	ActionConsentRequired = "consent_required"
	ActionSignIn          = "sign_in"
	ActionAccountLinked   = "account_linked"
)

// Request is a single OAuth negotiation. Credential carries the token for
// implicit-flow providers; AuthorizationCode carries the code for code-flow
// providers. Exactly the field matching the provider's flow must be set.
type Request struct {
	Provider          string `json:"provider"`
	Credential        string `json:"credential,omitempty"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
}

// SecurityContext describes the account an OAuth identity collided with:
// how it currently authenticates and whether the provider vouches for the
// incoming email. It informs the user's consent decision.
type SecurityContext struct {
	ExistingAuthMethod    string `json:"existing_auth_method"`
	ProviderEmailVerified bool   `json:"provider_email_verified"`
}

// ConsentResponse is a pending decision, not a terminal state. It must
// never be treated as an authenticated session; only an AuthResponse may
// establish one.
type ConsentResponse struct {
	Action              string          `json:"action"`
	Provider            string          `json:"provider"`
	ExistingEmail       string          `json:"existing_email"`
	ProviderDisplayName string          `json:"provider_display_name"`
	SecurityContext     SecurityContext `json:"security_context"`
}

// ConsentDecision resolves a pending ConsentResponse. ConsentGiven true
// asks the server to link the OAuth identity to the existing password
// account; false asks for a new, independent account under the same email.
type ConsentDecision struct {
	Provider          string          `json:"provider"`
	Credential        string          `json:"credential,omitempty"`
	AuthorizationCode string          `json:"authorization_code,omitempty"`
	ConsentGiven      bool            `json:"consent_given"`
	Context           SecurityContext `json:"context"`
}

// AuthResponse is the terminal success of an OAuth negotiation or consent
// resolution.
type AuthResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	User        auth.AuthUser `json:"user"`
	Action      string        `json:"action"`
}

// OperationResponse reports a successful link or unlink. For links,
// ProviderIdentifier is the provider-side email/identifier the server
// returned.
type OperationResponse struct {
	Message            string `json:"message"`
	Success            bool   `json:"success"`
	Provider           string `json:"provider"`
	ProviderIdentifier string `json:"provider_identifier,omitempty"`
}

// Outcome is the union result of a negotiation: exactly one of Auth
// (terminal) or Consent (pending) is set.
type Outcome struct {
	Auth    *AuthResponse
	Consent *ConsentResponse
}

// ConsentRequired reports whether the outcome is a pending consent
// decision.
func (o Outcome) ConsentRequired() bool {
	return o.Consent != nil
}

// IsConsentRequired is the discriminator for a raw negotiation body. The
// two response shapes partially overlap, so callers must use this guard
// instead of inspecting ad hoc fields. Anything without action ==
// "consent_required" — including malformed or partially shaped bodies — is
// conservatively not a consent demand.
func IsConsentRequired(body []byte) bool {
	var probe struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return false
	}
	return probe.Action == ActionConsentRequired
}
