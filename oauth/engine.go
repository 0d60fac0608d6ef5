package oauth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ApexAZ/zentropy-go/internal/transport"
	"github.com/ApexAZ/zentropy-go/pkg/apierrors"
)

const (
	negotiatePath = "/api/v1/auth/oauth"
	consentPath   = "/api/v1/auth/oauth-consent"

	// MsgNetworkError is the fallback when a server response body cannot
	// be parsed at all.
	MsgNetworkError = "Network error occurred"
)

// Engine issues OAuth operations. It never retries: every failure path
// leaves no client-side state behind, so retrying is always the caller's
// call.
type Engine struct {
	http *transport.Client
}

func NewEngine(t *transport.Client) *Engine {
	return &Engine{http: t}
}

// LinkProvider attaches an OAuth identity to the signed-in account.
// Validation failures never touch the network.
func (e *Engine) LinkProvider(ctx context.Context, req LinkRequest) (*OperationResponse, error) {
	if v := ValidateLinkRequest(req); !v.Valid {
		return nil, apierrors.NewValidationError(v.Errors...)
	}
	wire := wires[req.Provider]

	res, err := e.http.Do(ctx, transport.RequestSpec{
		Method:          http.MethodPost,
		Path:            wire.linkPath(),
		Body:            wire.linkPayload(req.Credential),
		WithCredentials: true,
	})
	if err != nil {
		return nil, err
	}
	if !res.OK {
		return nil, serverFailure(res)
	}

	var fields map[string]json.RawMessage
	if err := res.Decode(&fields); err != nil {
		return nil, apierrors.NewDecodeError(MsgNetworkError)
	}
	return &OperationResponse{
		Message:            stringField(fields, "message"),
		Success:            true,
		Provider:           req.Provider,
		ProviderIdentifier: stringField(fields, req.Provider+"_email"),
	}, nil
}

// UnlinkProvider detaches an OAuth identity. The account password rides
// along as a step-up re-authentication check.
func (e *Engine) UnlinkProvider(ctx context.Context, req UnlinkRequest) (*OperationResponse, error) {
	if v := ValidateUnlinkRequest(req); !v.Valid {
		return nil, apierrors.NewValidationError(v.Errors...)
	}
	wire := wires[req.Provider]

	res, err := e.http.Do(ctx, transport.RequestSpec{
		Method:          http.MethodPost,
		Path:            wire.unlinkPath(),
		Body:            map[string]string{"password": req.Password},
		WithCredentials: true,
	})
	if err != nil {
		return nil, err
	}
	if !res.OK {
		return nil, serverFailure(res)
	}

	var fields map[string]json.RawMessage
	if err := res.Decode(&fields); err != nil {
		return nil, apierrors.NewDecodeError(MsgNetworkError)
	}
	return &OperationResponse{
		Message:  stringField(fields, "message"),
		Success:  true,
		Provider: req.Provider,
	}, nil
}

// ProcessOAuth issues a single negotiation call and returns either a
// terminal AuthResponse or a pending ConsentResponse. Requests lacking the
// field their provider's flow requires fail fast locally.
func (e *Engine) ProcessOAuth(ctx context.Context, req Request) (Outcome, error) {
	wire, ok := wires[req.Provider]
	if !ok {
		return Outcome{}, apierrors.NewUnsupportedProviderError(req.Provider)
	}
	if !hasFlowField(wire, req.Credential, req.AuthorizationCode) {
		return Outcome{}, apierrors.NewValidationError("Invalid OAuth request for provider: " + req.Provider)
	}

	res, err := e.http.Do(ctx, transport.RequestSpec{
		Method:          http.MethodPost,
		Path:            negotiatePath,
		Body:            req,
		WithCredentials: true,
	})
	if err != nil {
		return Outcome{}, err
	}
	if !res.OK {
		return Outcome{}, serverFailure(res)
	}

	if IsConsentRequired(res.Body) {
		var consent ConsentResponse
		if err := res.Decode(&consent); err != nil {
			return Outcome{}, apierrors.NewDecodeError(MsgNetworkError)
		}
		return Outcome{Consent: &consent}, nil
	}

	var terminal AuthResponse
	if err := res.Decode(&terminal); err != nil {
		return Outcome{}, apierrors.NewDecodeError(MsgNetworkError)
	}
	return Outcome{Auth: &terminal}, nil
}

// ProcessOAuthConsent resolves a pending consent decision into a terminal
// AuthResponse. The decision must carry exactly the proof field matching
// the provider's flow type.
func (e *Engine) ProcessOAuthConsent(ctx context.Context, decision ConsentDecision) (*AuthResponse, error) {
	wire, ok := wires[decision.Provider]
	if !ok {
		return nil, apierrors.NewUnsupportedProviderError(decision.Provider)
	}
	if !exactFlowField(wire, decision.Credential, decision.AuthorizationCode) {
		return nil, apierrors.NewValidationError("Invalid OAuth consent request for provider: " + decision.Provider)
	}

	res, err := e.http.Do(ctx, transport.RequestSpec{
		Method:          http.MethodPost,
		Path:            consentPath,
		Body:            decision,
		WithCredentials: true,
	})
	if err != nil {
		return nil, err
	}
	if !res.OK {
		return nil, serverFailure(res)
	}

	var terminal AuthResponse
	if err := res.Decode(&terminal); err != nil {
		return nil, apierrors.NewDecodeError(MsgNetworkError)
	}
	return &terminal, nil
}

// hasFlowField checks that the proof field the provider's flow requires is
// present.
func hasFlowField(wire wireProvider, credential, code string) bool {
	if wire.flow() == FlowAuthorizationCode {
		return code != ""
	}
	return credential != ""
}

// exactFlowField additionally requires the proof field of the other flow to
// be absent.
func exactFlowField(wire wireProvider, credential, code string) bool {
	if wire.flow() == FlowAuthorizationCode {
		return code != "" && credential == ""
	}
	return credential != "" && code == ""
}

// serverFailure turns a non-success response into the most specific error
// available: server detail, then server message, then the status line. An
// unparsable body degrades to the generic network failure.
func serverFailure(res transport.Result) error {
	var body struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := res.Decode(&body); err != nil {
		return apierrors.NewDecodeError(MsgNetworkError)
	}
	return apierrors.NewServerError(res.Status, body.Detail, body.Message, "")
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
