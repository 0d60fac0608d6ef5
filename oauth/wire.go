package oauth

// Flow is how a provider hands its proof to the client: an opaque
// credential (implicit flow) or an authorization code.
type Flow int

const (
	FlowCredential Flow = iota
	FlowAuthorizationCode
)

// wireProvider isolates one provider's wire quirks: its routes, the name of
// its credential field in the outgoing payload, and its flow type. The set
// is closed; dispatch happens through the wires table, not an open
// hierarchy.
type wireProvider interface {
	linkPath() string
	unlinkPath() string
	linkPayload(credential string) any
	flow() Flow
}

var wires = map[string]wireProvider{
	ProviderGoogle:    googleWire{},
	ProviderMicrosoft: microsoftWire{},
	ProviderGitHub:    githubWire{},
}

type googleWire struct{}

func (googleWire) linkPath() string   { return "/api/v1/auth/google/link" }
func (googleWire) unlinkPath() string { return "/api/v1/auth/google/unlink" }
func (googleWire) linkPayload(credential string) any {
	return map[string]string{"google_credential": credential}
}
func (googleWire) flow() Flow { return FlowCredential }

type microsoftWire struct{}

func (microsoftWire) linkPath() string   { return "/api/v1/auth/microsoft/link" }
func (microsoftWire) unlinkPath() string { return "/api/v1/auth/microsoft/unlink" }
func (microsoftWire) linkPayload(credential string) any {
	return map[string]string{"microsoft_authorization_code": credential}
}
func (microsoftWire) flow() Flow { return FlowAuthorizationCode }

type githubWire struct{}

func (githubWire) linkPath() string   { return "/api/v1/auth/github/link" }
func (githubWire) unlinkPath() string { return "/api/v1/auth/github/unlink" }
func (githubWire) linkPayload(credential string) any {
	return map[string]string{"github_credential": credential}
}
func (githubWire) flow() Flow { return FlowCredential }
