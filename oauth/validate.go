package oauth

import "strings"

// LinkRequest asks the server to attach an OAuth identity to the current
// account. Credential is the opaque provider-issued token or code.
type LinkRequest struct {
	Credential string
	Provider   string
}

// UnlinkRequest asks the server to detach an OAuth identity. It carries the
// account password as a step-up check, distinct from any OAuth credential.
type UnlinkRequest struct {
	Password string
	Provider string
}

// Validation is the outcome of a pre-flight check. Errors accumulates every
// violation; callers must not issue the operation when Valid is false.
type Validation struct {
	Valid  bool
	Errors []string
}

// ValidateLinkRequest checks a link request without touching the network.
// All violations are collected, not short-circuited.
func ValidateLinkRequest(req LinkRequest) Validation {
	var errs []string
	if strings.TrimSpace(req.Credential) == "" {
		errs = append(errs, "OAuth credential is required")
	}
	errs = append(errs, providerErrors(req.Provider)...)
	return Validation{Valid: len(errs) == 0, Errors: errs}
}

// ValidateUnlinkRequest checks an unlink request with the same accumulation
// discipline over password and provider.
func ValidateUnlinkRequest(req UnlinkRequest) Validation {
	var errs []string
	if strings.TrimSpace(req.Password) == "" {
		errs = append(errs, "Password is required")
	}
	errs = append(errs, providerErrors(req.Provider)...)
	return Validation{Valid: len(errs) == 0, Errors: errs}
}

// providerErrors yields at most one error: a missing name and an
// unsupported name are mutually exclusive by construction.
func providerErrors(name string) []string {
	if strings.TrimSpace(name) == "" {
		return []string{"Provider name is required"}
	}
	if !IsSupported(name) {
		return []string{"Unsupported OAuth provider: " + name}
	}
	return nil
}
