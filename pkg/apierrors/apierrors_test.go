package apierrors

import "testing"

func TestServerErrorPrefersDetail(t *testing.T) {
	err := NewServerError(400, "Email already registered", "Bad request", "email")
	if err.Error() != "Email already registered" {
		t.Errorf("got %q", err.Error())
	}
}

func TestServerErrorFallsBackToMessage(t *testing.T) {
	err := NewServerError(400, "", "Bad request", "")
	if err.Error() != "Bad request" {
		t.Errorf("got %q", err.Error())
	}
}

func TestServerErrorFallsBackToStatusLine(t *testing.T) {
	err := NewServerError(502, "", "", "")
	if err.Error() != "502 Bad Gateway" {
		t.Errorf("got %q", err.Error())
	}
	unknown := NewServerError(599, "", "", "")
	if unknown.Error() != "HTTP 599" {
		t.Errorf("got %q", unknown.Error())
	}
}

func TestValidationErrorJoinsMessages(t *testing.T) {
	err := NewValidationError("OAuth credential is required", "Provider name is required")
	if err.Error() != "OAuth credential is required; Provider name is required" {
		t.Errorf("got %q", err.Error())
	}
}

func TestUnsupportedProviderError(t *testing.T) {
	err := NewUnsupportedProviderError("orkut")
	if err.Error() != "Unsupported OAuth provider: orkut" {
		t.Errorf("got %q", err.Error())
	}
}
