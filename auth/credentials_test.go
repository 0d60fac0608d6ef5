package auth

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestLoginRequestShape(t *testing.T) {
	spec := NewLoginRequest(Credentials{Email: "a@b.com", Password: "pw"})
	if spec.Method != http.MethodPost {
		t.Errorf("expected POST, got %s", spec.Method)
	}
	if spec.Path != "/api/v1/auth/login-json" {
		t.Errorf("unexpected path %s", spec.Path)
	}
	if !spec.WithCredentials {
		t.Error("login request should carry session credentials")
	}
}

func TestLoginRequestRoundTripsCredentialsVerbatim(t *testing.T) {
	cases := []Credentials{
		{Email: "user@example.com", Password: "hunter2"},
		{Email: "", Password: ""},
		{Email: "  padded@example.com  ", Password: `p@$$w"rd\n!`},
		{Email: "unicode@exämple.com", Password: "påsswörd€"},
	}
	for _, creds := range cases {
		encoded, err := json.Marshal(NewLoginRequest(creds).Body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		var decoded Credentials
		if err := json.Unmarshal(encoded, &decoded); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		if decoded != creds {
			t.Errorf("credentials changed in transit: %+v != %+v", decoded, creds)
		}
	}
}

func TestSessionCheckRequestHasNoBody(t *testing.T) {
	spec := NewSessionCheckRequest()
	if spec.Method != http.MethodGet {
		t.Errorf("expected GET, got %s", spec.Method)
	}
	if spec.Body != nil {
		t.Error("session check must not carry a body")
	}
	if !spec.WithCredentials {
		t.Error("session check should carry session credentials")
	}
}
