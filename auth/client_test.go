package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ApexAZ/zentropy-go/internal/transport"
)

func TestClientLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login-json", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("login used %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Login successful","user":{"id":1,"email":"a@b.com","role":"team_member"}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(transport.New(srv.URL))
	result, err := client.Login(context.Background(), Credentials{Email: "a@b.com", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !result.Success || result.Message != "Login successful" {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestClientCheckSession(t *testing.T) {
	status := http.StatusOK
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(transport.New(srv.URL))
	ok, err := client.CheckSession(context.Background())
	if err != nil {
		t.Fatalf("check session: %v", err)
	}
	if !ok {
		t.Error("valid session reported invalid")
	}

	status = http.StatusUnauthorized
	ok, err = client.CheckSession(context.Background())
	if err != nil {
		t.Fatalf("check session: %v", err)
	}
	if ok {
		t.Error("expired session reported valid")
	}
}
