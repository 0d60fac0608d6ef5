package auth

import (
	"context"

	"github.com/ApexAZ/zentropy-go/internal/transport"
)

// Client runs credential-based sign-in against the API.
type Client struct {
	http *transport.Client
}

func NewClient(t *transport.Client) *Client {
	return &Client{http: t}
}

// Login submits the credentials and returns the typed outcome. The error is
// non-nil only for transport-level failures (the request never completed);
// server refusals and undecodable bodies come back as a failure LoginResult.
func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	res, err := c.http.Do(ctx, NewLoginRequest(creds))
	if err != nil {
		return LoginResult{}, err
	}
	return HandleLoginResponse(res), nil
}

// CheckSession reports whether the current session credentials are still
// accepted by the server.
func (c *Client) CheckSession(ctx context.Context) (bool, error) {
	res, err := c.http.Do(ctx, NewSessionCheckRequest())
	if err != nil {
		return false, err
	}
	return res.OK, nil
}
