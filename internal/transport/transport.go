// Package transport owns the HTTP plumbing shared by every client
// operation: turning a RequestSpec into an outgoing request, stamping
// correlation IDs, and classifying the response into a Result.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Doer executes a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// TokenSource supplies the bearer token attached to authenticated requests.
// A nil source or empty token means no Authorization header is sent.
type TokenSource func() string

// RequestSpec is a pure description of one API call. Building a spec has no
// side effects; nothing happens until it is handed to Client.Do.
type RequestSpec struct {
	Method string
	Path   string
	// Body is JSON-encoded verbatim when non-nil.
	Body any
	// WithCredentials marks the request as carrying session credentials
	// (cookies and, when available, the bearer token).
	WithCredentials bool
}

// Result is the transport's classification of a response. OK is computed
// once here; callers branch on it and never re-derive success from Status,
// so every non-2xx code is handled identically downstream.
type Result struct {
	Status int
	OK     bool
	Body   []byte
}

// Decode unmarshals the response body into v.
func (r Result) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Client executes RequestSpecs against a single API base URL.
type Client struct {
	base  string
	doer  Doer
	token TokenSource
}

type Option func(*Client)

// WithDoer replaces the default cookie-jar HTTP client.
func WithDoer(d Doer) Option {
	return func(c *Client) { c.doer = d }
}

// WithTokenSource attaches a bearer token to credentialed requests.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{base: strings.TrimRight(baseURL, "/")}
	for _, opt := range opts {
		opt(c)
	}
	if c.doer == nil {
		jar, _ := cookiejar.New(nil)
		c.doer = &http.Client{Jar: jar}
	}
	return c
}

// Do executes the spec and reads the full response body. The returned error
// covers request construction and network transport only; server-side
// refusals surface through Result, not error.
func (c *Client) Do(ctx context.Context, spec RequestSpec) (Result, error) {
	req, err := c.buildRequest(ctx, spec)
	if err != nil {
		return Result{}, err
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return Result{}, errors.Wrapf(err, "%s %s", spec.Method, spec.Path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, errors.Wrap(err, "read response body")
	}

	return Result{
		Status: resp.StatusCode,
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Body:   body,
	}, nil
}

func (c *Client) buildRequest(ctx context.Context, spec RequestSpec) (*http.Request, error) {
	var body io.Reader
	if spec.Body != nil {
		encoded, err := json.Marshal(spec.Body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request body")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, c.base+spec.Path, body)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}

	if spec.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	if spec.WithCredentials && c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	return req, nil
}
