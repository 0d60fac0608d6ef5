// Package apierrors defines the error types returned by the client's
// operations. Local validation failures, server-reported failures and
// undecodable responses each get their own type so callers can branch
// with errors.As instead of string matching.
package apierrors

import (
	"fmt"
	"net/http"
	"strings"
)

// ValidationError aggregates every local validation failure for a single
// request. It never reaches the network.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

func NewValidationError(errs ...string) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ServerError reports an operation the server received but declined.
// Detail, Message and Field are surfaced verbatim from the response body.
type ServerError struct {
	Status  int
	Detail  string
	Message string
	Field   string
}

// Error prefers the most specific information available: server detail,
// then server message, then the bare HTTP status line.
func (e *ServerError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Message != "" {
		return e.Message
	}
	if text := http.StatusText(e.Status); text != "" {
		return fmt.Sprintf("%d %s", e.Status, text)
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

func NewServerError(status int, detail, message, field string) *ServerError {
	return &ServerError{Status: status, Detail: detail, Message: message, Field: field}
}

// DecodeError reports a response body that could not be parsed.
type DecodeError struct {
	Message string
}

func (e *DecodeError) Error() string {
	return e.Message
}

func NewDecodeError(message string) *DecodeError {
	return &DecodeError{Message: message}
}

// UnsupportedProviderError reports an OAuth provider name absent from the
// registry. It is raised before any request is constructed.
type UnsupportedProviderError struct {
	Provider string
}

func (e *UnsupportedProviderError) Error() string {
	return "Unsupported OAuth provider: " + e.Provider
}

func NewUnsupportedProviderError(provider string) *UnsupportedProviderError {
	return &UnsupportedProviderError{Provider: provider}
}
