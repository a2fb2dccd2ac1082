package asc

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is checks against the typed errors below.
var (
	ErrSigning       = errors.New("signing error")
	ErrTransport     = errors.New("transport error")
	ErrDecode        = errors.New("decode error")
	ErrServer        = errors.New("server error")
	ErrConfiguration = errors.New("configuration error")
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrMissingErrorList   = errors.New("error response carries no errors")
	ErrUnknownEnumValue   = errors.New("unknown enum value")
	ErrNoMorePages        = errors.New("no more pages")
	ErrNoMoreItems        = errors.New("no more items")
	ErrPrivateKeyConflict = errors.New("private key and private key path are mutually exclusive")
	ErrNilRequest         = errors.New("request is required")
	ErrNullEnvelope       = errors.New("response body is null")
	ErrMissingMember      = errors.New("response envelope is missing a member")
)

// Common error codes reported by the API.
const (
	ErrorCodeNotFound        = "NOT_FOUND"
	ErrorCodeConflict        = "ENTITY_ERROR"
	ErrorCodeNotAuthorized   = "NOT_AUTHORIZED"
	ErrorCodeForbidden       = "FORBIDDEN_ERROR"
	ErrorCodeParameterError  = "PARAMETER_ERROR"
	ErrorCodeRateLimitExceed = "RATE_LIMIT_EXCEEDED"
)

// ErrorEntry is a single entry of the API's error envelope.
type ErrorEntry struct {
	Status string `json:"status" yaml:"status"`
	Code   string `json:"code"   yaml:"code"`
	Title  string `json:"title"  yaml:"title"`
	Detail string `json:"detail" yaml:"detail"`
}

// Error implements the error interface.
func (e *ErrorEntry) Error() string {
	return fmt.Sprintf("%s: %s (status: %s, code: %s)", e.Title, e.Detail, e.Status, e.Code)
}

// ErrorResponse is the wire shape of a non-2xx body.
type ErrorResponse struct {
	Errors []ErrorEntry `json:"errors"`
}

// ServerError is a well-formed structured error returned by the API.
type ServerError struct {
	StatusCode int
	Errors     []ErrorEntry
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	switch len(e.Errors) {
	case 0:
		return fmt.Sprintf("server error (status %d)", e.StatusCode)
	case 1:
		return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.Errors[0].Error())
	}

	parts := make([]string, 0, len(e.Errors))
	for i := range e.Errors {
		parts = append(parts, e.Errors[i].Error())
	}

	return fmt.Sprintf("server error (status %d): multiple errors: [%s]", e.StatusCode, strings.Join(parts, "; "))
}

// Is reports whether target is ErrServer.
func (e *ServerError) Is(target error) bool {
	return target == ErrServer
}

// FirstError returns the first entry or nil.
func (e *ServerError) FirstError() *ErrorEntry {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// HasCode reports whether any entry carries the given code.
func (e *ServerError) HasCode(code string) bool {
	for i := range e.Errors {
		if e.Errors[i].Code == code {
			return true
		}
	}

	return false
}

// SigningError is returned when a token could not be produced.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("signing token: %v", e.Err)
}

func (e *SigningError) Unwrap() error { return e.Err }

// Is reports whether target is ErrSigning.
func (e *SigningError) Is(target error) bool {
	return target == ErrSigning
}

// TransportError is returned when the request never produced an HTTP response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// DecodeError is returned when a response body could not be parsed, on either
// the success or the error path.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response (status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// ConfigurationError is returned at construction time when the client
// identity is incomplete.
type ConfigurationError struct {
	Field string
	// Err is the underlying cause, if any. A nil Err means Field was left unset.
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}

	return e.Field + " must be set"
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// AsServerError extracts a *ServerError from err.
func AsServerError(err error) (*ServerError, bool) {
	serverErr := &ServerError{}
	if errors.As(err, &serverErr) {
		return serverErr, true
	}

	return nil, false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatusOrCode(err, "404", ErrorCodeNotFound)
}

// IsConflict checks if the error is a conflict, e.g. a duplicate resource.
func IsConflict(err error) bool {
	return hasStatusOrCode(err, "409", ErrorCodeConflict)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return hasStatusOrCode(err, "401", ErrorCodeNotAuthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return hasStatusOrCode(err, "403", ErrorCodeForbidden)
}

func hasStatusOrCode(err error, status, code string) bool {
	serverErr, ok := AsServerError(err)
	if !ok {
		return false
	}

	first := serverErr.FirstError()
	if first == nil {
		return false
	}

	return first.Status == status || strings.HasPrefix(first.Code, code)
}
