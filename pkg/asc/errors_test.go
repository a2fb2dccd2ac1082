package asc_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/asc/pkg/asc"
)

func TestServerError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *asc.ServerError
		expected string
	}{
		{
			name:     "no entries",
			err:      &asc.ServerError{StatusCode: 500},
			expected: "server error (status 500)",
		},
		{
			name: "single entry",
			err: &asc.ServerError{
				StatusCode: 404,
				Errors: []asc.ErrorEntry{
					{Status: "404", Code: "NOT_FOUND", Title: "Not found", Detail: "no device"},
				},
			},
			expected: "server error (status 404): Not found: no device (status: 404, code: NOT_FOUND)",
		},
		{
			name: "multiple entries",
			err: &asc.ServerError{
				StatusCode: 409,
				Errors: []asc.ErrorEntry{
					{Status: "409", Code: "A", Title: "t1", Detail: "d1"},
					{Status: "409", Code: "B", Title: "t2", Detail: "d2"},
				},
			},
			expected: "server error (status 409): multiple errors: [t1: d1 (status: 409, code: A); t2: d2 (status: 409, code: B)]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorTaxonomy_Is(t *testing.T) {
	t.Parallel()

	cause := errors.New("underlying")

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"signing", &asc.SigningError{Err: cause}, asc.ErrSigning},
		{"transport", &asc.TransportError{Method: "GET", URL: "https://x", Err: cause}, asc.ErrTransport},
		{"decode", &asc.DecodeError{StatusCode: 200, Err: cause}, asc.ErrDecode},
		{"server", &asc.ServerError{StatusCode: 500}, asc.ErrServer},
		{"configuration", &asc.ConfigurationError{Field: "issuer"}, asc.ErrConfiguration},
	}

	sentinels := []error{asc.ErrSigning, asc.ErrTransport, asc.ErrDecode, asc.ErrServer, asc.ErrConfiguration}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("listing devices: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)

			for _, other := range sentinels {
				if other != tt.sentinel {
					assert.NotErrorIs(t, wrapped, other)
				}
			}
		})
	}
}

func TestTransportError_UnwrapsContextErrors(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("getting device: %w", &asc.TransportError{Method: "GET", URL: "https://x", Err: context.Canceled})

	assert.ErrorIs(t, err, asc.ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfigurationError_Message(t *testing.T) {
	t.Parallel()

	err := &asc.ConfigurationError{Field: "key id"}
	assert.Equal(t, "key id must be set", err.Error())
	assert.NoError(t, err.Unwrap())

	wrapped := &asc.ConfigurationError{Field: "private key", Err: asc.ErrPrivateKeyConflict}
	assert.Equal(t, "invalid private key: private key and private key path are mutually exclusive", wrapped.Error())
	assert.ErrorIs(t, wrapped, asc.ErrPrivateKeyConflict)
	assert.ErrorIs(t, wrapped, asc.ErrConfiguration)
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	serverErr := func(status, code string) error {
		return fmt.Errorf("wrapped: %w", &asc.ServerError{
			Errors: []asc.ErrorEntry{{Status: status, Code: code}},
		})
	}

	assert.True(t, asc.IsNotFound(serverErr("404", "NOT_FOUND")))
	assert.True(t, asc.IsNotFound(serverErr("", "NOT_FOUND")))
	assert.False(t, asc.IsNotFound(serverErr("409", "ENTITY_ERROR")))

	assert.True(t, asc.IsConflict(serverErr("409", "ENTITY_ERROR.ATTRIBUTE.INVALID")))
	assert.True(t, asc.IsUnauthorized(serverErr("401", "NOT_AUTHORIZED")))
	assert.True(t, asc.IsForbidden(serverErr("403", "FORBIDDEN_ERROR")))

	assert.False(t, asc.IsNotFound(errors.New("plain")))
	assert.False(t, asc.IsNotFound(&asc.ServerError{StatusCode: 404}))
}

func TestServerError_HasCode(t *testing.T) {
	t.Parallel()

	err := &asc.ServerError{
		Errors: []asc.ErrorEntry{
			{Code: "PARAMETER_ERROR.INVALID"},
			{Code: "ENTITY_ERROR"},
		},
	}

	assert.True(t, err.HasCode("ENTITY_ERROR"))
	assert.False(t, err.HasCode("NOT_FOUND"))
	assert.Equal(t, "PARAMETER_ERROR.INVALID", err.FirstError().Code)
	assert.Nil(t, (&asc.ServerError{}).FirstError())
}
