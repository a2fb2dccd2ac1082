package asc

import (
	"encoding/json"
	"fmt"
)

// Outcome is a raw HTTP result before interpretation.
type Outcome struct {
	StatusCode int
	Body       []byte
}

// Success reports whether the status is in the 2xx range. The body shape is
// never consulted.
func (o Outcome) Success() bool {
	return IsSuccess(o.StatusCode)
}

// IsSuccess reports whether status is in the 2xx range.
func IsSuccess(status int) bool {
	return status/100 == 2
}

// Decode parses body as T on a 2xx status, or as a structured error otherwise.
// Exactly one of the results is non-nil.
func Decode[T any](status int, body []byte) (*T, error) {
	if !IsSuccess(status) {
		return nil, decodeFailure(status, body)
	}

	var result T

	err := json.Unmarshal(body, &result)
	if err != nil {
		return nil, &DecodeError{StatusCode: status, Body: body, Err: err}
	}

	return &result, nil
}

// DecodeEmpty is Decode for operations without a success payload. A 2xx body
// is discarded unread.
func DecodeEmpty(status int, body []byte) error {
	if IsSuccess(status) {
		return nil
	}

	return decodeFailure(status, body)
}

// DecodeOutcome is Decode applied to an Outcome.
func DecodeOutcome[T any](outcome Outcome) (*T, error) {
	return Decode[T](outcome.StatusCode, outcome.Body)
}

// ParseErrorResponse parses a non-2xx body into a ServerError. A body that is
// not JSON, lacks the errors list, or carries an empty list is a DecodeError.
func ParseErrorResponse(status int, body []byte) (*ServerError, error) {
	var errResp ErrorResponse

	err := json.Unmarshal(body, &errResp)
	if err != nil {
		return nil, &DecodeError{StatusCode: status, Body: body, Err: fmt.Errorf("unmarshalling error response: %w", err)}
	}

	if len(errResp.Errors) == 0 {
		return nil, &DecodeError{StatusCode: status, Body: body, Err: ErrMissingErrorList}
	}

	return &ServerError{StatusCode: status, Errors: errResp.Errors}, nil
}

func decodeFailure(status int, body []byte) error {
	serverErr, err := ParseErrorResponse(status, body)
	if err != nil {
		return err
	}

	return serverErr
}
