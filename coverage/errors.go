// SPDX-License-Identifier: GPL-3.0-only

package coverage

import (
	"errors"
	"fmt"
)

// ErrorCode is a stable string code clients can branch on. Raw errors never
// cross the API boundary.
type ErrorCode string

const (
	CodeInvalidRequest      ErrorCode = "INVALID_REQUEST"
	CodeMissingCoordinates  ErrorCode = "MISSING_COORDINATES"
	CodeMissingLocation     ErrorCode = "MISSING_LOCATION"
	CodeGeocodingFailed     ErrorCode = "GEOCODING_FAILED"
	CodeLocationOutOfBounds ErrorCode = "LOCATION_OUT_OF_BOUNDS"
	CodeInternalError       ErrorCode = "INTERNAL_ERROR"

	// Adapter-level codes. Recovered by the orchestrator via fallback and
	// never surfaced to clients.
	CodeWMSRequestFailed   ErrorCode = "WMS_REQUEST_FAILED"
	CodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	CodeLayerNotAvailable  ErrorCode = "LAYER_NOT_AVAILABLE"
)

// Error is the engine's typed failure. Provider adapters and the geocoder
// return it instead of raw transport errors so callers can branch on Code.
type Error struct {
	Code        ErrorCode
	Message     string
	Warnings    []string
	Suggestions []string
	Err         error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a typed engine error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError attaches a cause to a typed engine error.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// AsError coerces any error into a typed engine error, defaulting to
// INTERNAL_ERROR for unclassified failures.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: CodeInternalError, Message: "unexpected failure", Err: err}
}
