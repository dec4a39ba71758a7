package adminapi

import (
	"errors"
	"fmt"
)

var (
	ErrTransport   = errors.New("transport error")
	ErrApplication = errors.New("application error")
	ErrDecode      = errors.New("decoding error")

	ErrInvalidID      = errors.New("invalid id")
	ErrInvalidBaseURL = errors.New("invalid base url")
)

// DefaultApplicationMessage is used when the backend rejects a call without
// saying why.
const DefaultApplicationMessage = "API request failed"

// TransportError is a failure at the HTTP level: the exchange did not happen
// (Err is set) or the status was not 2xx.
type TransportError struct {
	StatusCode int
	StatusText string
	// Message is the envelope message, when the error body carried one.
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return "API Error: " + e.Err.Error()
	}
	return "API Error: " + e.StatusText
}

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

func (e *TransportError) Unwrap() error { return e.Err }

// ApplicationError means the HTTP exchange succeeded but the envelope
// reported success=false.
type ApplicationError struct {
	Message string
}

func (e *ApplicationError) Error() string { return e.Message }

func (e *ApplicationError) Is(target error) bool { return target == ErrApplication }

// DecodeError means the body was not a well-formed envelope or its payload
// did not match the expected schema.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

func (e *DecodeError) Unwrap() error { return e.Err }
