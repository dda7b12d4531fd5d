package roomClient

import (
	"fmt"
	"strconv"
)

// TransportError covers everything that kept a usable body from arriving:
// dial and DNS failures, timeouts, cancellation and undecodable payloads.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Failed to fetch data: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError is a response outside the 2xx range.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return "Error: " + strconv.Itoa(e.Code)
}
