package negotiation

import (
	"errors"
	"fmt"
)

// ErrNoAcceptableRepresentation is the sentinel error raised when a
// negotiated family has no acceptable value for the request. Callers
// typically convert it to a 406 response.
var ErrNoAcceptableRepresentation = errors.New("no acceptable representation")

// NoMatchError reports which header family failed negotiation and the header
// value that caused it. It wraps ErrNoAcceptableRepresentation so callers can
// use errors.Is without inspecting the family.
type NoMatchError struct {
	// Family is the header family that failed.
	Family Family

	// Header is the raw header value that produced no acceptable match.
	Header string
}

// Error implements the error interface.
func (e *NoMatchError) Error() string {
	return fmt.Sprintf("%s: %s for %s header %q",
		e.Family, ErrNoAcceptableRepresentation, e.Family.HeaderName(), e.Header)
}

// Unwrap returns the sentinel so errors.Is(err, ErrNoAcceptableRepresentation)
// holds for every negotiation failure.
func (e *NoMatchError) Unwrap() error {
	return ErrNoAcceptableRepresentation
}
