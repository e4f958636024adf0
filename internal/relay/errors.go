package relay

import (
	"errors"
	"fmt"
)

var (
	// ErrNoReply matches a TransportError for a stream closed before a reply arrived.
	ErrNoReply = errors.New("connection closed before a reply")
	// ErrMalformedMessage is returned for text that is not a relay message array.
	ErrMalformedMessage = errors.New("malformed relay message")
)

// TransportError reports a failed network step against a relay.
type TransportError struct {
	Op  string // dial, send or read
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("relay %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
