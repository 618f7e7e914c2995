package ledger

import (
	"errors"
	"fmt"
)

// TransportError signals that a network exchange never produced a
// usable HTTP response (connection refused, timeout, broken pipe).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %s", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError signals that the server answered but the body did not
// match the expected schema. Body carries the raw response for
// diagnosis.
type DecodeError struct {
	Op   string
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: unexpected response %q: %s", e.Op, e.Body, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StatusError signals a well-formed response whose status is not
// "success". Description is the server-supplied, user-facing message.
type StatusError struct {
	Op          string
	Status      string
	Description string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: server reported %q: %s", e.Op, e.Status, e.Description)
}

// IsTransport checks whether an error is a TransportError.
func IsTransport(err error) (*TransportError, bool) {
	var t *TransportError
	if errors.As(err, &t) {
		return t, true
	}
	return nil, false
}

// IsDecode checks whether an error is a DecodeError.
func IsDecode(err error) (*DecodeError, bool) {
	var d *DecodeError
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

// IsStatus checks whether an error is a StatusError.
func IsStatus(err error) (*StatusError, bool) {
	var s *StatusError
	if errors.As(err, &s) {
		return s, true
	}
	return nil, false
}
