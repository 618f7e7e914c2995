package pipeline

import (
	"errors"
	"fmt"
)

// InputError signals a malformed local input (address or amount). It
// is raised before any network exchange takes place.
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NetworkError signals a connection or transport failure on either
// exchange. It is surfaced verbatim; the pipeline never retries.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network failure: %s", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ProtocolError signals that the server responded with something that
// is not the expected schema. Body carries the raw response.
type ProtocolError struct {
	Op   string
	Body []byte
	Err  error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: protocol failure: %s", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// BusinessError signals a well-formed server response whose status is
// not "success". Description is the server's user-facing message.
type BusinessError struct {
	Op          string
	Status      string
	Description string
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("%s: rejected with status %q: %s", e.Op, e.Status, e.Description)
}

// SigningError signals that the external signer failed; fatal for the
// attempt.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("signing failed: %s", e.Err)
}

func (e *SigningError) Unwrap() error {
	return e.Err
}

// IsInput checks whether an error is an InputError.
func IsInput(err error) (*InputError, bool) {
	var e *InputError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsNetwork checks whether an error is a NetworkError.
func IsNetwork(err error) (*NetworkError, bool) {
	var e *NetworkError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsProtocol checks whether an error is a ProtocolError.
func IsProtocol(err error) (*ProtocolError, bool) {
	var e *ProtocolError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsBusiness checks whether an error is a BusinessError.
func IsBusiness(err error) (*BusinessError, bool) {
	var e *BusinessError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsSigning checks whether an error is a SigningError.
func IsSigning(err error) (*SigningError, bool) {
	var e *SigningError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
