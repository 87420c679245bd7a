package todoapi

import (
	"errors"
	"fmt"
)

// ErrorKind identifies one variant of the client error taxonomy. The set is closed.
type ErrorKind int

const (
	// KindNetwork covers transport failures (no connectivity, timeouts,
	// cancellation) and every 5xx response.
	KindNetwork ErrorKind = iota + 1
	// KindItemNotFound is an HTTP 404.
	KindItemNotFound
	// KindUnknown is any status the client does not otherwise handle.
	KindUnknown
	// KindDecoding is a success status whose body could not be decoded.
	KindDecoding
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindItemNotFound:
		return "item_not_found"
	case KindUnknown:
		return "unknown"
	case KindDecoding:
		return "decoding"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinel errors, one per kind. A returned *Error matches the sentinel of
// its kind under errors.Is.
var (
	// ErrNetwork matches errors of KindNetwork.
	ErrNetwork = errors.New("network error")
	// ErrItemNotFound matches errors of KindItemNotFound.
	ErrItemNotFound = errors.New("item not found")
	// ErrUnknown matches errors of KindUnknown.
	ErrUnknown = errors.New("unknown error")
	// ErrDecoding matches errors of KindDecoding.
	ErrDecoding = errors.New("failed to decode response")
)

// Error is the only error type returned once a request has been sent.
type Error struct {
	Kind ErrorKind
	// Code is the HTTP status of the response, or 0 when the transport failed
	// before a response arrived.
	Code int
	// Err is the underlying transport or decoder error, if any.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnknown:
		return fmt.Sprintf("%s (status %d)", ErrUnknown, e.Code)
	case KindNetwork:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", ErrNetwork, e.Err)
		}
		if e.Code != 0 {
			return fmt.Sprintf("%s (status %d)", ErrNetwork, e.Code)
		}
		return ErrNetwork.Error()
	default:
		if s := e.Kind.sentinel(); s != nil {
			if e.Err != nil {
				return fmt.Sprintf("%s: %v", s, e.Err)
			}
			return s.Error()
		}
		return e.Kind.String()
	}
}

// Unwrap returns the underlying transport or decoder error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindNetwork:
		return ErrNetwork
	case KindItemNotFound:
		return ErrItemNotFound
	case KindUnknown:
		return ErrUnknown
	case KindDecoding:
		return ErrDecoding
	}
	return nil
}

// Helper functions to check error kinds.

// IsNetworkError returns true if the request could not complete or the server failed.
func IsNetworkError(err error) bool {
	return hasKind(err, KindNetwork)
}

// IsItemNotFound returns true if the requested task does not exist.
func IsItemNotFound(err error) bool {
	return hasKind(err, KindItemNotFound)
}

// IsUnknownError returns true if the service answered with an unhandled status.
func IsUnknownError(err error) bool {
	return hasKind(err, KindUnknown)
}

// IsDecodingError returns true if a success response carried a malformed body.
func IsDecodingError(err error) bool {
	return hasKind(err, KindDecoding)
}

// StatusCode returns the HTTP status attached to err, if a response was received.
func StatusCode(err error) (int, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Code != 0 {
		return apiErr.Code, true
	}
	return 0, false
}

// hasKind checks if the error is an *Error of the given kind.
func hasKind(err error, kind ErrorKind) bool {
	if err == nil {
		return false
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

func newNetworkError(statusCode int, cause error) *Error {
	return &Error{Kind: KindNetwork, Code: statusCode, Err: cause}
}

func newItemNotFoundError() *Error {
	return &Error{Kind: KindItemNotFound, Code: 404}
}

func newUnknownError(statusCode int) *Error {
	return &Error{Kind: KindUnknown, Code: statusCode}
}

func newDecodingError(statusCode int, cause error) *Error {
	return &Error{Kind: KindDecoding, Code: statusCode, Err: cause}
}
