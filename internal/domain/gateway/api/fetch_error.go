package api

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport matches failures where no usable payload came back: network errors and non-JSON bodies.
	ErrTransport = errors.New("backend transport failure")
	// ErrApplication matches payloads that did not carry success:true.
	ErrApplication = errors.New("backend reported failure")
)

// FetchErrorKind tells transport failures apart from application failures.
type FetchErrorKind string

const (
	KindTransport   FetchErrorKind = "transport"
	KindApplication FetchErrorKind = "application"
)

// FetchError is the single failure type returned by the backend gateway.
type FetchError struct {
	Kind   FetchErrorKind
	Path   string
	Reason string
	Err    error
}

func (e *FetchError) Error() string {
	message := fmt.Sprintf("%s failure calling %s", e.Kind, e.Path)
	if e.Reason != "" {
		message += ": " + e.Reason
	}
	if e.Err != nil {
		message += ": " + e.Err.Error()
	}
	return message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrTransport and ErrApplication against the kind.
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrApplication:
		return e.Kind == KindApplication
	default:
		return false
	}
}

func newTransportError(path string, err error) *FetchError {
	return &FetchError{Kind: KindTransport, Path: path, Err: err}
}

func newApplicationError(path string, reason string) *FetchError {
	return &FetchError{Kind: KindApplication, Path: path, Reason: reason}
}

// ReasonOf returns the backend-provided reason of an application failure, if any.
func ReasonOf(err error) string {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Reason
	}
	return ""
}
