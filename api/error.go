package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed query.
type ErrorKind string

const (
	// KindClient is a transport failure: DNS, connect, TLS, timeout or a
	// body read error. Err holds the transport's own error.
	KindClient ErrorKind = "client"
	// KindURLParse means the base URL and endpoint path did not form a URL.
	KindURLParse ErrorKind = "url_parse"
	// KindRequest means the resolved URL could not become an HTTP request.
	KindRequest ErrorKind = "request"
	// KindHTTP means a response arrived but either its body was not JSON or
	// its status was not 2xx. Status is the only diagnostic.
	KindHTTP ErrorKind = "http"
	// KindDataType means a 2xx JSON body did not fit the requested type.
	KindDataType ErrorKind = "data_type"
)

func (k ErrorKind) Valid() bool {
	switch k {
	case KindClient, KindURLParse, KindRequest, KindHTTP, KindDataType:
		return true
	}
	return false
}

// Error is returned by Query and QueryRaw.
type Error struct {
	Kind   ErrorKind
	Status int
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("api: http error: %d %s", e.Status, http.StatusText(e.Status))
	case KindClient:
		return fmt.Sprintf("api: client error: %v", e.Err)
	case KindURLParse:
		return fmt.Sprintf("api: failed to parse url: %v", e.Err)
	case KindRequest:
		return fmt.Sprintf("api: failed to build request: %v", e.Err)
	case KindDataType:
		return fmt.Sprintf("api: could not parse data from json: %v", e.Err)
	}
	return fmt.Sprintf("api: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// HTTPStatus returns the status carried by an HTTP error.
func HTTPStatus(err error) (int, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindHTTP {
		return apiErr.Status, true
	}
	return 0, false
}

// ErrMissingField matches every *MissingFieldError via errors.Is.
var ErrMissingField = errors.New("missing required field")

// MissingFieldError is returned by endpoint builders when a required field
// was never set. It is raised before any request is made.
type MissingFieldError struct {
	Endpoint string
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: `%s` must be initialized", e.Endpoint, e.Field)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }
