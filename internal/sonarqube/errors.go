package sonarqube

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a client failure so callers can branch without
// matching on message text.
type Kind int

const (
	// KindUpstream covers every failure not classified below: non-2xx
	// statuses without a dedicated kind, network errors and bodies that
	// cannot be decoded.
	KindUpstream Kind = iota
	KindConfiguration
	KindUnauthorized
	KindForbidden
	KindNotFound
	// KindInvalidArgument is returned before any request is sent.
	KindInvalidArgument
)

// Fixed details for the status codes that get their own kind.
const (
	msgUnauthorized = "invalid or expired credential"
	msgForbidden    = "access denied / insufficient permissions"
	msgNotFound     = "resource not found"
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not-found"
	case KindInvalidArgument:
		return "invalid-argument"
	default:
		return "upstream"
	}
}

// Error is the only error type returned by Client methods.
type Error struct {
	// Op is the operation label, e.g. "Error fetching projects".
	Op     string
	Kind   Kind
	Status int // HTTP status; 0 when no response was received
	Detail string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// errorBody is the standard SonarQube error payload:
// {"errors":[{"msg":"..."}]}
type errorBody struct {
	Errors []struct {
		Msg string `json:"msg"`
	} `json:"errors"`
}

// upstreamMessage extracts the first error message from a response body,
// or "" if the body is not a SonarQube error payload.
func upstreamMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if len(eb.Errors) == 0 {
		return ""
	}
	return eb.Errors[0].Msg
}

// statusError maps a non-2xx response onto the error taxonomy.
func statusError(op string, status int, body []byte) *Error {
	e := &Error{Op: op, Status: status}
	switch status {
	case http.StatusUnauthorized:
		e.Kind, e.Detail = KindUnauthorized, msgUnauthorized
	case http.StatusForbidden:
		e.Kind, e.Detail = KindForbidden, msgForbidden
	case http.StatusNotFound:
		e.Kind, e.Detail = KindNotFound, msgNotFound
	default:
		e.Kind = KindUpstream
		e.Detail = upstreamMessage(body)
		if e.Detail == "" {
			e.Detail = fmt.Sprintf("request failed with status code %d", status)
		}
	}
	return e
}

// transportError wraps a failure where no response was received.
func transportError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindUpstream, Detail: err.Error(), Err: err}
}

func invalidArgument(op, detail string) *Error {
	return &Error{Op: op, Kind: KindInvalidArgument, Detail: detail}
}
