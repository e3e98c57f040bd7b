package network

import (
	"fmt"

	"github.com/pkg/errors"
)

// ValidationError is raised locally before anything is sent.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// TransportError covers unreachable endpoints and non-2xx statuses.
type TransportError struct {
	StatusCode int
	Cause      error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transport failure (status %d): %s", e.StatusCode, e.Cause.Error())
	}
	return fmt.Sprintf("transport failure (status %d)", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ApplicationError is a 2xx response whose body did not carry ok=true.
type ApplicationError struct {
	Reason string
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("request not accepted: %s", e.Reason)
}

// ParseError is a body that could not be read as the expected envelope.
type ParseError struct {
	Raw   string
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unparseable response %q: %s", Excerpt(e.Raw, MaxReasonLength), e.Cause.Error())
	}
	return fmt.Sprintf("unparseable response %q", Excerpt(e.Raw, MaxReasonLength))
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Kind names the taxonomy bucket of err, used as a metrics tag.
func Kind(err error) string {
	switch errors.Cause(err).(type) {
	case nil:
		return "none"
	case *ValidationError:
		return "validation"
	case *TransportError:
		return "transport"
	case *ApplicationError:
		return "application"
	case *ParseError:
		return "parse"
	default:
		return "unknown"
	}
}
