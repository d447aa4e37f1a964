package gateway

import (
	"errors"
	"fmt"
)

// Kind classifies an upstream call failure into the small taxonomy the rest
// of the service keys off.
type Kind string

const (
	KindNetwork    Kind = "network"
	KindAuth       Kind = "auth"
	KindForbidden  Kind = "forbidden"
	KindNotFound   Kind = "not_found"
	KindValidation Kind = "validation"
	KindServer     Kind = "server"
	KindUnknown    Kind = "unknown"
)

// Error is the only error type the gateway returns for upstream failures.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status, 0 when the request never got a response
	Message string // backend-provided detail, may be empty
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("gateway: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("gateway: %s (status %d): %s", e.Kind, e.Status, e.Message)
}

// KindOf extracts the failure kind from any error returned by the gateway.
// Non-gateway errors report KindUnknown.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}

// UserMessage maps an error to the short message screens show. Validation
// errors pass the backend's own wording through, everything else gets a
// fixed string.
func UserMessage(err error) string {
	var ge *Error
	if !errors.As(err, &ge) {
		return "Something went wrong. Please try again."
	}
	switch ge.Kind {
	case KindNetwork:
		return "Network error. Please check your connection and try again."
	case KindAuth:
		return "Session expired. Please login again."
	case KindForbidden:
		return "You don't have permission to perform this action."
	case KindNotFound:
		return "The requested resource was not found."
	case KindValidation:
		if ge.Message != "" {
			return ge.Message
		}
		return "The request was invalid."
	case KindServer:
		return "The server had a problem. Please try again later."
	default:
		return "Something went wrong. Please try again."
	}
}

func kindForStatus(status int) Kind {
	switch {
	case status == 401:
		return KindAuth
	case status == 403:
		return KindForbidden
	case status == 404:
		return KindNotFound
	case status == 422:
		return KindValidation
	case status >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}
