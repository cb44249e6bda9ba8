package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Kind classifies a collaborator failure. Callers branch on the kind instead
// of probing the raw server payload shape.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindConflict      Kind = "conflict"
	KindNetwork       Kind = "network"
)

// APIError is the typed result of a failed collaborator call. Detail is a
// human-readable message extracted from the server payload; Fields carries
// optional field-level validation messages.
type APIError struct {
	Kind   Kind
	Status int
	Detail string
	Fields map[string][]string
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return e.Detail
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], "; ")))
	}
	return fmt.Sprintf("%s (%s)", e.Detail, strings.Join(parts, ", "))
}

// NetworkError wraps a transport-level failure (no HTTP response at all).
func NetworkError(err error) *APIError {
	return &APIError{Kind: KindNetwork, Detail: err.Error()}
}

// KindFromStatus maps an HTTP status code to an error kind.
func KindFromStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuthorization
	case http.StatusConflict:
		return KindConflict
	default:
		if status >= 400 && status < 500 {
			return KindValidation
		}
		return KindNetwork
	}
}

// IsUnauthorized reports whether err is an authorization failure. The session
// controller uses this to decide when a credential cascade is required.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return stderrors.As(err, &apiErr) && apiErr.Kind == KindAuthorization
}
