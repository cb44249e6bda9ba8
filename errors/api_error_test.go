package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	t.Run("should print the detail alone without field messages", func(t *testing.T) {
		err := &APIError{Kind: KindAuthorization, Detail: "token invalid"}
		require.Equal(t, "token invalid", err.Error())
	})

	t.Run("should append field messages in stable order", func(t *testing.T) {
		err := &APIError{
			Kind:   KindValidation,
			Detail: "Bad Request",
			Fields: map[string][]string{
				"password": {"too short", "too common"},
				"email":    {"already in use"},
			},
		}
		require.Equal(t, "Bad Request (email: already in use, password: too short; too common)", err.Error())
	})
}

func TestKindFromStatus(t *testing.T) {
	cases := map[int]Kind{
		http.StatusUnauthorized:        KindAuthorization,
		http.StatusForbidden:           KindAuthorization,
		http.StatusConflict:            KindConflict,
		http.StatusBadRequest:          KindValidation,
		http.StatusNotFound:            KindValidation,
		http.StatusInternalServerError: KindNetwork,
		http.StatusBadGateway:          KindNetwork,
	}
	for status, kind := range cases {
		require.Equal(t, kind, KindFromStatus(status), "status %d", status)
	}
}

func TestIsUnauthorized(t *testing.T) {
	t.Run("should match a wrapped authorization error", func(t *testing.T) {
		err := fmt.Errorf("login: %w", &APIError{Kind: KindAuthorization, Detail: "nope"})
		require.True(t, IsUnauthorized(err))
	})

	t.Run("should not match other kinds", func(t *testing.T) {
		require.False(t, IsUnauthorized(&APIError{Kind: KindValidation}))
		require.False(t, IsUnauthorized(fmt.Errorf("plain")))
	})
}
