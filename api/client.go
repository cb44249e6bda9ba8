//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=../mocks/mock_token_provider.go -package=mocks

// Package api wraps the marketplace REST collaborators. Each service is an
// interface-first typed wrapper over the JSON endpoints; failures come back
// as *errors.APIError with a kind and an optional field detail map.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"skillspot/errors"
)

// TokenProvider yields the current bearer token, if any. The credential
// repository is the single writer; everything here only reads.
type TokenProvider interface {
	AccessToken() (string, bool)
}

// Client is the shared HTTP layer under the typed API wrappers.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenProvider
	log     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// paginated is the server's standard page envelope.
type paginated[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// do executes one JSON request. A nil out discards the response body; a nil
// body sends no payload. Non-2xx responses are decoded into an APIError and
// the cached data of the caller is left for the caller to keep untouched.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.tokens.AccessToken(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.NetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeAPIError(resp)
		c.log.Debug("request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("kind", string(apiErr.Kind)))
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeAPIError extracts a typed error from a non-2xx response. The server
// answers either {"detail": "..."}, {"message": "..."} or a field → messages
// map for validation failures.
func decodeAPIError(resp *http.Response) *errors.APIError {
	apiErr := &errors.APIError{
		Kind:   errors.KindFromStatus(resp.StatusCode),
		Status: resp.StatusCode,
		Detail: http.StatusText(resp.StatusCode),
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return apiErr
	}

	for _, key := range []string{"detail", "message", "error"} {
		var detail string
		if rawDetail, ok := payload[key]; ok && json.Unmarshal(rawDetail, &detail) == nil {
			apiErr.Detail = detail
			return apiErr
		}
	}

	// No top-level detail: treat every remaining entry as field messages,
	// accepting both a single string and a list of strings per field.
	fields := make(map[string][]string)
	for name, rawVal := range payload {
		var many []string
		if json.Unmarshal(rawVal, &many) == nil {
			fields[name] = many
			continue
		}
		var one string
		if json.Unmarshal(rawVal, &one) == nil {
			fields[name] = []string{one}
		}
	}
	if len(fields) > 0 {
		apiErr.Fields = fields
	}
	return apiErr
}
