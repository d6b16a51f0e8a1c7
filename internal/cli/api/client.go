// Package api contains the three request clients the console talks
// through: user management, MR content, and asset upload. Each client
// attaches the bearer credential verbatim in the Authorization header and
// reports 401 responses to an unauthorized hook so the session can be
// cleared, the CLI analog of a hard redirect to the login view.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// TokenSource supplies the stored bearer credential. The session store
// satisfies this interface.
type TokenSource interface {
	Token() (string, error)
}

// ServerError is a non-2xx response with the server-provided message, when
// one was present in the body.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// Client is the shared JSON request core.
type Client struct {
	base           string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()
	log            *zap.SugaredLogger
}

// NewClient builds a request client for one backend. tokens may be nil for
// unauthenticated clients; onUnauthorized may be nil when no 401 handling
// is wanted (e.g. the login call itself).
func NewClient(base string, tokens TokenSource, onUnauthorized func(), log *zap.SugaredLogger) *Client {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{
		base:           strings.TrimRight(base, "/"),
		http:           &http.Client{},
		tokens:         tokens,
		onUnauthorized: onUnauthorized,
		log:            log,
	}
}

// doJSON performs one request. payload (when non-nil) is sent as JSON; out
// (when non-nil) receives the decoded response body.
func (c *Client) doJSON(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	// A missing or expired credential sends the request unauthenticated
	// (login/register must work on a fresh install); protected endpoints
	// answer 401 and the hook clears the session.
	if c.tokens != nil {
		if token, err := c.tokens.Token(); err == nil {
			// token goes out exactly as issued, no "Bearer " prefix
			req.Header.Set("Authorization", token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debugw("request failed", "method", method, "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return &ServerError{Status: resp.StatusCode, Message: serverMessage(raw)}
	}
	if resp.StatusCode >= 400 {
		return &ServerError{Status: resp.StatusCode, Message: serverMessage(raw)}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// serverMessage pulls the human-readable message out of an error body.
// Backends use either {"message": ...} or {"error": ...}; anything else is
// returned as trimmed text.
func serverMessage(raw []byte) string {
	var m struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &m); err == nil {
		if m.Message != "" {
			return m.Message
		}
		if m.Error != "" {
			return m.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
