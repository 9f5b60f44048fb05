// Package api provides the data requests against the iDM web interface.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"idm_exporter/internal/auth"
)

const (
	csrfHeader         = "CSRF-Token"
	csrfInvalidMarker  = `"invalid csrf token"`
	csrfInvalidLookout = 128
)

// Request failures. A request failing with ErrCSRFInvalid or ErrTransport
// needs a new login before the device answers again.
var (
	ErrCSRFInvalid = errors.New("csrf token invalid")
	ErrTransport   = errors.New("transport error")
	ErrStatus      = errors.New("unexpected status")
)

// APIClient performs requests with the session's cookie jar and CSRF token.
type APIClient struct {
	session *auth.Session
	logger  *slog.Logger
}

// NewAPIClient creates a client on top of a session.
func NewAPIClient(session *auth.Session, logger *slog.Logger) *APIClient {
	return &APIClient{
		session: session,
		logger:  logger,
	}
}

// doRequest performs an HTTP request carrying the CSRF token and returns the body text.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body io.Reader) (string, error) {
	url := c.session.BaseURL() + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set(csrfHeader, c.session.Token())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("API request", "method", method, "path", path)

	resp, err := c.session.HTTPClient().Do(req)
	if err != nil {
		c.logger.Warn("Request failed", "method", method, "path", path, "error", err)
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Non-200 status", "method", method, "path", path, "status", resp.StatusCode)
		return "", fmt.Errorf("%w %d", ErrStatus, resp.StatusCode)
	}

	txt := string(data)
	if csrfRejected(txt) {
		c.logger.Warn("CSRF token invalid", "path", path)
		c.session.Invalidate()
		return "", ErrCSRFInvalid
	}

	c.logger.Debug("API response", "method", method, "path", path, "bytes", len(data))

	return txt, nil
}

func csrfRejected(txt string) bool {
	if len(txt) > csrfInvalidLookout {
		txt = txt[:csrfInvalidLookout]
	}
	return strings.Contains(txt, csrfInvalidMarker)
}
