package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Login endpoint and the markers found in its response.
const (
	loginPath          = "/index.php"
	authRequiredMarker = "Authorization Required"
	csrfMarker         = `csrf_token="`
	csrfLookahead      = 120
)

// Login failures.
var (
	ErrCannotConnect = errors.New("cannot connect")
	ErrInvalidPin    = errors.New("invalid pin")
	ErrUnknown       = errors.New("unknown login response")
)

// State is the login state of a session.
type State int

const (
	LoggedOut State = iota
	LoggingIn
	LoggedIn
)

func (s State) String() string {
	switch s {
	case LoggingIn:
		return "logging_in"
	case LoggedIn:
		return "logged_in"
	}
	return "logged_out"
}

// Session owns the HTTP client, its cookie jar and the CSRF token of one device.
type Session struct {
	baseURL    string
	pin        string
	httpClient *http.Client
	logger     *slog.Logger

	mu    sync.RWMutex
	state State
	token string
}

// NewSession creates a logged out session for the device at host.
func NewSession(host, pin string, timeout time.Duration, logger *slog.Logger) *Session {
	jar, _ := cookiejar.New(nil)

	return &Session{
		baseURL: BaseURL(host),
		pin:     pin,
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
			Transport: &http.Transport{
				MaxIdleConns:        2,
				MaxIdleConnsPerHost: 1,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: logger,
	}
}

// BaseURL turns a configured host into the device origin. Plain HTTP is the
// only transport the device offers.
func BaseURL(host string) string {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if strings.Contains(host, "://") {
		return host
	}
	return "http://" + host
}

// Login posts the PIN and stores the CSRF token from the answer.
func (s *Session) Login(ctx context.Context) error {
	s.setState(LoggingIn, "")
	s.logger.Debug("Logging in", "url", s.baseURL+loginPath)

	form := url.Values{}
	form.Set("pin", s.pin)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+loginPath, strings.NewReader(form.Encode()))
	if err != nil {
		s.setState(LoggedOut, "")
		return fmt.Errorf("%w: create login request: %v", ErrCannotConnect, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := s.httpClient.Do(req)
	if err != nil {
		s.setState(LoggedOut, "")
		s.logger.Error("Login failed", "error", err)
		return fmt.Errorf("%w: %v", ErrCannotConnect, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		s.setState(LoggedOut, "")
		return fmt.Errorf("%w: read body: %v", ErrCannotConnect, err)
	}

	if res.StatusCode != http.StatusOK {
		s.setState(LoggedOut, "")
		s.logger.Error("Login failed", "status", res.StatusCode)
		return fmt.Errorf("%w: status %d", ErrCannotConnect, res.StatusCode)
	}

	txt := string(body)
	if strings.Contains(txt, authRequiredMarker) {
		s.setState(LoggedOut, "")
		s.logger.Error("Login rejected, check the PIN")
		return ErrInvalidPin
	}

	token, ok := ExtractCSRFToken(txt)
	if !ok {
		s.setState(LoggedOut, "")
		s.logger.Error("No CSRF token in login response", "bytes", len(body))
		return ErrUnknown
	}

	s.setState(LoggedIn, token)
	s.logger.Info("Login successful")
	return nil
}

// ExtractCSRFToken returns the value of csrf_token="..." in a login answer.
func ExtractCSRFToken(txt string) (string, bool) {
	p := strings.Index(txt, csrfMarker)
	if p == -1 {
		return "", false
	}
	p += len(csrfMarker)

	end := p + csrfLookahead
	if end > len(txt) {
		end = len(txt)
	}
	q := strings.IndexByte(txt[p:end], '"')
	if q == -1 {
		return "", false
	}
	return txt[p : p+q], true
}

// Token returns the current CSRF token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// State returns the login state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Invalidate drops the token after the device rejected it.
func (s *Session) Invalidate() {
	s.setState(LoggedOut, "")
}

// BaseURL returns the device origin.
func (s *Session) BaseURL() string {
	return s.baseURL
}

// HTTPClient returns the client sharing the session cookie jar.
func (s *Session) HTTPClient() *http.Client {
	return s.httpClient
}

func (s *Session) setState(state State, token string) {
	s.mu.Lock()
	s.state = state
	s.token = token
	s.mu.Unlock()
}
