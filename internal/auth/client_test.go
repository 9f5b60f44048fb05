package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newDevice(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/index.php" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := r.ParseForm(); err != nil || r.PostForm.Get("pin") != "4444" {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("<html><h1>Authorization Required</h1></html>"))
			return
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLogin_Success(t *testing.T) {
	srv := newDevice(t, http.StatusOK, `<html><script>var csrf_token="abc123XYZ";</script></html>`)
	s := NewSession(srv.URL, "4444", time.Second, testLogger())

	if err := s.Login(context.Background()); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if s.Token() != "abc123XYZ" {
		t.Errorf("Token() = %q, want abc123XYZ", s.Token())
	}
	if s.State() != LoggedIn {
		t.Errorf("State() = %v, want logged_in", s.State())
	}

	s.Invalidate()
	if s.Token() != "" || s.State() != LoggedOut {
		t.Errorf("after Invalidate: token=%q state=%v", s.Token(), s.State())
	}
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name   string
		pin    string
		status int
		body   string
		want   error
	}{
		{"invalid pin", "1234", http.StatusOK, "", ErrInvalidPin},
		{"no token", "4444", http.StatusOK, "<html>welcome</html>", ErrUnknown},
		{"unterminated token", "4444", http.StatusOK, `csrf_token="` + strings.Repeat("a", 200), ErrUnknown},
		{"server error", "4444", http.StatusInternalServerError, "", ErrCannotConnect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newDevice(t, tt.status, tt.body)
			s := NewSession(srv.URL, tt.pin, time.Second, testLogger())

			err := s.Login(context.Background())
			if !errors.Is(err, tt.want) {
				t.Errorf("Login() error = %v, want %v", err, tt.want)
			}
			if s.Token() != "" {
				t.Errorf("Token() = %q, want empty", s.Token())
			}
		})
	}
}

func TestLogin_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	s := NewSession(url, "4444", time.Second, testLogger())
	if err := s.Login(context.Background()); !errors.Is(err, ErrCannotConnect) {
		t.Errorf("Login() error = %v, want ErrCannotConnect", err)
	}
}

func TestLogin_MalformedHost(t *testing.T) {
	s := NewSession("idm\x7f.local", "4444", time.Second, testLogger())
	if err := s.Login(context.Background()); !errors.Is(err, ErrCannotConnect) {
		t.Errorf("Login() error = %v, want ErrCannotConnect", err)
	}
	if s.State() != LoggedOut {
		t.Errorf("state = %v, want LoggedOut", s.State())
	}
}

func TestExtractCSRFToken(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"plain", `x csrf_token="tok" y`, "tok", true},
		{"empty", `csrf_token=""`, "", true},
		{"missing", `token="tok"`, "", false},
		{"too long", `csrf_token="` + strings.Repeat("t", 121) + `"`, "", false},
		{"at limit", `csrf_token="` + strings.Repeat("t", 119) + `"`, strings.Repeat("t", 119), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractCSRFToken(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ExtractCSRFToken() = %q, %v, want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestBaseURL(t *testing.T) {
	tests := []struct{ in, want string }{
		{"192.168.1.50", "http://192.168.1.50"},
		{" idm.local/ ", "http://idm.local"},
		{"http://127.0.0.1:8080", "http://127.0.0.1:8080"},
	}
	for _, tt := range tests {
		if got := BaseURL(tt.in); got != tt.want {
			t.Errorf("BaseURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
