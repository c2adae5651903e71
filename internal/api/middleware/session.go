package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// sessionIDKey is the echo context key the session middleware stores the
// client's session ID under.
const sessionIDKey = "session_id"

// CookieConfig describes the transport of the opaque session ID. The ID is
// the only thing the client ever holds; all session state lives server-side.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Session extracts the session-ID cookie and injects it into context. It
// never rejects a request: endpoints that need a session treat an absent ID
// as "not logged in".
func Session(cfg CookieConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(cfg.Name); err == nil && cookie.Value != "" {
				c.Set(sessionIDKey, cookie.Value)
			}
			return next(c)
		}
	}
}

// SessionID returns the session ID injected by Session, or "" when the
// request carried no session cookie.
func SessionID(c echo.Context) string {
	id, _ := c.Get(sessionIDKey).(string)
	return id
}

// Issue sets the session cookie. Sign-in always mints a fresh ID, so a
// pre-login cookie can never be promoted to an authenticated session
// (fixation defense).
func (cfg CookieConfig) Issue(c echo.Context, sessionID string) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.Name,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie on the client.
func (cfg CookieConfig) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// NewSessionID returns a 256-bit random session ID, hex encoded.
func NewSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
