package session

import (
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
)

// Store is the browser-side storage the form reads from and writes back to.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string, expires time.Time)
}

// CookieStore keeps values in browser cookies. One CookieStore serves exactly
// one render pass: it reads the request's cookies and writes Set-Cookie headers
// on the matching response. Values written during the pass are visible to
// later Gets on the same store.
type CookieStore struct {
	c       echo.Context
	secure  bool
	written map[string]string
}

// NewCookieStore binds a store to the request/response of c.
func NewCookieStore(c echo.Context, secure bool) *CookieStore {
	return &CookieStore{c: c, secure: secure, written: map[string]string{}}
}

// Get returns the cookie value, or false when the cookie is missing or unreadable.
func (s *CookieStore) Get(key string) (string, bool) {
	if s == nil || s.c == nil {
		return "", false
	}
	if v, ok := s.written[key]; ok {
		return v, true
	}
	cookie, err := s.c.Cookie(key)
	if err != nil {
		return "", false
	}
	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		// fail safe: behave like a missing cookie
		return "", false
	}
	return value, true
}

// Set writes the cookie on the response.
func (s *CookieStore) Set(key, value string, expires time.Time) {
	if s == nil || s.c == nil {
		return
	}
	s.written[key] = value
	s.c.SetCookie(&http.Cookie{
		Name:     key,
		Value:    url.QueryEscape(value),
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// MemoryStore is a Store without a browser behind it, used by the offline renderer.
type MemoryStore map[string]string

// Get implements Store.
func (m MemoryStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Set implements Store. Expiry is ignored.
func (m MemoryStore) Set(key, value string, _ time.Time) {
	m[key] = value
}
