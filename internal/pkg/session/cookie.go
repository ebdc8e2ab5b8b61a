package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh opaque session id
func NewID() string {
	return uuid.NewString()
}

// Cookie builds the session cookie carrying sid
func Cookie(name, sid string, ttl time.Duration, secure bool) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl > 0 {
		c.Expires = time.Now().Add(ttl)
		c.MaxAge = int(ttl.Seconds())
	}
	return c
}

// ExpiredCookie instructs the browser to drop the session cookie
func ExpiredCookie(name string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	}
}
