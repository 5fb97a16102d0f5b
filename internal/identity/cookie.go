package identity

import (
	"time"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "auth-token"

const cookieMaxAge = int(defaultTokenTTL / time.Second)

// SetSessionCookie writes the token into the HTTP-only session cookie
// on the current exchange. Secure is set outside local environments.
func (m *Manager) SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(CookieName, token, cookieMaxAge, "/", "", m.secureCookies, true)
}

// ClearSessionCookie expires the session cookie immediately.
func (m *Manager) ClearSessionCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", m.secureCookies, true)
}

// SessionToken returns the raw cookie value, or "" if absent.
func (m *Manager) SessionToken(c *gin.Context) string {
	raw, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return raw
}

// ReadIdentity resolves the caller from the session cookie: read the
// cookie, then verify the token. ok is false when the cookie is absent
// or the token does not verify.
func (m *Manager) ReadIdentity(c *gin.Context) (*Identity, bool) {
	raw := m.SessionToken(c)
	if raw == "" {
		return nil, false
	}
	id, err := m.VerifyToken(raw)
	if err != nil {
		return nil, false
	}
	return id, true
}
