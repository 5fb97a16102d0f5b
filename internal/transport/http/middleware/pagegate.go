package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/irohit373/AlignTODO/internal/gate"
	"github.com/irohit373/AlignTODO/internal/identity"
)

// PageGate runs ahead of every page handler. It maps the session cookie
// to a token status, asks the gate for an outcome, and short-circuits
// rendering on redirects so protected markup is never built for an
// unauthenticated request.
func PageGate(im *identity.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gate.TokenAbsent
		if raw := im.SessionToken(c); raw != "" {
			if _, err := im.VerifyToken(raw); err != nil {
				status = gate.TokenInvalid
			} else {
				status = gate.TokenValid
			}
		}

		out := gate.Resolve(c.Request.URL.Path, status)
		if out.ClearCookie {
			im.ClearSessionCookie(c)
		}

		switch out.Action {
		case gate.RedirectLogin:
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		case gate.RedirectDashboard:
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
		default:
			c.Next()
		}
	}
}
