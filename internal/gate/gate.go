// Package gate decides what happens to a page request before any page
// handler runs, based purely on the requested path and the state of the
// session token. It knows nothing about HTTP types, which keeps the
// decision table testable without a simulated transport.
package gate

import "strings"

// TokenStatus is the gate's view of the session token on a request.
type TokenStatus int

const (
	TokenAbsent TokenStatus = iota
	TokenInvalid
	TokenValid
)

// Action is what the transport layer should do with the request.
type Action int

const (
	Allow Action = iota
	RedirectLogin
	RedirectDashboard
)

// Outcome pairs the action with the one permitted side effect.
type Outcome struct {
	Action      Action
	ClearCookie bool
}

// Resolve classifies the path and applies the decision table.
//
// Protected paths require a valid token; an invalid token there is also
// cleared, since it can never become valid again and would otherwise
// fail verification on every subsequent request. Auth-only paths
// (login, register) bounce valid sessions to the dashboard; an invalid
// token there is left alone because the next successful login
// overwrites it anyway. Everything else passes through.
func Resolve(path string, status TokenStatus) Outcome {
	switch {
	case isProtected(path):
		switch status {
		case TokenValid:
			return Outcome{Action: Allow}
		case TokenInvalid:
			return Outcome{Action: RedirectLogin, ClearCookie: true}
		default:
			return Outcome{Action: RedirectLogin}
		}
	case isAuthOnly(path):
		if status == TokenValid {
			return Outcome{Action: RedirectDashboard}
		}
		return Outcome{Action: Allow}
	default:
		return Outcome{Action: Allow}
	}
}

func isProtected(path string) bool {
	return path == "/dashboard" || strings.HasPrefix(path, "/dashboard/")
}

func isAuthOnly(path string) bool {
	return path == "/login" || path == "/register"
}
