// Package navigation gates route transitions on the session state. The
// guard is a predicate: it decides allow-or-redirect and never mutates
// credentials itself.
package navigation

import (
	"context"
	"net/url"

	"skillspot/domain"
)

const (
	// LoginPath receives redirected anonymous visitors; the originally
	// intended path rides along as a resumable query parameter.
	LoginPath = "/login"
	// LandingPath is the default destination for authenticated users hitting
	// a guest-only route.
	LandingPath = "/dashboard"
)

// Route carries the requirements of a navigation target. A route may require
// authentication, require anonymity, or neither; never both.
type Route struct {
	Path          string
	RequiresAuth  bool
	RequiresGuest bool
}

// Decision is the guard's verdict. Either Allow is true or RedirectTo names
// the destination.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Session is the read surface the guard needs from the session controller.
type Session interface {
	Bootstrap(ctx context.Context) error
	State() domain.SessionState
	IsAuthenticated() bool
	HasCredentials() bool
}

type Guard struct {
	session Session
}

func NewGuard(session Session) *Guard {
	return &Guard{session: session}
}

// Decide evaluates a route transition. When a persisted token exists but the
// identity has not resolved yet, the guard awaits Bootstrap before deciding,
// so a startup race never produces a false "not authenticated" redirect.
func (g *Guard) Decide(ctx context.Context, route Route) Decision {
	if !g.session.IsAuthenticated() && g.session.HasCredentials() {
		_ = g.session.Bootstrap(ctx)
	}

	authenticated := g.session.State() == domain.SessionAuthenticated

	if route.RequiresAuth && !authenticated {
		return Decision{RedirectTo: LoginPath + "?redirect=" + url.QueryEscape(route.Path)}
	}
	if route.RequiresGuest && authenticated {
		return Decision{RedirectTo: LandingPath}
	}
	return Decision{Allow: true}
}
