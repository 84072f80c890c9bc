// Package guard gates access to protected views based on session state.
// Guards are pure predicates: they return a decision (allow, or where to
// redirect) and never perform navigation themselves.
package guard

import (
	"github.com/sportradar/sportradar-cli/internal/client/api"
)

// Session is the read-only view of the session store that guards consume.
type Session interface {
	IsAuthenticated() bool
	CurrentUser() *api.User
}

// Views a guard can redirect to.
const (
	ViewHome      = "home"
	ViewLogin     = "login"
	ViewDashboard = "dashboard"
)

// Decision is the outcome of evaluating a guard: either the wrapped view is
// allowed to render, or the caller should redirect to RedirectTo instead.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

func allow() Decision               { return Decision{Allowed: true} }
func redirect(view string) Decision { return Decision{RedirectTo: view} }

// Guard evaluates session state into a Decision. Guards compose: wrap a
// view with Auth first, then a role guard.
type Guard func(Session) Decision

// Auth passes for any authenticated session and sends everyone else to the
// login view.
func Auth(s Session) Decision {
	if s.IsAuthenticated() {
		return allow()
	}
	return redirect(ViewLogin)
}

// Business passes for authenticated business accounts. An authenticated
// user of the wrong kind is redirected to the default authenticated
// landing view, not to login.
func Business(s Session) Decision {
	u := s.CurrentUser()
	if u == nil || u.Type != api.AccountBusiness {
		return redirect(ViewDashboard)
	}
	return allow()
}

// Staff passes for authenticated staff users; everyone else goes home.
func Staff(s Session) Decision {
	u := s.CurrentUser()
	if u == nil || !u.IsStaff {
		return redirect(ViewHome)
	}
	return allow()
}
