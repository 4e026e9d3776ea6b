package session

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openfab/printctl/internal/core/domain"
	"github.com/openfab/printctl/internal/core/ports"
)

// State is the guard's bootstrap phase.
type State int

const (
	StateUnchecked State = iota
	StateChecking
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateUnchecked:
		return "unchecked"
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "invalid"
	}
}

// Guard orchestrates session bootstrap and gates flows on the cached user.
// It owns no user state of its own; the cache is the single mutable value,
// and navigation side effects go through the injected Navigator so the
// guard stays testable in isolation.
type Guard struct {
	cache *Cache
	api   ports.AuthAPI
	nav   ports.Navigator
	log   zerolog.Logger
	state State
}

// NewGuard returns a guard in the Unchecked state.
func NewGuard(cache *Cache, api ports.AuthAPI, nav ports.Navigator, log zerolog.Logger) *Guard {
	return &Guard{cache: cache, api: api, nav: nav, log: log, state: StateUnchecked}
}

// State returns the current bootstrap state.
func (g *Guard) State() State {
	return g.state
}

// Init runs session bootstrap: Unchecked → Checking, one round trip through
// Cache.Refresh, then Authenticated or Unauthenticated depending on whether
// a user came back. The view refresh hook fires in either case. Gating
// calls are only meaningful after Init has returned.
func (g *Guard) Init(ctx context.Context) *domain.User {
	g.state = StateChecking
	user := g.cache.Refresh(ctx)
	if user != nil {
		g.state = StateAuthenticated
		g.log.Info().Str("username", user.Username).Str("role", user.Role.String()).Msg("session established")
	} else {
		g.state = StateUnauthenticated
	}
	g.nav.Refresh()
	return user
}

// RequireAuth returns true only in the Authenticated state. Any other state
// fires the login redirect once and returns false; before bootstrap there
// is no user to vouch for, so the gate fails closed.
func (g *Guard) RequireAuth() bool {
	if g.state == StateAuthenticated {
		return true
	}
	g.nav.ToLogin()
	return false
}

// RequireRole is RequireAuth plus a role check. An authenticated user below
// the required role is sent to the reduced-privilege surface, which is
// distinct from the login redirect.
func (g *Guard) RequireRole(required domain.Role) bool {
	if g.state != StateAuthenticated {
		g.nav.ToLogin()
		return false
	}
	if !g.cache.HasRole(required) {
		user := g.cache.Current()
		g.log.Warn().
			Str("required", required.String()).
			Str("role", user.Role.String()).
			Msg("insufficient role")
		g.nav.ToDashboard()
		return false
	}
	return true
}

// Logout tears the session down. The server round trip is best-effort: the
// property that matters is that this client stops presenting itself as
// authenticated, so the cache is cleared and the login redirect fires
// whether or not the request succeeded.
func (g *Guard) Logout(ctx context.Context) {
	if err := g.api.Logout(ctx); err != nil {
		g.log.Warn().Err(err).Msg("logout request failed")
	}
	g.cache.Clear()
	g.state = StateUnauthenticated
	g.nav.ToLogin()
}
