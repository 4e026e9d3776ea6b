// Package session holds the client's view of "who is logged in": an
// in-memory cache of the last-known authenticated user and the guard that
// gates flows on it. Nothing here persists beyond the process run; every
// run re-validates against the server.
package session

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openfab/printctl/internal/core/domain"
	"github.com/openfab/printctl/internal/core/ports"
)

// Cache is the single source of truth for the current user within a run.
// A nil cached user means unauthenticated. The cache is only ever fully
// populated from a decoded server response or empty, never partial, and
// callers receive copies so they cannot mutate it.
type Cache struct {
	api  ports.AuthAPI
	log  zerolog.Logger
	user *domain.User
}

// NewCache returns an empty cache bound to the given auth API.
func NewCache(api ports.AuthAPI, log zerolog.Logger) *Cache {
	return &Cache{api: api, log: log}
}

// Set replaces the cached user unconditionally.
func (c *Cache) Set(user *domain.User) {
	if user == nil {
		c.user = nil
		return
	}
	clone := *user
	c.user = &clone
}

// Current returns a copy of the cached user, or nil when unauthenticated.
// Pure read; never touches the network.
func (c *Cache) Current() *domain.User {
	if c.user == nil {
		return nil
	}
	clone := *c.user
	return &clone
}

// Clear drops the cached user.
func (c *Cache) Clear() {
	c.user = nil
}

// Refresh re-validates the session against the server. On success the
// returned user is cached; on any failure — transport error, non-2xx, or a
// body that does not decode — the cache is cleared and nil is returned.
// Failures are logged, never propagated: to every caller, a broken check is
// indistinguishable from an explicit "not authenticated".
func (c *Cache) Refresh(ctx context.Context) *domain.User {
	user, err := c.api.Me(ctx)
	if err != nil {
		c.log.Debug().Err(err).Msg("session check failed")
		c.user = nil
		return nil
	}
	c.Set(user)
	return c.Current()
}

// HasRole reports whether a user is cached and meets the required role.
// False whenever the cache is empty, for every input including malformed
// role strings.
func (c *Cache) HasRole(required domain.Role) bool {
	if c.user == nil {
		return false
	}
	return c.user.Role.Meets(required)
}
