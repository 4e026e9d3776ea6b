package session

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/openfab/printctl/internal/core/domain"
	"github.com/openfab/printctl/internal/core/ports"
)

// stubAuthAPI scripts the auth endpoints for cache and guard tests.
type stubAuthAPI struct {
	meUser      *domain.User
	meErr       error
	meCalls     int
	logoutErr   error
	logoutCalls int
}

func (s *stubAuthAPI) Me(context.Context) (*domain.User, error) {
	s.meCalls++
	if s.meErr != nil {
		return nil, s.meErr
	}
	return s.meUser, nil
}

func (s *stubAuthAPI) Login(context.Context, ports.LoginInput) (*domain.User, error) {
	return nil, errors.New("not scripted")
}

func (s *stubAuthAPI) Register(context.Context, ports.RegisterInput) (*domain.User, error) {
	return nil, errors.New("not scripted")
}

func (s *stubAuthAPI) Logout(context.Context) error {
	s.logoutCalls++
	return s.logoutErr
}

func (s *stubAuthAPI) ChangePassword(context.Context, ports.ChangePasswordInput) error {
	return errors.New("not scripted")
}

func testUser(role domain.Role) *domain.User {
	return &domain.User{ID: "u-1", Username: "alice", Role: role, Enabled: true}
}

func TestCache_RefreshSuccess(t *testing.T) {
	api := &stubAuthAPI{meUser: testUser(domain.RoleUser)}
	cache := NewCache(api, zerolog.Nop())

	user := cache.Refresh(context.Background())
	if user == nil || user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if got := cache.Current(); got == nil || got.ID != "u-1" {
		t.Fatalf("cache not populated: %+v", got)
	}
}

func TestCache_RefreshFailureClears(t *testing.T) {
	api := &stubAuthAPI{meUser: testUser(domain.RoleUser)}
	cache := NewCache(api, zerolog.Nop())
	cache.Refresh(context.Background())

	api.meErr = domain.ErrUnauthenticated
	if user := cache.Refresh(context.Background()); user != nil {
		t.Fatalf("expected nil after 401, got %+v", user)
	}
	if cache.Current() != nil {
		t.Fatal("cache should be cleared after failed check")
	}
}

func TestCache_RefreshNetworkErrorClears(t *testing.T) {
	api := &stubAuthAPI{meErr: errors.New("connection refused")}
	cache := NewCache(api, zerolog.Nop())
	cache.Set(testUser(domain.RoleAdmin))

	if user := cache.Refresh(context.Background()); user != nil {
		t.Fatalf("expected nil on transport failure, got %+v", user)
	}
	if cache.Current() != nil {
		t.Fatal("stale user survived a failed re-validation")
	}
}

func TestCache_RefreshRevalidatesEveryCall(t *testing.T) {
	api := &stubAuthAPI{meUser: testUser(domain.RoleUser)}
	cache := NewCache(api, zerolog.Nop())

	cache.Refresh(context.Background())
	cache.Refresh(context.Background())
	if api.meCalls != 2 {
		t.Fatalf("expected 2 session checks, got %d", api.meCalls)
	}
}

func TestCache_CurrentReturnsCopy(t *testing.T) {
	cache := NewCache(&stubAuthAPI{}, zerolog.Nop())
	cache.Set(testUser(domain.RoleUser))

	got := cache.Current()
	got.Role = domain.RoleAdmin
	if cache.Current().Role != domain.RoleUser {
		t.Fatal("caller mutation leaked into the cache")
	}
}

func TestCache_HasRole(t *testing.T) {
	cache := NewCache(&stubAuthAPI{}, zerolog.Nop())

	// Empty cache: false for everything, including malformed input.
	for _, r := range []domain.Role{domain.RoleUser, domain.RoleAdmin, "superuser", ""} {
		if cache.HasRole(r) {
			t.Fatalf("HasRole(%q) true with empty cache", r)
		}
	}

	cache.Set(testUser(domain.RoleModerator))
	cases := []struct {
		required domain.Role
		want     bool
	}{
		{domain.RoleUser, true},
		{domain.RoleModerator, true},
		{domain.RoleAdmin, false},
		{"superuser", false}, // unknown required role fails closed
	}
	for _, tc := range cases {
		if got := cache.HasRole(tc.required); got != tc.want {
			t.Errorf("HasRole(%q) = %v, want %v", tc.required, got, tc.want)
		}
	}
}

func TestCache_HasRoleUnknownHeldRole(t *testing.T) {
	cache := NewCache(&stubAuthAPI{}, zerolog.Nop())
	cache.Set(&domain.User{ID: "u-2", Username: "bob", Role: "intern"})

	if cache.HasRole(domain.RoleUser) {
		t.Fatal("unknown held role must rank below user")
	}
}
