package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/openfab/printctl/internal/core/domain"
	"github.com/openfab/printctl/internal/core/ports"
	"github.com/openfab/printctl/internal/core/session"
)

// stubAccountAPI scripts the auth endpoints for account-flow tests.
type stubAccountAPI struct {
	loginUser *domain.User
	loginErr  error
	pwErr     error
	pwCalls   int
}

func (s *stubAccountAPI) Me(context.Context) (*domain.User, error) {
	return nil, domain.ErrUnauthenticated
}

func (s *stubAccountAPI) Login(context.Context, ports.LoginInput) (*domain.User, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginUser, nil
}

func (s *stubAccountAPI) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	return &domain.User{ID: "u-new", Username: input.Username, Role: domain.RoleUser, Enabled: true}, nil
}

func (s *stubAccountAPI) Logout(context.Context) error { return nil }

func (s *stubAccountAPI) ChangePassword(context.Context, ports.ChangePasswordInput) error {
	s.pwCalls++
	return s.pwErr
}

func TestAccountService_LoginCachesUser(t *testing.T) {
	api := &stubAccountAPI{loginUser: &domain.User{ID: "u-1", Username: "alice", Role: domain.RoleUser}}
	cache := session.NewCache(api, zerolog.Nop())
	svc := NewAccountService(api, cache, zerolog.Nop())

	user, err := svc.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user %+v", user)
	}
	if cached := cache.Current(); cached == nil || cached.ID != "u-1" {
		t.Fatalf("login must populate the session cache, got %+v", cached)
	}
}

func TestAccountService_LoginValidation(t *testing.T) {
	api := &stubAccountAPI{}
	cache := session.NewCache(api, zerolog.Nop())
	svc := NewAccountService(api, cache, zerolog.Nop())

	_, err := svc.Login(context.Background(), ports.LoginInput{Username: "al"})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !strings.Contains(err.Error(), "username") || !strings.Contains(err.Error(), "password") {
		t.Fatalf("error should name both failing fields: %v", err)
	}
}

func TestAccountService_LoginFailureLeavesCacheEmpty(t *testing.T) {
	api := &stubAccountAPI{loginErr: errors.New("invalid username or password")}
	cache := session.NewCache(api, zerolog.Nop())
	svc := NewAccountService(api, cache, zerolog.Nop())

	if _, err := svc.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "wrong"}); err == nil {
		t.Fatal("expected login failure")
	}
	if cache.Current() != nil {
		t.Fatal("failed login must not populate the cache")
	}
}

func TestAccountService_RegisterCachesUser(t *testing.T) {
	api := &stubAccountAPI{}
	cache := session.NewCache(api, zerolog.Nop())
	svc := NewAccountService(api, cache, zerolog.Nop())

	user, err := svc.Register(context.Background(), ports.RegisterInput{Username: "carol", Password: "longenough1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if cached := cache.Current(); cached == nil || cached.Username != user.Username {
		t.Fatal("registration response must be treated as a login")
	}
}

func TestAccountService_ChangePassword(t *testing.T) {
	api := &stubAccountAPI{}
	cache := session.NewCache(api, zerolog.Nop())
	svc := NewAccountService(api, cache, zerolog.Nop())

	// Not logged in.
	err := svc.ChangePassword(context.Background(), ports.ChangePasswordInput{CurrentPassword: "old-pass", NewPassword: "new-pass-123"})
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	cache.Set(&domain.User{ID: "u-1", Username: "alice", Role: domain.RoleUser})

	// New password too short.
	err = svc.ChangePassword(context.Background(), ports.ChangePasswordInput{CurrentPassword: "old-pass", NewPassword: "short"})
	if err == nil || !strings.Contains(err.Error(), "new_password") {
		t.Fatalf("expected new_password validation error, got %v", err)
	}

	// Same as current.
	err = svc.ChangePassword(context.Background(), ports.ChangePasswordInput{CurrentPassword: "same-pass-123", NewPassword: "same-pass-123"})
	if err == nil || !strings.Contains(err.Error(), "differ") {
		t.Fatalf("expected must-differ error, got %v", err)
	}
	if api.pwCalls != 0 {
		t.Fatal("invalid input must not reach the wire")
	}

	if err := svc.ChangePassword(context.Background(), ports.ChangePasswordInput{CurrentPassword: "old-pass", NewPassword: "new-pass-123"}); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if api.pwCalls != 1 {
		t.Fatalf("expected 1 request, got %d", api.pwCalls)
	}
}
