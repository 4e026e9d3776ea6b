// Package service holds the client-side orchestration between the view
// layer and the server API: input validation, session bookkeeping, and
// transition pruning. Services never retry; every failure is terminal for
// the triggering call and needs a fresh user action.
package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/openfab/printctl/internal/core/domain"
	"github.com/openfab/printctl/internal/core/ports"
	"github.com/openfab/printctl/internal/core/session"
)

// AccountService implements the login, registration, and password flows.
// Successful login and registration populate the session cache, mirroring
// the server's own response.
type AccountService struct {
	api   ports.AuthAPI
	cache *session.Cache
	log   zerolog.Logger
}

func NewAccountService(api ports.AuthAPI, cache *session.Cache, log zerolog.Logger) *AccountService {
	return &AccountService{api: api, cache: cache, log: log}
}

// Login authenticates and caches the returned user. The server's error text
// (plain body on non-2xx) passes through untouched for display.
func (s *AccountService) Login(ctx context.Context, input ports.LoginInput) (*domain.User, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	user, err := s.api.Login(ctx, input)
	if err != nil {
		return nil, err
	}
	s.cache.Set(user)
	s.log.Info().Str("username", user.Username).Msg("logged in")
	return user, nil
}

// Register creates an account and, like the original front end, treats the
// registration response as a login.
func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	user, err := s.api.Register(ctx, input)
	if err != nil {
		return nil, err
	}
	s.cache.Set(user)
	s.log.Info().Str("username", user.Username).Msg("account created")
	return user, nil
}

// ChangePassword submits a password change for the current session. The new
// password must clear the server's minimum length and differ from the
// current one; both are checked here before the round trip.
func (s *AccountService) ChangePassword(ctx context.Context, input ports.ChangePasswordInput) error {
	if s.cache.Current() == nil {
		return domain.ErrUnauthenticated
	}
	if err := checkInput(input); err != nil {
		return err
	}
	if err := s.api.ChangePassword(ctx, input); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}
