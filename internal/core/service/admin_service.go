package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/openfab/printctl/internal/core/domain"
	"github.com/openfab/printctl/internal/core/ports"
)

// AdminService covers user management and moderation stats. The view layer
// gates these flows through the Guard (moderator for listing and
// enable/disable, admin for role changes); the server enforces the same
// rules authoritatively.
type AdminService struct {
	api ports.AdminAPI
	log zerolog.Logger
}

func NewAdminService(api ports.AdminAPI, log zerolog.Logger) *AdminService {
	return &AdminService{api: api, log: log}
}

// Users lists all accounts.
func (s *AdminService) Users(ctx context.Context) ([]domain.User, error) {
	return s.api.ListUsers(ctx)
}

// SetRole changes a user's role. Only known roles pass; the fail-closed
// Meets sentinel protects reads, this protects writes.
func (s *AdminService) SetRole(ctx context.Context, userID string, role domain.Role) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	if !role.IsValid() {
		return fmt.Errorf("unknown role %q (valid: user, moderator, admin)", role)
	}
	if err := s.api.UpdateUserRole(ctx, userID, role); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Str("role", role.String()).Msg("role updated")
	return nil
}

// SetEnabled toggles whether an account may log in.
func (s *AdminService) SetEnabled(ctx context.Context, userID string, enabled bool) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	if err := s.api.SetUserEnabled(ctx, userID, enabled); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Bool("enabled", enabled).Msg("account status updated")
	return nil
}

// Stats returns the moderation dashboard summary.
func (s *AdminService) Stats(ctx context.Context) (*ports.SystemStats, error) {
	return s.api.Stats(ctx)
}
