package ports

import (
	"context"

	"github.com/openfab/printctl/internal/core/domain"
)

// LoginInput carries the credentials submitted to the login endpoint.
type LoginInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput carries the fields for a new account.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// ChangePasswordInput carries the change-password request body.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,nefield=CurrentPassword"`
}

// AuthAPI is the slice of the server contract that establishes and tears
// down the session. Login and Register set the session cookie server-side;
// Me reports the identity bound to the current cookie.
type AuthAPI interface {
	Me(ctx context.Context) (*domain.User, error)
	Login(ctx context.Context, input LoginInput) (*domain.User, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
}

// CreatePrintRequestInput carries a new print request submission. Status is
// fixed server-side to PendingApproval and is not part of the input.
type CreatePrintRequestInput struct {
	FileLink string  `json:"file_link" validate:"required,url,max=2048"`
	Notes    string  `json:"notes" validate:"max=1000"`
	SpoolID  *int    `json:"spool_id,omitempty"`
	Color    *string `json:"color,omitempty" validate:"omitempty,max=50"`
	Material *string `json:"material,omitempty" validate:"omitempty,max=50"`
}

// UpdatePrintRequestInput carries the editable fields of an existing
// request. Status changes go through UpdateStatus, not here.
type UpdatePrintRequestInput struct {
	FileLink string  `json:"file_link" validate:"required,url,max=2048"`
	Notes    string  `json:"notes" validate:"max=1000"`
	SpoolID  *int    `json:"spool_id,omitempty"`
	Color    *string `json:"color,omitempty" validate:"omitempty,max=50"`
	Material *string `json:"material,omitempty" validate:"omitempty,max=50"`
}

// RequestFilter narrows a listing. The zero value lists everything visible
// to the caller.
type RequestFilter struct {
	Status *domain.PrintRequestStatus
}

// PrintRequestAPI covers the print-request resource.
type PrintRequestAPI interface {
	List(ctx context.Context, filter RequestFilter) ([]domain.PrintRequest, error)
	ListMine(ctx context.Context) ([]domain.PrintRequest, error)
	Get(ctx context.Context, id string) (*domain.PrintRequest, error)
	Create(ctx context.Context, input CreatePrintRequestInput) (*domain.PrintRequest, error)
	Update(ctx context.Context, id string, input UpdatePrintRequestInput) (*domain.PrintRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.PrintRequestStatus) (*domain.PrintRequest, error)
	Delete(ctx context.Context, id string) error
}

// SystemStats is the moderation dashboard summary.
type SystemStats struct {
	TotalUsers      int `json:"total_users"`
	EnabledUsers    int `json:"enabled_users"`
	TotalRequests   int `json:"total_requests"`
	PendingRequests int `json:"pending_requests"`
}

// AdminAPI covers the moderation and user-management surface. The server
// enforces moderator/admin access; the Guard prunes what the UI offers.
type AdminAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUserRole(ctx context.Context, id string, role domain.Role) error
	SetUserEnabled(ctx context.Context, id string, enabled bool) error
	Stats(ctx context.Context) (*SystemStats, error)
}

// SpoolmanAPI is the read-only Spoolman contract proxied by the server.
type SpoolmanAPI interface {
	Spools(ctx context.Context) ([]domain.Spool, error)
	Spool(ctx context.Context, id int) (*domain.Spool, error)
	Materials(ctx context.Context) ([]string, error)
}
