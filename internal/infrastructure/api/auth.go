package api

import (
	"context"
	"net/http"

	"github.com/openfab/printctl/internal/core/domain"
	"github.com/openfab/printctl/internal/core/ports"
)

// AuthClient implements ports.AuthAPI against the /api/auth endpoints.
// Login and Register set the session cookie through the shared jar; every
// later call rides on it.
type AuthClient struct {
	*Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{Client: c}
}

var _ ports.AuthAPI = (*AuthClient)(nil)

// Me returns the identity bound to the current session cookie. A 401 maps
// to domain.ErrUnauthenticated via the StatusError.
func (c *AuthClient) Me(ctx context.Context) (*domain.User, error) {
	data, err := c.get(ctx, "/api/auth/me", nil)
	if err != nil {
		return nil, err
	}
	user, err := decode[domain.User](data)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *AuthClient) Login(ctx context.Context, input ports.LoginInput) (*domain.User, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, input, nil)
	if err != nil {
		return nil, err
	}
	user, err := decode[domain.User](data)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *AuthClient) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, input, nil)
	if err != nil {
		return nil, err
	}
	user, err := decode[domain.User](data)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *AuthClient) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
	return err
}

func (c *AuthClient) ChangePassword(ctx context.Context, input ports.ChangePasswordInput) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/change-password", nil, input, nil)
	return err
}
