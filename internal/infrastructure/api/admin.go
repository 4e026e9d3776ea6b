package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/openfab/printctl/internal/core/domain"
	"github.com/openfab/printctl/internal/core/ports"
)

// AdminClient implements ports.AdminAPI against the /api/admin endpoints.
type AdminClient struct {
	*Client
}

func NewAdminClient(c *Client) *AdminClient {
	return &AdminClient{Client: c}
}

var _ ports.AdminAPI = (*AdminClient)(nil)

func (c *AdminClient) ListUsers(ctx context.Context) ([]domain.User, error) {
	data, err := c.get(ctx, "/api/admin/users", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]domain.User](data)
}

type rolePatch struct {
	Role domain.Role `json:"role"`
}

func (c *AdminClient) UpdateUserRole(ctx context.Context, id string, role domain.Role) error {
	query := url.Values{"id": {id}}
	_, err := c.do(ctx, http.MethodPut, "/api/admin/users/role", query, rolePatch{Role: role}, nil)
	return err
}

type enabledPatch struct {
	Enabled bool `json:"enabled"`
}

func (c *AdminClient) SetUserEnabled(ctx context.Context, id string, enabled bool) error {
	query := url.Values{"id": {id}}
	_, err := c.do(ctx, http.MethodPut, "/api/admin/users/status", query, enabledPatch{Enabled: enabled}, nil)
	return err
}

func (c *AdminClient) Stats(ctx context.Context) (*ports.SystemStats, error) {
	data, err := c.get(ctx, "/api/admin/stats", nil)
	if err != nil {
		return nil, err
	}
	stats, err := decode[ports.SystemStats](data)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
