package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/openfab/printctl/internal/core/domain"
	"github.com/openfab/printctl/internal/core/ports"
)

// SpoolmanClient implements ports.SpoolmanAPI against the server's Spoolman
// proxy. Read-only: the client never writes to Spoolman.
type SpoolmanClient struct {
	*Client
}

func NewSpoolmanClient(c *Client) *SpoolmanClient {
	return &SpoolmanClient{Client: c}
}

var _ ports.SpoolmanAPI = (*SpoolmanClient)(nil)

func (c *SpoolmanClient) Spools(ctx context.Context) ([]domain.Spool, error) {
	data, err := c.get(ctx, "/api/spoolman/spools", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]domain.Spool](data)
}

func (c *SpoolmanClient) Spool(ctx context.Context, id int) (*domain.Spool, error) {
	data, err := c.get(ctx, "/api/spoolman/spool", url.Values{"id": {strconv.Itoa(id)}})
	if err != nil {
		return nil, err
	}
	spool, err := decode[domain.Spool](data)
	if err != nil {
		return nil, err
	}
	return &spool, nil
}

func (c *SpoolmanClient) Materials(ctx context.Context) ([]string, error) {
	data, err := c.get(ctx, "/api/spoolman/materials", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]string](data)
}
