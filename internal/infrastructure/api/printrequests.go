package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/openfab/printctl/internal/core/domain"
	"github.com/openfab/printctl/internal/core/ports"
)

// PrintRequestClient implements ports.PrintRequestAPI against the
// /api/print-requests endpoints.
type PrintRequestClient struct {
	*Client
}

func NewPrintRequestClient(c *Client) *PrintRequestClient {
	return &PrintRequestClient{Client: c}
}

var _ ports.PrintRequestAPI = (*PrintRequestClient)(nil)

func (c *PrintRequestClient) List(ctx context.Context, filter ports.RequestFilter) ([]domain.PrintRequest, error) {
	var query url.Values
	if filter.Status != nil {
		query = url.Values{"status": {filter.Status.String()}}
	}
	data, err := c.get(ctx, "/api/print-requests", query)
	if err != nil {
		return nil, err
	}
	return decode[[]domain.PrintRequest](data)
}

func (c *PrintRequestClient) ListMine(ctx context.Context) ([]domain.PrintRequest, error) {
	data, err := c.get(ctx, "/api/user/print-requests", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]domain.PrintRequest](data)
}

func (c *PrintRequestClient) Get(ctx context.Context, id string) (*domain.PrintRequest, error) {
	data, err := c.get(ctx, "/api/print-requests", url.Values{"id": {id}})
	if err != nil {
		return nil, err
	}
	request, err := decode[domain.PrintRequest](data)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Create submits a new request. The idempotency key makes a retried submit
// recognisable server-side; the server assigns owner and initial status.
func (c *PrintRequestClient) Create(ctx context.Context, input ports.CreatePrintRequestInput) (*domain.PrintRequest, error) {
	header := http.Header{"X-Idempotency-Key": {uuid.NewString()}}
	data, err := c.do(ctx, http.MethodPost, "/api/print-requests", nil, input, header)
	if err != nil {
		return nil, err
	}
	request, err := decode[domain.PrintRequest](data)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (c *PrintRequestClient) Update(ctx context.Context, id string, input ports.UpdatePrintRequestInput) (*domain.PrintRequest, error) {
	query := url.Values{"id": {id}}
	data, err := c.do(ctx, http.MethodPut, "/api/print-requests", query, input, nil)
	if err != nil {
		return nil, err
	}
	request, err := decode[domain.PrintRequest](data)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// statusPatch is the PATCH body for a status change.
type statusPatch struct {
	Status domain.PrintRequestStatus `json:"status"`
}

func (c *PrintRequestClient) UpdateStatus(ctx context.Context, id string, status domain.PrintRequestStatus) (*domain.PrintRequest, error) {
	query := url.Values{"id": {id}}
	data, err := c.do(ctx, http.MethodPatch, "/api/print-requests/status", query, statusPatch{Status: status}, nil)
	if err != nil {
		return nil, err
	}
	request, err := decode[domain.PrintRequest](data)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (c *PrintRequestClient) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/print-requests", url.Values{"id": {id}}, nil, nil)
	return err
}
