package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/openfab/printctl/internal/core/domain"
	"github.com/openfab/printctl/internal/core/ports"
)

// RequestService drives the print-request flows. It prunes status choices
// with the transition table before anything reaches the wire; the server
// re-validates on submit, so this is defence in depth, not the enforcement
// point.
type RequestService struct {
	api ports.PrintRequestAPI
	log zerolog.Logger
}

func NewRequestService(api ports.PrintRequestAPI, log zerolog.Logger) *RequestService {
	return &RequestService{api: api, log: log}
}

// List returns requests visible to the caller, optionally filtered by status.
func (s *RequestService) List(ctx context.Context, filter ports.RequestFilter) ([]domain.PrintRequest, error) {
	return s.api.List(ctx, filter)
}

// Mine returns the current user's own requests.
func (s *RequestService) Mine(ctx context.Context) ([]domain.PrintRequest, error) {
	return s.api.ListMine(ctx)
}

// Get fetches a single request by ID.
func (s *RequestService) Get(ctx context.Context, id string) (*domain.PrintRequest, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", domain.ErrRequestNotFound)
	}
	return s.api.Get(ctx, id)
}

// Create submits a new request. The server owns the status (always
// PendingApproval on creation) and the identity of the owner; an
// idempotency key makes an accidental resubmit safe once the server
// honours it.
func (s *RequestService) Create(ctx context.Context, input ports.CreatePrintRequestInput) (*domain.PrintRequest, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	created, err := s.api.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", created.ID).Msg("print request submitted")
	return created, nil
}

// Update edits an existing request's fields. Ownership is the server's call;
// the inputs get the same validation as a fresh submission.
func (s *RequestService) Update(ctx context.Context, id string, input ports.UpdatePrintRequestInput) (*domain.PrintRequest, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", domain.ErrRequestNotFound)
	}
	if err := checkInput(input); err != nil {
		return nil, err
	}
	updated, err := s.api.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("id", updated.ID).Msg("print request updated")
	return updated, nil
}

// OfferedStatuses returns the transitions the UI may present for a request,
// straight from the transition table.
func (s *RequestService) OfferedStatuses(current domain.PrintRequestStatus) []domain.PrintRequestStatus {
	return current.ValidNext()
}

// UpdateStatus moves a request to a new status. Locally illegal transitions
// are refused without a round trip, naming the offered set; legal ones go
// to the server, whose structured rejection text is surfaced verbatim. The
// caller's local copy stays untouched on failure — the returned record is
// the only updated view.
func (s *RequestService) UpdateStatus(ctx context.Context, request *domain.PrintRequest, next domain.PrintRequestStatus) (*domain.PrintRequest, error) {
	if !request.Status.CanTransitionTo(next) {
		offered := request.Status.ValidNext()
		labels := make([]string, 0, len(offered))
		for _, st := range offered {
			labels = append(labels, st.Label())
		}
		if len(labels) == 0 {
			return nil, fmt.Errorf("%w: no transitions available from %s",
				domain.ErrInvalidTransition, request.Status.Label())
		}
		return nil, fmt.Errorf("%w: %s → %s (available: %s)",
			domain.ErrInvalidTransition, request.Status.Label(), next.Label(), strings.Join(labels, ", "))
	}

	updated, err := s.api.UpdateStatus(ctx, request.ID, next)
	if err != nil {
		s.log.Warn().Err(err).Str("id", request.ID).
			Str("from", request.Status.String()).Str("to", next.String()).
			Msg("status update rejected")
		return nil, err
	}
	s.log.Info().Str("id", updated.ID).Str("status", updated.Status.String()).Msg("status updated")
	return updated, nil
}

// Delete removes a request (moderator and above; the server enforces it).
func (s *RequestService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", domain.ErrRequestNotFound)
	}
	return s.api.Delete(ctx, id)
}
