package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openfab/printctl/internal/core/domain"
	"github.com/openfab/printctl/internal/core/ports"
)

// SpoolService feeds the create-request flow with spool and material
// choices from the server's Spoolman proxy. Archived spools are filtered
// out; they cannot be printed from.
type SpoolService struct {
	api ports.SpoolmanAPI
	log zerolog.Logger
}

func NewSpoolService(api ports.SpoolmanAPI, log zerolog.Logger) *SpoolService {
	return &SpoolService{api: api, log: log}
}

// Spools lists selectable spools.
func (s *SpoolService) Spools(ctx context.Context) ([]domain.Spool, error) {
	spools, err := s.api.Spools(ctx)
	if err != nil {
		return nil, err
	}
	active := spools[:0]
	for _, spool := range spools {
		if !spool.Archived {
			active = append(active, spool)
		}
	}
	return active, nil
}

// Spool fetches a single spool by Spoolman ID.
func (s *SpoolService) Spool(ctx context.Context, id int) (*domain.Spool, error) {
	return s.api.Spool(ctx, id)
}

// Materials lists the material names known to Spoolman.
func (s *SpoolService) Materials(ctx context.Context) ([]string, error) {
	return s.api.Materials(ctx)
}
