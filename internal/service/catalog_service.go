package service

import (
	"context"

	"github.com/jinzhu/copier"
	"github.com/lshigami/QuizDraft/internal/dto"
	"github.com/rs/zerolog/log"
)

// CatalogService proxies the bank's taxonomy for the composer's pickers.
// Failures are logged and answered with an empty list.
type CatalogService interface {
	ListDomains(ctx context.Context) []dto.DomainResponse
	ListSubjects(ctx context.Context, domainID string) []dto.SubjectResponse
}

type catalogService struct {
	client CatalogClient
}

func NewCatalogService(client CatalogClient) CatalogService {
	return &catalogService{client: client}
}

func (s *catalogService) ListDomains(ctx context.Context) []dto.DomainResponse {
	resp := []dto.DomainResponse{}
	domains, err := s.client.ListDomains(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to fetch domains from bank")
		return resp
	}
	if err := copier.Copy(&resp, &domains); err != nil {
		log.Error().Err(err).Msg("Failed to map domains")
		return []dto.DomainResponse{}
	}
	return resp
}

func (s *catalogService) ListSubjects(ctx context.Context, domainID string) []dto.SubjectResponse {
	resp := []dto.SubjectResponse{}
	subjects, err := s.client.ListSubjects(ctx, domainID)
	if err != nil {
		log.Warn().Err(err).Str("domain_id", domainID).Msg("Failed to fetch subjects from bank")
		return resp
	}
	if err := copier.Copy(&resp, &subjects); err != nil {
		log.Error().Err(err).Msg("Failed to map subjects")
		return []dto.SubjectResponse{}
	}
	return resp
}
