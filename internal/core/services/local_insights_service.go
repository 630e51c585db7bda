package services

import (
	"context"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
)

type localInsightsService struct {
	BaseService
}

// NewLocalInsightsService creates the service behind the local insights page.
func NewLocalInsightsService(options ...ServiceOption) portssvc.LocalInsightsSvc {
	return &localInsightsService{BaseService: newBase(options)}
}

var _ portssvc.LocalInsightsSvc = (*localInsightsService)(nil)

// LocalAreas returns a copy of the council area list.
func (s *localInsightsService) LocalAreas(ctx context.Context, actor *domain.Actor) ([]domain.LocalArea, error) {
	if err := s.Authorize(ctx, actor, domain.CapLocalInsights); err != nil {
		return nil, err
	}
	return append([]domain.LocalArea(nil), domain.LocalAreas...), nil
}
