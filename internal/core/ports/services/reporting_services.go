package services

import (
	"context"

	"github.com/SscSPs/multinav_crm/internal/core/analytics"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// ReportingService defines the role-gated analytics operations. Each report
// is computed from a fresh snapshot of the entity store.
type ReportingService interface {
	// Capabilities returns the navigation surfaces the actor may open.
	Capabilities(ctx context.Context, actor *domain.Actor) domain.CapabilitySet

	Overview(ctx context.Context, actor *domain.Actor) (*domain.OverviewReport, error)
	ProgramReport(ctx context.Context, actor *domain.Actor, criteria analytics.Criteria) (*domain.ProgramReport, error)
	// ProgramInsights sends the program report's compact summary to the
	// narrative service and returns the validated findings.
	ProgramInsights(ctx context.Context, actor *domain.Actor, criteria analytics.Criteria) ([]domain.Insight, error)
	UnifiedReport(ctx context.Context, actor *domain.Actor, criteria analytics.Criteria) (*domain.UnifiedReport, error)
	WorkforceReport(ctx context.Context, actor *domain.Actor) (*domain.WorkforceSummary, error)
	StaffPerformance(ctx context.Context, actor *domain.Actor, criteria analytics.Criteria) (*domain.StaffPerformanceReport, error)
}

// InsightNarrator is the external text-generation service behind AI insights.
type InsightNarrator interface {
	// Narrate returns the raw JSON payload the service produced for req.
	Narrate(ctx context.Context, req domain.InsightRequest) ([]byte, error)
}
