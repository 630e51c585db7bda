package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/analytics"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	repos    portsrepo.RepositoryProvider
	narrator portssvc.InsightNarrator
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithInsightNarrator sets the narrative service behind AI insights.
func WithInsightNarrator(narrator portssvc.InsightNarrator) ReportingServiceOption {
	return func(s *reportingService) {
		s.narrator = narrator
	}
}

// WithReportingClock overrides the clock used for age derivation.
func WithReportingClock(clock func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.Clock = clock
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repos portsrepo.RepositoryProvider, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{repos: repos}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// snapshot is one consistent read of every entity a report can use.
type snapshot struct {
	clients    []domain.Client
	activities []domain.Activity
	workforce  domain.WorkforceData
	staff      []domain.StaffAccount
}

// loadSnapshot fetches the four entity lists concurrently. The activities
// are scoped to what actor may read before any report sees them.
func (s *reportingService) loadSnapshot(ctx context.Context, actor *domain.Actor) (*snapshot, error) {
	var (
		snap      snapshot
		workforce []domain.WorkforceEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.clients, err = s.repos.ClientRepo.ListClients(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.activities, err = s.repos.ActivityRepo.ListActivities(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		workforce, err = s.repos.WorkforceRepo.ListWorkforce(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.staff, err = s.repos.StaffRepo.ListStaff(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load report snapshot")
		return nil, fmt.Errorf("failed to load report snapshot: %w", err)
	}
	snap.activities = analytics.ScopeActivities(snap.activities, actor)
	snap.workforce = domain.PartitionWorkforce(workforce)
	return &snap, nil
}

func (s *reportingService) Capabilities(ctx context.Context, actor *domain.Actor) domain.CapabilitySet {
	if actor == nil {
		return analytics.ScopeNavigation(domain.RoleAdmin)
	}
	return analytics.ScopeNavigation(actor.Role)
}

func (s *reportingService) Overview(ctx context.Context, actor *domain.Actor) (*domain.OverviewReport, error) {
	if err := s.Authorize(ctx, actor, domain.CapOverviewDashboard); err != nil {
		return nil, err
	}
	snap, err := s.loadSnapshot(ctx, actor)
	if err != nil {
		return nil, err
	}
	report := analytics.Overview(snap.clients, snap.activities, snap.workforce, s.Now())
	s.LogInfo(ctx, "Overview report generated",
		slog.Int("clients", report.TotalClients),
		slog.Int("activities", report.TotalActivities))
	return &report, nil
}

func (s *reportingService) ProgramReport(ctx context.Context, actor *domain.Actor, criteria analytics.Criteria) (*domain.ProgramReport, error) {
	if err := s.Authorize(ctx, actor, domain.CapProgramReport); err != nil {
		return nil, err
	}
	return s.programReport(ctx, actor, criteria)
}

func (s *reportingService) programReport(ctx context.Context, actor *domain.Actor, criteria analytics.Criteria) (*domain.ProgramReport, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	snap, err := s.loadSnapshot(ctx, actor)
	if err != nil {
		return nil, err
	}
	report, err := analytics.ProgramReport(snap.clients, snap.activities, snap.workforce, criteria)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNoData) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to build program report")
		}
		return nil, err
	}
	s.LogInfo(ctx, "Program report generated",
		slog.String("start", report.Start.Format("2006-01-02")),
		slog.String("end", report.End.Format("2006-01-02")),
		slog.Int("clients", report.Clients.Total),
		slog.Int("activities", report.Activities.Total))
	return &report, nil
}

func (s *reportingService) ProgramInsights(ctx context.Context, actor *domain.Actor, criteria analytics.Criteria) ([]domain.Insight, error) {
	if err := s.Authorize(ctx, actor, domain.CapAIInsights); err != nil {
		return nil, err
	}
	if s.narrator == nil {
		return nil, apperrors.ErrNarrativeNotConfigured
	}
	report, err := s.programReport(ctx, actor, criteria)
	if err != nil {
		return nil, err
	}

	req := analytics.BuildInsightRequest(*report)
	if s.GetLogger(ctx).Enabled(ctx, slog.LevelDebug) {
		payload, _ := json.Marshal(req)
		s.LogDebug(ctx, "Requesting narrative insights", slog.Int("request_bytes", len(payload)))
	}
	raw, err := s.narrator.Narrate(ctx, req)
	if err != nil {
		s.LogError(ctx, err, "Narrative service call failed")
		return nil, err
	}
	insights, err := analytics.DecodeInsights(raw)
	if err != nil {
		s.LogError(ctx, err, "Narrative service returned an invalid payload", slog.Int("payload_bytes", len(raw)))
		return nil, err
	}
	s.LogInfo(ctx, "Narrative insights generated", slog.Int("count", len(insights)))
	return insights, nil
}

func (s *reportingService) UnifiedReport(ctx context.Context, actor *domain.Actor, criteria analytics.Criteria) (*domain.UnifiedReport, error) {
	if err := s.Authorize(ctx, actor, domain.CapUnifiedReport); err != nil {
		return nil, err
	}
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	snap, err := s.loadSnapshot(ctx, actor)
	if err != nil {
		return nil, err
	}
	report, err := analytics.UnifiedReport(snap.clients, snap.activities, criteria, s.Now())
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Unified report generated",
		slog.Int("clients", report.Clients.Total),
		slog.Int("activities", report.Activities.Total))
	return &report, nil
}

func (s *reportingService) WorkforceReport(ctx context.Context, actor *domain.Actor) (*domain.WorkforceSummary, error) {
	if err := s.Authorize(ctx, actor, domain.CapWorkforceTracking); err != nil {
		return nil, err
	}
	entries, err := s.repos.WorkforceRepo.ListWorkforce(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workforce for report")
		return nil, fmt.Errorf("failed to list workforce: %w", err)
	}
	summary := analytics.SummarizeWorkforce(domain.PartitionWorkforce(entries))
	return &summary, nil
}

func (s *reportingService) StaffPerformance(ctx context.Context, actor *domain.Actor, criteria analytics.Criteria) (*domain.StaffPerformanceReport, error) {
	if err := s.Authorize(ctx, actor, domain.CapStaffPerformance); err != nil {
		return nil, err
	}
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	snap, err := s.loadSnapshot(ctx, actor)
	if err != nil {
		return nil, err
	}
	report, err := analytics.StaffPerformanceReport(snap.activities, snap.staff, snap.clients, criteria)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Staff performance report generated",
		slog.Int("staff", len(report.Rollups)),
		slog.Int("activities", report.Overall.TotalActivities))
	return &report, nil
}
