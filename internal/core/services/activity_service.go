package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/analytics"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/dto"
	"github.com/SscSPs/multinav_crm/internal/utils"
	"github.com/SscSPs/multinav_crm/internal/utils/pagination"
	"golang.org/x/sync/errgroup"
)

// ActivityIDPrefix starts every generated activity ID.
const ActivityIDPrefix = "A"

// DefaultActivityPageSize applies when a caller passes a non-positive limit.
const DefaultActivityPageSize = 50

type activityService struct {
	BaseService
	activityRepo portsrepo.ActivityRepositoryFacade
	clientRepo   portsrepo.ClientReader
}

// NewActivityService creates a new activity service. The client reader is
// used to resolve client names, regions and ethnicities.
func NewActivityService(activityRepo portsrepo.ActivityRepositoryFacade, clientRepo portsrepo.ClientReader, options ...ServiceOption) portssvc.ActivitySvcFacade {
	return &activityService{
		BaseService:  newBase(options),
		activityRepo: activityRepo,
		clientRepo:   clientRepo,
	}
}

var _ portssvc.ActivitySvcFacade = (*activityService)(nil)

func (s *activityService) ListActivities(ctx context.Context, actor *domain.Actor, criteria analytics.Criteria, limit int, nextToken string) ([]domain.ActivityView, string, error) {
	if err := s.Authorize(ctx, actor, domain.CapActivityLog); err != nil {
		return nil, "", err
	}
	if err := criteria.Validate(); err != nil {
		return nil, "", err
	}
	if limit <= 0 {
		limit = DefaultActivityPageSize
	}

	var (
		activities []domain.Activity
		clients    []domain.Client
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		activities, err = s.activityRepo.ListActivities(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		clients, err = s.clientRepo.ListClients(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load activity log")
		return nil, "", fmt.Errorf("failed to load activity log: %w", err)
	}

	index := domain.IndexClients(clients)
	scoped := analytics.ScopeActivities(activities, actor)
	filtered, err := analytics.FilterActivities(scoped, index, criteria)
	if err != nil {
		return nil, "", err
	}
	sortActivityLog(filtered)

	if nextToken != "" {
		afterDate, afterID, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		filtered = filtered[firstAfter(filtered, afterDate, afterID):]
	}

	next := ""
	if len(filtered) > limit {
		filtered = filtered[:limit]
		last := filtered[len(filtered)-1]
		next = pagination.EncodeToken(last.Date, last.ID)
	}

	s.LogDebug(ctx, "Activity log page built",
		slog.Int("visible", len(scoped)),
		slog.Int("page_size", len(filtered)),
		slog.Bool("has_more", next != ""))
	return analytics.ActivityViews(filtered, index, actor), next, nil
}

// sortActivityLog orders activities newest first, ties broken by ID, which
// is the order the pagination cursor encodes.
func sortActivityLog(activities []domain.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		if !activities[i].Date.Equal(activities[j].Date) {
			return activities[i].Date.After(activities[j].Date)
		}
		return activities[i].ID < activities[j].ID
	})
}

func firstAfter(sorted []domain.Activity, date time.Time, id string) int {
	return sort.Search(len(sorted), func(i int) bool {
		a := sorted[i]
		return a.Date.Before(date) || (a.Date.Equal(date) && a.ID > id)
	})
}

// loadVisible fetches an activity and hides it behind ErrNotFound when it is
// outside the actor's scope.
func (s *activityService) loadVisible(ctx context.Context, actor *domain.Actor, activityID string) (*domain.Activity, error) {
	activity, err := s.activityRepo.FindActivityByID(ctx, activityID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find activity", slog.String("activity_id", activityID))
		return nil, err
	}
	if !analytics.CanViewActivity(*activity, actor) {
		return nil, fmt.Errorf("%w: activity %s", apperrors.ErrNotFound, activityID)
	}
	return activity, nil
}

func (s *activityService) view(ctx context.Context, activity domain.Activity, actor *domain.Actor) (*domain.ActivityView, error) {
	index := domain.ClientIndex{}
	client, err := s.clientRepo.FindClientByID(ctx, activity.ClientID)
	switch {
	case err == nil:
		index[client.ID] = *client
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, err
	}
	return &domain.ActivityView{
		Activity:   activity,
		ClientName: index.NameOf(activity.ClientID),
		CanEdit:    analytics.CanMutateActivity(activity, actor),
	}, nil
}

func (s *activityService) GetActivity(ctx context.Context, actor *domain.Actor, activityID string) (*domain.ActivityView, error) {
	if err := s.Authorize(ctx, actor, domain.CapActivityLog); err != nil {
		return nil, err
	}
	activity, err := s.loadVisible(ctx, actor, activityID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, *activity, actor)
}

// applyActivityRequest copies the editable fields of req onto a. Authorship
// is left untouched.
func (s *activityService) applyActivityRequest(ctx context.Context, a *domain.Activity, req dto.CreateActivityRequest) error {
	date, err := dto.ParseOptionalDate("date", req.Date)
	if err != nil {
		return err
	}
	if date == nil {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	if req.Location != "" && !domain.IsKnownLocation(req.Location) {
		return fmt.Errorf("%w: unknown location %q", apperrors.ErrValidation, req.Location)
	}
	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: client %s does not exist", apperrors.ErrValidation, req.ClientID)
		}
		return err
	}

	a.ClientID = req.ClientID
	a.Date = *date
	a.Location = req.Location
	a.NavigationAssistance = req.NavigationAssistance
	a.ServicesAccessed = req.ServicesAccessed
	a.EducationalResources = req.EducationalResources
	a.PreventiveServices = req.PreventiveServices
	a.MaternalChildHealth = req.MaternalChildHealth
	a.OtherAssistance = req.OtherAssistance
	a.OtherEducation = req.OtherEducation
	a.ReferralsMade = req.ReferralsMade
	a.FollowUpActions = req.FollowUpActions
	a.IsDischarge = req.IsDischarge
	a.DischargeDate = nil
	a.DischargeReason = ""
	if req.IsDischarge {
		if a.DischargeDate, err = dto.ParseOptionalDate("dischargeDate", req.DischargeDate); err != nil {
			return err
		}
		if a.DischargeDate == nil {
			a.DischargeDate = date
		}
		a.DischargeReason = req.DischargeReason
	}
	return nil
}

func (s *activityService) CreateActivity(ctx context.Context, actor *domain.Actor, req dto.CreateActivityRequest) (*domain.ActivityView, error) {
	if err := s.Authorize(ctx, actor, domain.CapActivityLog); err != nil {
		return nil, err
	}
	id, err := utils.GenerateRecordID(ActivityIDPrefix)
	if err != nil {
		return nil, err
	}
	activity := domain.Activity{ID: id}
	if err := s.applyActivityRequest(ctx, &activity, req); err != nil {
		return nil, err
	}
	if actor != nil {
		now := s.Now()
		activity.Authorship = domain.Authorship{
			CreatedBy:     domain.NormalizeEmail(actor.Email),
			CreatedByName: actor.FullName,
			CreatedByRole: actor.Role,
			CreatedAt:     &now,
		}
	}

	if err := s.activityRepo.SaveActivity(ctx, activity); err != nil {
		s.logUnexpected(ctx, err, "Failed to save activity", slog.String("activity_id", activity.ID))
		return nil, err
	}
	s.LogInfo(ctx, "Activity recorded",
		slog.String("activity_id", activity.ID),
		slog.String("client_id", activity.ClientID))
	return s.view(ctx, activity, actor)
}

func (s *activityService) UpdateActivity(ctx context.Context, actor *domain.Actor, activityID string, req dto.UpdateActivityRequest) (*domain.ActivityView, error) {
	if err := s.Authorize(ctx, actor, domain.CapActivityLog); err != nil {
		return nil, err
	}
	activity, err := s.loadVisible(ctx, actor, activityID)
	if err != nil {
		return nil, err
	}
	if !analytics.CanMutateActivity(*activity, actor) {
		return nil, fmt.Errorf("%w: activity %s was recorded by another navigator", apperrors.ErrForbidden, activityID)
	}

	authorship := activity.Authorship
	if err := s.applyActivityRequest(ctx, activity, req); err != nil {
		return nil, err
	}
	activity.Authorship = authorship

	if err := s.activityRepo.UpdateActivity(ctx, *activity); err != nil {
		s.logUnexpected(ctx, err, "Failed to update activity", slog.String("activity_id", activityID))
		return nil, err
	}
	s.LogInfo(ctx, "Activity updated", slog.String("activity_id", activityID))
	return s.view(ctx, *activity, actor)
}

func (s *activityService) DeleteActivity(ctx context.Context, actor *domain.Actor, activityID string) error {
	if err := s.Authorize(ctx, actor, domain.CapActivityLog); err != nil {
		return err
	}
	activity, err := s.loadVisible(ctx, actor, activityID)
	if err != nil {
		return err
	}
	if !analytics.CanMutateActivity(*activity, actor) {
		return fmt.Errorf("%w: activity %s was recorded by another navigator", apperrors.ErrForbidden, activityID)
	}
	if err := s.activityRepo.DeleteActivity(ctx, activityID); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete activity", slog.String("activity_id", activityID))
		return err
	}
	s.LogInfo(ctx, "Activity deleted", slog.String("activity_id", activityID))
	return nil
}
