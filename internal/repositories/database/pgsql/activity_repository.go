package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	"github.com/SscSPs/multinav_crm/internal/models"
)

type PgxActivityRepository struct {
	BaseRepository
}

func newPgxActivityRepository(pool *pgxpool.Pool) *PgxActivityRepository {
	return &PgxActivityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ActivityRepositoryFacade = (*PgxActivityRepository)(nil)

const activitySelectQuery = `
SELECT
	activity_id, client_id, activity_date, location,
	navigation_assistance, services_accessed, educational_resources,
	preventive_services, maternal_child_health, other_assistance, other_education,
	referrals_made, follow_up_actions, is_discharge, discharge_date, discharge_reason,
	created_by, created_by_name, created_by_role, created_at
FROM activities
`

func (r *PgxActivityRepository) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	rows, err := r.Pool.Query(ctx, activitySelectQuery+` ORDER BY activity_date DESC, activity_id`)
	if err != nil {
		return nil, storageError("query activities", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Activity])
	if err != nil {
		return nil, storageError("collect activity rows", err)
	}
	activities := make([]domain.Activity, len(ms))
	for i, m := range ms {
		activities[i] = m.ToDomain()
	}
	return activities, nil
}

func (r *PgxActivityRepository) FindActivityByID(ctx context.Context, activityID string) (*domain.Activity, error) {
	rows, err := r.Pool.Query(ctx, activitySelectQuery+` WHERE activity_id = $1`, activityID)
	if err != nil {
		return nil, storageError("query activity", err)
	}
	m, err := collectOne[models.Activity](rows, "collect activity row")
	if err != nil {
		return nil, err
	}
	activity := m.ToDomain()
	return &activity, nil
}

func (r *PgxActivityRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	m := models.FromDomainActivity(activity)
	query := `
		INSERT INTO activities (
			activity_id, client_id, activity_date, location,
			navigation_assistance, services_accessed, educational_resources,
			preventive_services, maternal_child_health, other_assistance, other_education,
			referrals_made, follow_up_actions, is_discharge, discharge_date, discharge_reason,
			created_by, created_by_name, created_by_role, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ActivityID, m.ClientID, m.ActivityDate, m.Location,
		m.NavigationAssistance, m.ServicesAccessed, m.EducationalResources,
		m.PreventiveServices, m.MaternalChildHealth, m.OtherAssistance, m.OtherEducation,
		m.ReferralsMade, m.FollowUpActions, m.IsDischarge, m.DischargeDate, m.DischargeReason,
		m.CreatedBy, m.CreatedByName, m.CreatedByRole, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return storageError("insert activity", err)
	}
	return nil
}

// UpdateActivity leaves the created_* columns untouched.
func (r *PgxActivityRepository) UpdateActivity(ctx context.Context, activity domain.Activity) error {
	m := models.FromDomainActivity(activity)
	query := `
		UPDATE activities SET
			client_id = $2, activity_date = $3, location = $4,
			navigation_assistance = $5, services_accessed = $6, educational_resources = $7,
			preventive_services = $8, maternal_child_health = $9, other_assistance = $10,
			other_education = $11, referrals_made = $12, follow_up_actions = $13,
			is_discharge = $14, discharge_date = $15, discharge_reason = $16
		WHERE activity_id = $1;
	`
	return r.execAffectingOne(ctx, "update activity", query,
		m.ActivityID, m.ClientID, m.ActivityDate, m.Location,
		m.NavigationAssistance, m.ServicesAccessed, m.EducationalResources,
		m.PreventiveServices, m.MaternalChildHealth, m.OtherAssistance,
		m.OtherEducation, m.ReferralsMade, m.FollowUpActions,
		m.IsDischarge, m.DischargeDate, m.DischargeReason,
	)
}

func (r *PgxActivityRepository) DeleteActivity(ctx context.Context, activityID string) error {
	return r.execAffectingOne(ctx, "delete activity", `DELETE FROM activities WHERE activity_id = $1`, activityID)
}
