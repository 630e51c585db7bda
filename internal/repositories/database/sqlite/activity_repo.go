package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	"github.com/SscSPs/multinav_crm/internal/models"
)

// ActivityRepository implements the activity ports over SQLite.
type ActivityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

var _ portsrepo.ActivityRepositoryFacade = (*ActivityRepository)(nil)

const activityColumns = `activity_id, client_id, activity_date, location,
	navigation_assistance, services_accessed, educational_resources, preventive_services,
	maternal_child_health, other_assistance, other_education, referrals_made, follow_up_actions,
	is_discharge, discharge_date, discharge_reason,
	created_by, created_by_name, created_by_role, created_at`

func scanActivity(row rowScanner) (models.Activity, error) {
	var m models.Activity
	err := row.Scan(&m.ActivityID, &m.ClientID, &m.ActivityDate, &m.Location,
		(*stringList)(&m.NavigationAssistance), (*stringList)(&m.ServicesAccessed),
		(*stringList)(&m.EducationalResources), (*stringList)(&m.PreventiveServices),
		(*stringList)(&m.MaternalChildHealth), &m.OtherAssistance, &m.OtherEducation,
		&m.ReferralsMade, &m.FollowUpActions, &m.IsDischarge, &m.DischargeDate, &m.DischargeReason,
		&m.CreatedBy, &m.CreatedByName, &m.CreatedByRole, &m.CreatedAt)
	return m, err
}

func (r *ActivityRepository) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+activityColumns+` FROM activities ORDER BY activity_date DESC, activity_id`)
	if err != nil {
		return nil, storageError("query activities", err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		m, err := scanActivity(rows)
		if err != nil {
			return nil, storageError("scan activity", err)
		}
		activities = append(activities, m.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate activities", err)
	}
	return activities, nil
}

func (r *ActivityRepository) FindActivityByID(ctx context.Context, activityID string) (*domain.Activity, error) {
	m, err := scanActivity(r.db.QueryRowContext(ctx, `SELECT `+activityColumns+` FROM activities WHERE activity_id = ?`, activityID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, storageError("get activity", err)
	}
	activity := m.ToDomain()
	return &activity, nil
}

func (r *ActivityRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	m := models.FromDomainActivity(activity)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activities (`+activityColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ActivityID, m.ClientID, m.ActivityDate, m.Location,
		stringList(m.NavigationAssistance), stringList(m.ServicesAccessed),
		stringList(m.EducationalResources), stringList(m.PreventiveServices),
		stringList(m.MaternalChildHealth), m.OtherAssistance, m.OtherEducation,
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
func (r *ActivityRepository) UpdateActivity(ctx context.Context, activity domain.Activity) error {
	m := models.FromDomainActivity(activity)
	return execAffectingOne(ctx, r.db, "update activity", `
		UPDATE activities SET
			client_id = ?, activity_date = ?, location = ?, navigation_assistance = ?,
			services_accessed = ?, educational_resources = ?, preventive_services = ?,
			maternal_child_health = ?, other_assistance = ?, other_education = ?,
			referrals_made = ?, follow_up_actions = ?, is_discharge = ?, discharge_date = ?,
			discharge_reason = ?
		WHERE activity_id = ?`,
		m.ClientID, m.ActivityDate, m.Location, stringList(m.NavigationAssistance),
		stringList(m.ServicesAccessed), stringList(m.EducationalResources), stringList(m.PreventiveServices),
		stringList(m.MaternalChildHealth), m.OtherAssistance, m.OtherEducation,
		m.ReferralsMade, m.FollowUpActions, m.IsDischarge, m.DischargeDate,
		m.DischargeReason, m.ActivityID,
	)
}

func (r *ActivityRepository) DeleteActivity(ctx context.Context, activityID string) error {
	return execAffectingOne(ctx, r.db, "delete activity", `DELETE FROM activities WHERE activity_id = ?`, activityID)
}
