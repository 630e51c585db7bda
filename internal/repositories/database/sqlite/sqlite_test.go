package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, InitSchema(context.Background(), db))
	t.Cleanup(func() { db.Close() })
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClientRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(setupTestDB(t))
	dob := day(1985, 3, 2)
	legacyAge := 52
	created := time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC)

	require.NoError(t, repo.SaveClient(ctx, domain.Client{
		ID: "CAAAAA", FullName: "Amina Yusuf", Sex: domain.SexFemale, DateOfBirth: &dob,
		Ethnicity: "Somali", Languages: []string{"Somali", "English"}, Region: domain.RegionNorth,
		CreatedAt: created,
	}))
	require.NoError(t, repo.SaveClient(ctx, domain.Client{
		ID: "CBBBBB", FullName: "Legacy Client", Age: &legacyAge, CreatedAt: created.Add(time.Hour),
	}))

	got, err := repo.FindClientByID(ctx, "CAAAAA")
	require.NoError(t, err)
	assert.Equal(t, "Amina Yusuf", got.FullName)
	assert.Equal(t, []string{"Somali", "English"}, got.Languages)
	require.NotNil(t, got.DateOfBirth)
	assert.True(t, dob.Equal(*got.DateOfBirth))
	assert.Nil(t, got.Age)
	assert.Nil(t, got.ReferralDate)
	assert.Equal(t, domain.RegionNorth, got.Region)

	all, err := repo.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "CAAAAA", all[0].ID)
	require.NotNil(t, all[1].Age)
	assert.Equal(t, 52, *all[1].Age)
	assert.Equal(t, []string{}, all[1].Languages)

	err = repo.SaveClient(ctx, domain.Client{ID: "CAAAAA", FullName: "Dup", CreatedAt: created})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	got.FullName = "Amina Y."
	require.NoError(t, repo.UpdateClient(ctx, *got))
	got, err = repo.FindClientByID(ctx, "CAAAAA")
	require.NoError(t, err)
	assert.Equal(t, "Amina Y.", got.FullName)

	require.NoError(t, repo.DeleteClient(ctx, "CAAAAA"))
	_, err = repo.FindClientByID(ctx, "CAAAAA")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteClient(ctx, "CAAAAA"), apperrors.ErrNotFound)
}

func TestActivityRepository_UpdateKeepsAuthorship(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository(setupTestDB(t))
	stamped := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	a := domain.Activity{
		ID: "AAAAAA", ClientID: "CAAAAA", Date: day(2024, 2, 1), Location: "Swan",
		NavigationAssistance: []string{"Care Coordination"},
		Authorship: domain.Authorship{
			CreatedBy: "nav@multinav.org", CreatedByName: "Nav One",
			CreatedByRole: domain.RoleNavigator, CreatedAt: &stamped,
		},
	}
	require.NoError(t, repo.SaveActivity(ctx, a))
	require.NoError(t, repo.SaveActivity(ctx, domain.Activity{ID: "ABBBBB", ClientID: "CAAAAA", Date: day(2024, 3, 1)}))

	a.FollowUpActions = "Call back"
	a.Authorship = domain.Authorship{CreatedBy: "someone@else.org"}
	require.NoError(t, repo.UpdateActivity(ctx, a))

	got, err := repo.FindActivityByID(ctx, "AAAAAA")
	require.NoError(t, err)
	assert.Equal(t, "Call back", got.FollowUpActions)
	assert.Equal(t, "nav@multinav.org", got.CreatedBy)
	assert.Equal(t, domain.RoleNavigator, got.CreatedByRole)
	require.NotNil(t, got.Authorship.CreatedAt)
	assert.True(t, stamped.Equal(*got.Authorship.CreatedAt))

	all, err := repo.ListActivities(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "ABBBBB", all[0].ID)
	assert.False(t, all[0].HasAuthorship())

	assert.ErrorIs(t, repo.UpdateActivity(ctx, domain.Activity{ID: "AZZZZZ", Date: day(2024, 1, 1)}), apperrors.ErrNotFound)
}

func TestWorkforceRepository_ReplaceKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkforceRepository(setupTestDB(t))

	require.NoError(t, repo.SaveWorkforceEntry(ctx, domain.WorkforceEntry{
		ID: "old", Partition: domain.PartitionNorth, FTE: decimal.NewFromInt(1), Role: "Navigator",
	}))

	entries := []domain.WorkforceEntry{
		{ID: "n1", Partition: domain.PartitionNorth, FTE: decimal.RequireFromString("0.6"), Role: "Navigator", Languages: []string{"Dari"}},
		{ID: "s1", Partition: domain.PartitionSouth, FTE: decimal.RequireFromString("1.0"), Role: "Coordinator"},
		{ID: "n2", Partition: domain.PartitionNorth, FTE: decimal.RequireFromString("0.4"), Role: "Navigator"},
	}
	require.NoError(t, repo.ReplaceWorkforce(ctx, entries))

	got, err := repo.ListWorkforce(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "n1", got[0].ID)
	assert.Equal(t, "s1", got[1].ID)
	assert.Equal(t, "n2", got[2].ID)
	assert.True(t, got[0].FTE.Equal(decimal.RequireFromString("0.6")))
	assert.Equal(t, []string{"Dari"}, got[0].Languages)

	_, err = repo.FindWorkforceEntryByID(ctx, "old")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStaffRepository_EmailIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewStaffRepository(setupTestDB(t))
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveStaff(ctx, domain.StaffAccount{
		ID: "S1", Email: "Admin@MultiNav.org", FullName: "Admin", Role: domain.RoleAdmin, IsActive: true,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}))

	got, err := repo.FindStaffByEmail(ctx, "ADMIN@multinav.org")
	require.NoError(t, err)
	assert.Equal(t, "admin@multinav.org", got.Email)
	assert.True(t, got.IsActive)
	assert.Equal(t, []string{}, got.AssignedLocations)

	err = repo.SaveStaff(ctx, domain.StaffAccount{
		ID: "S2", Email: "admin@multinav.org", FullName: "Other", Role: domain.RoleNavigator,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	login := now.Add(2 * time.Hour)
	require.NoError(t, repo.UpdateLastLogin(ctx, "S1", login))
	got, err = repo.FindStaffByID(ctx, "S1")
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.True(t, login.Equal(*got.LastLogin))

	assert.ErrorIs(t, repo.UpdateLastLogin(ctx, "missing", login), apperrors.ErrNotFound)
}

func TestClientRepository_StorageFailureIsWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewClientRepository(db)

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("disk I/O error"))

	_, err = repo.ListClients(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.Contains(t, err.Error(), "disk I/O error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkforceRepository_ReplaceRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewWorkforceRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM workforce_entries`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO workforce_entries`).WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err = repo.ReplaceWorkforce(context.Background(), []domain.WorkforceEntry{
		{ID: "n1", Partition: domain.PartitionNorth, FTE: decimal.NewFromInt(1), Role: "Navigator"},
	})

	assert.ErrorIs(t, err, apperrors.ErrStorage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStaffRepository_DeleteMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewStaffRepository(db)

	mock.ExpectExec(`DELETE FROM staff_accounts`).WithArgs("S9").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteStaff(context.Background(), "S9"), apperrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
