package analytics_test

import (
	"testing"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/analytics"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureWorkforce() domain.WorkforceData {
	return domain.WorkforceData{
		North: []domain.WorkforceEntry{
			{ID: "W1", Partition: domain.PartitionNorth, FTE: decimal.RequireFromString("0.6"), Ethnicity: "Afghan", Languages: []string{"Dari", "English"}},
			{ID: "W2", Partition: domain.PartitionNorth, FTE: decimal.RequireFromString("1.0"), Ethnicity: "Somali", Languages: []string{"Somali"}},
		},
		South: []domain.WorkforceEntry{
			{ID: "W3", Partition: domain.PartitionSouth, FTE: decimal.RequireFromString("0.333"), Ethnicity: "Afghan", Languages: []string{"English"}},
		},
	}
}

func fixtureClients() []domain.Client {
	return []domain.Client{
		{ID: "C1", FullName: "Ana", Sex: domain.SexFemale, Age: intPtr(34), Ethnicity: "Afghan", ReferralSource: "GP",
			ReferralDate: dayPtr("2024-06-03"), Region: domain.RegionNorth},
		{ID: "C2", FullName: "Bo", Sex: domain.SexMale, Age: intPtr(52), Ethnicity: "Somali", ReferralSource: "NGO",
			ReferralDate: dayPtr("2024-06-10"), Region: domain.RegionSouth},
		{ID: "C3", FullName: "Cy", Sex: domain.SexMale, Age: intPtr(8), Ethnicity: "Afghan", ReferralSource: "GP",
			ReferralDate: dayPtr("2024-01-10")},
	}
}

func fixtureActivities() []domain.Activity {
	return []domain.Activity{
		{ID: "A1", ClientID: "C1", Date: day("2024-06-04"), NavigationAssistance: []string{"Care Coordination"},
			ServicesAccessed: []string{"Mental Health"}},
		{ID: "A2", ClientID: "C2", Date: day("2024-06-12"), NavigationAssistance: []string{"Care Coordination", "Medicare Enrollment"},
			IsDischarge: true},
		{ID: "A3", ClientID: "C3", Date: day("2024-02-01"), ServicesAccessed: []string{"Dental"}},
	}
}

func TestSummarizeWorkforce(t *testing.T) {
	s := analytics.SummarizeWorkforce(fixtureWorkforce())

	assert.Equal(t, "1.93", s.TotalFTE.StringFixed(2))
	assert.Equal(t, "1.60", s.NorthFTE.StringFixed(2))
	assert.Equal(t, "0.33", s.SouthFTE.StringFixed(2))
	assert.Equal(t, 3, s.Headcount)
	assert.Equal(t, []domain.Count{{Key: "Afghan", Count: 2}, {Key: "Somali", Count: 1}}, s.Ethnicities)
	assert.Equal(t, []domain.Count{{Key: "English", Count: 2}, {Key: "Dari", Count: 1}, {Key: "Somali", Count: 1}}, s.Languages)
}

func TestOverview(t *testing.T) {
	report := analytics.Overview(fixtureClients(), fixtureActivities(), fixtureWorkforce(), day("2024-07-01"))

	assert.Equal(t, 3, report.TotalClients)
	assert.Equal(t, 3, report.TotalActivities)
	assert.Equal(t, "1.93", report.TotalFTE.StringFixed(2))
	assert.Equal(t, []domain.Count{{Key: "Care Coordination", Count: 2}, {Key: "Medicare Enrollment", Count: 1}}, report.TopNavigation)
	assert.Equal(t, 2, report.PyramidScale)
}

func TestProgramReport(t *testing.T) {
	c := analytics.Criteria{Start: dayPtr("2024-06-01"), End: dayPtr("2024-06-30")}

	report, err := analytics.ProgramReport(fixtureClients(), fixtureActivities(), fixtureWorkforce(), c)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Clients.Total)
	assert.Equal(t, []domain.Count{{Key: "North", Count: 1}, {Key: "South", Count: 1}}, report.Clients.Regions)
	assert.Equal(t, 2, report.Activities.Total)
	assert.Equal(t, 3, report.Activities.TotalNavigationItems)
	assert.Equal(t, 1, report.Activities.TotalServiceItems)
	assert.Equal(t, 1, report.Activities.TotalDischarges)
	assert.Equal(t, 5, report.Activities.TotalItems)
	assert.Equal(t, "2024-06-30", report.End.Format("2006-01-02"))
}

func TestProgramReport_Errors(t *testing.T) {
	_, err := analytics.ProgramReport(fixtureClients(), fixtureActivities(), fixtureWorkforce(),
		analytics.Criteria{Start: dayPtr("2023-01-01"), End: dayPtr("2023-01-31")})
	assert.ErrorIs(t, err, apperrors.ErrNoData)

	_, err = analytics.ProgramReport(fixtureClients(), fixtureActivities(), fixtureWorkforce(),
		analytics.Criteria{Start: dayPtr("2024-06-30"), End: dayPtr("2024-06-01")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = analytics.ProgramReport(fixtureClients(), fixtureActivities(), fixtureWorkforce(),
		analytics.Criteria{Start: dayPtr("2024-06-01")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUnifiedReport(t *testing.T) {
	report, err := analytics.UnifiedReport(fixtureClients(), fixtureActivities(), analytics.Criteria{Region: "all"}, day("2024-07-01"))

	require.NoError(t, err)
	assert.Equal(t, 3, report.Clients.Total)
	assert.Equal(t, []domain.Count{{Key: "North", Count: 1}, {Key: "South", Count: 1}, {Key: "Unknown", Count: 1}}, report.Clients.Regions)
	if assert.NotNil(t, report.Clients.AverageAge) {
		assert.Equal(t, 31.3, *report.Clients.AverageAge)
	}
	assert.Equal(t, 3, report.Activities.Total)
	assert.Equal(t, 3, report.Activities.ClientsServed)
	assert.Equal(t, 1.0, report.Activities.AveragePerClient)
	assert.Equal(t, 2, report.Activities.ServicesCount)
	assert.Equal(t, 3, report.Activities.NavigationCount)
	assert.Equal(t, 6, report.Activities.TotalItems)
}

func TestStaffPerformanceReport_FiltersWindow(t *testing.T) {
	activities := []domain.Activity{
		{ID: "in", ClientID: "C1", Date: day("2024-06-05"), Authorship: domain.Authorship{CreatedBy: "nav@x.com"}},
		{ID: "out", ClientID: "C1", Date: day("2024-05-05"), Authorship: domain.Authorship{CreatedBy: "nav@x.com"}},
	}
	c := analytics.Criteria{Start: dayPtr("2024-06-01"), End: dayPtr("2024-06-30")}

	report, err := analytics.StaffPerformanceReport(activities, testRoster, fixtureClients(), c)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Overall.TotalActivities)
	assert.Equal(t, 1, rollupFor(report.Rollups, "nav@x.com").TotalActivities)

	c.Staff = &analytics.StaffIdentity{Email: "nav@x.com"}
	report, err = analytics.StaffPerformanceReport(activities, testRoster, fixtureClients(), c)
	require.NoError(t, err)
	require.Len(t, report.Rollups, 1)
	assert.Equal(t, "S1", report.Rollups[0].StaffID)
}

func TestStaffPerformanceReport_StaffFilterLegacyActivities(t *testing.T) {
	activities := []domain.Activity{
		{ID: "mine", ClientID: "C1", Date: day("2024-06-05"), Authorship: domain.Authorship{CreatedBy: "nav@x.com"}},
		{ID: "legacy", ClientID: "C2", Date: day("2024-06-06")},
	}
	c := analytics.Criteria{Start: dayPtr("2024-06-01"), End: dayPtr("2024-06-30")}

	tests := []struct {
		name        string
		staff       analytics.StaffIdentity
		wantStaffID string
		wantTotal   int
	}{
		{"navigator excludes legacy", analytics.StaffIdentity{Email: "nav@x.com"}, "S1", 1},
		{"fallback admin keeps legacy", analytics.StaffIdentity{Email: "admin@x.com"}, "S2", 1},
		{"coordinator by name", analytics.StaffIdentity{FullName: "Cody Coord"}, "S3", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.Staff = &tt.staff

			report, err := analytics.StaffPerformanceReport(activities, testRoster, fixtureClients(), c)

			require.NoError(t, err)
			require.Len(t, report.Rollups, 1, "no Unknown row next to the selected account")
			assert.Equal(t, tt.wantStaffID, report.Rollups[0].StaffID)
			assert.Equal(t, tt.wantTotal, report.Rollups[0].TotalActivities)
			assert.Equal(t, tt.wantTotal, report.Overall.TotalActivities)
			assert.Len(t, report.Activities, tt.wantTotal)
		})
	}
}
