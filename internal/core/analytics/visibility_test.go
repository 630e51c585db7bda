package analytics_test

import (
	"testing"

	"github.com/SscSPs/multinav_crm/internal/core/analytics"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestScopeActivities_NavigatorSeesOwnOnly(t *testing.T) {
	activities := []domain.Activity{
		{ID: "A1", Date: day("2024-05-20"), Authorship: domain.Authorship{CreatedBy: "nav@x.com"}},
		{ID: "A2", Date: day("2024-06-01"), Authorship: domain.Authorship{CreatedBy: "coord@x.com"}},
	}
	actor := &domain.Actor{Email: "nav@x.com", Role: domain.RoleNavigator}

	got := analytics.ScopeActivities(activities, actor)

	assert.Equal(t, []string{"A1"}, activityIDs(got))
}

func TestScopeActivities_ByRole(t *testing.T) {
	activities := []domain.Activity{
		{ID: "own-email", Authorship: domain.Authorship{CreatedBy: "NAV@x.com", CreatedByName: "Someone Else"}},
		{ID: "own-name", Authorship: domain.Authorship{CreatedBy: "old-address@x.com", CreatedByName: "Nadia Nav"}},
		{ID: "legacy"},
		{ID: "other", Authorship: domain.Authorship{CreatedBy: "other@x.com", CreatedByName: "Other Person"}},
		{ID: "name-only-other", Authorship: domain.Authorship{CreatedByName: "Other Person"}},
	}

	tests := []struct {
		name  string
		actor *domain.Actor
		want  []string
	}{
		{
			name:  "admin sees everything",
			actor: &domain.Actor{Email: "admin@x.com", Role: domain.RoleAdmin},
			want:  []string{"own-email", "own-name", "legacy", "other", "name-only-other"},
		},
		{
			name:  "coordinator sees everything",
			actor: &domain.Actor{Email: "coord@x.com", Role: domain.RoleCoordinator},
			want:  []string{"own-email", "own-name", "legacy", "other", "name-only-other"},
		},
		{
			name:  "navigator sees email match, name match and legacy",
			actor: navigator("nav@x.com", "Nadia Nav"),
			want:  []string{"own-email", "own-name", "legacy"},
		},
		{
			name:  "navigator without a name does not match empty names",
			actor: navigator("nobody@x.com", ""),
			want:  []string{"legacy"},
		},
		{
			name:  "demo session sees everything",
			actor: nil,
			want:  []string{"own-email", "own-name", "legacy", "other", "name-only-other"},
		},
		{
			name:  "unknown role sees nothing",
			actor: &domain.Actor{Email: "nav@x.com", Role: domain.Role("auditor")},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analytics.ScopeActivities(activities, tt.actor)
			assert.Equal(t, tt.want, activityIDs(got))
		})
	}
}

func TestScopeActivities_NeverLeaksOtherAuthors(t *testing.T) {
	actor := navigator("nav@x.com", "Nadia Nav")
	activities := []domain.Activity{
		{ID: "1", Authorship: domain.Authorship{CreatedBy: "a@x.com"}},
		{ID: "2", Authorship: domain.Authorship{CreatedBy: "b@x.com", CreatedByName: "B"}},
		{ID: "3", Authorship: domain.Authorship{CreatedByName: "C"}},
		{ID: "4", Authorship: domain.Authorship{CreatedBy: "nav@x.com"}},
	}

	for _, a := range analytics.ScopeActivities(activities, actor) {
		if a.CreatedBy != "" {
			assert.Equal(t, actor.Email, a.CreatedBy)
		} else if a.CreatedByName != "" {
			assert.Equal(t, actor.FullName, a.CreatedByName)
		}
	}
}

func TestCanMutateActivity(t *testing.T) {
	own := domain.Activity{Authorship: domain.Authorship{CreatedBy: "nav@x.com"}}
	other := domain.Activity{Authorship: domain.Authorship{CreatedBy: "other@x.com"}}
	legacy := domain.Activity{}

	nav := navigator("nav@x.com", "Nadia Nav")
	coord := &domain.Actor{Email: "coord@x.com", Role: domain.RoleCoordinator}

	assert.True(t, analytics.CanMutateActivity(own, nav))
	assert.False(t, analytics.CanMutateActivity(other, nav))
	assert.True(t, analytics.CanMutateActivity(legacy, nav))
	assert.True(t, analytics.CanMutateActivity(other, coord))
	assert.True(t, analytics.CanMutateActivity(other, nil))
}

func TestActivityViews_LabelsDanglingClients(t *testing.T) {
	clients := domain.IndexClients([]domain.Client{{ID: "C1", FullName: "Ana Client"}})
	activities := []domain.Activity{
		{ID: "A1", ClientID: "C1"},
		{ID: "A2", ClientID: "C-missing"},
	}

	views := analytics.ActivityViews(activities, clients, nil)

	assert.Len(t, views, 2)
	assert.Equal(t, "Ana Client", views[0].ClientName)
	assert.Equal(t, domain.UnknownClientName, views[1].ClientName)
	assert.True(t, views[1].CanEdit)
}

func TestScopeNavigation(t *testing.T) {
	navigatorSet := []domain.Capability{
		domain.CapClientRecords,
		domain.CapActivityLog,
		domain.CapLocalInsights,
		domain.CapPracticeDirectory,
		domain.CapResourceLibrary,
	}
	coordinatorExtra := []domain.Capability{
		domain.CapOverviewDashboard,
		domain.CapProgramReport,
		domain.CapWorkforceTracking,
		domain.CapAIInsights,
	}
	adminOnly := []domain.Capability{
		domain.CapUnifiedReport,
		domain.CapUserAdministration,
		domain.CapStaffPerformance,
	}

	nav := analytics.ScopeNavigation(domain.RoleNavigator)
	coord := analytics.ScopeNavigation(domain.RoleCoordinator)
	admin := analytics.ScopeNavigation(domain.RoleAdmin)

	assert.Len(t, nav, len(navigatorSet))
	assert.Len(t, coord, len(navigatorSet)+len(coordinatorExtra))
	assert.Len(t, admin, len(domain.AllCapabilities))

	for _, c := range navigatorSet {
		assert.True(t, nav.Has(c), c)
		assert.True(t, coord.Has(c), c)
		assert.True(t, admin.Has(c), c)
	}
	for _, c := range coordinatorExtra {
		assert.False(t, nav.Has(c), c)
		assert.True(t, coord.Has(c), c)
		assert.True(t, admin.Has(c), c)
	}
	for _, c := range adminOnly {
		assert.False(t, nav.Has(c), c)
		assert.False(t, coord.Has(c), c)
		assert.True(t, admin.Has(c), c)
	}

	assert.Empty(t, analytics.ScopeNavigation(domain.Role("guest")))
}

func TestCanAccess(t *testing.T) {
	assert.True(t, analytics.CanAccess(nil, domain.CapStaffPerformance))
	assert.False(t, analytics.CanAccess(navigator("n@x.com", "N"), domain.CapProgramReport))
	assert.True(t, analytics.CanAccess(&domain.Actor{Role: domain.RoleCoordinator}, domain.CapProgramReport))
}
