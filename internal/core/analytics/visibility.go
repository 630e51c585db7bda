package analytics

import (
	"strings"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

var navigatorCapabilities = []domain.Capability{
	domain.CapClientRecords,
	domain.CapActivityLog,
	domain.CapLocalInsights,
	domain.CapPracticeDirectory,
	domain.CapResourceLibrary,
}

var coordinatorCapabilities = append(append([]domain.Capability{}, navigatorCapabilities...),
	domain.CapOverviewDashboard,
	domain.CapProgramReport,
	domain.CapWorkforceTracking,
	domain.CapAIInsights,
)

// capabilityTable is the single source of truth for what each role may open.
var capabilityTable = map[domain.Role][]domain.Capability{
	domain.RoleNavigator:   navigatorCapabilities,
	domain.RoleCoordinator: coordinatorCapabilities,
	domain.RoleAdmin:       domain.AllCapabilities,
}

// ScopeNavigation returns the fixed capability set for role. Unknown roles get
// an empty set.
func ScopeNavigation(role domain.Role) domain.CapabilitySet {
	caps := capabilityTable[role]
	set := make(domain.CapabilitySet, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

// CanAccess reports whether actor may use capability. A nil actor is an
// unauthenticated demo session and may use everything.
func CanAccess(actor *domain.Actor, capability domain.Capability) bool {
	if actor == nil {
		return true
	}
	return ScopeNavigation(actor.Role).Has(capability)
}

// hasFullActivityAccess reports whether role sees every activity.
func hasFullActivityAccess(role domain.Role) bool {
	return role == domain.RoleAdmin || role == domain.RoleCoordinator
}

// StaffIdentity is the part of a staff account used for authorship matching.
type StaffIdentity struct {
	Email    string
	FullName string
}

// IdentityOf extracts the matching identity from an actor.
func IdentityOf(actor domain.Actor) StaffIdentity {
	return StaffIdentity{Email: actor.Email, FullName: actor.FullName}
}

// authoredBy is the email-or-name half of the authorship rule.
func authoredBy(a domain.Activity, who StaffIdentity) bool {
	if a.CreatedBy != "" && who.Email != "" && strings.EqualFold(a.CreatedBy, who.Email) {
		return true
	}
	return a.CreatedByName != "" && who.FullName != "" && a.CreatedByName == who.FullName
}

// MatchesAuthor applies the three-way authorship rule: the activity was
// created by this email, or by this display name, or carries no authorship
// at all. Legacy records without authorship therefore match everyone.
func MatchesAuthor(a domain.Activity, who StaffIdentity) bool {
	if !a.HasAuthorship() {
		return true
	}
	return authoredBy(a, who)
}

// CanViewActivity reports whether actor may read a.
func CanViewActivity(a domain.Activity, actor *domain.Actor) bool {
	if actor == nil {
		return true
	}
	if hasFullActivityAccess(actor.Role) {
		return true
	}
	if actor.Role == domain.RoleNavigator {
		return MatchesAuthor(a, IdentityOf(*actor))
	}
	return false
}

// CanMutateActivity reports whether actor may edit or delete a.
func CanMutateActivity(a domain.Activity, actor *domain.Actor) bool {
	if !CanViewActivity(a, actor) {
		return false
	}
	if actor == nil || hasFullActivityAccess(actor.Role) {
		return true
	}
	return MatchesAuthor(a, IdentityOf(*actor))
}

// ScopeActivities returns the activities actor may read, in input order.
func ScopeActivities(activities []domain.Activity, actor *domain.Actor) []domain.Activity {
	out := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if CanViewActivity(a, actor) {
			out = append(out, a)
		}
	}
	return out
}

// ActivityViews scopes activities for actor and decorates each with the
// client's name and whether the actor may edit it. Dangling client references
// are labelled domain.UnknownClientName.
func ActivityViews(activities []domain.Activity, clients domain.ClientIndex, actor *domain.Actor) []domain.ActivityView {
	scoped := ScopeActivities(activities, actor)
	views := make([]domain.ActivityView, len(scoped))
	for i, a := range scoped {
		views[i] = domain.ActivityView{
			Activity:   a,
			ClientName: clients.NameOf(a.ClientID),
			CanEdit:    CanMutateActivity(a, actor),
		}
	}
	return views
}
