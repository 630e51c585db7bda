package analytics

import (
	"time"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Window is an explicit report window. Averages that depend on elapsed time
// are computed against it rather than the wall clock.
type Window struct {
	Start time.Time
	End   time.Time
}

// Headline tags broken out per staff member.
const (
	TagAppointmentScheduling = "Appointment Scheduling"
	TagMedicareEnrollment    = "Medicare Enrollment"
	TagCareCoordination      = "Care Coordination"
	TagMentalHealth          = "Mental Health"
	TagGPPrimaryCare         = "GP / Primary Care"
)

// NotSpecifiedLocation labels activities recorded without a site.
const NotSpecifiedLocation = "Not specified"

// fallbackAccount picks the account that absorbs unattributed activities: the
// first active admin in roster order, else the first admin. It returns -1 when
// the roster has no admin.
func fallbackAccount(roster []domain.StaffAccount) int {
	first := -1
	for i, s := range roster {
		if s.Role != domain.RoleAdmin {
			continue
		}
		if s.IsActive {
			return i
		}
		if first < 0 {
			first = i
		}
	}
	return first
}

// PerStaffRollup computes KPIs for every roster account, including accounts
// with no activity, in roster order. Activities are attributed by author email
// or name. Unattributed activities are folded into a single admin account; if
// the roster has no admin they are reported on a trailing Unknown row so they
// never vanish from the totals.
func PerStaffRollup(activities []domain.Activity, roster []domain.StaffAccount, w Window) []domain.StaffRollup {
	days := DaysBetween(w.Start, w.End)
	fallback := fallbackAccount(roster)

	buckets := make([][]domain.Activity, len(roster))
	var unattributed []domain.Activity
	for _, a := range activities {
		if !a.HasAuthorship() {
			if fallback >= 0 {
				buckets[fallback] = append(buckets[fallback], a)
			} else {
				unattributed = append(unattributed, a)
			}
			continue
		}
		for i, s := range roster {
			if authoredBy(a, StaffIdentity{Email: s.Email, FullName: s.FullName}) {
				buckets[i] = append(buckets[i], a)
			}
		}
	}

	rollups := make([]domain.StaffRollup, 0, len(roster)+1)
	for i, s := range roster {
		r := rollupOf(buckets[i], days)
		r.StaffID = s.ID
		r.Name = s.FullName
		r.Email = s.Email
		r.Role = s.Role
		r.AssignedLocations = s.AssignedLocations
		rollups = append(rollups, r)
	}
	if len(unattributed) > 0 {
		r := rollupOf(unattributed, days)
		r.Name = domain.UnknownLabel
		rollups = append(rollups, r)
	}
	return rollups
}

func rollupOf(activities []domain.Activity, days int) domain.StaffRollup {
	r := domain.StaffRollup{
		AssignedLocations: []string{},
		ActivityLocations: []string{},
		TotalActivities:   len(activities),
		ClientsServed:     distinctClients(activities),
	}
	seenLoc := make(map[string]struct{})
	for _, a := range activities {
		r.NavigationItems += a.NavigationItemCount()
		r.ServiceItems += a.ServiceItemCount()
		if a.IsDischarge {
			r.Discharges++
		}
		if a.Location != "" {
			if _, ok := seenLoc[a.Location]; !ok {
				seenLoc[a.Location] = struct{}{}
				r.ActivityLocations = append(r.ActivityLocations, a.Location)
			}
		}
		if contains(a.NavigationAssistance, TagAppointmentScheduling) {
			r.Breakdown.AppointmentScheduling++
		}
		if contains(a.NavigationAssistance, TagMedicareEnrollment) {
			r.Breakdown.MedicareEnrollment++
		}
		if contains(a.NavigationAssistance, TagCareCoordination) {
			r.Breakdown.CareCoordination++
		}
		if contains(a.ServicesAccessed, TagMentalHealth) {
			r.Breakdown.MentalHealthServices++
		}
		if contains(a.ServicesAccessed, TagGPPrimaryCare) {
			r.Breakdown.GPServices++
		}
	}
	r.AveragePerDay = decimal.NewFromInt(int64(len(activities))).
		Div(decimal.NewFromInt(int64(days))).
		Round(1)
	return r
}

// StaffPerformance builds the staff KPI report from activities already scoped
// and filtered to the window.
func StaffPerformance(activities []domain.Activity, roster []domain.StaffAccount, clients domain.ClientIndex, w Window) domain.StaffPerformanceReport {
	rollups := PerStaffRollup(activities, roster, w)

	overall := domain.StaffPerformanceOverall{
		TotalActivities: len(activities),
		TotalClients:    distinctClients(activities),
		TotalStaff:      len(roster),
		AveragePerStaff: decimal.Zero,
	}
	if len(roster) > 0 {
		overall.AveragePerStaff = decimal.NewFromInt(int64(len(activities))).
			Div(decimal.NewFromInt(int64(len(roster)))).
			Round(1)
	}

	rows := make([]domain.DetailedActivityRow, len(activities))
	for i, a := range activities {
		location := a.Location
		if location == "" {
			location = NotSpecifiedLocation
		}
		rows[i] = domain.DetailedActivityRow{
			Date:                 a.Date,
			StaffName:            orUnknown(a.CreatedByName),
			StaffEmail:           orUnknown(a.CreatedBy),
			Location:             location,
			ClientID:             a.ClientID,
			ClientName:           clients.NameOf(a.ClientID),
			NavigationAssistance: a.NavigationAssistance,
			ServicesAccessed:     a.ServicesAccessed,
			IsDischarge:          a.IsDischarge,
			FollowUpActions:      a.FollowUpActions,
		}
	}

	return domain.StaffPerformanceReport{
		Start:      w.Start,
		End:        w.End,
		Rollups:    rollups,
		Overall:    overall,
		Activities: rows,
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
