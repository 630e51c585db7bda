package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Overview builds the dashboard statistics over the full snapshot.
func Overview(clients []domain.Client, activities []domain.Activity, workforce domain.WorkforceData, now time.Time) domain.OverviewReport {
	pyramid := PopulationPyramid(clients, now)
	return domain.OverviewReport{
		TotalClients:          len(clients),
		TotalActivities:       len(activities),
		TotalFTE:              SummarizeWorkforce(workforce).TotalFTE,
		EthnicityDistribution: EthnicityDistribution(clients),
		TopNavigation:         TopN(NavigationDistribution(activities), 5),
		PopulationPyramid:     pyramid,
		PyramidScale:          PyramidScale(pyramid),
	}
}

// SummarizeWorkforce totals FTE per partition (two decimal places) and
// counts staff ethnicities and languages.
func SummarizeWorkforce(w domain.WorkforceData) domain.WorkforceSummary {
	north := sumFTE(w.North)
	south := sumFTE(w.South)
	all := w.All()
	return domain.WorkforceSummary{
		TotalFTE:    north.Add(south).Round(2),
		NorthFTE:    north.Round(2),
		SouthFTE:    south.Round(2),
		Headcount:   len(all),
		Ethnicities: CountBy(all, func(e domain.WorkforceEntry) string { return orUnknown(e.Ethnicity) }),
		Languages:   FlattenCountBy(all, func(e domain.WorkforceEntry) []string { return e.Languages }),
	}
}

func sumFTE(entries []domain.WorkforceEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.FTE)
	}
	return total
}

// SummarizeActivities computes activity totals and tag distributions.
func SummarizeActivities(activities []domain.Activity) domain.ActivitySummary {
	s := domain.ActivitySummary{
		Total:                len(activities),
		NavigationAssistance: NavigationDistribution(activities),
		ServicesAccessed:     ServicesDistribution(activities),
	}
	for _, a := range activities {
		s.TotalNavigationItems += a.NavigationItemCount()
		s.TotalServiceItems += a.ServiceItemCount()
		if a.IsDischarge {
			s.TotalDischarges++
		}
	}
	s.TotalItems = s.TotalNavigationItems + s.TotalServiceItems + s.TotalDischarges
	return s
}

// SummarizeClients computes client totals and distributions.
func SummarizeClients(clients []domain.Client) domain.ClientSummary {
	return domain.ClientSummary{
		Total:           len(clients),
		Ethnicities:     EthnicityDistribution(clients),
		ReferralSources: ReferralSourceDistribution(clients),
		Regions:         RegionDistribution(clients),
	}
}

// requireWindow returns the criteria's calendar-day window or a validation
// error when either bound is missing.
func requireWindow(c Criteria) (Window, error) {
	if c.Start == nil || c.End == nil {
		return Window{}, fmt.Errorf("%w: start and end dates are required", apperrors.ErrValidation)
	}
	if err := c.Validate(); err != nil {
		return Window{}, err
	}
	return Window{Start: domain.StartOfDay(*c.Start), End: domain.StartOfDay(*c.End)}, nil
}

// ProgramReport builds the period report. Clients are selected by referral
// date and activities by delivery date. A window that matches nothing at all
// is reported as apperrors.ErrNoData rather than as an all-zero report.
func ProgramReport(clients []domain.Client, activities []domain.Activity, workforce domain.WorkforceData, c Criteria) (domain.ProgramReport, error) {
	w, err := requireWindow(c)
	if err != nil {
		return domain.ProgramReport{}, err
	}
	filteredClients, err := FilterClients(clients, c)
	if err != nil {
		return domain.ProgramReport{}, err
	}
	filteredActivities, err := FilterActivities(activities, domain.IndexClients(clients), c)
	if err != nil {
		return domain.ProgramReport{}, err
	}
	if len(filteredClients) == 0 && len(filteredActivities) == 0 {
		return domain.ProgramReport{}, apperrors.ErrNoData
	}
	return domain.ProgramReport{
		Start:      w.Start,
		End:        w.End,
		Clients:    SummarizeClients(filteredClients),
		Activities: SummarizeActivities(filteredActivities),
		Workforce:  SummarizeWorkforce(workforce),
	}, nil
}

// UnifiedReport applies one set of criteria to both clients and activities
// and reports combined statistics. Ages are derived at now.
func UnifiedReport(clients []domain.Client, activities []domain.Activity, c Criteria, now time.Time) (domain.UnifiedReport, error) {
	filteredClients, err := FilterClients(clients, c)
	if err != nil {
		return domain.UnifiedReport{}, err
	}
	filteredActivities, err := FilterActivities(activities, domain.IndexClients(clients), c)
	if err != nil {
		return domain.UnifiedReport{}, err
	}

	summary := SummarizeActivities(filteredActivities)
	served := distinctClients(filteredActivities)
	avgPerClient := 0.0
	if served > 0 {
		avgPerClient = math.Round(float64(len(filteredActivities))/float64(served)*10) / 10
	}

	return domain.UnifiedReport{
		Clients: domain.ClientStats{
			Total:           len(filteredClients),
			Ethnicities:     EthnicityDistribution(filteredClients),
			ReferralSources: ReferralSourceDistribution(filteredClients),
			Regions:         RegionDistribution(filteredClients),
			AgeGroups:       AgeGroupDistribution(filteredClients, now),
			AverageAge:      AverageAge(filteredClients, now),
		},
		Activities: domain.ActivityStats{
			Total:            summary.Total,
			TotalItems:       summary.TotalItems,
			ServicesCount:    summary.TotalServiceItems,
			NavigationCount:  summary.TotalNavigationItems,
			ClientsServed:    served,
			AveragePerClient: avgPerClient,
		},
	}, nil
}

// StaffPerformanceReport filters activities to the criteria window and
// location and builds the staff KPI report for the roster. When criteria name
// a staff member, only that account is rolled up.
func StaffPerformanceReport(activities []domain.Activity, roster []domain.StaffAccount, clients []domain.Client, c Criteria) (domain.StaffPerformanceReport, error) {
	w, err := requireWindow(c)
	if err != nil {
		return domain.StaffPerformanceReport{}, err
	}
	index := domain.IndexClients(clients)
	filtered, err := FilterActivities(activities, index, c)
	if err != nil {
		return domain.StaffPerformanceReport{}, err
	}
	if c.Staff != nil {
		// Unattributed activities belong to the fallback admin alone, so they
		// stay in the report only when that admin is the one selected.
		fallback := fallbackAccount(roster)
		if fallback < 0 || !isStaffMember(roster[fallback], *c.Staff) {
			filtered = attributedOnly(filtered)
		}
		roster = selectStaff(roster, *c.Staff)
	}
	return StaffPerformance(filtered, roster, index, w), nil
}

func selectStaff(roster []domain.StaffAccount, who StaffIdentity) []domain.StaffAccount {
	var out []domain.StaffAccount
	for _, s := range roster {
		if isStaffMember(s, who) {
			out = append(out, s)
		}
	}
	return out
}

func isStaffMember(s domain.StaffAccount, who StaffIdentity) bool {
	return (who.Email != "" && domain.NormalizeEmail(s.Email) == domain.NormalizeEmail(who.Email)) ||
		(who.FullName != "" && s.FullName == who.FullName)
}

func attributedOnly(activities []domain.Activity) []domain.Activity {
	out := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if a.HasAuthorship() {
			out = append(out, a)
		}
	}
	return out
}
