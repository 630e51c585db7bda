package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Count is one bucket of a category distribution.
type Count struct {
	Key   string `json:"name"`
	Count int    `json:"value"`
}

// PyramidRow is one age bracket of a population pyramid. Male is stored
// negated so the two sides render symmetrically; the magnitude is the count.
type PyramidRow struct {
	Bracket string `json:"age"`
	Male    int    `json:"male"`
	Female  int    `json:"female"`
}

// ServiceBreakdown counts activities carrying selected headline tags.
type ServiceBreakdown struct {
	AppointmentScheduling int `json:"appointmentScheduling"`
	MedicareEnrollment    int `json:"medicareEnrollment"`
	CareCoordination      int `json:"careCoordination"`
	MentalHealthServices  int `json:"mentalHealthServices"`
	GPServices            int `json:"gpServices"`
}

// StaffRollup is the per-staff KPI summary over a report window.
type StaffRollup struct {
	StaffID           string           `json:"staffId"`
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	Role              Role             `json:"role"`
	AssignedLocations []string         `json:"assignedLocations"`
	ActivityLocations []string         `json:"activityLocations"`
	TotalActivities   int              `json:"totalActivities"`
	NavigationItems   int              `json:"navigationAssistance"`
	ServiceItems      int              `json:"servicesAccessed"`
	Discharges        int              `json:"discharges"`
	ClientsServed     int              `json:"clientsServed"`
	AveragePerDay     decimal.Decimal  `json:"averagePerDay"`
	Breakdown         ServiceBreakdown `json:"serviceBreakdown"`
}

// StaffPerformanceOverall summarises the whole window across staff.
type StaffPerformanceOverall struct {
	TotalActivities int             `json:"totalActivities"`
	TotalClients    int             `json:"totalClients"`
	TotalStaff      int             `json:"totalStaff"`
	AveragePerStaff decimal.Decimal `json:"averagePerStaff"`
}

// DetailedActivityRow is one line of the flat staff activity log.
type DetailedActivityRow struct {
	Date                 time.Time `json:"date"`
	StaffName            string    `json:"staffName"`
	StaffEmail           string    `json:"staffEmail"`
	Location             string    `json:"location"`
	ClientID             string    `json:"clientId"`
	ClientName           string    `json:"clientName"`
	NavigationAssistance []string  `json:"navigationAssistance"`
	ServicesAccessed     []string  `json:"servicesAccessed"`
	IsDischarge          bool      `json:"isDischarge"`
	FollowUpActions      string    `json:"followUpActions"`
}

// StaffPerformanceReport is the staff KPI report for a window.
type StaffPerformanceReport struct {
	Start      time.Time               `json:"start"`
	End        time.Time               `json:"end"`
	Rollups    []StaffRollup           `json:"staff"`
	Overall    StaffPerformanceOverall `json:"overall"`
	Activities []DetailedActivityRow   `json:"activities"`
}

// OverviewReport backs the program dashboard.
type OverviewReport struct {
	TotalClients          int             `json:"totalClients"`
	TotalActivities       int             `json:"totalActivities"`
	TotalFTE              decimal.Decimal `json:"totalFTE"`
	EthnicityDistribution []Count         `json:"ethnicityDistribution"`
	TopNavigation         []Count         `json:"topNavigation"`
	PopulationPyramid     []PyramidRow    `json:"populationPyramid"`
	PyramidScale          int             `json:"pyramidScale"`
}

// ClientSummary aggregates the clients referred within a window.
type ClientSummary struct {
	Total           int     `json:"total"`
	Ethnicities     []Count `json:"ethnicities"`
	ReferralSources []Count `json:"referralSources"`
	Regions         []Count `json:"regions"`
}

// ActivitySummary aggregates the activities delivered within a window.
type ActivitySummary struct {
	Total                int     `json:"total"`
	TotalItems           int     `json:"totalItems"`
	TotalNavigationItems int     `json:"totalNavigationItems"`
	TotalServiceItems    int     `json:"totalServiceItems"`
	TotalDischarges      int     `json:"totalDischarges"`
	NavigationAssistance []Count `json:"navigationAssistance"`
	ServicesAccessed     []Count `json:"servicesAccessed"`
}

// WorkforceSummary aggregates the workforce snapshot.
type WorkforceSummary struct {
	TotalFTE    decimal.Decimal `json:"totalFTE"`
	NorthFTE    decimal.Decimal `json:"northFTE"`
	SouthFTE    decimal.Decimal `json:"southFTE"`
	Headcount   int             `json:"headcount"`
	Ethnicities []Count         `json:"ethnicities"`
	Languages   []Count         `json:"languages"`
}

// ProgramReport is the period report for program funders.
type ProgramReport struct {
	Start      time.Time        `json:"start"`
	End        time.Time        `json:"end"`
	Clients    ClientSummary    `json:"clientSummary"`
	Activities ActivitySummary  `json:"activitySummary"`
	Workforce  WorkforceSummary `json:"workforceSummary"`
}

// ClientStats is the client half of the unified report.
type ClientStats struct {
	Total           int      `json:"total"`
	Ethnicities     []Count  `json:"ethnicities"`
	ReferralSources []Count  `json:"referralSources"`
	Regions         []Count  `json:"regions"`
	AgeGroups       []Count  `json:"ageGroups"`
	AverageAge      *float64 `json:"averageAge"`
}

// ActivityStats is the activity half of the unified report.
type ActivityStats struct {
	Total            int     `json:"total"`
	TotalItems       int     `json:"totalItems"`
	ServicesCount    int     `json:"servicesCount"`
	NavigationCount  int     `json:"navigationCount"`
	ClientsServed    int     `json:"clientsServed"`
	AveragePerClient float64 `json:"averagePerClient"`
}

// UnifiedReport combines filtered client and activity statistics.
type UnifiedReport struct {
	Clients    ClientStats   `json:"clients"`
	Activities ActivityStats `json:"activities"`
}

// InsightRequest is the compact, PII-free summary sent to the narrative service.
type InsightRequest struct {
	ClientSummary    InsightClientSummary    `json:"clientSummary"`
	ActivitySummary  InsightActivitySummary  `json:"activitySummary"`
	WorkforceSummary InsightWorkforceSummary `json:"workforceSummary"`
	DateRange        InsightDateRange        `json:"dateRange"`
}

type InsightClientSummary struct {
	Total              int     `json:"total"`
	TopEthnicities     []Count `json:"topEthnicities"`
	TopReferralSources []Count `json:"topReferralSources"`
	Regions            []Count `json:"regions"`
}

type InsightActivitySummary struct {
	Total         int     `json:"total"`
	TotalItems    int     `json:"totalItems"`
	Discharges    int     `json:"discharges"`
	TopNavigation []Count `json:"topNavigation"`
	TopServices   []Count `json:"topServices"`
}

type InsightWorkforceSummary struct {
	TotalFTE     string  `json:"totalFTE"`
	NorthFTE     string  `json:"northFTE"`
	SouthFTE     string  `json:"southFTE"`
	TopLanguages []Count `json:"topLanguages"`
}

type InsightDateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
