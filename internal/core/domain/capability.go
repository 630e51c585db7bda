package domain

// Capability names a navigable surface of the application.
type Capability string

const (
	CapClientRecords      Capability = "client-records"
	CapActivityLog        Capability = "activity-log"
	CapLocalInsights      Capability = "local-insights"
	CapPracticeDirectory  Capability = "practice-directory"
	CapResourceLibrary    Capability = "resource-library"
	CapOverviewDashboard  Capability = "overview-dashboard"
	CapProgramReport      Capability = "program-report"
	CapWorkforceTracking  Capability = "workforce-tracking"
	CapAIInsights         Capability = "ai-insights"
	CapUnifiedReport      Capability = "unified-report"
	CapUserAdministration Capability = "user-administration"
	CapStaffPerformance   Capability = "staff-performance"
)

// AllCapabilities lists every capability in menu order.
var AllCapabilities = []Capability{
	CapOverviewDashboard,
	CapClientRecords,
	CapActivityLog,
	CapWorkforceTracking,
	CapUnifiedReport,
	CapProgramReport,
	CapLocalInsights,
	CapPracticeDirectory,
	CapResourceLibrary,
	CapAIInsights,
	CapUserAdministration,
	CapStaffPerformance,
}

// CapabilitySet is an unordered set of capabilities.
type CapabilitySet map[Capability]struct{}

// Has reports whether c is in the set.
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// List returns the set's members in AllCapabilities order.
func (s CapabilitySet) List() []Capability {
	out := make([]Capability, 0, len(s))
	for _, c := range AllCapabilities {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
