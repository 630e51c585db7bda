package dto

import (
	"github.com/SscSPs/multinav_crm/internal/core/analytics"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// ReportQuery holds the dimension filters shared by report and list endpoints.
type ReportQuery struct {
	StartDate  string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate    string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Region     string `form:"region" binding:"omitempty,oneof=all North South"`
	Location   string `form:"location"`
	Staff      string `form:"staff"` // Staff email or full name
	Ethnicity  string `form:"ethnicity"`
	ServiceTag string `form:"serviceType"`
}

// ToCriteria converts the query into analytics criteria.
func (q ReportQuery) ToCriteria() (analytics.Criteria, error) {
	start, err := ParseOptionalDate("startDate", q.StartDate)
	if err != nil {
		return analytics.Criteria{}, err
	}
	end, err := ParseOptionalDate("endDate", q.EndDate)
	if err != nil {
		return analytics.Criteria{}, err
	}
	c := analytics.Criteria{
		Start:      start,
		End:        end,
		Region:     q.Region,
		Location:   q.Location,
		Ethnicity:  q.Ethnicity,
		ServiceTag: q.ServiceTag,
	}
	if q.Staff != "" {
		c.Staff = &analytics.StaffIdentity{Email: q.Staff, FullName: q.Staff}
	}
	return c, c.Validate()
}

// InsightsResponse wraps the narrative findings for a program report window.
type InsightsResponse struct {
	StartDate string           `json:"startDate"`
	EndDate   string           `json:"endDate"`
	Insights  []domain.Insight `json:"insights"`
}

// CapabilitiesResponse lists what the current session may open.
type CapabilitiesResponse struct {
	Role         domain.Role         `json:"role,omitempty"`
	Demo         bool                `json:"demo"`
	Capabilities []domain.Capability `json:"capabilities"`
}
