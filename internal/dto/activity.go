package dto

import (
	"time"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// CreateActivityRequest defines the data needed to record an activity.
// Authorship is taken from the session, never from the request.
type CreateActivityRequest struct {
	ClientID             string   `json:"clientId" binding:"required"`
	Date                 string   `json:"date" binding:"required,datetime=2006-01-02"`
	Location             string   `json:"location" binding:"omitempty,oneof=Canning Gosnells Mandurah Stirling Swan Wanneroo"`
	NavigationAssistance []string `json:"navigationAssistance"`
	ServicesAccessed     []string `json:"servicesAccessed"`
	EducationalResources []string `json:"educationalResources"`
	PreventiveServices   []string `json:"preventiveServices"`
	MaternalChildHealth  []string `json:"maternalChildHealth"`
	OtherAssistance      string   `json:"otherAssistance"`
	OtherEducation       string   `json:"otherEducation"`
	ReferralsMade        string   `json:"referralsMade"`
	FollowUpActions      string   `json:"followUpActions"`
	IsDischarge          bool     `json:"isDischarge"`
	DischargeDate        string   `json:"dischargeDate" binding:"omitempty,datetime=2006-01-02"`
	DischargeReason      string   `json:"dischargeReason"`
}

// UpdateActivityRequest replaces the editable fields of an activity. It has
// the same shape as a create request; authorship is preserved.
type UpdateActivityRequest = CreateActivityRequest

// ListActivitiesParams defines query parameters for the activity log.
type ListActivitiesParams struct {
	Limit     int    `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken string `form:"nextToken"`
	ReportQuery
}

// ActivityResponse is the wire representation of an activity for a viewer.
type ActivityResponse struct {
	ID                   string      `json:"id"`
	ClientID             string      `json:"clientId"`
	ClientName           string      `json:"clientName"`
	Date                 string      `json:"date"`
	Location             string      `json:"location"`
	NavigationAssistance []string    `json:"navigationAssistance"`
	ServicesAccessed     []string    `json:"servicesAccessed"`
	EducationalResources []string    `json:"educationalResources"`
	PreventiveServices   []string    `json:"preventiveServices"`
	MaternalChildHealth  []string    `json:"maternalChildHealth"`
	OtherAssistance      string      `json:"otherAssistance,omitempty"`
	OtherEducation       string      `json:"otherEducation,omitempty"`
	ReferralsMade        string      `json:"referralsMade"`
	FollowUpActions      string      `json:"followUpActions"`
	IsDischarge          bool        `json:"isDischarge"`
	DischargeDate        string      `json:"dischargeDate,omitempty"`
	DischargeReason      string      `json:"dischargeReason,omitempty"`
	CreatedBy            string      `json:"createdBy,omitempty"`
	CreatedByName        string      `json:"createdByName,omitempty"`
	CreatedByRole        domain.Role `json:"createdByRole,omitempty"`
	CreatedAt            *time.Time  `json:"createdAt,omitempty"`
	CanEdit              bool        `json:"canEdit"`
}

// ListActivitiesResponse is one page of the activity log.
type ListActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
	NextToken  string             `json:"nextToken,omitempty"`
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// ToActivityResponse converts a domain.ActivityView to ActivityResponse.
func ToActivityResponse(v domain.ActivityView) ActivityResponse {
	return ActivityResponse{
		ID:                   v.ID,
		ClientID:             v.ClientID,
		ClientName:           v.ClientName,
		Date:                 v.Date.Format(DateLayout),
		Location:             v.Location,
		NavigationAssistance: nonNil(v.NavigationAssistance),
		ServicesAccessed:     nonNil(v.ServicesAccessed),
		EducationalResources: nonNil(v.EducationalResources),
		PreventiveServices:   nonNil(v.PreventiveServices),
		MaternalChildHealth:  nonNil(v.MaternalChildHealth),
		OtherAssistance:      v.OtherAssistance,
		OtherEducation:       v.OtherEducation,
		ReferralsMade:        v.ReferralsMade,
		FollowUpActions:      v.FollowUpActions,
		IsDischarge:          v.IsDischarge,
		DischargeDate:        FormatOptionalDate(v.DischargeDate),
		DischargeReason:      v.DischargeReason,
		CreatedBy:            v.CreatedBy,
		CreatedByName:        v.CreatedByName,
		CreatedByRole:        v.CreatedByRole,
		CreatedAt:            v.Authorship.CreatedAt,
		CanEdit:              v.CanEdit,
	}
}

// ToListActivityResponse converts a slice of activity views.
func ToListActivityResponse(views []domain.ActivityView) []ActivityResponse {
	res := make([]ActivityResponse, len(views))
	for i, v := range views {
		res[i] = ToActivityResponse(v)
	}
	return res
}
