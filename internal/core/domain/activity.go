package domain

import "time"

// Sentinel tags that pair with a free-text elaboration.
const (
	OtherNavigationAssistance = "Other Navigation Assistance"
	OtherServices             = "Other Services"
	OtherEducationTopics      = "Other Education Topics"
)

// Authorship records who created an activity. It is immutable once set.
type Authorship struct {
	CreatedBy     string     `json:"createdBy,omitempty"`     // Account email
	CreatedByName string     `json:"createdByName,omitempty"` // Display name at creation time
	CreatedByRole Role       `json:"createdByRole,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
}

// Activity is one recorded instance of navigation service delivery.
type Activity struct {
	ID                   string     `json:"id"`
	ClientID             string     `json:"clientId"`
	Date                 time.Time  `json:"date"`
	Location             string     `json:"location,omitempty"`
	NavigationAssistance []string   `json:"navigationAssistance"`
	ServicesAccessed     []string   `json:"servicesAccessed"`
	EducationalResources []string   `json:"educationalResources"`
	PreventiveServices   []string   `json:"preventiveServices"`
	MaternalChildHealth  []string   `json:"maternalChildHealth"`
	OtherAssistance      string     `json:"otherAssistance,omitempty"`
	OtherEducation       string     `json:"otherEducation,omitempty"`
	ReferralsMade        string     `json:"referralsMade"`
	FollowUpActions      string     `json:"followUpActions"`
	IsDischarge          bool       `json:"isDischarge"`
	DischargeDate        *time.Time `json:"dischargeDate,omitempty"`
	DischargeReason      string     `json:"dischargeReason,omitempty"`
	Authorship
}

// HasAuthorship is false for legacy records created before authorship was captured.
func (a Activity) HasAuthorship() bool {
	return a.CreatedBy != "" || a.CreatedByName != ""
}

// NavigationItemCount counts navigation tags plus one for a free-text elaboration.
func (a Activity) NavigationItemCount() int {
	n := len(a.NavigationAssistance)
	if a.OtherAssistance != "" {
		n++
	}
	return n
}

// ServiceItemCount counts accessed services plus one for a free-text education topic.
func (a Activity) ServiceItemCount() int {
	n := len(a.ServicesAccessed)
	if a.OtherEducation != "" {
		n++
	}
	return n
}

// HasTag reports whether tag is among the activity's services or navigation assistance.
func (a Activity) HasTag(tag string) bool {
	return contains(a.ServicesAccessed, tag) || contains(a.NavigationAssistance, tag)
}

// ActivityView is an activity decorated for a specific viewer.
type ActivityView struct {
	Activity
	ClientName string `json:"clientName"`
	CanEdit    bool   `json:"canEdit"`
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
