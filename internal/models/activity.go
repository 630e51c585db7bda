package models

import "time"

// Activity is the activities table row. The created_* columns are written once
// on insert and never touched by updates.
type Activity struct {
	ActivityID           string     `db:"activity_id"`
	ClientID             string     `db:"client_id"`
	ActivityDate         time.Time  `db:"activity_date"`
	Location             string     `db:"location"`
	NavigationAssistance []string   `db:"navigation_assistance"`
	ServicesAccessed     []string   `db:"services_accessed"`
	EducationalResources []string   `db:"educational_resources"`
	PreventiveServices   []string   `db:"preventive_services"`
	MaternalChildHealth  []string   `db:"maternal_child_health"`
	OtherAssistance      string     `db:"other_assistance"`
	OtherEducation       string     `db:"other_education"`
	ReferralsMade        string     `db:"referrals_made"`
	FollowUpActions      string     `db:"follow_up_actions"`
	IsDischarge          bool       `db:"is_discharge"`
	DischargeDate        *time.Time `db:"discharge_date"`
	DischargeReason      string     `db:"discharge_reason"`
	CreatedBy            string     `db:"created_by"`
	CreatedByName        string     `db:"created_by_name"`
	CreatedByRole        string     `db:"created_by_role"`
	CreatedAt            *time.Time `db:"created_at"`
}
