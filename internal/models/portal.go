package models

import "time"

// Attachment is one element of the patient_experiences.attachments JSONB array.
type Attachment struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}

// ExperienceEntry is the patient_experiences table row.
type ExperienceEntry struct {
	ExperienceID   string       `db:"experience_id"`
	ClientID       string       `db:"client_id"`
	ExperienceDate time.Time    `db:"experience_date"`
	Content        string       `db:"content"`
	IsRead         bool         `db:"is_read"`
	Attachments    []Attachment `db:"attachments"`
}

// PortalMessage is the patient_messages table row.
type PortalMessage struct {
	MessageID string    `db:"message_id"`
	ClientID  string    `db:"client_id"`
	SentAt    time.Time `db:"sent_at"`
	Sender    string    `db:"sender"`
	Body      string    `db:"body"`
	Language  string    `db:"language"`
	IsRead    bool      `db:"is_read"`
}

// PortalActivity is one row of the per-client submission counts.
type PortalActivity struct {
	ClientID          string     `db:"client_id"`
	Experiences       int        `db:"experiences"`
	UnreadExperiences int        `db:"unread_experiences"`
	Messages          int        `db:"messages"`
	UnreadMessages    int        `db:"unread_messages"`
	LastSubmittedAt   *time.Time `db:"last_submitted_at"`
}
