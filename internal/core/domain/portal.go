package domain

import (
	"strings"
	"time"
)

// RoleClient is the session role of a client signed in to the portal. It is
// not a staff role and opens no staff capability.
const RoleClient Role = "client"

// DefaultPortalLanguage is used when a client has no recorded language.
const DefaultPortalLanguage = "English"

// MessageSender is the side of the conversation a portal message came from.
type MessageSender string

const (
	SenderClient    MessageSender = "patient"
	SenderNavigator MessageSender = "navigator"
)

// Attachment is a file a client attached to an experience entry, carried
// inline as a base64 data URL.
type Attachment struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}

// Attachment limits per experience entry.
const (
	MaxAttachments      = 5
	MaxAttachmentLength = 4 * 1024 * 1024 // Encoded data URL length
)

// IsDataURL reports whether s looks like a base64 data URL.
func IsDataURL(s string) bool {
	header, _, ok := strings.Cut(s, ",")
	return ok && strings.HasPrefix(header, "data:") && strings.HasSuffix(header, ";base64")
}

// ExperienceEntry is a client's own account of their care, submitted through
// the portal for navigators to read.
type ExperienceEntry struct {
	ID          string       `json:"id"`
	ClientID    string       `json:"clientId"`
	Date        time.Time    `json:"date"`
	Content     string       `json:"content"`
	IsRead      bool         `json:"isRead"`
	Attachments []Attachment `json:"attachments"`
}

// PortalMessage is one message in the conversation between a client and the
// navigation team.
type PortalMessage struct {
	ID        string        `json:"id"`
	ClientID  string        `json:"clientId"`
	Timestamp time.Time     `json:"timestamp"`
	Sender    MessageSender `json:"sender"`
	Text      string        `json:"text"`
	Language  string        `json:"language"`
	IsRead    bool          `json:"isRead"`
}

// PortalActivity counts a client's portal submissions.
type PortalActivity struct {
	ClientID          string     `json:"clientId"`
	Experiences       int        `json:"experiences"`
	UnreadExperiences int        `json:"unreadExperiences"`
	Messages          int        `json:"messages"` // Client-sent only
	UnreadMessages    int        `json:"unreadMessages"`
	LastSubmittedAt   *time.Time `json:"lastSubmittedAt,omitempty"`
}

// PortalInboxEntry is a client's row in the staff view of portal submissions.
type PortalInboxEntry struct {
	ClientName string `json:"clientName"`
	PortalActivity
}

// PortalActor returns the session identity of a client signed in to the portal.
func (c Client) PortalActor() Actor {
	return Actor{ID: c.ID, FullName: c.FullName, Role: RoleClient}
}

// PreferredLanguage is the client's first recorded language.
func (c Client) PreferredLanguage() string {
	for _, l := range c.Languages {
		if strings.TrimSpace(l) != "" {
			return l
		}
	}
	return DefaultPortalLanguage
}
