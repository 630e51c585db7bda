package domain

import "time"

const (
	SexMale   = "Male"
	SexFemale = "Female"
)

// Client is a person receiving health-navigation support.
type Client struct {
	ID             string     `json:"id"`
	FullName       string     `json:"fullName"`
	Sex            string     `json:"sex"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
	Age            *int       `json:"age"` // Legacy stored age; AgeAt prefers DateOfBirth
	Ethnicity      string     `json:"ethnicity"`
	CountryOfBirth string     `json:"countryOfBirth"`
	Languages      []string   `json:"languages"`
	ReferralSource string     `json:"referralSource"`
	ReferralDate   *time.Time `json:"referralDate,omitempty"`
	Address        string     `json:"address,omitempty"`
	Postcode       string     `json:"postcode,omitempty"`
	Region         Region     `json:"region,omitempty"` // Empty on legacy records
	PasswordHash   string     `json:"-"`                // Client portal credential
	CreatedAt      time.Time  `json:"createdAt"`
}

// AgeAt returns the client's age in whole years at now. The age is derived from
// DateOfBirth whenever it is set; the stored Age is only consulted for legacy
// records without one. A nil result means the age is unknown.
func (c Client) AgeAt(now time.Time) *int {
	if c.DateOfBirth == nil {
		if c.Age == nil || *c.Age < 0 {
			return nil
		}
		age := *c.Age
		return &age
	}
	dob := *c.DateOfBirth
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return nil
	}
	return &age
}

// WithDerivedAges returns copies of clients with Age recomputed at now.
func WithDerivedAges(clients []Client, now time.Time) []Client {
	out := make([]Client, len(clients))
	for i, c := range clients {
		c.Age = c.AgeAt(now)
		out[i] = c
	}
	return out
}

// ClientIndex looks up clients by ID.
type ClientIndex map[string]Client

// IndexClients builds a ClientIndex. Later duplicates win.
func IndexClients(clients []Client) ClientIndex {
	idx := make(ClientIndex, len(clients))
	for _, c := range clients {
		idx[c.ID] = c
	}
	return idx
}

// UnknownClientName labels activities whose client reference is dangling.
const UnknownClientName = "Unknown Client"

// NameOf returns the client's full name or UnknownClientName.
func (idx ClientIndex) NameOf(clientID string) string {
	if c, ok := idx[clientID]; ok && c.FullName != "" {
		return c.FullName
	}
	return UnknownClientName
}
