package dto

import (
	"time"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// CreateClientRequest defines the data needed to register a client.
type CreateClientRequest struct {
	FullName       string   `json:"fullName" binding:"required"`
	Sex            string   `json:"sex" binding:"required"`
	DateOfBirth    string   `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Age            *int     `json:"age" binding:"omitempty,min=0,max=130"` // Only used without a date of birth
	Ethnicity      string   `json:"ethnicity"`
	CountryOfBirth string   `json:"countryOfBirth"`
	Languages      []string `json:"languages"`
	ReferralSource string   `json:"referralSource"`
	ReferralDate   string   `json:"referralDate" binding:"required,datetime=2006-01-02"`
	Address        string   `json:"address"`
	Postcode       string   `json:"postcode"`
	Region         string   `json:"region" binding:"required,oneof=North South"`
	Password       string   `json:"password" binding:"omitempty,min=6"` // Optional client portal password
}

// UpdateClientRequest defines the client fields that may be changed.
// Pointers distinguish omitted fields from zero values.
type UpdateClientRequest struct {
	FullName       *string   `json:"fullName"`
	Sex            *string   `json:"sex"`
	DateOfBirth    *string   `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Ethnicity      *string   `json:"ethnicity"`
	CountryOfBirth *string   `json:"countryOfBirth"`
	Languages      *[]string `json:"languages"`
	ReferralSource *string   `json:"referralSource"`
	ReferralDate   *string   `json:"referralDate" binding:"omitempty,datetime=2006-01-02"`
	Address        *string   `json:"address"`
	Postcode       *string   `json:"postcode"`
	Region         *string   `json:"region" binding:"omitempty,oneof=North South"`
	Password       *string   `json:"password" binding:"omitempty,min=6"`
}

// ClientResponse is the wire representation of a client.
type ClientResponse struct {
	ID             string    `json:"id"`
	FullName       string    `json:"fullName"`
	Sex            string    `json:"sex"`
	DateOfBirth    string    `json:"dob"`
	Age            *int      `json:"age"`
	Ethnicity      string    `json:"ethnicity"`
	CountryOfBirth string    `json:"countryOfBirth"`
	Languages      []string  `json:"languages"`
	ReferralSource string    `json:"referralSource"`
	ReferralDate   string    `json:"referralDate"`
	Address        string    `json:"address,omitempty"`
	Postcode       string    `json:"postcode,omitempty"`
	Region         string    `json:"region,omitempty"`
	HasPortal      bool      `json:"hasPortalAccess"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToClientResponse converts a domain.Client to ClientResponse.
func ToClientResponse(c domain.Client) ClientResponse {
	languages := c.Languages
	if languages == nil {
		languages = []string{}
	}
	return ClientResponse{
		ID:             c.ID,
		FullName:       c.FullName,
		Sex:            c.Sex,
		DateOfBirth:    FormatOptionalDate(c.DateOfBirth),
		Age:            c.Age,
		Ethnicity:      c.Ethnicity,
		CountryOfBirth: c.CountryOfBirth,
		Languages:      languages,
		ReferralSource: c.ReferralSource,
		ReferralDate:   FormatOptionalDate(c.ReferralDate),
		Address:        c.Address,
		Postcode:       c.Postcode,
		Region:         string(c.Region),
		HasPortal:      c.PasswordHash != "",
		CreatedAt:      c.CreatedAt,
	}
}

// ToListClientResponse converts a slice of domain.Client.
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i, c := range clients {
		res[i] = ToClientResponse(c)
	}
	return res
}
