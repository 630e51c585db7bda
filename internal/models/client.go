package models

import "time"

// Client is the clients table row.
type Client struct {
	ClientID       string     `db:"client_id"`
	FullName       string     `db:"full_name"`
	Sex            string     `db:"sex"`
	DateOfBirth    *time.Time `db:"date_of_birth"`
	Age            *int       `db:"age"` // Legacy, null when date_of_birth is known
	Ethnicity      string     `db:"ethnicity"`
	CountryOfBirth string     `db:"country_of_birth"`
	Languages      []string   `db:"languages"`
	ReferralSource string     `db:"referral_source"`
	ReferralDate   *time.Time `db:"referral_date"`
	Address        string     `db:"address"`
	Postcode       string     `db:"postcode"`
	Region         string     `db:"region"`
	PasswordHash   string     `db:"password_hash"`
	CreatedAt      time.Time  `db:"created_at"`
}
