package models

import "time"

// GpPractice is the gp_practices table row.
type GpPractice struct {
	PracticeID string `db:"practice_id"`
	Name       string `db:"name"`
	Address    string `db:"address"`
	Phone      string `db:"phone"`
	Website    string `db:"website"`
	Notes      string `db:"notes"`
	AuditFields
}

// ProgramResource is the program_resources table row.
type ProgramResource struct {
	ResourceID   string    `db:"resource_id"`
	Name         string    `db:"name"`
	ResourceType string    `db:"resource_type"`
	Category     string    `db:"category"`
	DateAdded    time.Time `db:"date_added"`
	FileURL      string    `db:"file_url"`
	FileName     string    `db:"file_name"`
	FileSize     *int64    `db:"file_size"`
	FileType     string    `db:"file_type"`
	StoragePath  string    `db:"storage_path"`
}
