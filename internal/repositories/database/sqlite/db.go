// Package sqlite stores a snapshot of the CRM data in a single SQLite file.
// The operator CLI uses it to run reports offline.
package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS clients (
	client_id        TEXT PRIMARY KEY,
	full_name        TEXT NOT NULL,
	sex              TEXT NOT NULL DEFAULT '',
	date_of_birth    DATE,
	age              INTEGER,
	ethnicity        TEXT NOT NULL DEFAULT '',
	country_of_birth TEXT NOT NULL DEFAULT '',
	languages        TEXT NOT NULL DEFAULT '[]',
	referral_source  TEXT NOT NULL DEFAULT '',
	referral_date    DATE,
	address          TEXT NOT NULL DEFAULT '',
	postcode         TEXT NOT NULL DEFAULT '',
	region           TEXT NOT NULL DEFAULT '',
	password_hash    TEXT NOT NULL DEFAULT '',
	created_at       DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS activities (
	activity_id           TEXT PRIMARY KEY,
	client_id             TEXT NOT NULL,
	activity_date         DATE NOT NULL,
	location              TEXT NOT NULL DEFAULT '',
	navigation_assistance TEXT NOT NULL DEFAULT '[]',
	services_accessed     TEXT NOT NULL DEFAULT '[]',
	educational_resources TEXT NOT NULL DEFAULT '[]',
	preventive_services   TEXT NOT NULL DEFAULT '[]',
	maternal_child_health TEXT NOT NULL DEFAULT '[]',
	other_assistance      TEXT NOT NULL DEFAULT '',
	other_education       TEXT NOT NULL DEFAULT '',
	referrals_made        TEXT NOT NULL DEFAULT '',
	follow_up_actions     TEXT NOT NULL DEFAULT '',
	is_discharge          BOOLEAN NOT NULL DEFAULT 0,
	discharge_date        DATE,
	discharge_reason      TEXT NOT NULL DEFAULT '',
	created_by            TEXT NOT NULL DEFAULT '',
	created_by_name       TEXT NOT NULL DEFAULT '',
	created_by_role       TEXT NOT NULL DEFAULT '',
	created_at            DATETIME
);

CREATE TABLE IF NOT EXISTS workforce_entries (
	entry_id  TEXT PRIMARY KEY,
	partition TEXT NOT NULL CHECK (partition IN ('north', 'south')),
	fte       TEXT NOT NULL,
	role      TEXT NOT NULL,
	ethnicity TEXT NOT NULL DEFAULT '',
	languages TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS staff_accounts (
	staff_id           TEXT PRIMARY KEY,
	email              TEXT NOT NULL UNIQUE COLLATE NOCASE,
	full_name          TEXT NOT NULL,
	role               TEXT NOT NULL,
	assigned_locations TEXT NOT NULL DEFAULT '[]',
	is_active          BOOLEAN NOT NULL DEFAULT 1,
	phone_number       TEXT NOT NULL DEFAULT '',
	password_hash      TEXT NOT NULL DEFAULT '',
	last_login         DATETIME,
	created_at         DATETIME NOT NULL,
	last_updated_at    DATETIME NOT NULL
);
`

// Open opens (creating if needed) the snapshot at path. ":memory:" gives a
// throwaway database.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot %s: %w", path, err)
	}
	// A single connection keeps ":memory:" databases shared and serialises writers.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open snapshot %s: %w", path, err)
	}
	return db, nil
}

// InitSchema creates any missing tables.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return storageError("create schema", err)
	}
	return nil
}

// NewRepositoryProvider wires the sqlite repositories over db.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:    NewClientRepository(db),
		ActivityRepo:  NewActivityRepository(db),
		WorkforceRepo: NewWorkforceRepository(db),
		StaffRepo:     NewStaffRepository(db),
	}
}

func storageError(op string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", apperrors.ErrStorage, op, err)
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

// execAffectingOne maps zero affected rows to apperrors.ErrNotFound.
func execAffectingOne(ctx context.Context, db *sql.DB, op, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return storageError(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageError(op, err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// stringList stores a []string as a JSON array in a TEXT column.
type stringList []string

// Value implements driver.Valuer.
func (l stringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *stringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = []string{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported list column type %T", src)
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("invalid list column: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}
