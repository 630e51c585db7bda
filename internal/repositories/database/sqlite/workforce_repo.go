package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	"github.com/SscSPs/multinav_crm/internal/models"
)

// WorkforceRepository implements the workforce ports over SQLite. Entries are
// listed in insertion order.
type WorkforceRepository struct {
	db *sql.DB
}

func NewWorkforceRepository(db *sql.DB) *WorkforceRepository {
	return &WorkforceRepository{db: db}
}

var _ portsrepo.WorkforceRepositoryFacade = (*WorkforceRepository)(nil)

const (
	workforceColumns     = `entry_id, partition, fte, role, ethnicity, languages`
	workforceInsertQuery = `INSERT INTO workforce_entries (` + workforceColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
)

func scanWorkforceEntry(row rowScanner) (models.WorkforceEntry, error) {
	var m models.WorkforceEntry
	err := row.Scan(&m.EntryID, &m.Partition, &m.FTE, &m.Role, &m.Ethnicity, (*stringList)(&m.Languages))
	return m, err
}

func (r *WorkforceRepository) ListWorkforce(ctx context.Context) ([]domain.WorkforceEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+workforceColumns+` FROM workforce_entries ORDER BY rowid`)
	if err != nil {
		return nil, storageError("query workforce", err)
	}
	defer rows.Close()

	entries := []domain.WorkforceEntry{}
	for rows.Next() {
		m, err := scanWorkforceEntry(rows)
		if err != nil {
			return nil, storageError("scan workforce entry", err)
		}
		entries = append(entries, m.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate workforce", err)
	}
	return entries, nil
}

func (r *WorkforceRepository) FindWorkforceEntryByID(ctx context.Context, entryID string) (*domain.WorkforceEntry, error) {
	m, err := scanWorkforceEntry(r.db.QueryRowContext(ctx, `SELECT `+workforceColumns+` FROM workforce_entries WHERE entry_id = ?`, entryID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, storageError("get workforce entry", err)
	}
	entry := m.ToDomain()
	return &entry, nil
}

func (r *WorkforceRepository) SaveWorkforceEntry(ctx context.Context, entry domain.WorkforceEntry) error {
	m := models.FromDomainWorkforceEntry(entry)
	_, err := r.db.ExecContext(ctx, workforceInsertQuery,
		m.EntryID, m.Partition, m.FTE, m.Role, m.Ethnicity, stringList(m.Languages))
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return storageError("insert workforce entry", err)
	}
	return nil
}

func (r *WorkforceRepository) UpdateWorkforceEntry(ctx context.Context, entry domain.WorkforceEntry) error {
	m := models.FromDomainWorkforceEntry(entry)
	return execAffectingOne(ctx, r.db, "update workforce entry",
		`UPDATE workforce_entries SET partition = ?, fte = ?, role = ?, ethnicity = ?, languages = ? WHERE entry_id = ?`,
		m.Partition, m.FTE, m.Role, m.Ethnicity, stringList(m.Languages), m.EntryID)
}

func (r *WorkforceRepository) DeleteWorkforceEntry(ctx context.Context, entryID string) error {
	return execAffectingOne(ctx, r.db, "delete workforce entry", `DELETE FROM workforce_entries WHERE entry_id = ?`, entryID)
}

func (r *WorkforceRepository) ReplaceWorkforce(ctx context.Context, entries []domain.WorkforceEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storageError("begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM workforce_entries`); err != nil {
		return storageError("clear workforce", err)
	}
	for _, e := range entries {
		m := models.FromDomainWorkforceEntry(e)
		if _, err := tx.ExecContext(ctx, workforceInsertQuery,
			m.EntryID, m.Partition, m.FTE, m.Role, m.Ethnicity, stringList(m.Languages)); err != nil {
			return storageError("insert workforce entry", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return storageError("commit transaction", err)
	}
	return nil
}
