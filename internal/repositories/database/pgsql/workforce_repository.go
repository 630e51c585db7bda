package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	"github.com/SscSPs/multinav_crm/internal/models"
)

type PgxWorkforceRepository struct {
	BaseRepository
}

func newPgxWorkforceRepository(pool *pgxpool.Pool) *PgxWorkforceRepository {
	return &PgxWorkforceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WorkforceRepositoryFacade = (*PgxWorkforceRepository)(nil)

const workforceSelectQuery = `
SELECT entry_id, partition, fte, role, ethnicity, languages
FROM workforce_entries
`

const workforceInsertQuery = `
	INSERT INTO workforce_entries (entry_id, partition, fte, role, ethnicity, languages)
	VALUES ($1, $2, $3, $4, $5, $6);
`

func (r *PgxWorkforceRepository) ListWorkforce(ctx context.Context) ([]domain.WorkforceEntry, error) {
	rows, err := r.Pool.Query(ctx, workforceSelectQuery+` ORDER BY position`)
	if err != nil {
		return nil, storageError("query workforce", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.WorkforceEntry])
	if err != nil {
		return nil, storageError("collect workforce rows", err)
	}
	entries := make([]domain.WorkforceEntry, len(ms))
	for i, m := range ms {
		entries[i] = m.ToDomain()
	}
	return entries, nil
}

func (r *PgxWorkforceRepository) FindWorkforceEntryByID(ctx context.Context, entryID string) (*domain.WorkforceEntry, error) {
	rows, err := r.Pool.Query(ctx, workforceSelectQuery+` WHERE entry_id = $1`, entryID)
	if err != nil {
		return nil, storageError("query workforce entry", err)
	}
	m, err := collectOne[models.WorkforceEntry](rows, "collect workforce row")
	if err != nil {
		return nil, err
	}
	entry := m.ToDomain()
	return &entry, nil
}

func (r *PgxWorkforceRepository) SaveWorkforceEntry(ctx context.Context, entry domain.WorkforceEntry) error {
	m := models.FromDomainWorkforceEntry(entry)
	_, err := r.Pool.Exec(ctx, workforceInsertQuery, m.EntryID, m.Partition, m.FTE, m.Role, m.Ethnicity, m.Languages)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return storageError("insert workforce entry", err)
	}
	return nil
}

func (r *PgxWorkforceRepository) UpdateWorkforceEntry(ctx context.Context, entry domain.WorkforceEntry) error {
	m := models.FromDomainWorkforceEntry(entry)
	query := `
		UPDATE workforce_entries SET partition = $2, fte = $3, role = $4, ethnicity = $5, languages = $6
		WHERE entry_id = $1;
	`
	return r.execAffectingOne(ctx, "update workforce entry", query,
		m.EntryID, m.Partition, m.FTE, m.Role, m.Ethnicity, m.Languages)
}

func (r *PgxWorkforceRepository) DeleteWorkforceEntry(ctx context.Context, entryID string) error {
	return r.execAffectingOne(ctx, "delete workforce entry", `DELETE FROM workforce_entries WHERE entry_id = $1`, entryID)
}

func (r *PgxWorkforceRepository) ReplaceWorkforce(ctx context.Context, entries []domain.WorkforceEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM workforce_entries`); err != nil {
		return storageError("clear workforce", err)
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		m := models.FromDomainWorkforceEntry(e)
		batch.Queue(workforceInsertQuery, m.EntryID, m.Partition, m.FTE, m.Role, m.Ethnicity, m.Languages)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return storageError("insert workforce entries", err)
	}

	return r.Commit(ctx, tx)
}
