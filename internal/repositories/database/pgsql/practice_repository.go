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

type PgxPracticeRepository struct {
	BaseRepository
}

func newPgxPracticeRepository(pool *pgxpool.Pool) *PgxPracticeRepository {
	return &PgxPracticeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PracticeRepositoryFacade = (*PgxPracticeRepository)(nil)

const practiceSelectQuery = `
SELECT practice_id, name, address, phone, website, notes, created_at, last_updated_at
FROM gp_practices
`

func (r *PgxPracticeRepository) ListPractices(ctx context.Context) ([]domain.GpPractice, error) {
	rows, err := r.Pool.Query(ctx, practiceSelectQuery+` ORDER BY LOWER(name), practice_id`)
	if err != nil {
		return nil, storageError("query practices", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.GpPractice])
	if err != nil {
		return nil, storageError("collect practice rows", err)
	}
	practices := make([]domain.GpPractice, len(ms))
	for i, m := range ms {
		practices[i] = m.ToDomain()
	}
	return practices, nil
}

func (r *PgxPracticeRepository) FindPracticeByID(ctx context.Context, practiceID string) (*domain.GpPractice, error) {
	rows, err := r.Pool.Query(ctx, practiceSelectQuery+` WHERE practice_id = $1`, practiceID)
	if err != nil {
		return nil, storageError("query practice", err)
	}
	m, err := collectOne[models.GpPractice](rows, "collect practice row")
	if err != nil {
		return nil, err
	}
	practice := m.ToDomain()
	return &practice, nil
}

func (r *PgxPracticeRepository) SavePractice(ctx context.Context, practice domain.GpPractice) error {
	m := models.FromDomainGpPractice(practice)
	query := `
		INSERT INTO gp_practices (practice_id, name, address, phone, website, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PracticeID, m.Name, m.Address, m.Phone, m.Website, m.Notes, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return storageError("insert practice", err)
	}
	return nil
}

func (r *PgxPracticeRepository) UpdatePractice(ctx context.Context, practice domain.GpPractice) error {
	m := models.FromDomainGpPractice(practice)
	query := `
		UPDATE gp_practices SET
			name = $2, address = $3, phone = $4, website = $5, notes = $6, last_updated_at = $7
		WHERE practice_id = $1;
	`
	return r.execAffectingOne(ctx, "update practice", query,
		m.PracticeID, m.Name, m.Address, m.Phone, m.Website, m.Notes, m.LastUpdatedAt,
	)
}

func (r *PgxPracticeRepository) DeletePractice(ctx context.Context, practiceID string) error {
	return r.execAffectingOne(ctx, "delete practice", `DELETE FROM gp_practices WHERE practice_id = $1`, practiceID)
}
